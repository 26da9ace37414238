package export

import (
	"fmt"
	"time"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"
)

// WordService generates the companion document using GoWord (pure Go)
type WordService struct{}

// NewWordService creates a new Word service
func NewWordService() *WordService {
	return &WordService{}
}

// GenerateSampleDocument writes the deck content as a Word document: the
// capability list plus both data tables, so every slide has a printable twin.
func (s *WordService) GenerateSampleDocument(content SampleDeckContent) ([]byte, error) {
	doc := goword.New()
	doc.Properties.Title = content.DeckTitle
	doc.Properties.Creator = content.DeckCredit
	doc.Properties.Description = "演示文稿示例的配套说明文档"

	sec := doc.AddSection()

	// Title
	sec.AddTitle(content.DeckTitle, 1)

	// Timestamp
	sec.AddText(time.Now().Format("2006年01月02日 15:04"),
		&style.FontStyle{Size: 10, Color: "94A3B8"},
		&style.ParagraphStyle{Alignment: style.AlignCenter})

	sec.AddTextBreak(1)

	// Feature list
	sec.AddText(content.FeatureTitle,
		&style.FontStyle{Bold: true, Size: 14, Color: "1E40AF"},
		nil)
	sec.AddText(content.FeatureLead,
		&style.FontStyle{Size: 11, Color: "334155"},
		&style.ParagraphStyle{SpaceAfter: 120})
	for _, feature := range content.Features {
		sec.AddText("• "+feature,
			&style.FontStyle{Size: 11, Color: "334155"},
			&style.ParagraphStyle{Indent: 360})
	}

	sec.AddTextBreak(1)

	// Product table
	sec.AddText(content.TableTitle,
		&style.FontStyle{Bold: true, Size: 14, Color: "1E40AF"},
		nil)
	s.addTable(sec, content.Table.Headers, content.Table.Rows)

	sec.AddTextBreak(1)

	// Quarterly figures behind the chart slide
	sec.AddText(content.Chart.Title,
		&style.FontStyle{Bold: true, Size: 14, Color: "1E40AF"},
		nil)

	chartHeaders := make([]string, 0, len(content.Chart.Series)+1)
	chartHeaders = append(chartHeaders, "季度")
	for _, sr := range content.Chart.Series {
		chartHeaders = append(chartHeaders, sr.Name)
	}
	chartRows := make([][]string, 0, len(content.Chart.Categories))
	for ci, cat := range content.Chart.Categories {
		row := make([]string, 0, len(chartHeaders))
		row = append(row, cat)
		for _, sr := range content.Chart.Series {
			if ci < len(sr.Values) {
				row = append(row, fmt.Sprintf("%.1f", sr.Values[ci]))
			} else {
				row = append(row, "-")
			}
		}
		chartRows = append(chartRows, row)
	}
	s.addTable(sec, chartHeaders, chartRows)

	// Footer
	sec.AddTextBreak(1)
	sec.AddText("由 GoPPT 示例程序生成",
		&style.FontStyle{Size: 9, Color: "94A3B8"},
		&style.ParagraphStyle{Alignment: style.AlignCenter})

	// Save to bytes
	data, err := doc.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write Word file: %w", err)
	}

	return data, nil
}

// addTable writes one bordered table with a shaded header row.
func (s *WordService) addTable(sec *goword.Section, headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	colWidthTotal := 9000
	colWidth := colWidthTotal / len(headers)

	ts := &style.TableStyle{Width: colWidthTotal, Alignment: "center"}
	ts.SetAllBorders("single", 4, "D9D9D9")
	tbl := sec.AddTable(ts)
	tbl.Grid = make([]int, len(headers))
	for i := range tbl.Grid {
		tbl.Grid[i] = colWidth
	}

	// Header row
	headerRow := tbl.AddRow(0, &style.RowStyle{IsHeader: true})
	for _, title := range headers {
		headerRow.AddCell(colWidth, &style.CellStyle{
			Shading: &style.Shading{Fill: "4472C4"},
		}).AddText(title, &style.FontStyle{Bold: true, Size: 10, Color: "FFFFFF"}, nil)
	}

	// Data rows
	for _, rowData := range rows {
		row := tbl.AddRow(0, nil)
		for i := 0; i < len(headers) && i < len(rowData); i++ {
			row.AddCell(colWidth, nil).AddText(rowData[i], &style.FontStyle{Size: 10}, nil)
		}
	}
}
