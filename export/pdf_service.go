package export

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ZehnMilliarden/python-pptx/render"
)

// PDFService generates the companion report using maroto
type PDFService struct{}

// NewPDFService creates a new PDF service
func NewPDFService() *PDFService {
	return &PDFService{}
}

// GenerateSampleReport writes the deck content as a one-page PDF report with
// the capability list, the product table and the rendered chart picture.
func (s *PDFService) GenerateSampleReport(content SampleDeckContent) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithDefaultFont(&props.Font{
			Family: fontfamily.Arial,
			Size:   10,
		}).
		Build()

	m := maroto.New(cfg)

	s.addHeader(m, content.DeckTitle)
	s.addFeatures(m, content)
	s.addTable(m, content.Table)
	if err := s.addChart(m, content.Chart); err != nil {
		return nil, err
	}
	s.addFooter(m)

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return document.GetBytes(), nil
}

// addHeader adds the report header
func (s *PDFService) addHeader(m core.Maroto, title string) {
	m.AddRow(20,
		col.New(12).Add(
			text.New(title, props.Text{
				Family: fontfamily.Arial,
				Size:   18,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Color:  &props.Color{Red: 59, Green: 130, Blue: 246},
			}),
		),
	)

	// Add timestamp
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	m.AddRow(8,
		col.New(12).Add(
			text.New(fmt.Sprintf("生成时间: %s", timestamp), props.Text{
				Family: fontfamily.Arial,
				Size:   9,
				Align:  align.Center,
				Color:  &props.Color{Red: 100, Green: 116, Blue: 139},
			}),
		),
	)

	// Add spacing
	m.AddRow(5)
}

// addFeatures adds the capability list section
func (s *PDFService) addFeatures(m core.Maroto, content SampleDeckContent) {
	m.AddRow(8,
		col.New(12).Add(
			text.New(content.FeatureTitle, props.Text{
				Family: fontfamily.Arial,
				Size:   12,
				Style:  fontstyle.Bold,
			}),
		),
	)

	m.AddRow(7,
		col.New(12).Add(
			text.New(content.FeatureLead, props.Text{
				Family: fontfamily.Arial,
				Size:   10,
			}),
		),
	)

	for _, feature := range content.Features {
		m.AddRow(6,
			col.New(12).Add(
				text.New("• "+feature, props.Text{
					Family: fontfamily.Arial,
					Size:   9,
					Left:   4,
				}),
			),
		)
	}

	m.AddRow(5)
}

// addTable adds the product table section
func (s *PDFService) addTable(m core.Maroto, table SampleTable) {
	if len(table.Headers) == 0 {
		return
	}

	m.AddRow(8,
		col.New(12).Add(
			text.New("表格数据", props.Text{
				Family: fontfamily.Arial,
				Size:   12,
				Style:  fontstyle.Bold,
			}),
		),
	)

	colWidth := 12 / len(table.Headers)

	// Add table header
	headerCols := []core.Col{}
	for _, title := range table.Headers {
		headerCols = append(headerCols, col.New(colWidth).Add(
			text.New(title, props.Text{
				Family: fontfamily.Arial,
				Size:   9,
				Style:  fontstyle.Bold,
				Align:  align.Center,
			}),
		))
	}
	m.AddRow(7, headerCols...)

	// Add table rows
	for _, rowData := range table.Rows {
		dataCols := []core.Col{}
		for i := 0; i < len(table.Headers) && i < len(rowData); i++ {
			dataCols = append(dataCols, col.New(colWidth).Add(
				text.New(rowData[i], props.Text{
					Family: fontfamily.Arial,
					Size:   8,
					Align:  align.Center,
				}),
			))
		}
		m.AddRow(6, dataCols...)
	}

	m.AddRow(5)
}

// addChart paints the column chart and embeds it as a picture
func (s *PDFService) addChart(m core.Maroto, chart SampleChart) error {
	if len(chart.Series) == 0 || len(chart.Categories) == 0 {
		return nil
	}

	series := make([]render.ChartSeries, 0, len(chart.Series))
	for _, sr := range chart.Series {
		series = append(series, render.ChartSeries{
			Name:   sr.Name,
			Values: sr.Values,
			Color:  argbRGBA(sr.Color),
		})
	}

	imgBytes, err := render.ColumnChart{
		Width:      900,
		Height:     500,
		Categories: chart.Categories,
		Series:     series,
	}.Render()
	if err != nil {
		return fmt.Errorf("failed to paint column chart: %w", err)
	}

	m.AddRow(8,
		col.New(12).Add(
			text.New(chart.Title, props.Text{
				Family: fontfamily.Arial,
				Size:   12,
				Style:  fontstyle.Bold,
			}),
		),
	)

	// Add image (auto-fit to page width)
	m.AddRow(80,
		col.New(12).Add(
			image.NewFromBytes(imgBytes, extension.Png),
		),
	)

	m.AddRow(5)
	return nil
}

// addFooter adds the report footer
func (s *PDFService) addFooter(m core.Maroto) {
	m.AddRow(10,
		col.New(12).Add(
			text.New("由 GoPPT 示例程序生成", props.Text{
				Family: fontfamily.Arial,
				Size:   8,
				Align:  align.Center,
				Color:  &props.Color{Red: 148, Green: 163, Blue: 184},
			}),
		),
	)
}
