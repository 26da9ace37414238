package export

import (
	"bytes"
	"fmt"

	gospreadsheet "github.com/VantageDataChat/GoExcel"
)

// ExcelService generates the companion workbook using GoExcel (pure Go)
type ExcelService struct{}

// NewExcelService creates a new Excel service
func NewExcelService() *ExcelService {
	return &ExcelService{}
}

// GenerateSampleWorkbook writes the sample table and the quarterly chart
// numbers into a two-sheet workbook and returns the XLSX bytes.
func (s *ExcelService) GenerateSampleWorkbook(content SampleDeckContent) ([]byte, error) {
	if len(content.Table.Headers) == 0 {
		return nil, fmt.Errorf("no table data to export")
	}

	wb := gospreadsheet.New()

	// 第一个工作表: 产品表格
	tableSheet := wb.GetActiveSheet()
	tableSheet.SetTitle("产品销售")

	tableRows := make([][]interface{}, 0, len(content.Table.Rows))
	for _, row := range content.Table.Rows {
		cells := make([]interface{}, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		tableRows = append(tableRows, cells)
	}
	s.writeSheet(tableSheet, content.Table.Headers, tableRows)

	// 第二个工作表: 季度图表数据
	chartSheet, err := wb.AddSheet("季度数据")
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet 季度数据: %w", err)
	}

	chartHeaders := make([]string, 0, len(content.Chart.Series)+1)
	chartHeaders = append(chartHeaders, "季度")
	for _, sr := range content.Chart.Series {
		chartHeaders = append(chartHeaders, sr.Name)
	}

	chartRows := make([][]interface{}, 0, len(content.Chart.Categories))
	for ci, cat := range content.Chart.Categories {
		cells := make([]interface{}, 0, len(chartHeaders))
		cells = append(cells, cat)
		for _, sr := range content.Chart.Series {
			if ci < len(sr.Values) {
				cells = append(cells, sr.Values[ci])
			} else {
				cells = append(cells, 0.0)
			}
		}
		chartRows = append(chartRows, cells)
	}
	s.writeSheet(chartSheet, chartHeaders, chartRows)

	// Add metadata
	wb.Properties.Title = "GoPPT 示例数据"
	wb.Properties.Creator = content.DeckCredit
	wb.Properties.Description = "演示文稿示例的配套数据"
	wb.Properties.Subject = "示例数据"
	wb.Properties.Keywords = "示例,演示文稿,Excel"
	wb.Properties.Category = "示例"
	wb.Properties.LastModifiedBy = content.DeckCredit

	// Save to bytes
	var buf bytes.Buffer
	writer := gospreadsheet.NewXLSXWriter()
	if err := writer.Write(wb, &buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buf.Bytes(), nil
}

// writeSheet writes one header row plus data rows with the shared styling.
func (s *ExcelService) writeSheet(ws *gospreadsheet.Worksheet, headers []string, rows [][]interface{}) {
	// Header style
	headerStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Bold:  true,
			Size:  11,
			Color: "FFFFFF",
			Name:  "Microsoft YaHei",
		}).
		SetFill(&gospreadsheet.Fill{
			Type:  "solid",
			Color: "4472C4",
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignCenter,
			Vertical:   gospreadsheet.AlignMiddle,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
		})

	// Data style
	dataStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Size: 10,
			Name: "Microsoft YaHei",
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignLeft,
			Vertical:   gospreadsheet.AlignMiddle,
			WrapText:   true,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
		})

	// Write headers
	for i, title := range headers {
		cellName, _ := gospreadsheet.CellName(0, i)
		ws.SetCellValue(cellName, title)
		ws.SetCellStyle(cellName, headerStyle)

		// Set column width
		runeLen := len([]rune(title))
		width := float64(runeLen) * 2.5
		if width < 12 {
			width = 12
		}
		if width > 60 {
			width = 60
		}
		ws.SetColumnWidth(i, width)
	}

	// Set header row height
	ws.SetRowHeight(0, 25)

	// Write data rows
	for rowIdx, rowData := range rows {
		excelRow := rowIdx + 1

		for colIdx := 0; colIdx < len(headers) && colIdx < len(rowData); colIdx++ {
			cellName, _ := gospreadsheet.CellName(excelRow, colIdx)
			ws.SetCellValue(cellName, rowData[colIdx])
			ws.SetCellStyle(cellName, dataStyle)
		}

		ws.SetRowHeight(excelRow, 20)
	}

	// Freeze header row
	ws.FreezePane("A2")
}
