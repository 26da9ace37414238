package export

import "github.com/ZehnMilliarden/python-pptx/render"

// SampleShape is one entry of the shape gallery.
type SampleShape struct {
	Label string
	Kind  render.ShapeKind
	Color string // ARGB
}

// SampleTable is the demo product table.
type SampleTable struct {
	Headers []string
	Rows    [][]string
}

// SampleSeries is one named value series of the demo chart.
type SampleSeries struct {
	Name   string
	Values []float64
	Color  string // ARGB
}

// SampleChart is the demo quarterly chart.
type SampleChart struct {
	Title      string
	Categories []string
	Series     []SampleSeries
}

// SampleDeckContent holds the fixed demo content shared by the deck, the
// workbook, the document and the report generators. All fields are
// read-only fixture data.
type SampleDeckContent struct {
	DeckTitle  string
	DeckCredit string

	FeatureTitle string
	FeatureLead  string
	Features     []string

	ShapesTitle string
	Shapes      []SampleShape

	TableTitle string
	Table      SampleTable

	ChartTitle string
	Chart      SampleChart

	ImageNoteTitle string
	ImageNote      string
	ImageHintBig   string
	ImageHintSmall string

	MemoryTitle   string
	MemoryLabel   string
	MemoryCaption string
}

// DefaultSampleContent returns the canonical demo fixture.
func DefaultSampleContent() SampleDeckContent {
	return SampleDeckContent{
		DeckTitle:  "使用Go创建PowerPoint演示文稿",
		DeckCredit: "GoPPT 示例",

		FeatureTitle: "GoPPT 主要功能",
		FeatureLead:  "GoPPT 库可以：",
		Features: []string{
			"创建新的 PowerPoint 演示文稿",
			"添加和格式化文本内容",
			"添加各种形状和图表",
			"添加表格和图片",
			"读取和修改现有的演示文稿",
		},

		ShapesTitle: "各种形状演示",
		Shapes: []SampleShape{
			{Label: "矩形", Kind: render.ShapeRectangle, Color: "FFFF0000"},
			{Label: "椭圆", Kind: render.ShapeEllipse, Color: "FF00FF00"},
			{Label: "五角星", Kind: render.ShapeStar, Color: "FFFFFF00"},
			{Label: "心形", Kind: render.ShapeHeart, Color: "FFFF00FF"},
		},

		TableTitle: "表格演示",
		Table: SampleTable{
			Headers: []string{"产品", "季度销售额", "年度增长率"},
			Rows: [][]string{
				{"产品 A", "¥10,000", "+15%"},
				{"产品 B", "¥8,500", "+10%"},
				{"产品 C", "¥12,750", "+20%"},
			},
		},

		ChartTitle: "图表演示",
		Chart: SampleChart{
			Title:      "季度销售额对比",
			Categories: []string{"一季度", "二季度", "三季度", "四季度"},
			Series: []SampleSeries{
				{Name: "2024年", Values: []float64{8.5, 10.2, 12.5, 9.8}, Color: "FF4F81BD"},
				{Name: "2025年", Values: []float64{10.2, 11.5, 13.8, 11.2}, Color: "FFC0504D"},
			},
		},

		ImageNoteTitle: "图片示例",
		ImageNote:      "注意: 要添加图片，您需要有一个实际的图片文件",
		ImageHintBig:   "使用 CreateDrawingShape 方法添加图片",
		ImageHintSmall: "可以指定图片位置和大小",

		MemoryTitle:   "内存图片示例",
		MemoryLabel:   "内存中生成的图片",
		MemoryCaption: "使用bytes.Buffer和image库在内存中生成并添加图片",
	}
}
