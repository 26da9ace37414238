package export

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"
	"time"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/ZehnMilliarden/python-pptx/render"
)

// PPTService generates the sample slide deck using GoPPT (pure Go).
type PPTService struct{}

// NewPPTService creates a new PPT service
func NewPPTService() *PPTService {
	return &PPTService{}
}

// PPT布局常量 - 16:9宽屏比例
const (
	emuPerInch = 914400

	// 页面边距 (EMU)
	deckMarginLeft = int64(0.4 * emuPerInch)

	// 内容区域 (EMU)
	deckContentWidth = int64(9.2 * emuPerInch)
	deckSlideWidth   = int64(10.0 * emuPerInch)

	// 字体大小 (pt)
	deckFontTitle     = 36
	deckFontHeading   = 28
	deckFontSubtitle  = 20
	deckFontLead      = 16
	deckFontBody      = 14
	deckFontTableHead = 14
	deckFontTableCell = 12
	deckFontSmall     = 12
)

// helper: create a solid fill
func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

// helper: set paragraph alignment to center
func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// helper: ARGB string to color.RGBA for the picture painters
func argbRGBA(argb string) color.RGBA {
	c := ppt.NewColor(argb)
	return color.RGBA{R: c.GetRed(), G: c.GetGreen(), B: c.GetBlue(), A: c.GetAlpha()}
}

// GenerateSampleDeck builds the seven-slide sample presentation and returns
// the serialized PPTX bytes. Slide order: title, features, shapes, table,
// chart, image note, in-memory image.
func (s *PPTService) GenerateSampleDeck(content SampleDeckContent) ([]byte, error) {
	p := ppt.New()
	p.GetDocumentProperties().Title = content.DeckTitle
	p.GetDocumentProperties().Creator = content.DeckCredit

	s.addTitleSlide(p, content)
	s.addFeatureSlide(p, content)
	if err := s.addShapesSlide(p, content); err != nil {
		return nil, err
	}
	s.addTableSlide(p, content)
	if err := s.addChartSlide(p, content); err != nil {
		return nil, err
	}
	s.addImageNoteSlide(p, content)
	if err := s.addMemoryImageSlide(p, content); err != nil {
		return nil, err
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPT writer: %w", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}

	return buf.Bytes(), nil
}

// addTitleSlide fills the initial slide with the deck title and subtitle.
func (s *PPTService) addTitleSlide(p *ppt.Presentation, content SampleDeckContent) {
	slide := p.GetActiveSlide()

	// 顶部蓝色装饰条
	topBar := slide.CreateRichTextShape()
	topBar.SetOffsetX(0).SetOffsetY(0)
	topBar.SetWidth(deckSlideWidth).SetHeight(int64(0.15 * emuPerInch))
	topBar.SetFill(solidFill("FF3B82F6"))

	// Title text
	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(deckMarginLeft).SetOffsetY(int64(1.5 * emuPerInch))
	titleShape.SetWidth(deckContentWidth).SetHeight(int64(1.0 * emuPerInch))
	tr := titleShape.CreateTextRun(content.DeckTitle)
	tr.GetFont().SetSize(deckFontTitle).SetBold(true).SetColor(ppt.NewColor("FF1E40AF"))
	alignCenter(titleShape.GetActiveParagraph())

	// Subtitle: creation date plus library credit
	subShape := slide.CreateRichTextShape()
	subShape.SetOffsetX(int64(1.0 * emuPerInch)).SetOffsetY(int64(2.8 * emuPerInch))
	subShape.SetWidth(int64(8.0 * emuPerInch)).SetHeight(int64(1.0 * emuPerInch))

	dateTr := subShape.CreateTextRun(fmt.Sprintf("创建于 %s", time.Now().Format("2006-01-02")))
	dateTr.GetFont().SetSize(deckFontSubtitle).SetColor(ppt.NewColor("FF475569"))
	alignCenter(subShape.GetActiveParagraph())

	subShape.CreateParagraph()
	creditTr := subShape.CreateTextRun(content.DeckCredit)
	creditTr.GetFont().SetSize(deckFontSubtitle).SetColor(ppt.NewColor("FF475569"))
	alignCenter(subShape.GetActiveParagraph())

	// 底部蓝色装饰条
	bottomBar := slide.CreateRichTextShape()
	bottomBar.SetOffsetX(0).SetOffsetY(int64(5.5 * emuPerInch))
	bottomBar.SetWidth(deckSlideWidth).SetHeight(int64(0.125 * emuPerInch))
	bottomBar.SetFill(solidFill("FF3B82F6"))
}

// addSlideHeader adds a consistent header to content slides
func (s *PPTService) addSlideHeader(slide *ppt.Slide, title string) {
	// 顶部蓝色装饰条
	topBar := slide.CreateRichTextShape()
	topBar.SetOffsetX(0).SetOffsetY(0)
	topBar.SetWidth(deckSlideWidth).SetHeight(int64(0.08 * emuPerInch))
	topBar.SetFill(solidFill("FF3B82F6"))

	// Title
	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(deckMarginLeft).SetOffsetY(int64(0.3 * emuPerInch))
	titleShape.SetWidth(deckContentWidth).SetHeight(int64(0.6 * emuPerInch))
	tr := titleShape.CreateTextRun(title)
	tr.GetFont().SetSize(deckFontHeading).SetBold(true).SetColor(ppt.NewColor("FF1E40AF"))
}

// addFeatureSlide adds the bulleted capability list.
func (s *PPTService) addFeatureSlide(p *ppt.Presentation, content SampleDeckContent) {
	slide := p.CreateSlide()
	s.addSlideHeader(slide, content.FeatureTitle)

	contentShape := slide.CreateRichTextShape()
	contentShape.SetOffsetX(deckMarginLeft).SetOffsetY(int64(1.2 * emuPerInch))
	contentShape.SetWidth(deckContentWidth).SetHeight(int64(3.8 * emuPerInch))

	leadTr := contentShape.CreateTextRun(content.FeatureLead)
	leadTr.GetFont().SetSize(deckFontLead).SetColor(ppt.NewColor("FF334155"))

	for _, feature := range content.Features {
		contentShape.CreateParagraph()
		tr := contentShape.CreateTextRun("  • " + feature)
		tr.GetFont().SetSize(deckFontBody).SetColor(ppt.NewColor("FF334155"))
	}
}

// addShapesSlide paints the shape gallery picture and embeds it.
func (s *PPTService) addShapesSlide(p *ppt.Presentation, content SampleDeckContent) error {
	slide := p.CreateSlide()
	s.addSlideHeader(slide, content.ShapesTitle)

	// 画布固定 810x450 (90像素/英寸): 上排矩形和椭圆，下排五角星和心形
	placements := [][4]int{
		{45, 45, 180, 90},
		{315, 45, 180, 90},
		{180, 225, 180, 180},
		{450, 225, 180, 180},
	}
	shapes := make([]render.PlacedShape, 0, len(content.Shapes))
	labels := make([]string, 0, len(content.Shapes))
	for i, sh := range content.Shapes {
		if i >= len(placements) {
			break
		}
		pl := placements[i]
		shapes = append(shapes, render.PlacedShape{
			Kind:  sh.Kind,
			Color: argbRGBA(sh.Color),
			X:     pl[0],
			Y:     pl[1],
			W:     pl[2],
			H:     pl[3],
		})
		labels = append(labels, sh.Label)
	}

	imgBytes, err := render.ShapeGallery(810, 450, shapes)
	if err != nil {
		return fmt.Errorf("failed to paint shape gallery: %w", err)
	}

	imgShape := slide.CreateDrawingShape()
	imgShape.SetImageData(imgBytes, "image/png")
	imgShape.SetOffsetX(int64(1.4 * emuPerInch)).SetOffsetY(int64(1.05 * emuPerInch))
	imgShape.SetWidth(int64(7.2 * emuPerInch)).SetHeight(int64(4.0 * emuPerInch))

	captionShape := slide.CreateRichTextShape()
	captionShape.SetOffsetX(deckMarginLeft).SetOffsetY(int64(5.15 * emuPerInch))
	captionShape.SetWidth(deckContentWidth).SetHeight(int64(0.3 * emuPerInch))
	capTr := captionShape.CreateTextRun(strings.Join(labels, " · "))
	capTr.GetFont().SetSize(deckFontSmall).SetColor(ppt.NewColor("FF64748B"))
	alignCenter(captionShape.GetActiveParagraph())

	return nil
}

// addTableSlide adds the product table as banded rich text rows.
func (s *PPTService) addTableSlide(p *ppt.Presentation, content SampleDeckContent) {
	slide := p.CreateSlide()
	s.addSlideHeader(slide, content.TableTitle)

	tableX := int64(2.0 * emuPerInch)
	tableWidth := int64(6.0 * emuPerInch)
	headerY := 1.4
	headerHeight := 0.45
	rowHeight := 0.4

	// 表头
	headerShape := slide.CreateRichTextShape()
	headerShape.SetOffsetX(tableX).SetOffsetY(int64(headerY * emuPerInch))
	headerShape.SetWidth(tableWidth).SetHeight(int64(headerHeight * emuPerInch))
	headerShape.SetFill(solidFill("FF3B82F6"))

	headerTr := headerShape.CreateTextRun(strings.Join(content.Table.Headers, "    │    "))
	headerTr.GetFont().SetSize(deckFontTableHead).SetBold(true).SetColor(ppt.ColorWhite)
	alignCenter(headerShape.GetActiveParagraph())

	// 数据行，交替底色
	currentY := headerY + headerHeight
	for rowIdx, row := range content.Table.Rows {
		rowShape := slide.CreateRichTextShape()
		rowShape.SetOffsetX(tableX).SetOffsetY(int64(currentY * emuPerInch))
		rowShape.SetWidth(tableWidth).SetHeight(int64(rowHeight * emuPerInch))

		if rowIdx%2 == 0 {
			rowShape.SetFill(solidFill("FFF8FAFC"))
		} else {
			rowShape.SetFill(solidFill("FFF1F5F9"))
		}

		rowTr := rowShape.CreateTextRun(strings.Join(row, "    │    "))
		rowTr.GetFont().SetSize(deckFontTableCell).SetColor(ppt.NewColor("FF334155"))
		alignCenter(rowShape.GetActiveParagraph())

		currentY += rowHeight
	}
}

// addChartSlide paints the clustered column chart picture and embeds it.
func (s *PPTService) addChartSlide(p *ppt.Presentation, content SampleDeckContent) error {
	slide := p.CreateSlide()
	s.addSlideHeader(slide, content.ChartTitle)

	series := make([]render.ChartSeries, 0, len(content.Chart.Series))
	for _, sr := range content.Chart.Series {
		series = append(series, render.ChartSeries{
			Name:   sr.Name,
			Values: sr.Values,
			Color:  argbRGBA(sr.Color),
		})
	}

	chart := render.ColumnChart{
		Width:      900,
		Height:     500,
		Categories: content.Chart.Categories,
		Series:     series,
	}
	imgBytes, err := chart.Render()
	if err != nil {
		return fmt.Errorf("failed to paint column chart: %w", err)
	}

	// 图表标题放在图片上方
	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(deckMarginLeft).SetOffsetY(int64(1.0 * emuPerInch))
	titleShape.SetWidth(deckContentWidth).SetHeight(int64(0.4 * emuPerInch))
	titleTr := titleShape.CreateTextRun(content.Chart.Title)
	titleTr.GetFont().SetSize(deckFontLead).SetBold(true).SetColor(ppt.NewColor("FF475569"))
	alignCenter(titleShape.GetActiveParagraph())

	imgShape := slide.CreateDrawingShape()
	imgShape.SetImageData(imgBytes, "image/png")
	imgShape.SetOffsetX(int64(1.4 * emuPerInch)).SetOffsetY(int64(1.4 * emuPerInch))
	imgShape.SetWidth(int64(7.2 * emuPerInch)).SetHeight(int64(4.0 * emuPerInch))

	return nil
}

// addImageNoteSlide explains how pictures get added from files.
func (s *PPTService) addImageNoteSlide(p *ppt.Presentation, content SampleDeckContent) {
	slide := p.CreateSlide()
	s.addSlideHeader(slide, content.ImageNoteTitle)

	noteShape := slide.CreateRichTextShape()
	noteShape.SetOffsetX(deckMarginLeft).SetOffsetY(int64(1.5 * emuPerInch))
	noteShape.SetWidth(deckContentWidth).SetHeight(int64(0.5 * emuPerInch))
	noteTr := noteShape.CreateTextRun(content.ImageNote)
	noteFont := noteTr.GetFont()
	noteFont.SetSize(deckFontLead).SetColor(ppt.NewColor("FF475569"))
	noteFont.Italic = true

	hintShape := slide.CreateRichTextShape()
	hintShape.SetOffsetX(deckMarginLeft).SetOffsetY(int64(2.9 * emuPerInch))
	hintShape.SetWidth(deckContentWidth).SetHeight(int64(0.6 * emuPerInch))
	hintTr := hintShape.CreateTextRun(content.ImageHintBig)
	hintTr.GetFont().SetSize(deckFontSubtitle).SetColor(ppt.NewColor("FF334155"))
	alignCenter(hintShape.GetActiveParagraph())

	smallShape := slide.CreateRichTextShape()
	smallShape.SetOffsetX(deckMarginLeft).SetOffsetY(int64(3.6 * emuPerInch))
	smallShape.SetWidth(deckContentWidth).SetHeight(int64(0.4 * emuPerInch))
	smallTr := smallShape.CreateTextRun(content.ImageHintSmall)
	smallTr.GetFont().SetSize(deckFontLead).SetColor(ppt.NewColor("FF64748B"))
	alignCenter(smallShape.GetActiveParagraph())
}

// addMemoryImageSlide embeds the bitmap drawn in memory.
func (s *PPTService) addMemoryImageSlide(p *ppt.Presentation, content SampleDeckContent) error {
	slide := p.CreateSlide()
	s.addSlideHeader(slide, content.MemoryTitle)

	imgBytes, err := render.MemoryPicture(content.MemoryLabel)
	if err != nil {
		return fmt.Errorf("failed to paint memory picture: %w", err)
	}

	// 6 英寸宽，保持 500x300 比例
	imgWidth := 6.0
	imgHeight := imgWidth * float64(render.MemoryPictureHeight) / float64(render.MemoryPictureWidth)
	imgShape := slide.CreateDrawingShape()
	imgShape.SetImageData(imgBytes, "image/png")
	imgShape.SetOffsetX(int64(2.0 * emuPerInch)).SetOffsetY(int64(1.2 * emuPerInch))
	imgShape.SetWidth(int64(imgWidth * emuPerInch)).SetHeight(int64(imgHeight * emuPerInch))

	captionShape := slide.CreateRichTextShape()
	captionShape.SetOffsetX(deckMarginLeft).SetOffsetY(int64(4.95 * emuPerInch))
	captionShape.SetWidth(deckContentWidth).SetHeight(int64(0.4 * emuPerInch))
	capTr := captionShape.CreateTextRun(content.MemoryCaption)
	capTr.GetFont().SetSize(deckFontLead).SetColor(ppt.NewColor("FF475569"))
	alignCenter(captionShape.GetActiveParagraph())

	return nil
}
