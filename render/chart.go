package render

import (
	"errors"
	"image"
	"image/color"
	"strconv"

	"golang.org/x/image/font"
)

// ChartSeries is one named value series of a chart picture.
type ChartSeries struct {
	Name   string
	Values []float64
	Color  color.RGBA
}

// ColumnChart describes a clustered column chart picture: one bar per
// series inside each category cluster, a value axis with gridlines and a
// legend band at the top.
type ColumnChart struct {
	Width      int
	Height     int
	Categories []string
	Series     []ChartSeries
}

var (
	chartAxisColor  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	chartGridColor  = color.RGBA{R: 226, G: 232, B: 240, A: 255}
	chartLabelColor = color.RGBA{R: 71, G: 85, B: 105, A: 255}
)

// Render paints the chart and returns the PNG bytes.
func (cc ColumnChart) Render() ([]byte, error) {
	if len(cc.Series) == 0 || len(cc.Categories) == 0 {
		return nil, errors.New("column chart needs at least one series and one category")
	}

	w, h := cc.Width, cc.Height
	if w <= 0 {
		w = 900
	}
	if h <= 0 {
		h = 500
	}
	c := NewCanvas(w, h, colorWhite)

	const (
		legendH      = 34
		marginLeft   = 64
		marginRight  = 24
		marginBottom = 44
	)
	plotX := marginLeft
	plotY := legendH + 10
	plotW := w - marginLeft - marginRight
	plotH := h - plotY - marginBottom
	if plotW < 10 || plotH < 10 {
		return nil, errors.New("column chart area too small")
	}

	maxVal := 0.0
	for _, s := range cc.Series {
		for _, v := range s.Values {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	step := niceStep(maxVal)
	top := step
	for top < maxVal {
		top += step
	}

	// Gridlines and value ticks
	tickFace := labelFace(13)
	for v := 0.0; v <= top+step/2; v += step {
		y := plotY + plotH - int(float64(plotH)*v/top)
		if v > 0 {
			c.DrawLine(plotX, y, plotX+plotW, y, chartGridColor)
		}
		c.DrawLabelRight(formatTick(v), tickFace, chartLabelColor, plotX-8, y+4)
	}

	// Axes
	c.DrawLine(plotX, plotY+plotH, plotX+plotW, plotY+plotH, chartAxisColor)
	c.DrawLine(plotX, plotY, plotX, plotY+plotH, chartAxisColor)

	// Bars
	nCats := len(cc.Categories)
	nSeries := len(cc.Series)
	catW := plotW / nCats
	barW := catW / (nSeries + 1)
	if barW < 1 {
		barW = 1
	}
	for ci := range cc.Categories {
		for si, s := range cc.Series {
			v := 0.0
			if ci < len(s.Values) {
				v = s.Values[ci]
			}
			barH := int(float64(plotH) * v / top)
			bx := plotX + ci*catW + (si+1)*barW - barW/2
			by := plotY + plotH - barH
			c.FillRect(image.Rect(bx, by, bx+barW-1, plotY+plotH), s.Color)
		}
	}

	// Category labels
	catFace := labelFace(15)
	for ci, cat := range cc.Categories {
		cell := image.Rect(plotX+ci*catW, plotY+plotH+8, plotX+(ci+1)*catW, h-8)
		c.DrawCenteredLabel(cat, catFace, chartLabelColor, cell)
	}

	cc.drawLegend(c, w)
	return c.EncodePNG()
}

// drawLegend draws the series swatches and names centered in the top band.
func (cc ColumnChart) drawLegend(c *Canvas, width int) {
	face := labelFace(14)
	const (
		swatch = 12
		gap    = 6
		pad    = 26
	)
	total := 0
	widths := make([]int, len(cc.Series))
	for i, s := range cc.Series {
		widths[i] = swatch + gap + font.MeasureString(face, s.Name).Ceil()
		total += widths[i]
		if i > 0 {
			total += pad
		}
	}

	x := (width - total) / 2
	y := 10
	for i, s := range cc.Series {
		c.FillRect(image.Rect(x, y, x+swatch, y+swatch), s.Color)
		c.DrawLabel(s.Name, face, chartLabelColor, x+swatch+gap, y+swatch-1)
		x += widths[i] + pad
	}
}

// niceStep picks a 1/2/5-ladder tick step so the axis gets about four ticks.
func niceStep(max float64) float64 {
	if max <= 0 {
		return 1
	}
	raw := max / 4
	mag := 1.0
	for raw >= 10 {
		raw /= 10
		mag *= 10
	}
	for raw < 1 {
		raw *= 10
		mag /= 10
	}
	switch {
	case raw <= 1:
		return mag
	case raw <= 2:
		return 2 * mag
	case raw <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
