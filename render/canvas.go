// Package render paints the fixed demo pictures (shape gallery, column
// chart, in-memory bitmap) that get embedded into the generated documents.
package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"sort"
)

var colorWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Canvas is a fixed-size RGBA drawing surface.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a canvas filled with the background color.
func NewCanvas(width, height int, background color.RGBA) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// Image returns the underlying image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// EncodePNG serializes the canvas to PNG bytes.
func (c *Canvas) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// blendPixel alpha-blends col over the pixel at (x, y).
func (c *Canvas) blendPixel(x, y int, col color.RGBA) {
	b := c.img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y || col.A == 0 {
		return
	}
	off := (y-b.Min.Y)*c.img.Stride + (x-b.Min.X)*4
	pix := c.img.Pix
	if col.A == 255 {
		pix[off] = col.R
		pix[off+1] = col.G
		pix[off+2] = col.B
		pix[off+3] = 255
		return
	}
	a := uint32(col.A)
	ia := 255 - a
	pix[off] = uint8((uint32(col.R)*a + uint32(pix[off])*ia) / 255)
	pix[off+1] = uint8((uint32(col.G)*a + uint32(pix[off+1])*ia) / 255)
	pix[off+2] = uint8((uint32(col.B)*a + uint32(pix[off+2])*ia) / 255)
	pix[off+3] = uint8(uint32(pix[off+3]) + (255-uint32(pix[off+3]))*a/255)
}

// blendPixelF blends with fractional coverage for anti-aliased edges.
func (c *Canvas) blendPixelF(x, y int, col color.RGBA, coverage float64) {
	if coverage <= 0 {
		return
	}
	if coverage >= 1 {
		c.blendPixel(x, y, col)
		return
	}
	c.blendPixel(x, y, color.RGBA{R: col.R, G: col.G, B: col.B, A: uint8(float64(col.A) * coverage)})
}

// FillRect fills rect, clipped to the canvas.
func (c *Canvas) FillRect(rect image.Rectangle, col color.RGBA) {
	rect = rect.Intersect(c.img.Bounds())
	if rect.Empty() || col.A == 0 {
		return
	}
	if col.A == 255 {
		draw.Draw(c.img, rect, &image.Uniform{col}, image.Point{}, draw.Src)
		return
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c.blendPixel(x, y, col)
		}
	}
}

// StrokeRect draws the border of rect with the given width, growing inward.
func (c *Canvas) StrokeRect(rect image.Rectangle, col color.RGBA, width int) {
	for i := 0; i < width; i++ {
		c.FillRect(image.Rect(rect.Min.X, rect.Min.Y+i, rect.Max.X, rect.Min.Y+i+1), col)
		c.FillRect(image.Rect(rect.Min.X, rect.Max.Y-1-i, rect.Max.X, rect.Max.Y-i), col)
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			c.blendPixel(rect.Min.X+i, y, col)
			c.blendPixel(rect.Max.X-1-i, y, col)
		}
	}
}

// DrawLine draws a one-pixel line between the two points.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, col color.RGBA) {
	dx := absInt(x2 - x1)
	dy := absInt(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		c.blendPixel(x1, y1, col)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// FillEllipse fills the ellipse inscribed in (x, y, w, h) with a blended edge.
func (c *Canvas) FillEllipse(x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	rx := float64(w) / 2
	ry := float64(h) / 2
	centerX := float64(x) + rx
	centerY := float64(y) + ry
	invRx2 := 1.0 / (rx * rx)
	invRy2 := 1.0 / (ry * ry)
	const edgeBand = 0.05

	for py := y; py < y+h; py++ {
		dy := float64(py) + 0.5 - centerY
		dy2 := dy * dy * invRy2
		if dy2 > 1 {
			continue
		}
		for px := x; px < x+w; px++ {
			dx := float64(px) + 0.5 - centerX
			d := dx*dx*invRx2 + dy2
			if d > 1 {
				continue
			}
			if edge := 1 - d; edge < edgeBand {
				c.blendPixelF(px, py, col, edge/edgeBand)
			} else {
				c.blendPixel(px, py, col)
			}
		}
	}
}

// FillStar fills a star with the given point count inscribed in (x, y, w, h).
func (c *Canvas) FillStar(x, y, w, h, points int, col color.RGBA) {
	cx := float64(x) + float64(w)/2
	cy := float64(y) + float64(h)/2
	outerRx := float64(w) / 2
	outerRy := float64(h) / 2
	innerRx := outerRx * 0.4
	innerRy := outerRy * 0.4

	n := points * 2
	pts := make([]point2f, n)
	for i := 0; i < n; i++ {
		angle := -math.Pi/2 + float64(i)*2*math.Pi/float64(n)
		rx, ry := outerRx, outerRy
		if i%2 == 1 {
			rx, ry = innerRx, innerRy
		}
		pts[i] = point2f{cx + rx*math.Cos(angle), cy + ry*math.Sin(angle)}
	}
	c.fillPolygon(pts, col)
}

// FillHeart fills a heart shape inscribed in (x, y, w, h) using the
// implicit curve (x²+y²-1)³ - x²y³ <= 0.
func (c *Canvas) FillHeart(x, y, w, h int, col color.RGBA) {
	cx := float64(x) + float64(w)/2
	topY := float64(y) + float64(h)*0.3
	halfW := float64(w) / 2
	vScale := float64(h) * 0.7

	for py := y; py < y+h; py++ {
		ny := 1 - (float64(py)-topY)/vScale
		ny2 := ny * ny
		ny3 := ny2 * ny
		for px := x; px < x+w; px++ {
			nx := (float64(px) - cx) / halfW
			nx2 := nx * nx
			val := nx2 + ny2 - 1
			val = val*val*val - nx2*ny3
			if val <= 0 {
				c.blendPixel(px, py, col)
			}
		}
	}
}

type point2f struct{ x, y float64 }

// fillPolygon scanline-fills the polygon described by pts.
func (c *Canvas) fillPolygon(pts []point2f, col color.RGBA) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].y, pts[0].y
	for _, p := range pts[1:] {
		if p.y < minY {
			minY = p.y
		}
		if p.y > maxY {
			maxY = p.y
		}
	}

	n := len(pts)
	xs := make([]float64, 0, n)
	for y := int(minY); y <= int(maxY); y++ {
		fy := float64(y) + 0.5
		xs = xs[:0]
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			y1, y2 := pts[i].y, pts[j].y
			if y1 > y2 {
				y1, y2 = y2, y1
			}
			if fy < y1 || fy >= y2 {
				continue
			}
			dy := pts[j].y - pts[i].y
			if dy == 0 {
				continue
			}
			t := (fy - pts[i].y) / dy
			xs = append(xs, pts[i].x+t*(pts[j].x-pts[i].x))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x1 := int(math.Ceil(xs[i]))
			x2 := int(math.Floor(xs[i+1]))
			if x1 <= x2 {
				c.FillRect(image.Rect(x1, y, x2+1, y+1), col)
			}
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
