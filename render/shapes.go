package render

import (
	"image"
	"image/color"
)

// ShapeKind identifies a gallery shape.
type ShapeKind int

const (
	ShapeRectangle ShapeKind = iota
	ShapeEllipse
	ShapeStar
	ShapeHeart
)

// PlacedShape is one gallery entry with its pixel placement.
type PlacedShape struct {
	Kind       ShapeKind
	Color      color.RGBA
	X, Y, W, H int
}

// ShapeGallery paints the placed shapes onto a white canvas and returns
// the PNG bytes.
func ShapeGallery(width, height int, shapes []PlacedShape) ([]byte, error) {
	c := NewCanvas(width, height, colorWhite)
	for _, s := range shapes {
		switch s.Kind {
		case ShapeRectangle:
			c.FillRect(image.Rect(s.X, s.Y, s.X+s.W, s.Y+s.H), s.Color)
		case ShapeEllipse:
			c.FillEllipse(s.X, s.Y, s.W, s.H, s.Color)
		case ShapeStar:
			c.FillStar(s.X, s.Y, s.W, s.H, 5, s.Color)
		case ShapeHeart:
			c.FillHeart(s.X, s.Y, s.W, s.H, s.Color)
		}
	}
	return c.EncodePNG()
}

// Fixed size of the in-memory demo bitmap.
const (
	MemoryPictureWidth  = 500
	MemoryPictureHeight = 300
)

// MemoryPicture draws the in-memory demo bitmap: a white ground with a blue
// outer frame, a light blue inner rectangle with a dark blue border, and a
// centered black label.
func MemoryPicture(label string) ([]byte, error) {
	blue := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	lightBlue := color.RGBA{R: 173, G: 216, B: 230, A: 255}
	darkBlue := color.RGBA{R: 0, G: 0, B: 139, A: 255}
	black := color.RGBA{A: 255}

	c := NewCanvas(MemoryPictureWidth, MemoryPictureHeight, colorWhite)
	c.StrokeRect(image.Rect(20, 20, MemoryPictureWidth-20, MemoryPictureHeight-20), blue, 5)

	inner := image.Rect(100, 100, 400, 200)
	c.FillRect(inner, lightBlue)
	c.StrokeRect(inner, darkBlue, 2)
	c.DrawCenteredLabel(label, labelFace(18), black, inner)

	return c.EncodePNG()
}
