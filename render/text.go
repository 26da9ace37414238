package render

import (
	"image"
	"image/color"
	"sync"

	ppt "github.com/VantageDataChat/GoPPT"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// labelFaceNames are tried in order when resolving a label face. The list
// covers the common CJK-capable system fonts on Windows, macOS and Linux,
// with Latin fonts as a tail.
var labelFaceNames = []string{
	"Microsoft YaHei", "SimHei", "SimSun",
	"PingFang SC", "Noto Sans CJK SC", "Noto Sans SC", "WenQuanYi Micro Hei",
	"Arial", "DejaVu Sans",
}

var (
	fontCacheOnce sync.Once
	fontCache     *ppt.FontCache
)

// labelFace resolves a font face of the given pixel size for picture
// labels. System fonts are loaded through the GoPPT font cache; when none
// is found the fixed-size basicfont face is used (ASCII coverage only).
func labelFace(sizePx float64) font.Face {
	fontCacheOnce.Do(func() {
		fontCache = ppt.NewFontCache()
	})
	for _, name := range labelFaceNames {
		if face := fontCache.GetFace(name, sizePx, false, false); face != nil {
			return face
		}
	}
	return basicfont.Face7x13
}

// DrawCenteredLabel draws text centered inside rect.
func (c *Canvas) DrawCenteredLabel(text string, face font.Face, col color.RGBA, rect image.Rectangle) {
	if text == "" || face == nil {
		return
	}
	tw := font.MeasureString(face, text).Ceil()
	m := face.Metrics()
	th := (m.Ascent + m.Descent).Ceil()
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(rect.Min.X+(rect.Dx()-tw)/2, rect.Min.Y+(rect.Dy()-th)/2+m.Ascent.Ceil()),
	}
	d.DrawString(text)
}

// DrawLabel draws text with its baseline start at (x, y).
func (c *Canvas) DrawLabel(text string, face font.Face, col color.RGBA, x, y int) {
	if text == "" || face == nil {
		return
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// DrawLabelRight draws text right-aligned so it ends at (x, y).
func (c *Canvas) DrawLabelRight(text string, face font.Face, col color.RGBA, x, y int) {
	if text == "" || face == nil {
		return
	}
	tw := font.MeasureString(face, text).Ceil()
	c.DrawLabel(text, face, col, x-tw, y)
}
