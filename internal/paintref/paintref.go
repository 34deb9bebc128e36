// Package paintref is a reference implementation of the external
// Painter boundary: it rasterizes a layout.DisplayItem list onto an
// image.RGBA canvas. It exists to prove the display list is usable,
// not as the engine's only renderer — any painter that consumes the
// same DisplayItem slice is equally valid per spec.md §6.
//
// Grounded on the teacher's render/render.go Canvas type (FillRect,
// DrawStyledText) and render/font.go's use of
// golang.org/x/image/font/basicfont, narrowed to the one font face the
// teacher's layout math already assumes (a fixed monospace cell, see
// constants.CharWidth/CharHeightWithPadding) rather than the teacher's
// full font-family/weight/style matching, which spec.md's
// ComputedStyle has no properties to drive.
package paintref

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"tinybrowser/layout"
)

// Canvas is a fixed-size rasterization surface.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a Canvas of the given size, filled white.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// Paint rasterizes items onto the canvas in order — later items paint
// over earlier ones, matching the display list's own ordering
// contract.
func (c *Canvas) Paint(items []layout.DisplayItem) {
	for _, item := range items {
		switch item.Kind {
		case layout.RectItem:
			c.fillRect(item)
		case layout.TextItem:
			c.drawText(item)
		}
	}
}

func (c *Canvas) fillRect(item layout.DisplayItem) {
	bg := item.Style.BackgroundColor
	col := color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 255}
	rect := image.Rect(
		int(item.Point.X), int(item.Point.Y),
		int(item.Point.X+item.Size.W), int(item.Point.Y+item.Size.H),
	)
	draw.Draw(c.img, rect, image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) drawText(item layout.DisplayItem) {
	fg := item.Style.Color
	col := color.RGBA{R: fg.R, G: fg.G, B: fg.B, A: 255}
	face := basicfont.Face7x13

	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(int(item.Point.X)),
			Y: fixed.I(int(item.Point.Y) + face.Ascent),
		},
	}
	drawer.DrawString(item.Text)
}

// Image returns the rasterized result.
func (c *Canvas) Image() *image.RGBA { return c.img }

// SavePNG writes the canvas out as a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, c.img)
}
