package paintref

import (
	"image/color"
	"testing"

	"tinybrowser/css"
	"tinybrowser/layout"
	"tinybrowser/style"
)

func TestFillRectPaintsBackgroundColor(t *testing.T) {
	c := NewCanvas(100, 100)
	items := []layout.DisplayItem{
		{
			Kind:  layout.RectItem,
			Style: style.ComputedStyle{BackgroundColor: css.RGB{R: 200, G: 0, B: 0}},
			Point: layout.Point{X: 10, Y: 10},
			Size:  layout.Size{W: 20, H: 20},
		},
	}
	c.Paint(items)

	got := c.Image().RGBAAt(15, 15)
	want := color.RGBA{R: 200, G: 0, B: 0, A: 255}
	if got != want {
		t.Errorf("pixel at (15,15) = %+v, want %+v", got, want)
	}

	outside := c.Image().RGBAAt(5, 5)
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if outside != white {
		t.Errorf("pixel outside rect = %+v, want white", outside)
	}
}

func TestDrawTextDoesNotPanicAndStaysInBounds(t *testing.T) {
	c := NewCanvas(200, 50)
	items := []layout.DisplayItem{
		{
			Kind:  layout.TextItem,
			Style: style.ComputedStyle{Color: css.RGB{R: 0, G: 0, B: 0}},
			Point: layout.Point{X: 0, Y: 0},
			Text:  "hi",
		},
	}
	c.Paint(items)

	bounds := c.Image().Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 50 {
		t.Errorf("canvas resized unexpectedly: %v", bounds)
	}
}

func TestPaintOrderLaterItemsWinOverlap(t *testing.T) {
	c := NewCanvas(50, 50)
	items := []layout.DisplayItem{
		{Kind: layout.RectItem, Style: style.ComputedStyle{BackgroundColor: css.RGB{R: 255}}, Point: layout.Point{X: 0, Y: 0}, Size: layout.Size{W: 30, H: 30}},
		{Kind: layout.RectItem, Style: style.ComputedStyle{BackgroundColor: css.RGB{B: 255}}, Point: layout.Point{X: 0, Y: 0}, Size: layout.Size{W: 30, H: 30}},
	}
	c.Paint(items)

	got := c.Image().RGBAAt(10, 10)
	want := color.RGBA{B: 255, A: 255}
	if got != want {
		t.Errorf("overlap pixel = %+v, want the later (blue) rect to win", got)
	}
}
