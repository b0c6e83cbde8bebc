package plotter

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// captionBand is the strip at the bottom of the chart that BuildChart keeps free
	// for the caption.
	captionBand   = 18
	captionMargin = 8
	captionPad    = 4
	ellipsis      = "..."
)

var (
	captionFace = basicfont.Face7x13
	captionBg   = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 255}
	captionInk  = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
)

// drawCaption writes text into the bottom caption band of a rendered chart. Text wider
// than the image is shortened with an ellipsis.
func drawCaption(img image.Image, text string) image.Image {
	text = strings.TrimSpace(text)
	if img == nil || text == "" {
		return img
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)

	d := &font.Drawer{Dst: out, Src: image.NewUniform(captionInk), Face: captionFace}
	text = fitCaption(d, text, b.Dx()-2*(captionMargin+captionPad))
	if text == "" {
		return out
	}
	band := image.Rect(b.Min.X, b.Max.Y-captionBand, b.Max.X, b.Max.Y)
	box := image.Rect(
		b.Min.X+captionMargin, band.Min.Y+1,
		b.Min.X+captionMargin+d.MeasureString(text).Ceil()+2*captionPad, band.Max.Y-1,
	).Intersect(band)
	draw.Draw(out, box, image.NewUniform(captionBg), image.Point{}, draw.Over)

	m := captionFace.Metrics()
	baseline := band.Min.Y + (captionBand+m.Ascent.Ceil()-m.Descent.Ceil())/2
	d.Dot = fixed.P(box.Min.X+captionPad, baseline)
	d.DrawString(text)
	return out
}

// fitCaption trims text rune by rune until it plus an ellipsis fits in maxWidth pixels.
// It returns "" when not even the ellipsis fits.
func fitCaption(d *font.Drawer, text string, maxWidth int) string {
	if d.MeasureString(text).Ceil() <= maxWidth {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		s := strings.TrimRight(string(runes), " ") + ellipsis
		if d.MeasureString(s).Ceil() <= maxWidth {
			return s
		}
	}
	return ""
}
