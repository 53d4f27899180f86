package ui

import (
	"image"
	"math"

	"github.com/gotk3/gotk3/cairo"
	"github.com/ugudcode/projectmelody/piano"
)

type rgb struct{ r, g, b float64 }

func color(r, g, b uint8) rgb {
	return rgb{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

var (
	background     = color(25, 25, 30)
	whiteShadow    = color(45, 45, 50)
	whiteFill      = color(235, 235, 240)
	whitePressed   = color(200, 200, 205)
	whiteBorderTop = color(180, 180, 180)
	whiteBorderBot = color(210, 210, 210)
	whiteLabel     = color(80, 80, 85)
	blackTop       = color(20, 20, 23)
	blackBottom    = color(25, 25, 28)
	blackPressedT  = color(80, 80, 85)
	blackPressedB  = color(90, 90, 95)
)

const FONT = "Sans"

func roundedRect(cr *cairo.Context, x, y, w, h, radius float64) {
	if w <= 0 || h <= 0 {
		return
	}
	radius = math.Min(radius, math.Min(w, h)/2)
	cr.MoveTo(x+w-radius, y)
	cr.Arc(x+w-radius, y+radius, radius, -math.Pi/2, 0)
	cr.Arc(x+w-radius, y+h-radius, radius, 0, math.Pi/2)
	cr.Arc(x+radius, y+h-radius, radius, math.Pi/2, math.Pi)
	cr.Arc(x+radius, y+radius, radius, math.Pi, 3*math.Pi/2)
	cr.ClosePath()
}

func vertical(y0, y1 float64, top, bottom rgb, alphaTop, alphaBottom float64) *cairo.Pattern {
	p, err := cairo.NewPatternLinear(0, y0, 0, y1)
	if err != nil {
		return nil
	}
	p.AddColorStopRGBA(0, top.r, top.g, top.b, alphaTop)
	p.AddColorStopRGBA(1, bottom.r, bottom.g, bottom.b, alphaBottom)
	return p
}

func setSource(cr *cairo.Context, p *cairo.Pattern, fallback rgb) {
	if p == nil {
		cr.SetSourceRGB(fallback.r, fallback.g, fallback.b)
		return
	}
	cr.SetSource(p)
}

// drawKeyboard paints white keys first so that black keys always end up on top.
func drawKeyboard(cr *cairo.Context, width, height int, kb piano.Keyboard, layout *piano.Layout) {
	cr.SetSourceRGB(background.r, background.g, background.b)
	cr.Rectangle(0, 0, float64(width), float64(height))
	cr.Fill()

	for _, k := range kb {
		if !k.Black {
			drawWhiteKey(cr, k, layout.Rect(k))
		}
	}
	for _, k := range kb {
		if k.Black {
			drawBlackKey(cr, k, layout.Rect(k))
		}
	}
}

// clip restricts painting to the key rectangle, so a key never paints outside Layout.Rect.
func clip(cr *cairo.Context, x, y, w, h float64) {
	cr.Save()
	cr.Rectangle(x, y, w, h)
	cr.Clip()
}

func drawWhiteKey(cr *cairo.Context, k *piano.Key, r image.Rectangle) {
	if r.Empty() {
		return
	}
	x, y := float64(r.Min.X), float64(r.Min.Y)
	w, h := float64(r.Dx()), float64(r.Dy())
	clip(cr, x, y, w, h)
	defer cr.Restore()
	const radius = 4

	cr.SetSourceRGB(whiteShadow.r, whiteShadow.g, whiteShadow.b)
	roundedRect(cr, x+2, y+2, w-2, h-2, radius)
	cr.Fill()

	fill := whiteFill
	if k.Active() {
		fill = whitePressed
	}
	cr.SetSourceRGB(fill.r, fill.g, fill.b)
	roundedRect(cr, x, y, w-1, h-1, radius)
	cr.Fill()

	setSource(cr, vertical(y, y+h, whiteBorderTop, whiteBorderBot, 1, 1), whiteBorderTop)
	cr.SetLineWidth(1.5)
	roundedRect(cr, x, y, w-1, h-1, radius)
	cr.Stroke()

	setSource(cr, vertical(y, y+h/2, rgb{1, 1, 1}, rgb{1, 1, 1}, 30.0/255, 0), fill)
	roundedRect(cr, x+1, y+1, w-2, h/2, radius)
	cr.Fill()

	cr.SetSourceRGB(whiteLabel.r, whiteLabel.g, whiteLabel.b)
	drawLabel(cr, k, x, w, y+h-10, 11)
}

func drawBlackKey(cr *cairo.Context, k *piano.Key, r image.Rectangle) {
	if r.Empty() {
		return
	}
	x, y := float64(r.Min.X), float64(r.Min.Y)
	w, h := float64(r.Dx()), float64(r.Dy())
	clip(cr, x, y, w, h)
	defer cr.Restore()
	const radius = 3

	top, bottom := blackTop, blackBottom
	if k.Active() {
		top, bottom = blackPressedT, blackPressedB
	}
	setSource(cr, vertical(y, y+h, top, bottom, 1, 1), top)
	roundedRect(cr, x, y, w, h, radius)
	cr.Fill()

	cr.SetSourceRGBA(1, 1, 1, 20.0/255)
	cr.SetLineWidth(1)
	cr.MoveTo(x+2, y+1)
	cr.LineTo(x+w-2, y+1)
	cr.Stroke()

	cr.SetSourceRGBA(1, 1, 1, 40.0/255)
	drawLabel(cr, k, x, w, y+h-15, 9)
}

func drawLabel(cr *cairo.Context, k *piano.Key, x, w, baseline, size float64) {
	cr.SelectFontFace(FONT, cairo.FONT_SLANT_NORMAL, cairo.FONT_WEIGHT_BOLD)
	cr.SetFontSize(size)
	label := k.String()
	ext := cr.TextExtents(label)
	cr.MoveTo(x+(w-ext.Width)/2-ext.XBearing, baseline)
	cr.ShowText(label)
}
