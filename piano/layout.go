package piano

import "image"

const (
	WHITE_HEIGHT_RATIO = 0.9
	BLACK_RATIO        = 0.6
)

// Layout maps every key of a keyboard to a rectangle of the drawing area.
type Layout struct {
	keyboard   Keyboard
	rects      []image.Rectangle
	whiteWidth int
	width      int
}

func NewLayout(kb Keyboard) *Layout {
	return &Layout{
		keyboard: kb,
		rects:    make([]image.Rectangle, len(kb)),
	}
}

func (l *Layout) Resize(width, height int) {
	l.width = width
	whiteCount := l.keyboard.WhiteCount()
	if whiteCount == 0 || width <= 0 || height <= 0 {
		for i := range l.rects {
			l.rects[i] = image.Rectangle{}
		}
		l.whiteWidth = 0
		return
	}

	whiteKeyWidth := float64(width) / float64(whiteCount)
	whiteKeyHeight := float64(height) * WHITE_HEIGHT_RATIO
	blackKeyWidth := whiteKeyWidth * BLACK_RATIO
	blackKeyHeight := whiteKeyHeight * BLACK_RATIO
	l.whiteWidth = int(whiteKeyWidth)

	currentX := 0.0
	for i, k := range l.keyboard {
		if k.Black {
			// centered on the boundary of the previous white key
			x := int(currentX - blackKeyWidth/2)
			l.rects[i] = image.Rect(x, 0, x+int(blackKeyWidth), int(blackKeyHeight))
			continue
		}
		x := int(currentX)
		l.rects[i] = image.Rect(x, 0, x+l.whiteWidth, int(whiteKeyHeight))
		currentX += whiteKeyWidth
	}
}

func (l *Layout) Rect(k *Key) image.Rectangle {
	i := int(k.Pitch) - LOWEST_NOTE
	if i < 0 || i >= len(l.rects) {
		return image.Rectangle{}
	}
	return l.rects[i]
}

func (l *Layout) WhiteKeyWidth() int {
	return l.whiteWidth
}

func (l *Layout) Width() int {
	return l.width
}

// KeyAt returns the key drawn at (x, y), or nil. Black keys win over the
// white keys they overlap.
func (l *Layout) KeyAt(x, y int) *Key {
	p := image.Pt(x, y)
	for i, k := range l.keyboard {
		if k.Black && p.In(l.rects[i]) {
			return k
		}
	}
	for i, k := range l.keyboard {
		if !k.Black && p.In(l.rects[i]) {
			return k
		}
	}
	return nil
}
