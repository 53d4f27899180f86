package piano

import "fmt"

const (
	NUM_KEYS    = 88
	LOWEST_NOTE = 21 // A0
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

type Key struct {
	Pitch uint8
	Black bool

	active bool // only changed by Controller
}

func (k *Key) Active() bool {
	return k.active
}

func (k *Key) String() string {
	return Label(k.Pitch)
}

func IsBlack(pitch uint8) bool {
	switch pitch % 12 {
	case 1, 3, 6, 8, 10:
		return true
	default:
		return false
	}
}

// Label returns the note name followed by its octave, "C4" for 60.
func Label(pitch uint8) string {
	octave := (int(pitch) - 12) / 12
	return fmt.Sprintf("%s%d", noteNames[pitch%12], octave)
}

type Keyboard []*Key

func NewKeyboard() Keyboard {
	kb := make(Keyboard, NUM_KEYS)
	for i := 0; i < NUM_KEYS; i++ {
		pitch := uint8(LOWEST_NOTE + i)
		kb[i] = &Key{
			Pitch: pitch,
			Black: IsBlack(pitch),
		}
	}
	return kb
}

func (kb Keyboard) Key(pitch uint8) *Key {
	i := int(pitch) - LOWEST_NOTE
	if i < 0 || i >= len(kb) {
		return nil
	}
	return kb[i]
}

func (kb Keyboard) WhiteCount() (n int) {
	for _, k := range kb {
		if !k.Black {
			n++
		}
	}
	return
}
