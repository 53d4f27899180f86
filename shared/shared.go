package shared

import "context"

type Event int

const (
	Quit Event = iota
	NoteOn
	NoteOff
)

type Message struct {
	Type     Event
	Note     uint8
	Velocity uint8
}

const BUS_SIZE = 64

// Bus carries note events from the UI thread to the sound loop.
// It implements piano.Synth.
type Bus chan Message

func NewBus() Bus {
	return make(Bus, BUS_SIZE)
}

func (b Bus) NoteOn(pitch, velocity uint8) {
	b <- Message{Type: NoteOn, Note: pitch, Velocity: velocity}
}

func (b Bus) NoteOff(pitch uint8) {
	b <- Message{Type: NoteOff, Note: pitch}
}

// Quit asks the sound loop to stop once the notes already posted are sent.
// It gives up when ctx is done, since the loop has then stopped on its own.
func (b Bus) Quit(ctx context.Context) {
	select {
	case b <- Message{Type: Quit}:
	case <-ctx.Done():
	}
}
