package music

import (
	"context"
	"errors"
	"fmt"

	. "github.com/ugudcode/projectmelody/shared"

	charmlog "github.com/charmbracelet/log"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

const ALL_NOTES_OFF = 123

var ErrNoOutput = errors.New("no MIDI output")

// Open finds the configured output port, or opens a virtual one when it is
// not set or not found.
func Open(config Config, logger *charmlog.Logger) (drivers.Out, error) {
	logger.Debug("output ports", "ports", midi.GetOutPorts().String())
	if config.OutputPort != "" {
		out, err := midi.FindOutPort(config.OutputPort)
		if err == nil {
			return out, nil
		}
		logger.Warn("can't find output, opening a virtual one", "port", config.OutputPort)
	}
	drv, ok := drivers.Get().(*rtmididrv.Driver)
	if !ok || drv == nil {
		return nil, ErrNoOutput
	}
	out, err := drv.OpenVirtualOut(APP_NAME)
	if err != nil {
		return nil, fmt.Errorf("open virtual output: %w", err)
	}
	return out, nil
}

// Run sends the notes posted on bus to out until ctx is done or a Quit
// message arrives. Without a usable output the bus is still drained.
func Run(ctx context.Context, out drivers.Out, config Config, bus Bus) {
	logger := NewLogger("music", config.LogLevel)
	logger.Info("start")

	var send func(midi.Message) error
	if out != nil {
		logger.Info("connecting to", "output", out.String())
		var err error
		send, err = midi.SendTo(out)
		if err != nil {
			logger.Error("sound disabled", "err", err)
			send = nil
		}
	}

	play(ctx, send, config, bus, logger)

	if out != nil && out.IsOpen() {
		if err := out.Close(); err != nil {
			logger.Error(err)
		}
	}
	logger.Info("stop")
}

func play(ctx context.Context, send func(midi.Message) error, config Config, bus Bus, logger *charmlog.Logger) {
	emit := func(msg midi.Message) {
		if send == nil {
			return
		}
		if err := send(msg); err != nil {
			logger.Debug("send failed", "msg", msg.String(), "err", err)
		}
	}

	ch := uint8(config.Channel)
	emit(midi.ProgramChange(ch, uint8(config.Program)))
	defer emit(midi.ControlChange(ch, ALL_NOTES_OFF, 0))

	for {
		select {
		case <-ctx.Done():
			logger.Debug("context done")
			return
		case msg := <-bus:
			switch msg.Type {
			case NoteOn:
				logger.Debug("note  on", "key", midi.Note(msg.Note), "vel", msg.Velocity)
				emit(midi.NoteOn(ch, msg.Note, msg.Velocity))
			case NoteOff:
				logger.Debug("note off", "key", midi.Note(msg.Note))
				emit(midi.NoteOff(ch, msg.Note))
			case Quit:
				return
			}
		}
	}
}
