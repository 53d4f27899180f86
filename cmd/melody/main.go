package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	. "github.com/ugudcode/projectmelody/shared"

	charmlog "github.com/charmbracelet/log"
	"github.com/ugudcode/projectmelody/music"
	"github.com/ugudcode/projectmelody/ui"
	"gitlab.com/gomidi/midi/v2"
)

const SHUTDOWN_TIMEOUT = 5 * time.Second

func main() {
	config := DefaultConfig()
	logger := NewLogger("main", config.LogLevel)
	if path, err := ConfigPath(); err != nil {
		logger.Warn("no config dir", "err", err)
	} else if config, err = LoadConfig(path); err != nil {
		logger.Error("ignoring config", "path", path, "err", err)
	}
	if lvl, err := charmlog.ParseLevel(config.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	defer midi.CloseDriver()
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	bus := NewBus()
	out, err := music.Open(config, logger)
	if err != nil {
		logger.Error("sound disabled, keys will only animate", "err", err)
	}
	musicDone := make(chan struct{})
	go func() {
		music.Run(ctx, out, config, bus)
		close(musicDone)
	}()

	app := ui.New(config, bus)
	if err := app.Run(ctx); err != nil {
		logger.Fatal(err)
	}
	bus.Quit(ctx)

	select {
	case <-musicDone:
	case <-time.After(SHUTDOWN_TIMEOUT):
		logger.Warn("took too long to shutdown")
	}
}
