package ui

import (
	"context"

	charmlog "github.com/charmbracelet/log"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
)

// loop stops the GTK main loop when ctx ends outside of the UI, on SIGINT for instance.
func loop(ctx context.Context, logger *charmlog.Logger) {
	<-ctx.Done()
	logger.Debug("chan Done, quitting")
	glib.IdleAdd(func() {
		gtk.MainQuit()
	})
}
