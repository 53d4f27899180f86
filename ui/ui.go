package ui

import (
	"context"
	_ "embed"
	"fmt"

	. "github.com/ugudcode/projectmelody/shared"

	charmlog "github.com/charmbracelet/log"
	"github.com/gotk3/gotk3/cairo"
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
	"github.com/ugudcode/projectmelody/piano"
)

//go:embed ui.css
var stylesheet string

const (
	TITLE              = "Project Melody"
	REDRAW_INTERVAL_MS = 1000 / 60
	STYLE_PRIORITY     = 600 // GTK_STYLE_PROVIDER_PRIORITY_APPLICATION
)

// App owns the window and the keyboard state driven by it.
type App struct {
	config     Config
	logger     *charmlog.Logger
	keyboard   piano.Keyboard
	layout     *piano.Layout
	controller *piano.Controller

	win  *gtk.Window
	area *gtk.DrawingArea
}

func New(config Config, synth piano.Synth) *App {
	keyboard := piano.NewKeyboard()
	return &App{
		config:     config,
		logger:     NewLogger("UI", config.LogLevel),
		keyboard:   keyboard,
		layout:     piano.NewLayout(keyboard),
		controller: piano.NewController(synth, uint8(config.Velocity)),
	}
}

// Run builds the window and blocks in the GTK main loop until the window is
// closed or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("start")
	gtk.Init(nil)

	if err := a.build(); err != nil {
		return err
	}

	prov, _ := gtk.CssProviderNew()
	if err := prov.LoadFromData(stylesheet); err != nil {
		a.logger.Warn(err)
	}
	screen, err := gdk.ScreenGetDefault()
	if err == nil {
		gtk.AddProviderForScreen(screen, prov, STYLE_PRIORITY)
	}

	glib.TimeoutAdd(REDRAW_INTERVAL_MS, func() bool {
		if a.win.IsVisible() {
			a.area.QueueDraw()
		}
		return true
	})

	a.win.ShowAll()
	go loop(ctx, a.logger)
	gtk.Main()
	a.logger.Info("stop")
	return nil
}

func (a *App) build() error {
	win, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	a.win = win
	win.SetTitle(TITLE)
	win.SetName("mainWin")
	win.SetDefaultSize(a.config.Window.Width, a.config.Window.Height)
	win.SetPosition(gtk.WIN_POS_CENTER)
	if err := win.SetIconFromFile(a.config.Window.Icon); err != nil {
		a.logger.Warn("no window icon", "path", a.config.Window.Icon, "err", err)
	}

	win.Connect("destroy", func() {
		a.logger.Debug("close win, quitting")
		gtk.MainQuit()
	})
	win.Connect("focus-out-event", func() bool {
		a.controller.FocusLost()
		return false
	})

	box, err := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 0)
	if err != nil {
		return fmt.Errorf("create box: %w", err)
	}
	titleBar, err := gtk.BoxNew(gtk.ORIENTATION_HORIZONTAL, 20)
	if err != nil {
		return fmt.Errorf("create title bar: %w", err)
	}
	titleBar.SetName("titleBar")
	box.PackStart(titleBar, false, false, 0)

	area, err := gtk.DrawingAreaNew()
	if err != nil {
		return fmt.Errorf("create drawing area: %w", err)
	}
	a.area = area
	area.SetHExpand(true)
	area.SetVExpand(true)
	area.AddEvents(int(gdk.BUTTON_PRESS_MASK | gdk.BUTTON_RELEASE_MASK | gdk.BUTTON1_MOTION_MASK))
	box.PackStart(area, true, true, 0)
	win.Add(box)

	a.controller.OnChange(a.redrawKey)
	area.Connect("size-allocate", func(da *gtk.DrawingArea) {
		a.layout.Resize(da.GetAllocatedWidth(), da.GetAllocatedHeight())
	})
	area.Connect("draw", func(da *gtk.DrawingArea, cr *cairo.Context) bool {
		w, h := da.GetAllocatedWidth(), da.GetAllocatedHeight()
		if w != a.layout.Width() {
			a.layout.Resize(w, h)
		}
		drawKeyboard(cr, w, h, a.keyboard, a.layout)
		return true
	})
	area.Connect("button-press-event", func(da *gtk.DrawingArea, event *gdk.Event) bool {
		btn := gdk.EventButtonNewFromEvent(event)
		if btn.Button() != gdk.BUTTON_PRIMARY || btn.Type() != gdk.EVENT_BUTTON_PRESS {
			return false
		}
		a.controller.PointerDown(a.layout.KeyAt(int(btn.X()), int(btn.Y())))
		if k := a.controller.Active(); k != nil {
			a.logger.Debug("press", "key", k.String())
		}
		return true
	})
	area.Connect("motion-notify-event", func(da *gtk.DrawingArea, event *gdk.Event) bool {
		x, y := gdk.EventMotionNewFromEvent(event).MotionVal()
		a.controller.PointerMove(a.layout.KeyAt(int(x), int(y)))
		return true
	})
	area.Connect("button-release-event", func(da *gtk.DrawingArea, event *gdk.Event) bool {
		if gdk.EventButtonNewFromEvent(event).Button() != gdk.BUTTON_PRIMARY {
			return false
		}
		a.controller.PointerUp()
		return true
	})
	return nil
}

func (a *App) redrawKey(k *piano.Key) {
	if a.area == nil {
		return
	}
	r := a.layout.Rect(k)
	a.area.QueueDrawArea(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}
