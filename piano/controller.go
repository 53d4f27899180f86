package piano

const DEFAULT_VELOCITY = 100

// Synth receives the sound side effects of the controller. Calls must not block.
type Synth interface {
	NoteOn(pitch, velocity uint8)
	NoteOff(pitch uint8)
}

// Controller keeps track of the single key held under the pointer.
// It must only be used from the UI thread.
type Controller struct {
	synth    Synth
	velocity uint8
	active   *Key
	redraw   func(*Key)
}

func NewController(synth Synth, velocity uint8) *Controller {
	if velocity == 0 {
		velocity = DEFAULT_VELOCITY
	}
	return &Controller{
		synth:    synth,
		velocity: velocity,
	}
}

// OnChange registers a callback called after a key's activation flag changed.
func (c *Controller) OnChange(redraw func(*Key)) {
	c.redraw = redraw
}

func (c *Controller) Active() *Key {
	return c.active
}

func (c *Controller) PointerDown(k *Key) {
	if k == nil {
		return
	}
	if c.active != nil {
		c.release(c.active)
	}
	c.press(k)
	c.active = k
}

func (c *Controller) PointerMove(k *Key) {
	if k == c.active {
		return
	}
	if c.active != nil {
		c.release(c.active)
	}
	if k != nil {
		c.press(k)
	}
	c.active = k
}

func (c *Controller) PointerUp() {
	if c.active != nil {
		c.release(c.active)
		c.active = nil
	}
}

func (c *Controller) FocusLost() {
	c.PointerUp()
}

func (c *Controller) press(k *Key) {
	k.active = true
	c.synth.NoteOn(k.Pitch, c.velocity)
	if c.redraw != nil {
		c.redraw(k)
	}
}

func (c *Controller) release(k *Key) {
	k.active = false
	c.synth.NoteOff(k.Pitch)
	if c.redraw != nil {
		c.redraw(k)
	}
}
