// Package anim drives the rotating cube: it owns the rotation state and ticks
// the renderer through a Scheduler.
package anim

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/taigrr/asciicube/pkg/render"
)

// DefaultFrameDelay is the pause between two ticks.
const DefaultFrameDelay = 30 * time.Millisecond

// State is the driver lifecycle state.
type State int

const (
	Idle    State = iota // No tick pending
	Running              // A tick is pending or in progress
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Options configures a Driver. The zero value is usable.
type Options struct {
	Delay  time.Duration // Pause between ticks; DefaultFrameDelay if zero
	SpinUp *SpinUp       // Eases the speed in when set
	Logger *zap.Logger   // Frame logging; discarded if nil

	// OnStop is called, outside the driver lock, whenever the driver leaves
	// Running: with nil after Stop, or with the display error that ended it.
	OnStop func(err error)
}

// Driver renders one frame per tick and reschedules itself.
type Driver struct {
	mu      sync.Mutex
	state   State
	gen     uint64 // Bumped on Start/Stop so stale callbacks are ignored
	cancel  func()
	ticks   int
	stats   render.FrameStats
	rot     RotationState
	spin    *SpinUp
	delay   time.Duration
	log     *zap.Logger
	onStop  func(error)
	buf     *render.ScreenBuffer
	comp    *render.Composer
	display render.Display
	sched   Scheduler
}

// NewDriver creates an idle driver. It renders comp into buf and hands each
// finished frame to display.
func NewDriver(comp *render.Composer, buf *render.ScreenBuffer, display render.Display, sched Scheduler, rot RotationState, opts Options) *Driver {
	if opts.Delay <= 0 {
		opts.Delay = DefaultFrameDelay
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Driver{
		rot:     rot,
		spin:    opts.SpinUp,
		delay:   opts.Delay,
		log:     opts.Logger,
		onStop:  opts.OnStop,
		buf:     buf,
		comp:    comp,
		display: display,
		sched:   sched,
	}
}

// Start moves the driver to Running and schedules the first tick with no
// delay. Starting a running driver does nothing.
func (d *Driver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == Running {
		return
	}
	d.state = Running
	d.gen++
	d.scheduleLocked(0)
	d.log.Debug("animation started", zap.Duration("delay", d.delay))
}

// Stop cancels the pending tick and returns the driver to Idle. The rotation
// is kept, so a later Start resumes where it stopped.
func (d *Driver) Stop() {
	d.mu.Lock()
	if d.state == Idle {
		d.mu.Unlock()
		return
	}
	d.stopLocked()
	onStop := d.onStop
	ticks := d.ticks
	d.mu.Unlock()

	d.log.Debug("animation stopped", zap.Int("ticks", ticks))
	if onStop != nil {
		onStop(nil)
	}
}

// Tick renders and presents one frame at the current rotation and then
// advances it. It does not schedule anything.
func (d *Driver) Tick() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tickLocked()
}

// State returns the lifecycle state.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Rotation returns the rotation the next frame will be drawn at.
func (d *Driver) Rotation() RotationState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rot
}

// Ticks returns how many frames have been presented.
func (d *Driver) Ticks() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ticks
}

// LastStats returns the statistics of the most recent frame.
func (d *Driver) LastStats() render.FrameStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

// step is the scheduled callback for generation gen.
func (d *Driver) step(gen uint64) {
	d.mu.Lock()
	if d.state != Running || gen != d.gen {
		d.mu.Unlock()
		return
	}

	if err := d.tickLocked(); err != nil {
		d.stopLocked()
		onStop := d.onStop
		d.mu.Unlock()

		d.log.Error("animation stopped", zap.Error(err))
		if onStop != nil {
			onStop(err)
		}
		return
	}

	d.scheduleLocked(d.delay)
	d.mu.Unlock()
}

func (d *Driver) tickLocked() error {
	d.buf.Clear()
	d.stats = d.comp.Render(d.buf, d.rot.Angles)

	if err := d.display.Present(d.buf); err != nil {
		return fmt.Errorf("present frame %d: %w", d.ticks, err)
	}
	d.ticks++

	factor := 1.0
	if d.spin != nil {
		factor = d.spin.Update()
	}
	d.rot.Advance(factor)

	if ce := d.log.Check(zap.DebugLevel, "frame"); ce != nil {
		ce.Write(
			zap.Int("tick", d.ticks),
			zap.Float64s("angles", d.rot.Angles[:]),
			zap.Int("drawn", d.stats.Drawn),
			zap.Int("culled", d.stats.Culled),
			zap.Float64("speed_factor", factor),
		)
	}
	return nil
}

func (d *Driver) scheduleLocked(delay time.Duration) {
	gen := d.gen
	d.cancel = d.sched.Schedule(delay, func() { d.step(gen) })
}

func (d *Driver) stopLocked() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.state = Idle
	d.gen++
}
