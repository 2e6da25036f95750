package anim

import (
	"errors"
	"math"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/taigrr/asciicube/pkg/models"
	"github.com/taigrr/asciicube/pkg/render"
)

// manualScheduler queues callbacks until the test runs them.
type manualScheduler struct {
	pending []*scheduled
}

type scheduled struct {
	delay    time.Duration
	fn       func()
	canceled bool
}

func (m *manualScheduler) Schedule(delay time.Duration, fn func()) func() {
	s := &scheduled{delay: delay, fn: fn}
	m.pending = append(m.pending, s)
	return func() { s.canceled = true }
}

// runNext runs the oldest live callback. It reports false if none is left.
func (m *manualScheduler) runNext() bool {
	for len(m.pending) > 0 {
		s := m.pending[0]
		m.pending = m.pending[1:]
		if s.canceled {
			continue
		}
		s.fn()
		return true
	}
	return false
}

func (m *manualScheduler) live() int {
	n := 0
	for _, s := range m.pending {
		if !s.canceled {
			n++
		}
	}
	return n
}

// recordingDisplay keeps a copy of every presented frame.
type recordingDisplay struct {
	frames []string
	failAt int // 1-based frame that fails; 0 never fails
	err    error
}

func (r *recordingDisplay) Present(buf *render.ScreenBuffer) error {
	if r.failAt > 0 && len(r.frames)+1 == r.failAt {
		return r.err
	}
	r.frames = append(r.frames, buf.String())
	return nil
}

func newTestDriver(rot RotationState, opts Options) (*Driver, *manualScheduler, *recordingDisplay) {
	comp := render.NewComposer(
		models.Cube(),
		render.NewProjector(60, 30, 10),
		render.DefaultLight(),
		render.DefaultShades(),
		render.DefaultOutline,
		nil,
	)
	sched := &manualScheduler{}
	disp := &recordingDisplay{}
	d := NewDriver(comp, render.NewScreenBuffer(60, 30), disp, sched, rot, opts)
	return d, sched, disp
}

func TestDriverStartRunsFirstTickImmediately(t *testing.T) {
	d, sched, disp := newTestDriver(NewRotationState([3]float64{}, DefaultSpeed()), Options{})

	if d.State() != Idle {
		t.Fatalf("new driver state = %v, want idle", d.State())
	}
	d.Start()
	if d.State() != Running {
		t.Fatalf("state after Start = %v, want running", d.State())
	}
	if len(sched.pending) != 1 || sched.pending[0].delay != 0 {
		t.Fatalf("Start should schedule one tick with no delay, got %d", len(sched.pending))
	}
	if len(disp.frames) != 0 {
		t.Error("Start must not render before the scheduler runs the tick")
	}

	d.Start()
	if sched.live() != 1 {
		t.Errorf("second Start scheduled again: %d live callbacks", sched.live())
	}

	sched.runNext()
	if len(disp.frames) != 1 {
		t.Fatalf("presented %d frames, want 1", len(disp.frames))
	}
	if len(sched.pending) != 1 || sched.pending[0].delay != DefaultFrameDelay {
		t.Errorf("next tick should be scheduled after %v", DefaultFrameDelay)
	}
}

func TestDriverFirstFrame(t *testing.T) {
	d, sched, disp := newTestDriver(NewRotationState([3]float64{}, DefaultSpeed()), Options{})
	d.Start()
	sched.runNext()

	stats := d.LastStats()
	if stats.Drawn != 5 || stats.Culled != 1 || stats.Edges != 12 {
		t.Errorf("stats = drawn %d culled %d edges %d, want 5 1 12", stats.Drawn, stats.Culled, stats.Edges)
	}

	buf := render.NewScreenBuffer(60, 30)
	d.comp.Render(buf, [3]float64{})
	if disp.frames[0] != buf.String() {
		t.Error("first frame should be drawn at zero rotation")
	}
}

func TestDriverAnglesAfterNTicks(t *testing.T) {
	speed := [3]float64{1.0, 1.5, 0.7}
	d, sched, disp := newTestDriver(NewRotationState([3]float64{}, speed), Options{})
	d.Start()

	const n = 1000
	for range n {
		if !sched.runNext() {
			t.Fatal("driver stopped scheduling")
		}
	}

	if len(disp.frames) != n || d.Ticks() != n {
		t.Fatalf("presented %d frames, ticks %d, want %d", len(disp.frames), d.Ticks(), n)
	}
	rot := d.Rotation()
	for i, s := range speed {
		want := math.Mod(n*s, 360)
		if math.Abs(rot.Angles[i]-want) > 1e-9 {
			t.Errorf("axis %d angle = %v, want %v", i, rot.Angles[i], want)
		}
		if rot.Angles[i] < 0 || rot.Angles[i] >= 360 {
			t.Errorf("axis %d angle %v outside [0, 360)", i, rot.Angles[i])
		}
	}
}

func TestDriverStop(t *testing.T) {
	var stops []error
	d, sched, disp := newTestDriver(NewRotationState([3]float64{}, DefaultSpeed()), Options{
		OnStop: func(err error) { stops = append(stops, err) },
	})
	d.Start()
	sched.runNext()
	sched.runNext()

	d.Stop()
	if d.State() != Idle {
		t.Errorf("state after Stop = %v, want idle", d.State())
	}
	if sched.live() != 0 {
		t.Errorf("Stop left %d live callbacks", sched.live())
	}
	if len(stops) != 1 || stops[0] != nil {
		t.Errorf("OnStop calls = %v, want one nil", stops)
	}

	d.Stop()
	if len(stops) != 1 {
		t.Error("stopping an idle driver should not call OnStop")
	}

	before := d.Rotation()
	d.Start()
	sched.runNext()
	if len(disp.frames) != 3 {
		t.Errorf("presented %d frames, want 3", len(disp.frames))
	}
	after := d.Rotation()
	if after.Angles[1]-before.Angles[1] != DefaultSpeed()[1] {
		t.Errorf("restart should resume from %v, got %v", before.Angles, after.Angles)
	}
}

func TestDriverIgnoresStaleCallback(t *testing.T) {
	d, sched, disp := newTestDriver(NewRotationState([3]float64{}, DefaultSpeed()), Options{})
	d.Start()
	stale := sched.pending[0].fn

	d.Stop()
	d.Start()

	// A callback that was already dequeued when Stop ran.
	stale()
	if len(disp.frames) != 0 {
		t.Fatalf("stale callback rendered %d frames", len(disp.frames))
	}

	sched.runNext()
	if len(disp.frames) != 1 {
		t.Errorf("presented %d frames, want 1", len(disp.frames))
	}
	if sched.live() != 1 {
		t.Errorf("%d live callbacks, want 1", sched.live())
	}
}

func TestDriverDisplayErrorStops(t *testing.T) {
	errClosed := errors.New("terminal closed")
	core, logs := observer.New(zapcore.ErrorLevel)

	var stopErr error
	d, sched, disp := newTestDriver(NewRotationState([3]float64{}, DefaultSpeed()), Options{
		Logger: zap.New(core),
		OnStop: func(err error) { stopErr = err },
	})
	disp.failAt = 3
	disp.err = errClosed

	d.Start()
	for sched.runNext() {
	}

	if len(disp.frames) != 2 {
		t.Errorf("presented %d frames, want 2", len(disp.frames))
	}
	if !errors.Is(stopErr, errClosed) {
		t.Errorf("OnStop err = %v, want %v", stopErr, errClosed)
	}
	if d.State() != Idle {
		t.Errorf("state = %v, want idle", d.State())
	}
	if d.Ticks() != 2 {
		t.Errorf("ticks = %d, want 2", d.Ticks())
	}
	if logs.FilterMessage("animation stopped").Len() != 1 {
		t.Errorf("expected one error log, got %v", logs.All())
	}
}

func TestDriverTick(t *testing.T) {
	d, sched, disp := newTestDriver(NewRotationState([3]float64{350, 0, 0}, [3]float64{20, 0, 0}), Options{})

	if err := d.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if len(disp.frames) != 1 || len(sched.pending) != 0 {
		t.Errorf("Tick should present once and schedule nothing")
	}
	if got := d.Rotation().Angles[0]; math.Abs(got-10) > 1e-9 {
		t.Errorf("angle = %v, want 10 after wrapping", got)
	}
	if d.State() != Idle {
		t.Error("Tick must not change the state")
	}
}

func TestDriverSpinUp(t *testing.T) {
	speed := [3]float64{2, 2, 2}
	d, sched, _ := newTestDriver(NewRotationState([3]float64{}, speed), Options{
		SpinUp: NewSpinUp(DefaultFrameDelay),
	})
	d.Start()

	sched.runNext()
	first := d.Rotation().Angles[0]
	if first <= 0 || first >= speed[0] {
		t.Errorf("first step = %v, want between 0 and %v", first, speed[0])
	}

	for range 300 {
		sched.runNext()
	}
	a := d.Rotation().Angles[0]
	sched.runNext()
	b := d.Rotation().Angles[0]
	if step := angleDelta(a, b); math.Abs(step-speed[0]) > 1e-9 {
		t.Errorf("step after spin-up = %v, want %v", step, speed[0])
	}
}

// angleDelta is the forward angular distance from a to b in degrees.
func angleDelta(a, b float64) float64 {
	return math.Mod(b-a+360, 360)
}

func TestStateString(t *testing.T) {
	if Idle.String() != "idle" || Running.String() != "running" || State(9).String() != "State(9)" {
		t.Error("unexpected state names")
	}
}
