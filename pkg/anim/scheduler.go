package anim

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler runs fn once after at least delay. The returned function cancels
// the callback if it has not started yet. Schedule must not run fn before it
// returns.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) (cancel func())
}

// Loop is a message-loop Scheduler. Timers only enqueue callbacks; Run
// executes them one at a time on the calling goroutine.
type Loop struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop creates a loop. Nothing runs until Run is called.
func NewLoop() *Loop {
	return &Loop{
		queue: make(chan func(), 16),
		done:  make(chan struct{}),
	}
}

// Schedule queues fn to run on the loop after delay.
func (l *Loop) Schedule(delay time.Duration, fn func()) func() {
	var canceled atomic.Bool
	run := func() {
		if !canceled.Load() {
			fn()
		}
	}
	t := time.AfterFunc(delay, func() {
		select {
		case l.queue <- run:
		case <-l.done:
		}
	})
	return func() {
		canceled.Store(true)
		t.Stop()
	}
}

// Run executes queued callbacks until ctx is done and returns ctx.Err().
// A loop runs once; callbacks that fire after Run returns are dropped.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			fn()
		}
	}
}
