// File: services/signup/countdown.go
package signup

import (
	"sync"
	"sync/atomic"
	"time"
)

// Countdown is a cancellable repeating timer: it ticks a counter from start
// down to zero and then fires done exactly once. Stop cancels a countdown
// that has not fired yet; a stopped countdown never fires, and a fired one
// ignores Stop. This replaces the browser's setInterval-plus-cleanup idiom
// with something that cannot leak a stray navigation.
type Countdown struct {
	remaining int64
	stop      chan struct{}
	stopOnce  sync.Once
	fired     atomic.Bool
}

// StartCountdown begins ticking. done runs on the countdown's own goroutine
// after start ticks have elapsed, unless Stop is called first.
func StartCountdown(start int, tick time.Duration, done func()) *Countdown {
	c := &Countdown{
		remaining: int64(start),
		stop:      make(chan struct{}),
	}
	go func() {
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		for {
			select {
			case <-c.stop:
				return
			case <-ticker.C:
				if atomic.AddInt64(&c.remaining, -1) > 0 {
					continue
				}
				c.fired.Store(true)
				done()
				return
			}
		}
	}()
	return c
}

// Remaining returns the ticks left, never below zero.
func (c *Countdown) Remaining() int {
	r := atomic.LoadInt64(&c.remaining)
	if r < 0 {
		r = 0
	}
	return int(r)
}

// Stop cancels the countdown. Safe to call repeatedly and after firing.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// Fired reports whether done has run.
func (c *Countdown) Fired() bool {
	return c.fired.Load()
}
