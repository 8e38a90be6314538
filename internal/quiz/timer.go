package quiz

import (
	"sync"
	"time"
)

// TimerEvent is one countdown notification: a tick with the remaining
// time, or the terminal expiry.
type TimerEvent struct {
	Remaining time.Duration
	Expired   bool
}

// Countdown is a cancellable one-second countdown. It emits a
// TimerEvent every second and a final Expired event, then closes the
// channel. At most one countdown runs per session; starting a new
// session stops the previous one.
type Countdown struct {
	events   chan TimerEvent
	stop     chan struct{}
	stopOnce sync.Once
}

// NewCountdown starts a countdown for the given duration.
func NewCountdown(d time.Duration) *Countdown {
	c := &Countdown{
		events: make(chan TimerEvent, 1),
		stop:   make(chan struct{}),
	}
	go c.run(d)
	return c
}

func (c *Countdown) run(d time.Duration) {
	defer close(c.events)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	remaining := d
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			remaining -= time.Second
			if remaining <= 0 {
				c.emit(TimerEvent{Remaining: 0, Expired: true})
				return
			}
			c.emit(TimerEvent{Remaining: remaining})
		}
	}
}

// emit sends without blocking; if the consumer lags, the stale tick is
// replaced by the next one.
func (c *Countdown) emit(ev TimerEvent) {
	select {
	case c.events <- ev:
	default:
		select {
		case <-c.events:
		default:
		}
		select {
		case c.events <- ev:
		default:
		}
	}
}

// Events returns the notification channel. It is closed after expiry
// or Stop.
func (c *Countdown) Events() <-chan TimerEvent {
	return c.events
}

// Stop cancels the countdown. Safe to call more than once.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}
