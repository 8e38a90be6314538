package quiz

import (
	"testing"
	"time"
)

func TestCountdownStopClosesEvents(t *testing.T) {
	c := NewCountdown(time.Hour)
	c.Stop()
	c.Stop() // safe to repeat

	select {
	case _, open := <-c.Events():
		if open {
			t.Error("got an event after Stop, want a closed channel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Events not closed after Stop")
	}
}

func TestCountdownExpires(t *testing.T) {
	c := NewCountdown(time.Second)
	defer c.Stop()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, open := <-c.Events():
			if !open {
				t.Fatal("Events closed without an expiry event")
			}
			if ev.Expired {
				if ev.Remaining != 0 {
					t.Errorf("expiry Remaining = %v, want 0", ev.Remaining)
				}
				return
			}
		case <-deadline:
			t.Fatal("no expiry within 5s for a 1s countdown")
		}
	}
}

func TestCountdownTicks(t *testing.T) {
	c := NewCountdown(3 * time.Second)
	defer c.Stop()

	select {
	case ev := <-c.Events():
		if ev.Expired {
			t.Fatal("first event already expired for a 3s countdown")
		}
		if ev.Remaining <= 0 || ev.Remaining >= 3*time.Second {
			t.Errorf("first tick Remaining = %v, want between 0 and 3s", ev.Remaining)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no tick within 3s")
	}
}
