package ui

import (
	"context"
	"sync"
	"time"

	"github.com/edward-ap/indicatorbar/internal/script"
)

// DefaultReplayInterval paces scripted events so a drag is visible.
const DefaultReplayInterval = 60 * time.Millisecond

// Replayer feeds scripted pointer events into an IndicatorBar from a
// background goroutine, one event per tick. Events go through the bar's lock,
// so live input during a replay is interleaved, never concurrent. Start and
// Stop are safe to call from any goroutine.
type Replayer struct {
	bar      *IndicatorBar
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewReplayer creates a replayer for b. A non-positive interval uses
// DefaultReplayInterval.
func NewReplayer(b *IndicatorBar, interval time.Duration) *Replayer {
	if interval <= 0 {
		interval = DefaultReplayInterval
	}
	return &Replayer{bar: b, interval: interval}
}

// Start replays events, stopping any replay in progress. The returned channel
// closes once every event was delivered or the replay was stopped.
func (r *Replayer) Start(events []script.Event) <-chan struct{} {
	r.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	r.mu.Lock()
	r.cancel = cancel
	r.done = done
	r.mu.Unlock()

	evs := append([]script.Event(nil), events...)
	go func() {
		defer close(done)
		t := time.NewTicker(r.interval)
		defer t.Stop()
		for _, e := range evs {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
			e := e
			onMain(func() { r.bar.dispatch(e) })
		}
	}()
	return done
}

// Stop cancels the running replay and waits for its goroutine to exit.
func (r *Replayer) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()
	if cancel != nil {
		cancel()
		<-done
	}
}
