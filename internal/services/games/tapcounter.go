package games

import (
	"fmt"
	"sync"
	"time"

	"github.com/mcoot/gameportal/internal/dependencies/clock"
	"github.com/mcoot/gameportal/internal/model"
)

// TapRoundDuration is how long a Tap Counter round lasts
const TapRoundDuration = 10 * time.Second

// TapCounter counts taps within a fixed time window.
// Taps arriving after the window closes are ignored.
type TapCounter struct {
	clock clock.Clock

	mu       sync.Mutex
	started  bool
	deadline time.Time
	taps     int
}

// NewTapCounter creates a round that has not started yet
func NewTapCounter(clk clock.Clock) *TapCounter {
	return &TapCounter{clock: clk}
}

// Start opens the round, resetting any previous count
func (t *TapCounter) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.started = true
	t.taps = 0
	t.deadline = t.clock.Now().Add(TapRoundDuration)
}

// Tap registers one tap and returns the running count
func (t *TapCounter) Tap() (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.started || !t.clock.Now().Before(t.deadline) {
		return t.taps, model.ErrRoundNotActive
	}
	t.taps++
	return t.taps, nil
}

// Remaining is the time left in the round, zero once it has ended
func (t *TapCounter) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.started {
		return 0
	}
	return max(t.deadline.Sub(t.clock.Now()), 0)
}

// Done reports whether the round has started and its window has closed
func (t *TapCounter) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.started && !t.clock.Now().Before(t.deadline)
}

// Outcome returns the result of a finished round
func (t *TapCounter) Outcome() (model.GameOutcome, error) {
	if !t.Done() {
		return model.GameOutcome{}, model.ErrRoundNotActive
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return TapOutcome(t.taps), nil
}

// TapOutcome builds the outcome for a round with the given number of taps
func TapOutcome(taps int) model.GameOutcome {
	return model.GameOutcome{
		GameSlug: model.GameTapCounter,
		GameName: nameOf(model.GameTapCounter),
		Score:    taps,
		Result:   fmt.Sprintf("%d taps in %d seconds", taps, int(TapRoundDuration/time.Second)),
	}
}

// TapRating describes how good a tap count is
func TapRating(taps int) string {
	switch {
	case taps >= 50:
		return "Lightning Fast!"
	case taps >= 35:
		return "Super Quick!"
	case taps >= 25:
		return "Good Job!"
	case taps >= 15:
		return "Not Bad!"
	default:
		return "Keep Practicing!"
	}
}
