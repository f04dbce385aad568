package net

import (
	"context"
	"time"

	"github.com/peterkuimelis/monbattle/internal/log"
)

// Playback paces a list of events for display. Pacing is presentation only;
// the engine has already resolved everything the events describe.
type Playback struct {
	// Delay returns the pause after an event (nil = DefaultDelay).
	Delay func(EventView) time.Duration
}

// Instant is a Playback without pauses.
var Instant = Playback{Delay: func(EventView) time.Duration { return 0 }}

// DefaultDelay holds faints and the result longer than plain narration.
func DefaultDelay(ev EventView) time.Duration {
	switch ev.Type {
	case log.EventNewTurn.String(), log.EventSendOut.String():
		return 300 * time.Millisecond
	case log.EventFaint.String(), log.EventWin.String():
		return 1200 * time.Millisecond
	default:
		return 700 * time.Millisecond
	}
}

// Play calls show for each event in order, pausing between events.
// It stops early when ctx is cancelled or show fails.
func (p Playback) Play(ctx context.Context, events []EventView, show func(EventView) error) error {
	delay := p.Delay
	if delay == nil {
		delay = DefaultDelay
	}
	for i, ev := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := show(ev); err != nil {
			return err
		}
		if i == len(events)-1 {
			break
		}
		d := delay(ev)
		if d <= 0 {
			continue
		}
		timer := time.NewTimer(d)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}
