package net

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPlaybackOrder(t *testing.T) {
	events := []EventView{{Seq: 1}, {Seq: 2}, {Seq: 3}}
	var seen []int
	err := Instant.Play(context.Background(), events, func(ev EventView) error {
		seen = append(seen, ev.Seq)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 3 || seen[0] != 1 || seen[2] != 3 {
		t.Errorf("events out of order: %v", seen)
	}
}

func TestPlaybackSkipsFinalPause(t *testing.T) {
	var asked []int
	pb := Playback{Delay: func(ev EventView) time.Duration {
		asked = append(asked, ev.Seq)
		return time.Millisecond
	}}
	if err := pb.Play(context.Background(), []EventView{{Seq: 1}, {Seq: 2}}, func(EventView) error { return nil }); err != nil {
		t.Fatal(err)
	}
	if len(asked) != 1 || asked[0] != 1 {
		t.Errorf("expected a single pause after the first event, got %v", asked)
	}
}

func TestPlaybackCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pb := Playback{Delay: func(EventView) time.Duration { return time.Hour }}

	shown := 0
	done := make(chan error, 1)
	go func() {
		done <- pb.Play(ctx, []EventView{{Seq: 1}, {Seq: 2}}, func(EventView) error {
			shown++
			return nil
		})
	}()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("playback did not stop on cancel")
	}
	if shown > 1 {
		t.Errorf("expected at most one event before cancel, got %d", shown)
	}
}

func TestPlaybackShowError(t *testing.T) {
	boom := errors.New("boom")
	err := Instant.Play(context.Background(), []EventView{{Seq: 1}, {Seq: 2}}, func(EventView) error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("expected show error, got %v", err)
	}
}

func TestDefaultDelay(t *testing.T) {
	if DefaultDelay(EventView{Type: "Faint"}) <= DefaultDelay(EventView{Type: "MoveUsed"}) {
		t.Error("faints should pause longer than plain narration")
	}
	if DefaultDelay(EventView{Type: "NewTurn"}) >= DefaultDelay(EventView{Type: "MoveUsed"}) {
		t.Error("turn headers should pause less than plain narration")
	}
}
