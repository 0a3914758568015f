package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

type tickEvent struct{}

func (tickEvent) When() time.Time { return time.Time{} }

func TestPollEvents_StopsWhenDoneWithFullBuffer(t *testing.T) {
	// Arrange
	poll := func() tcell.Event { return tickEvent{} }
	done := make(chan struct{})
	events := pollEvents(poll, done)

	// Act: let the buffer fill while nobody reads, then stop
	<-events
	for len(events) < cap(events) {
		time.Sleep(time.Millisecond)
	}
	close(done)

	// Assert
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("event pump still running after done was closed")
		}
	}
}

func TestPollEvents_ClosesWhenPollEnds(t *testing.T) {
	// Arrange
	remaining := 3
	poll := func() tcell.Event {
		if remaining == 0 {
			return nil
		}
		remaining--
		return tickEvent{}
	}

	// Act
	events := pollEvents(poll, make(chan struct{}))

	// Assert
	got := 0
	for range events {
		got++
	}
	if got != 3 {
		t.Errorf("got %d events, want 3", got)
	}
}
