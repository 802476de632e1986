package mention

import "testing"

func TestSessionLifecycle(t *testing.T) {
	var s Session
	if s.Active() {
		t.Fatal("zero session should be idle")
	}

	if !s.Rescan("hi @b", 5) {
		t.Fatal("expected trigger to activate")
	}
	span := s.Span()
	if span.Start != 3 || span.Trigger != '@' || span.Filter != "b" {
		t.Fatalf("unexpected span %+v", span)
	}

	// Further typing keeps the trigger active with a fresh filter.
	if !s.Rescan("hi @bo", 6) {
		t.Fatal("expected trigger to stay active")
	}
	if got := s.Span().Filter; got != "bo" {
		t.Errorf("expected filter bo, got %q", got)
	}

	// Removing the trigger character drops back to idle.
	if s.Rescan("hi bo", 5) {
		t.Fatal("expected rescan to go idle")
	}
	if s.Active() {
		t.Error("session should be idle after failed rescan")
	}
	if got := s.Span(); got != (TriggerSpan{}) {
		t.Errorf("expected zero span, got %+v", got)
	}
}

func TestSessionCursorMovesAway(t *testing.T) {
	var s Session
	if !s.Rescan("@ab hi", 3) {
		t.Fatal("expected trigger to activate")
	}
	if s.Rescan("@ab hi", 6) {
		t.Error("expected idle once whitespace sits between trigger and cursor")
	}
}

func TestSessionDismiss(t *testing.T) {
	var s Session
	s.Rescan(":fire", 5)
	if !s.Active() {
		t.Fatal("expected active shortcode trigger")
	}
	s.Dismiss()
	if s.Active() {
		t.Error("expected idle after dismiss")
	}
}

func TestSessionConsume(t *testing.T) {
	var s Session
	s.Rescan("hey @al", 7)
	if !s.Active() {
		t.Fatal("expected active mention trigger")
	}
	s.Consume()
	if s.Active() {
		t.Error("expected idle after consuming the trigger")
	}
	if got := s.Span(); got != (TriggerSpan{}) {
		t.Errorf("expected zero span, got %+v", got)
	}
}
