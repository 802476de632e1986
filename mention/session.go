package mention

// State enumerates the composer trigger states.
type State int

const (
	// StateIdle means no trigger span is active.
	StateIdle State = iota
	// StateActive means a trigger span is live and suggestions apply.
	StateActive
)

// Session tracks the trigger state machine across input events. The zero
// value is an idle session. Sessions carry no text; every transition is
// driven by the display value and cursor supplied to Rescan.
type Session struct {
	state State
	span  TriggerSpan
}

// Rescan recomputes the active trigger from the current display text and
// cursor, replacing whatever was active before, and reports whether a
// trigger is active afterwards.
func (s *Session) Rescan(display string, cursor int) bool {
	span, ok := Scan(display, cursor)
	if !ok {
		s.Dismiss()
		return false
	}
	s.state = StateActive
	s.span = span
	return true
}

// Dismiss drops the active trigger, as on Escape or a click elsewhere.
func (s *Session) Dismiss() {
	s.state = StateIdle
	s.span = TriggerSpan{}
}

// Consume drops the active trigger after a candidate selection.
func (s *Session) Consume() {
	s.Dismiss()
}

// Active reports whether a trigger span is live.
func (s *Session) Active() bool {
	return s.state == StateActive
}

// Span returns the active trigger span; meaningful only while Active.
func (s *Session) Span() TriggerSpan {
	return s.span
}
