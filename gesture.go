package main

import "sync"

// Outcome reports what a press or release did.
type Outcome struct {
	Rule    *Rule    `json:"rule,omitempty"`
	Effects []Effect `json:"effects,omitempty"`
	// Gesture identifies an accepted press. Only a release carrying it
	// ends the gesture through ReleaseGesture.
	Gesture string `json:"gesture,omitempty"`
	// Ignored is set for a press during an active gesture and for a
	// release without one.
	Ignored bool `json:"ignored,omitempty"`
}

// Session is the press/release state machine of one diagram. Surface and
// pane are only touched while the session lock is held.
type Session struct {
	mu      sync.Mutex
	table   *Table
	surface Surface
	pane    Pane
	margin  *int
	ranks   int
	board   *Board

	active  bool
	gesture string
	origin  Square
	mod     Modifier
	rule    *Rule
	effects []Effect
}

// NewSession binds a rule table to a rendered diagram. Nothing is read from
// the surface until the first press.
func NewSession(t *Table, s Surface, p Pane) *Session {
	return &Session{table: t, surface: s, pane: p}
}

// SetMargin overrides the edge margin probed from the diagram.
func (s *Session) SetMargin(m int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.margin = &m
	if s.board != nil {
		s.board.margin = m
	}
}

// SetRanks limits the playing area to the bottom n rows. Rows above stay
// pressable but are never painted.
func (s *Session) SetRanks(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ranks = n
	if s.board != nil && n > 0 {
		s.board.ranks = min(n, s.board.height)
	}
}

func (s *Session) init() error {
	if s.board != nil {
		return nil
	}
	b, err := NewBoard(s.surface)
	if err != nil {
		return err
	}
	if s.margin != nil {
		b.margin = *s.margin
	}
	if s.ranks > 0 {
		b.ranks = min(s.ranks, b.height)
	}
	s.board = b
	return nil
}

// Press highlights the moves of the piece on sq. A press during an active
// gesture is dropped. A press on a square without a rule still starts a
// gesture, which the next release ends.
func (s *Session) Press(sq Square, mod Modifier) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.init(); err != nil {
		return Outcome{}, err
	}
	if s.active {
		return Outcome{Ignored: true}, nil
	}

	s.active, s.origin, s.mod = true, sq, mod
	s.gesture = generateID()
	s.rule, s.effects = nil, nil
	r, ok := s.table.Resolve(sq, mod)
	if !ok {
		return Outcome{Gesture: s.gesture}, nil
	}
	s.rule = r
	s.effects = s.table.Effects(s.board, sq, r)
	for _, e := range s.effects {
		s.board.Paint(e.Square, MarkerToken(e.Marker))
	}
	s.pane.Show(r.Description())
	return Outcome{Rule: r, Effects: s.effects, Gesture: s.gesture}, nil
}

// PressSigned is Press for pages that encode the modifier in the signs of
// the coordinates.
func (s *Session) PressSigned(x, y int) (Outcome, error) {
	sq, mod := DecodeSigned(x, y)
	return s.Press(sq, mod)
}

// Release undoes the active gesture: every painted square gets its original
// token back and the pane is cleared.
func (s *Session) Release() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return Outcome{Ignored: true}
	}
	return s.release()
}

// ReleaseGesture is Release for shared diagrams: it only ends the gesture
// started by the press that returned id.
func (s *Session) ReleaseGesture(id string) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active || id == "" || id != s.gesture {
		return Outcome{Ignored: true}
	}
	return s.release()
}

func (s *Session) release() Outcome {
	s.board.Restore()
	if s.rule != nil {
		s.pane.Clear()
	}
	out := Outcome{Rule: s.rule, Effects: s.effects, Gesture: s.gesture}
	s.active, s.gesture, s.rule, s.effects = false, "", nil, nil
	return out
}

// Active reports the pressed square and modifier of the current gesture.
func (s *Session) Active() (Square, Modifier, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.origin, s.mod, s.active
}

// Margin returns the edge margin in use, or -1 before the first press.
func (s *Session) Margin() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.board == nil {
		return -1
	}
	return s.board.margin
}
