package main

import "sync"

// Event types pushed to diagram viewers.
const (
	eventDiagramState = "diagram_state"
	eventCellUpdate   = "cell_update"
	eventDescription  = "description"
)

// CellUpdate is sent whenever a gesture repaints a cell.
type CellUpdate struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Token string `json:"token"`
}

// PaneUpdate is sent whenever the description pane changes.
type PaneUpdate struct {
	Type  string   `json:"type"`
	Lines []string `json:"lines"`
}

// Snapshot is a copy of what a diagram currently shows.
type Snapshot struct {
	Type       string     `json:"type,omitempty"`
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Variant    string     `json:"variant"`
	CellPrefix string     `json:"cell_prefix"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Cells      [][]string `json:"cells"` // top row first
	Pane       []string   `json:"pane"`
}

// Token returns the token on sq. Y counts from the bottom row.
func (s *Snapshot) Token(sq Square) string {
	return s.Cells[s.Height-1-sq.Y][sq.X]
}

// DiagramState is the live, shared copy of a diagram. It is the Surface and
// Pane a Session paints on; every change is handed to publish.
type DiagramState struct {
	mu      sync.Mutex
	diagram *Diagram
	prefix  string
	cells   [][]string // top row first, like Diagram.Cells
	pane    []string
	publish func(evt any)
}

// NewDiagramState copies the cells of d. publish may be nil.
func NewDiagramState(d *Diagram, prefix string, publish func(evt any)) *DiagramState {
	cells := make([][]string, len(d.Cells))
	for i, row := range d.Cells {
		cells[i] = make([]string, len(row))
		copy(cells[i], row)
	}
	if publish == nil {
		publish = func(any) {}
	}
	return &DiagramState{
		diagram: d,
		prefix:  prefix,
		cells:   cells,
		pane:    BlankPane(),
		publish: publish,
	}
}

func (s *DiagramState) Size() (int, int) {
	return s.diagram.Width, s.diagram.Height
}

func (s *DiagramState) inBounds(sq Square) bool {
	return sq.X >= 0 && sq.X < s.diagram.Width && sq.Y >= 0 && sq.Y < s.diagram.Height
}

// Cell returns the token on sq, or false off the bounding box.
func (s *DiagramState) Cell(sq Square) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.inBounds(sq) {
		return "", false
	}
	return s.cells[s.diagram.Height-1-sq.Y][sq.X], true
}

// SetCell sets the token on sq. Returns false if out of bounds.
func (s *DiagramState) SetCell(sq Square, token string) bool {
	s.mu.Lock()
	if !s.inBounds(sq) {
		s.mu.Unlock()
		return false
	}
	s.cells[s.diagram.Height-1-sq.Y][sq.X] = token
	s.mu.Unlock()

	s.publish(CellUpdate{
		Type:  eventCellUpdate,
		ID:    sq.ID(s.prefix),
		X:     sq.X,
		Y:     sq.Y,
		Token: token,
	})
	return true
}

// Show fills the pane with d.
func (s *DiagramState) Show(d Description) {
	s.setPane(d.Lines())
}

// Clear blanks the pane.
func (s *DiagramState) Clear() {
	s.setPane(BlankPane())
}

func (s *DiagramState) setPane(lines []string) {
	s.mu.Lock()
	s.pane = lines
	s.mu.Unlock()
	s.publish(PaneUpdate{Type: eventDescription, Lines: lines})
}

// Snapshot returns a copy of the current cells and pane.
func (s *DiagramState) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	cells := make([][]string, len(s.cells))
	for i, row := range s.cells {
		cells[i] = make([]string, len(row))
		copy(cells[i], row)
	}
	pane := make([]string, len(s.pane))
	copy(pane, s.pane)
	return &Snapshot{
		Type:       eventDiagramState,
		ID:         s.diagram.ID,
		Title:      s.diagram.Title,
		Variant:    s.diagram.Variant,
		CellPrefix: s.prefix,
		Width:      s.diagram.Width,
		Height:     s.diagram.Height,
		Cells:      cells,
		Pane:       pane,
	}
}
