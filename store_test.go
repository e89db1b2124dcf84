package main

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func newTestDiagram(w, h int) *Diagram {
	cells := make([][]string, h)
	for i := range cells {
		cells[i] = make([]string, w)
	}
	return &Diagram{Title: "Test", Variant: "chu", Width: w, Height: h, Cells: cells}
}

func TestSaveAndGetDiagram(t *testing.T) {
	s := NewStore()
	d, err := s.SaveDiagram(newTestDiagram(10, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.ID == "" {
		t.Fatal("expected diagram to have an ID")
	}
	if got := s.GetDiagram(d.ID); got == nil {
		t.Fatal("expected to find saved diagram")
	}
	if got := s.GetDiagram("nonexistent"); got != nil {
		t.Fatal("expected nil for unknown ID")
	}
}

func TestSaveDiagramValidates(t *testing.T) {
	s := NewStore()

	bad := newTestDiagram(10, 10)
	bad.Cells = bad.Cells[1:]
	if _, err := s.SaveDiagram(bad); !errors.Is(err, ErrInvalidDiagram) {
		t.Fatalf("expected ErrInvalidDiagram for short board, got %v", err)
	}

	unknown := newTestDiagram(10, 10)
	unknown.Variant = "xiangqi"
	if _, err := s.SaveDiagram(unknown); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}

	d := newTestDiagram(10, 10)
	d.ID = "taken"
	if _, err := s.SaveDiagram(d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.SaveDiagram(d); !errors.Is(err, ErrInvalidDiagram) {
		t.Fatalf("expected duplicate ID to be rejected, got %v", err)
	}
}

func TestGetDiagramCopy(t *testing.T) {
	s := NewStore()
	d, _ := s.SaveDiagram(newTestDiagram(4, 4))

	got := s.GetDiagram(d.ID)
	got.Cells[0][0] = "WhiteKing" // mutate the copy

	if s.GetDiagram(d.ID).Cells[0][0] != "" {
		t.Fatal("GetDiagram should return a copy, not a reference")
	}
}

func TestListDiagrams(t *testing.T) {
	s := NewStore()
	s.SaveDiagram(newTestDiagram(5, 5))
	s.SaveDiagram(newTestDiagram(8, 8))

	list := s.ListDiagrams()
	if len(list) != 2 {
		t.Fatalf("expected 2 diagrams, got %d", len(list))
	}
	// Most recent first.
	if list[0].CreatedAt.Before(list[1].CreatedAt) {
		t.Fatal("expected diagrams sorted by descending creation time")
	}
}

func TestLoadBuiltins(t *testing.T) {
	s := NewStore()
	if err := s.LoadBuiltins(); err != nil {
		t.Fatalf("load builtins: %v", err)
	}
	for _, id := range []string{"chu-basic", "chu", "cwda", "fairy", "seirawan-gating"} {
		if s.GetDiagram(id) == nil {
			t.Errorf("builtin diagram %q missing", id)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.json")
	data := `[{"id":"mini","title":"Mini","variant":"fairy","width":2,"height":2,"cells":[["",""],["WhiteKing",""]]}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore()
	if err := s.LoadFile(path); err != nil {
		t.Fatalf("load file: %v", err)
	}
	d := s.GetDiagram("mini")
	if d == nil {
		t.Fatal("expected diagram from file")
	}
	if got := d.Token(Square{X: 0, Y: 0}); got != "WhiteKing" {
		t.Fatalf("expected WhiteKing on the bottom-left square, got %q", got)
	}

	if err := s.LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpenSharesSession(t *testing.T) {
	s := NewStore()

	if _, err := s.Open("unknown", nil); !errors.Is(err, ErrDiagramNotFound) {
		t.Fatalf("expected ErrDiagramNotFound, got %v", err)
	}

	d, _ := s.SaveDiagram(newTestDiagram(10, 10))
	a, err := s.Open(d.ID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := s.Open(d.ID, nil)
	if a != b {
		t.Fatal("expected one live session per diagram")
	}
	if a.Table.Name != "chu" {
		t.Fatalf("expected chu table, got %s", a.Table.Name)
	}
}

func TestOpenAppliesMargin(t *testing.T) {
	s := NewStore()
	d := newTestDiagram(10, 10)
	margin := 1
	d.Margin = &margin
	d, _ = s.SaveDiagram(d)

	live, _ := s.Open(d.ID, nil)
	if _, err := live.Session.Press(Square{X: 7, Y: 5}, 0); err != nil {
		t.Fatalf("press: %v", err)
	}
	if got := live.Session.Margin(); got != 1 {
		t.Fatalf("expected margin 1, got %d", got)
	}
}

func TestReserveRankIsNeverPainted(t *testing.T) {
	s := NewStore()
	if err := s.LoadBuiltins(); err != nil {
		t.Fatalf("load builtins: %v", err)
	}
	live, err := s.Open("seirawan-gating", nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	before := live.State.Snapshot()

	hawk := Square{X: 5, Y: 10}
	out, err := live.Session.Press(hawk, 0)
	if err != nil {
		t.Fatalf("press: %v", err)
	}
	if out.Rule == nil || out.Rule.Title != "Hawk" {
		t.Fatalf("expected the reserve Hawk rule, got %+v", out.Rule)
	}
	if len(out.Effects) == 0 {
		t.Fatal("expected the Hawk to highlight moves")
	}
	for _, e := range out.Effects {
		if e.Square.Y >= 10 {
			t.Fatalf("reserve rank square %v painted with %v", e.Square, e.Marker)
		}
	}
	during := live.State.Snapshot()
	for x, tok := range during.Cells[0] {
		if tok != before.Cells[0][x] {
			t.Fatalf("reserve rank cell %d changed from %q to %q", x, before.Cells[0][x], tok)
		}
	}

	live.Session.Release()
}

func TestOpenPublishesChanges(t *testing.T) {
	s := NewStore()
	d, _ := s.SaveDiagram(newTestDiagram(10, 10))

	var mu sync.Mutex
	var events []any
	live, _ := s.Open(d.ID, func(evt any) {
		mu.Lock()
		events = append(events, evt)
		mu.Unlock()
	})

	out, err := live.Session.Press(Square{X: 6, Y: 6}, 0) // King
	if err != nil {
		t.Fatalf("press: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	// One cell_update per effect, then the description.
	if len(events) != len(out.Effects)+1 {
		t.Fatalf("expected %d events, got %d", len(out.Effects)+1, len(events))
	}
	if _, ok := events[0].(CellUpdate); !ok {
		t.Fatalf("expected CellUpdate first, got %T", events[0])
	}
	pane, ok := events[len(events)-1].(PaneUpdate)
	if !ok || pane.Lines[0] != "King" {
		t.Fatalf("expected King description last, got %+v", events[len(events)-1])
	}
}

func TestConcurrentGestures(t *testing.T) {
	s := NewStore()
	d, _ := s.SaveDiagram(newTestDiagram(10, 10))
	live, _ := s.Open(d.ID, nil)
	before := live.State.Snapshot()

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			live.Session.Press(Square{X: 2 + i%6, Y: 2 + i%6}, Modifier(i%4))
			live.State.Snapshot()
			live.Session.Release()
		}(i)
	}
	wg.Wait()

	live.Session.Release()
	after := live.State.Snapshot()
	for y := range after.Cells {
		for x := range after.Cells[y] {
			if after.Cells[y][x] != before.Cells[y][x] {
				t.Fatalf("cell %d,%d not restored: %q", x, y, after.Cells[y][x])
			}
		}
	}
}
