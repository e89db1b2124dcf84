package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/exp/maps"
)

//go:embed diagrams.json
var builtinDiagrams []byte

// Diagram is a movement diagram as published: a board of piece tokens and
// the variant whose rules explain them.
type Diagram struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Variant string `json:"variant"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	// Cells are listed top row first; see Token.
	Cells [][]string `json:"cells"`
	// Modifiers is the modifier a plain press uses on a square, keyed by
	// "{x}x{y}".
	Modifiers map[string]Modifier `json:"modifiers,omitempty"`
	// Margin overrides the margin probed from the corner cell.
	Margin *int `json:"margin,omitempty"`
	// Ranks is the number of playing rows counted from the bottom. Rows
	// above it hold reserve pieces that can be pressed but never painted.
	// Zero means every row is playable.
	Ranks     int       `json:"ranks,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the board shape and the variant name.
func (d *Diagram) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidDiagram, d.Width, d.Height)
	}
	if len(d.Cells) != d.Height {
		return fmt.Errorf("%w: %d rows for height %d", ErrInvalidDiagram, len(d.Cells), d.Height)
	}
	for i, row := range d.Cells {
		if len(row) != d.Width {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDiagram, i, len(row), d.Width)
		}
	}
	if d.Margin != nil && (*d.Margin < 0 || 2*(*d.Margin) >= d.Width) {
		return fmt.Errorf("%w: margin %d", ErrInvalidDiagram, *d.Margin)
	}
	if d.Ranks < 0 || d.Ranks > d.Height {
		return fmt.Errorf("%w: ranks %d for height %d", ErrInvalidDiagram, d.Ranks, d.Height)
	}
	for k, m := range d.Modifiers {
		if _, err := ParseSquareID(k, ""); err != nil {
			return fmt.Errorf("%w: modifier key: %v", ErrInvalidDiagram, err)
		}
		if m > maxModifier {
			return fmt.Errorf("%w: modifier %d on %s", ErrInvalidDiagram, m, k)
		}
	}
	if _, err := LookupVariant(d.Variant); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDiagram, err)
	}
	return nil
}

// Token returns the token on sq. Y counts from the bottom row.
func (d *Diagram) Token(sq Square) string {
	return d.Cells[d.Height-1-sq.Y][sq.X]
}

// ModifierAt is the modifier a press on sq uses when none is given.
func (d *Diagram) ModifierAt(sq Square) Modifier {
	return d.Modifiers[sq.ID("")]
}

// Clone returns a deep copy, so callers cannot mutate stored diagrams.
func (d *Diagram) Clone() *Diagram {
	cp := *d
	cp.Cells = make([][]string, len(d.Cells))
	for i, row := range d.Cells {
		cp.Cells[i] = make([]string, len(row))
		copy(cp.Cells[i], row)
	}
	if d.Modifiers != nil {
		cp.Modifiers = make(map[string]Modifier, len(d.Modifiers))
		maps.Copy(cp.Modifiers, d.Modifiers)
	}
	if d.Margin != nil {
		m := *d.Margin
		cp.Margin = &m
	}
	return &cp
}

// DecodeDiagrams reads a JSON array of diagrams and validates each one.
func DecodeDiagrams(r io.Reader) ([]*Diagram, error) {
	var list []*Diagram
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode diagrams: %w", err)
	}
	for _, d := range list {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("diagram %q: %w", d.ID, err)
		}
	}
	return list, nil
}

// LoadDiagramsFile reads extra diagrams from a file on disk.
func LoadDiagramsFile(path string) ([]*Diagram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeDiagrams(f)
}
