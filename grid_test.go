package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDiagram builds a fairy diagram of empty squares with the given tokens.
func testDiagram(w, h int, tokens map[Square]string) *Diagram {
	cells := make([][]string, h)
	for i := range cells {
		cells[i] = make([]string, w)
	}
	for sq, tok := range tokens {
		cells[h-1-sq.Y][sq.X] = tok
	}
	return &Diagram{ID: "test", Title: "Test", Variant: "fairy", Width: w, Height: h, Cells: cells}
}

func testBoard(t *testing.T, d *Diagram) (*Board, *DiagramState) {
	t.Helper()
	state := NewDiagramState(d, "", nil)
	b, err := NewBoard(state)
	require.NoError(t, err)
	return b, state
}

// unrenderedSurface has a size but cannot report its cells yet.
type unrenderedSurface struct{ w, h int }

func (s unrenderedSurface) Size() (int, int) { return s.w, s.h }

func (s unrenderedSurface) Cell(Square) (string, bool) { return "", false }

func (s unrenderedSurface) SetCell(Square, string) bool { return false }

func TestNewBoardRejectsUnrenderedSurface(t *testing.T) {
	_, err := NewBoard(unrenderedSurface{w: 10, h: 10})
	assert.ErrorIs(t, err, ErrDiagramNotRendered)

	_, err = NewBoard(unrenderedSurface{})
	assert.ErrorIs(t, err, ErrDiagramNotRendered)
}

func TestBoardProbesMargin(t *testing.T) {
	full, _ := testBoard(t, testDiagram(10, 10, nil))
	assert.Equal(t, 0, full.Margin())

	cut, _ := testBoard(t, testDiagram(10, 10, map[Square]string{{X: 0, Y: 0}: offBoardToken}))
	assert.Equal(t, 1, cut.Margin())

	// Only the second byte matters.
	piece, _ := testBoard(t, testDiagram(10, 10, map[Square]string{{X: 0, Y: 0}: "WhiteRook"}))
	assert.Equal(t, 0, piece.Margin())
}

func TestBoardInBounds(t *testing.T) {
	b, _ := testBoard(t, testDiagram(10, 8, map[Square]string{{}: offBoardToken}))

	assert.True(t, b.InBounds(Square{X: 1, Y: 0}, false))
	assert.True(t, b.InBounds(Square{X: 8, Y: 7}, false))
	assert.False(t, b.InBounds(Square{X: 0, Y: 3}, false))
	assert.False(t, b.InBounds(Square{X: 9, Y: 3}, false))
	assert.False(t, b.InBounds(Square{X: 4, Y: 8}, false))
	assert.False(t, b.InBounds(Square{X: 4, Y: -1}, false))

	assert.True(t, b.InBounds(Square{X: 0, Y: 3}, true))
	assert.True(t, b.InBounds(Square{X: 9, Y: 3}, true))
	assert.False(t, b.InBounds(Square{X: 10, Y: 3}, true))
}

func TestBoardRanksExcludeReserveRows(t *testing.T) {
	b, _ := testBoard(t, testDiagram(10, 11, nil))
	assert.Equal(t, 11, b.Ranks())
	assert.True(t, b.InBounds(Square{X: 4, Y: 10}, false))

	b.ranks = 10
	assert.True(t, b.InBounds(Square{X: 4, Y: 9}, false))
	assert.False(t, b.InBounds(Square{X: 4, Y: 10}, false))
	assert.False(t, b.InBounds(Square{X: 4, Y: 10}, true))
}

func TestBoardRestoreKeepsFirstOriginal(t *testing.T) {
	sq := Square{X: 3, Y: 3}
	b, state := testBoard(t, testDiagram(8, 8, map[Square]string{sq: "WhiteQueen"}))

	b.Paint(sq, "yellow")
	b.Paint(sq, "orange")
	b.Paint(Square{X: 4, Y: 4}, "red")

	tok, _ := state.Cell(sq)
	assert.Equal(t, "orange", tok)
	assert.Equal(t, []Square{sq, {X: 4, Y: 4}}, b.Touched())

	restored := b.Restore()
	assert.Len(t, restored, 2)
	tok, _ = state.Cell(sq)
	assert.Equal(t, "WhiteQueen", tok)
	tok, _ = state.Cell(Square{X: 4, Y: 4})
	assert.Equal(t, "", tok)
	assert.Empty(t, b.Touched())
	assert.Empty(t, b.Restore())
}
