package main

import "fmt"

// edgeSentinel is the second byte of the token rendered in the corner cell
// of diagrams whose board is narrower than its bounding box.
const edgeSentinel = ' '

// offBoardToken is the token of a cell outside a cut board.
const offBoardToken = "  "

// Surface is the rendered diagram: one opaque token per cell.
type Surface interface {
	Size() (width, height int)
	Cell(sq Square) (string, bool)
	SetCell(sq Square, token string) bool
}

// Board tracks the tokens a gesture has overwritten so they can be put back.
type Board struct {
	surface Surface
	width   int
	height  int
	ranks   int
	margin  int
	saved   map[Square]string
	order   []Square
}

// NewBoard reads the whole surface once. A surface that cannot report every
// cell is not rendered yet and is rejected.
func NewBoard(s Surface) (*Board, error) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrDiagramNotRendered, w, h)
	}
	for y := range h {
		for x := range w {
			if _, ok := s.Cell(Square{X: x, Y: y}); !ok {
				return nil, fmt.Errorf("%w: cell (%d,%d) unreadable", ErrDiagramNotRendered, x, y)
			}
		}
	}
	corner, _ := s.Cell(Square{})
	return &Board{
		surface: s,
		width:   w,
		height:  h,
		ranks:   h,
		margin:  probeMargin(corner),
		saved:   make(map[Square]string),
	}, nil
}

func probeMargin(corner string) int {
	if len(corner) > 1 && corner[1] == edgeSentinel {
		return 1
	}
	return 0
}

// Margin is the number of columns excluded on each side.
func (b *Board) Margin() int { return b.margin }

// Size returns the bounding box of the board.
func (b *Board) Size() (int, int) { return b.width, b.height }

// Ranks is the number of playable rows counted from the bottom.
func (b *Board) Ranks() int { return b.ranks }

// InBounds reports whether sq is on the playing area. With relaxed set the
// edge margin is ignored. Reserve rows above the playing area are never in
// bounds.
func (b *Board) InBounds(sq Square, relaxed bool) bool {
	lo, hi := b.margin, b.width-b.margin
	if relaxed {
		lo, hi = 0, b.width
	}
	return sq.X >= lo && sq.X < hi && sq.Y >= 0 && sq.Y < b.ranks
}

// Paint writes token into sq, remembering the original token the first
// time sq is painted since the last Restore.
func (b *Board) Paint(sq Square, token string) {
	if _, ok := b.saved[sq]; !ok {
		orig, _ := b.surface.Cell(sq)
		b.saved[sq] = orig
		b.order = append(b.order, sq)
	}
	b.surface.SetCell(sq, token)
}

// Restore puts back every saved token and returns the squares it touched.
func (b *Board) Restore() []Square {
	restored := b.order
	for _, sq := range restored {
		b.surface.SetCell(sq, b.saved[sq])
	}
	b.saved = make(map[Square]string)
	b.order = nil
	return restored
}

// Touched reports the squares painted since the last Restore.
func (b *Board) Touched() []Square {
	out := make([]Square, len(b.order))
	copy(out, b.order)
	return out
}
