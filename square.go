package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Square addresses one cell of a diagram. Y grows towards the top of the
// board, so "forward" for the side at the bottom is +Y.
type Square struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Vector is a step between squares.
type Vector struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// Add returns the square reached by k steps of v.
func (s Square) Add(v Vector, k int) Square {
	return Square{X: s.X + k*v.DX, Y: s.Y + k*v.DY}
}

// ID renders the cell identifier used by the diagram page, e.g. "sq3x5"
// with prefix "sq" or "3x5" without one.
func (s Square) ID(prefix string) string {
	return prefix + strconv.Itoa(s.X) + "x" + strconv.Itoa(s.Y)
}

func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.X, s.Y)
}

// ParseSquareID is the inverse of Square.ID.
func ParseSquareID(id, prefix string) (Square, error) {
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok {
		return Square{}, fmt.Errorf("cell id %q: missing prefix %q", id, prefix)
	}
	xs, ys, ok := strings.Cut(rest, "x")
	if !ok {
		return Square{}, fmt.Errorf("cell id %q: missing separator", id)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Square{}, fmt.Errorf("cell id %q: %w", id, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Square{}, fmt.Errorf("cell id %q: %w", id, err)
	}
	return Square{X: x, Y: y}, nil
}

// isLeap reports whether v skips over at least one square.
func (v Vector) isLeap() bool {
	return abs(v.DX) > 1 || abs(v.DY) > 1
}

func (v Vector) isZero() bool {
	return v.DX == 0 && v.DY == 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
