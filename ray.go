package main

import "fmt"

// Directive is one ray cast (or single-square placement) of a rule.
type Directive struct {
	Vec    Vector `json:"vec"`
	Steps  int    `json:"steps"`
	Marker Marker `json:"marker"`
	// Place paints only origin+Vec, with any offset including the origin
	// itself, and never escalates the marker.
	Place bool `json:"place,omitempty"`
	// Lame leaps can be blocked, so they keep their marker.
	Lame bool `json:"lame,omitempty"`
	// Relaxed ignores the board's edge margin for this directive only.
	Relaxed bool `json:"relaxed,omitempty"`
}

// Ray walks origin+k*(dx,dy) for k = 1..steps.
func Ray(dx, dy, steps int, m Marker) Directive {
	return Directive{Vec: Vector{DX: dx, DY: dy}, Steps: steps, Marker: m}
}

// Place paints the single square origin+(dx,dy) with m.
func Place(dx, dy int, m Marker) Directive {
	return Directive{Vec: Vector{DX: dx, DY: dy}, Steps: 1, Marker: m, Place: true}
}

// Blockable marks a leap whose path can be blocked.
func (d Directive) Blockable() Directive {
	d.Lame = true
	return d
}

// IgnoreMargin lets the directive reach the columns outside the edge margin.
func (d Directive) IgnoreMargin() Directive {
	d.Relaxed = true
	return d
}

func (d Directive) validate() error {
	if d.Place {
		return nil
	}
	if d.Steps < 1 {
		return fmt.Errorf("%w: steps %d", ErrInvalidDirective, d.Steps)
	}
	if d.Vec.isZero() || abs(d.Vec.DX) > 2 || abs(d.Vec.DY) > 2 {
		return fmt.Errorf("%w: vector (%d,%d)", ErrInvalidDirective, d.Vec.DX, d.Vec.DY)
	}
	return nil
}

// Effect is one square painted by a gesture.
type Effect struct {
	Square Square `json:"square"`
	Marker Marker `json:"marker"`
}

// DoubleStepStyle selects how a ray of exactly two steps is painted.
type DoubleStepStyle uint8

const (
	// PlainStep paints the first step as requested and the second as a jump.
	PlainStep DoubleStepStyle = iota
	// ShootStep paints the first step as a first-step square (it can be
	// shot or captured en passant) and the second as a jump.
	ShootStep
	// CaptureStep paints the first step as a first-step square and the
	// second as a capture.
	CaptureStep
)

func (s DoubleStepStyle) split(m Marker) (first, rest Marker) {
	switch s {
	case ShootStep:
		return m.FirstStep(), m.Jump()
	case CaptureStep:
		return m.FirstStep(), Capture
	default:
		return m, m.Jump()
	}
}

// Caster turns directives into effects for one variant.
type Caster struct {
	// Escalate paints leaps with the jump variant of their marker.
	Escalate   bool
	DoubleStep DoubleStepStyle
}

// Cast returns the squares d paints from origin, in walking order. The ray
// stops at the first square off the board.
func (c Caster) Cast(b *Board, origin Square, d Directive) []Effect {
	if d.Place {
		sq := origin.Add(d.Vec, 1)
		if !b.InBounds(sq, d.Relaxed) {
			return nil
		}
		return []Effect{{Square: sq, Marker: d.Marker}}
	}

	m := d.Marker
	if c.Escalate && d.Vec.isLeap() && !d.Lame {
		m = m.Jump()
	}
	first, rest := m, m
	if d.Steps == 2 {
		first, rest = c.DoubleStep.split(m)
	}

	out := make([]Effect, 0, min(d.Steps, max(b.width, b.height)))
	for k := 1; k <= d.Steps; k++ {
		sq := origin.Add(d.Vec, k)
		if !b.InBounds(sq, d.Relaxed) {
			break
		}
		mk := rest
		if k == 1 {
			mk = first
		}
		out = append(out, Effect{Square: sq, Marker: mk})
	}
	return out
}

// Forward is the ray towards +Y.
func Forward(steps int, m Marker) []Directive {
	return []Directive{Ray(0, 1, steps, m)}
}

func Backward(steps int, m Marker) []Directive {
	return []Directive{Ray(0, -1, steps, m)}
}

func Vertical(steps int, m Marker) []Directive {
	return join(Forward(steps, m), Backward(steps, m))
}

func Sideways(steps int, m Marker) []Directive {
	return []Directive{Ray(1, 0, steps, m), Ray(-1, 0, steps, m)}
}

func ForwardDiagonal(steps int, m Marker) []Directive {
	return []Directive{Ray(1, 1, steps, m), Ray(-1, 1, steps, m)}
}

func BackwardDiagonal(steps int, m Marker) []Directive {
	return []Directive{Ray(1, -1, steps, m), Ray(-1, -1, steps, m)}
}

func Diagonal(steps int, m Marker) []Directive {
	return join(ForwardDiagonal(steps, m), BackwardDiagonal(steps, m))
}

func Orthogonal(steps int, m Marker) []Directive {
	return join(Vertical(steps, m), Sideways(steps, m))
}

var knightVectors = []Vector{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

// KnightLeaps casts along the eight knight offsets.
func KnightLeaps(steps int, m Marker) []Directive {
	return Leaps(steps, m, knightVectors...)
}

// Leaps casts one ray per vector.
func Leaps(steps int, m Marker, vecs ...Vector) []Directive {
	out := make([]Directive, 0, len(vecs))
	for _, v := range vecs {
		out = append(out, Ray(v.DX, v.DY, steps, m))
	}
	return out
}

// Dabbaba are the four orthogonal two-square leaps in the rule pages' order.
var dabbabaVectors = []Vector{{2, 0}, {-2, 0}, {0, -2}, {0, 2}}

// Alfil are the four diagonal two-square leaps.
var alfilVectors = []Vector{{2, 2}, {-2, 2}, {2, -2}, {-2, -2}}

func join(parts ...[]Directive) []Directive {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]Directive, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
