package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func squares(effects []Effect) []Square {
	out := make([]Square, len(effects))
	for i, e := range effects {
		out[i] = e.Square
	}
	return out
}

func TestCastWalksUntilSteps(t *testing.T) {
	b, _ := testBoard(t, testDiagram(10, 10, nil))

	got := Caster{}.Cast(b, Square{X: 3, Y: 5}, Ray(1, 1, 3, Move))
	assert.Equal(t, []Square{{4, 6}, {5, 7}, {6, 8}}, squares(got))
	for _, e := range got {
		assert.Equal(t, Move, e.Marker)
	}
}

func TestCastStopsAtEdge(t *testing.T) {
	b, _ := testBoard(t, testDiagram(10, 10, nil))

	got := Caster{}.Cast(b, Square{X: 7, Y: 7}, Ray(1, 1, slider, Move))
	assert.Equal(t, []Square{{8, 8}, {9, 9}}, squares(got))

	assert.Empty(t, Caster{}.Cast(b, Square{X: 9, Y: 0}, Ray(1, 0, slider, Move)))
}

func TestCastRespectsMargin(t *testing.T) {
	b, _ := testBoard(t, testDiagram(10, 10, map[Square]string{{}: offBoardToken}))

	got := Caster{}.Cast(b, Square{X: 6, Y: 0}, Ray(1, 0, slider, Move))
	assert.Equal(t, []Square{{7, 0}, {8, 0}}, squares(got))

	got = Caster{}.Cast(b, Square{X: 6, Y: 0}, Ray(1, 0, slider, Move).IgnoreMargin())
	assert.Equal(t, []Square{{7, 0}, {8, 0}, {9, 0}}, squares(got))
}

func TestCastEscalatesLeaps(t *testing.T) {
	b, _ := testBoard(t, testDiagram(10, 10, nil))
	origin := Square{X: 4, Y: 4}

	plain := Caster{}.Cast(b, origin, Ray(2, 1, 1, Move))
	assert.Equal(t, []Effect{{Square{6, 5}, Move}}, plain)

	c := Caster{Escalate: true}
	assert.Equal(t, []Effect{{Square{6, 5}, Jump}}, c.Cast(b, origin, Ray(2, 1, 1, Move)))
	assert.Equal(t, []Effect{{Square{6, 5}, Move}}, c.Cast(b, origin, Ray(2, 1, 1, Move).Blockable()))
	assert.Equal(t, []Effect{{Square{6, 5}, CaptureOnly}}, c.Cast(b, origin, Ray(2, 1, 1, CaptureOnly)))
	assert.Equal(t, []Effect{{Square{5, 5}, Move}}, c.Cast(b, origin, Ray(1, 1, 1, Move)))
}

func TestCastDoubleStepStyles(t *testing.T) {
	b, _ := testBoard(t, testDiagram(10, 10, nil))
	origin := Square{X: 4, Y: 4}

	tests := []struct {
		name  string
		style DoubleStepStyle
		m     Marker
		want  []Marker
	}{
		{"plain", PlainStep, Move, []Marker{Move, Jump}},
		{"shoot", ShootStep, Move, []Marker{FirstStep, Jump}},
		{"capture", CaptureStep, Move, []Marker{FirstStep, Capture}},
		{"non-capture keeps marker", ShootStep, NonCaptureOnly, []Marker{NonCaptureOnly, NonCaptureOnly}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Caster{DoubleStep: tt.style}.Cast(b, origin, Ray(0, 1, 2, tt.m))
			assert.Equal(t, []Square{{4, 5}, {4, 6}}, squares(got))
			assert.Equal(t, tt.want, []Marker{got[0].Marker, got[1].Marker})
		})
	}
}

func TestCastDoubleStepClippedAtEdge(t *testing.T) {
	b, _ := testBoard(t, testDiagram(10, 10, nil))

	got := Caster{DoubleStep: ShootStep}.Cast(b, Square{X: 4, Y: 8}, Ray(0, 1, 2, Move))
	assert.Equal(t, []Effect{{Square{4, 9}, FirstStep}}, got)
}

func TestCastPlace(t *testing.T) {
	b, _ := testBoard(t, testDiagram(10, 10, nil))
	origin := Square{X: 7, Y: 2}

	assert.Equal(t, []Effect{{Square{7, 9}, CaptureOnly}}, Caster{Escalate: true}.Cast(b, origin, Place(0, 7, CaptureOnly)))
	assert.Equal(t, []Effect{{origin, Clear}}, Caster{}.Cast(b, origin, Place(0, 0, Clear)))
	assert.Empty(t, Caster{}.Cast(b, origin, Place(3, 0, Move)))
}

func TestDirectiveValidate(t *testing.T) {
	assert.NoError(t, Ray(2, -2, 1, Move).validate())
	assert.NoError(t, Place(-6, 0, CaptureOnly).validate())
	assert.ErrorIs(t, Ray(0, 0, 1, Move).validate(), ErrInvalidDirective)
	assert.ErrorIs(t, Ray(3, 0, 1, Move).validate(), ErrInvalidDirective)
	assert.ErrorIs(t, Ray(1, 0, 0, Move).validate(), ErrInvalidDirective)
}

func TestKnightLeapOrder(t *testing.T) {
	dirs := KnightLeaps(1, Move)
	var vecs []Vector
	for _, d := range dirs {
		vecs = append(vecs, d.Vec)
	}
	assert.Equal(t, knightVectors, vecs)
	assert.Len(t, Orthogonal(slider, Move), 4)
	assert.Len(t, Diagonal(1, Move), 4)
}
