package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPane keeps every description shown.
type recordingPane struct {
	shown   []Description
	cleared int
}

func (p *recordingPane) Show(d Description) { p.shown = append(p.shown, d) }

func (p *recordingPane) Clear() { p.cleared++ }

func newChuSession(t *testing.T, pieces map[Square]string) (*Session, *DiagramState) {
	t.Helper()
	table, err := LookupVariant("chu")
	require.NoError(t, err)
	d := testDiagram(10, 10, pieces)
	d.Variant = "chu"
	state := NewDiagramState(d, table.CellPrefix, nil)
	return NewSession(table, state, state), state
}

func TestPressAndReleaseLion(t *testing.T) {
	lion := Square{4, 4}
	s, state := newChuSession(t, map[Square]string{lion: "WhiteLion", {5, 5}: "BlackPawn"})
	before := state.Snapshot()

	out, err := s.Press(lion, 0)
	require.NoError(t, err)
	require.NotNil(t, out.Rule)
	assert.Equal(t, "Lion", out.Rule.Title)
	assert.Len(t, out.Effects, 24)

	tok, _ := state.Cell(Square{5, 5})
	assert.Equal(t, "cyan", tok)
	tok, _ = state.Cell(Square{6, 6})
	assert.Equal(t, "orange", tok)
	tok, _ = state.Cell(Square{6, 5})
	assert.Equal(t, "orange", tok)
	tok, _ = state.Cell(lion)
	assert.Equal(t, "WhiteLion", tok)

	pane := state.Snapshot().Pane
	require.Len(t, pane, 1+paneCaptionLines)
	assert.Equal(t, "Lion", pane[0])
	assert.Equal(t, ": Can shoot or capture en-passant what is on the", pane[1])

	sq, mod, active := s.Active()
	assert.True(t, active)
	assert.Equal(t, lion, sq)
	assert.Equal(t, Modifier(0), mod)

	rel := s.Release()
	assert.False(t, rel.Ignored)
	assert.Equal(t, out.Rule, rel.Rule)

	after := state.Snapshot()
	assert.Equal(t, before.Cells, after.Cells)
	assert.Equal(t, BlankPane(), after.Pane)

	_, _, active = s.Active()
	assert.False(t, active)
}

func TestPressWhileActiveIsIgnored(t *testing.T) {
	s, state := newChuSession(t, nil)

	_, err := s.Press(Square{7, 5}, 0)
	require.NoError(t, err)
	painted := state.Snapshot()

	out, err := s.Press(Square{7, 4}, 0)
	require.NoError(t, err)
	assert.True(t, out.Ignored)
	assert.Equal(t, painted.Cells, state.Snapshot().Cells)

	sq, _, _ := s.Active()
	assert.Equal(t, Square{7, 5}, sq)
}

func TestReleaseWhileIdleIsIgnored(t *testing.T) {
	s, state := newChuSession(t, nil)
	before := state.Snapshot()

	assert.True(t, s.Release().Ignored)
	assert.Equal(t, before, state.Snapshot())
}

func TestPressWithoutRuleStillStartsGesture(t *testing.T) {
	table, _ := LookupVariant("chu")
	pane := &recordingPane{}
	state := NewDiagramState(testDiagram(10, 10, nil), table.CellPrefix, nil)
	s := NewSession(table, state, pane)

	out, err := s.Press(Square{0, 0}, 0)
	require.NoError(t, err)
	assert.Nil(t, out.Rule)
	assert.False(t, out.Ignored)
	assert.Empty(t, pane.shown)

	out, err = s.Press(Square{4, 4}, 0)
	require.NoError(t, err)
	assert.True(t, out.Ignored)

	rel := s.Release()
	assert.False(t, rel.Ignored)
	assert.Zero(t, pane.cleared)
}

func TestPressFailsOnUnrenderedDiagram(t *testing.T) {
	table, _ := LookupVariant("chu")
	s := NewSession(table, unrenderedSurface{w: 10, h: 10}, &recordingPane{})

	_, err := s.Press(Square{4, 4}, 0)
	assert.ErrorIs(t, err, ErrDiagramNotRendered)
	_, _, active := s.Active()
	assert.False(t, active)
	assert.Equal(t, -1, s.Margin())
}

func TestPressSigned(t *testing.T) {
	s, _ := newChuSession(t, nil)

	out, err := s.PressSigned(4, -3)
	require.NoError(t, err)
	require.NotNil(t, out.Rule)
	assert.Equal(t, "Knight", out.Rule.Title)

	sq, mod, _ := s.Active()
	assert.Equal(t, Square{4, 3}, sq)
	assert.Equal(t, Modifier(1), mod)
}

func TestCastlingRestoresEveryTouchedSquare(t *testing.T) {
	rook := Square{9, 9}
	s, state := newChuSession(t, map[Square]string{rook: "BlackRook", {5, 9}: "BlackKing"})
	before := state.Snapshot()

	_, err := s.Press(rook, 0)
	require.NoError(t, err)
	tok, _ := state.Cell(rook)
	assert.Equal(t, "", tok)
	tok, _ = state.Cell(Square{8, 9})
	assert.Equal(t, "BlackKing", tok)

	s.Release()
	assert.Equal(t, before.Cells, state.Snapshot().Cells)
}

func TestGatingIgnoresMargin(t *testing.T) {
	fairy, _ := LookupVariant("fairy")
	gate := Square{7, 0}
	d := testDiagram(10, 10, map[Square]string{{0, 0}: offBoardToken, gate: "WhiteBishop", {9, 0}: "WhiteHawk"})
	state := NewDiagramState(d, fairy.CellPrefix, nil)
	s := NewSession(fairy, state, state)

	out, err := s.Press(gate, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Margin())
	assert.Equal(t, []Effect{
		{gate, WhiteHawk},
		{Square{6, 2}, WhiteKnight},
		{Square{9, 0}, Clear},
	}, out.Effects)

	tok, _ := state.Cell(gate)
	assert.Equal(t, "WhiteHawk", tok)
	tok, _ = state.Cell(Square{9, 0})
	assert.Equal(t, "", tok)

	s.Release()
	tok, _ = state.Cell(Square{9, 0})
	assert.Equal(t, "WhiteHawk", tok)
}

func TestSetMarginOverridesProbe(t *testing.T) {
	s, _ := newChuSession(t, nil)
	s.SetMargin(1)

	out, err := s.Press(Square{7, 5}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Margin())
	for _, e := range out.Effects {
		assert.NotEqual(t, 9, e.Square.X)
		assert.NotEqual(t, 0, e.Square.X)
	}
}

func TestReleaseGestureNeedsMatchingID(t *testing.T) {
	s, state := newChuSession(t, map[Square]string{{4, 4}: "WhiteLion"})
	before := state.Snapshot()

	out, err := s.Press(Square{4, 4}, 0)
	require.NoError(t, err)
	require.NotEmpty(t, out.Gesture)
	painted := state.Snapshot()

	second, err := s.Press(Square{7, 5}, 0)
	require.NoError(t, err)
	assert.True(t, second.Ignored)
	assert.Empty(t, second.Gesture)

	assert.True(t, s.ReleaseGesture("").Ignored)
	assert.True(t, s.ReleaseGesture(out.Gesture+"x").Ignored)
	assert.Equal(t, painted, state.Snapshot())

	rel := s.ReleaseGesture(out.Gesture)
	assert.False(t, rel.Ignored)
	assert.Equal(t, before, state.Snapshot())
	assert.True(t, s.ReleaseGesture(out.Gesture).Ignored)

	next, err := s.Press(Square{4, 4}, 0)
	require.NoError(t, err)
	assert.NotEqual(t, out.Gesture, next.Gesture)
	s.Release()
}

func TestSetRanksKeepsReserveRowsPressable(t *testing.T) {
	fairy, _ := LookupVariant("fairy")
	d := testDiagram(10, 11, map[Square]string{{5, 10}: "WhiteHawk"})
	state := NewDiagramState(d, fairy.CellPrefix, nil)
	s := NewSession(fairy, state, state)
	s.SetRanks(10)

	out, err := s.Press(Square{5, 10}, 0)
	require.NoError(t, err)
	require.NotNil(t, out.Rule)
	assert.Equal(t, "Hawk", out.Rule.Title)
	require.NotEmpty(t, out.Effects)
	for _, e := range out.Effects {
		assert.Less(t, e.Square.Y, 10, "%v", e)
	}
	tok, _ := state.Cell(Square{5, 10})
	assert.Equal(t, "WhiteHawk", tok)
	s.Release()
}
