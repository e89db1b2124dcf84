package main

import (
	"encoding/json"
	"fmt"
)

// Marker tags why a square is highlighted. Each marker maps to exactly one
// icon; nothing outside Icon branches on how a marker looks.
type Marker uint8

const (
	// Clear shows the square empty, e.g. the square a castling partner left.
	Clear Marker = iota
	Move
	Capture
	CaptureOnly
	NonCaptureOnly
	// Jump marks a landing square whose path is not itself reachable.
	Jump
	// FirstStep marks the first square of a two-step action (shoot or
	// en-passant capture with the first of two steps).
	FirstStep
	// Blocker marks a square that blocks a lame leap but is not a destination.
	Blocker

	BlackKing
	BlackRook
	BlackPawn
	BlackUnicorn
	WhitePawn
	WhiteKing
	WhiteKnight
	WhiteHawk
	WhiteCrownedBishop
)

var markerNames = [...]string{
	Clear:              "clear",
	Move:               "move",
	Capture:            "capture",
	CaptureOnly:        "capture-only",
	NonCaptureOnly:     "non-capture-only",
	Jump:               "jump",
	FirstStep:          "first-step",
	Blocker:            "blocker",
	BlackKing:          "BlackKing",
	BlackRook:          "BlackRook",
	BlackPawn:          "BlackPawn",
	BlackUnicorn:       "BlackUnicorn",
	WhitePawn:          "WhitePawn",
	WhiteKing:          "WhiteKing",
	WhiteKnight:        "WhiteKnight",
	WhiteHawk:          "WhiteHawk",
	WhiteCrownedBishop: "WhiteCrownedBishop",
}

var markerIcons = [...]string{
	Clear:          "",
	Move:           "yellow",
	Capture:        "red",
	CaptureOnly:    "red",
	NonCaptureOnly: "green",
	Jump:           "orange",
	FirstStep:      "cyan",
	Blocker:        "open",
}

func (m Marker) String() string {
	if int(m) < len(markerNames) {
		return markerNames[m]
	}
	return fmt.Sprintf("Marker(%d)", m)
}

// IsPiece reports whether m is a literal piece icon rather than a highlight.
func (m Marker) IsPiece() bool {
	return m >= BlackKing && int(m) < len(markerNames)
}

// Icon is the name of the image painted for m. Piece markers use their own
// name; Clear has no icon.
func (m Marker) Icon() string {
	if m.IsPiece() {
		return markerNames[m]
	}
	if int(m) < len(markerIcons) {
		return markerIcons[m]
	}
	return ""
}

// Jump is the marker used when m is requested for a leap.
func (m Marker) Jump() Marker {
	if m == Move {
		return Jump
	}
	return m
}

// FirstStep is the marker used for the first square of a two-step action.
func (m Marker) FirstStep() Marker {
	if m == Move {
		return FirstStep
	}
	return m
}

// ParseMarker looks a marker up by its String form.
func ParseMarker(s string) (Marker, bool) {
	for i, name := range markerNames {
		if name == s {
			return Marker(i), true
		}
	}
	return 0, false
}

func (m Marker) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Marker) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, ok := ParseMarker(s)
	if !ok {
		return fmt.Errorf("unknown marker %q", s)
	}
	*m = v
	return nil
}

// MarkerToken is the cell token the diagram shows for m.
func MarkerToken(m Marker) string {
	return m.Icon()
}

// iconNames lists every icon a marker can paint.
func iconNames() []string {
	seen := make(map[string]bool)
	var out []string
	for i := range markerNames {
		icon := Marker(i).Icon()
		if icon == "" || seen[icon] {
			continue
		}
		seen[icon] = true
		out = append(out, icon)
	}
	return out
}
