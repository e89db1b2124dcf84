package main

import (
	"fmt"
	"image/color"
	"regexp"
	"strings"
	"unicode"
)

const defaultCellSize = 48

var (
	lightSquare = color.RGBA{0xf0, 0xd9, 0xb5, 0xff}
	darkSquare  = color.RGBA{0xb5, 0x88, 0x63, 0xff}
	inkColor    = color.RGBA{0x22, 0x22, 0x22, 0xff}
	paperColor  = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// highlightColors is the fill of every highlight icon a marker can paint.
var highlightColors = map[string]color.RGBA{
	"yellow": {0xff, 0xdd, 0x33, 0xff},
	"red":    {0xe0, 0x3c, 0x31, 0xff},
	"green":  {0x3c, 0xb0, 0x44, 0xff},
	"orange": {0xff, 0x99, 0x22, 0xff},
	"cyan":   {0x33, 0xcc, 0xdd, 0xff},
	"open":   {0xff, 0xff, 0xff, 0xff},
}

var pieceTokenRE = regexp.MustCompile(`^(White|Black)[A-Z][A-Za-z]*$`)

// isIconName reports whether name is something the diagram can show.
func isIconName(name string) bool {
	_, ok := highlightColors[name]
	return ok || pieceTokenRE.MatchString(name)
}

// labelOverrides keeps the usual letters where the capitals would clash.
var labelOverrides = map[string]string{
	"Knight":      "N",
	"Nightrider":  "NN",
	"RoyalKnight": "RN",
}

// pieceLabel abbreviates a piece token to the capitals of its name:
// "WhiteDragonHorse" is "DH", "BlackKing" is "K".
func pieceLabel(token string) string {
	name := strings.TrimPrefix(strings.TrimPrefix(token, "White"), "Black")
	if label, ok := labelOverrides[name]; ok {
		return label
	}
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteRune(r)
		}
	}
	label := b.String()
	if len(label) > 3 {
		label = label[:3]
	}
	return label
}

func isBlackPiece(token string) bool {
	return strings.HasPrefix(token, "Black")
}

func isOffBoard(token string) bool {
	return probeMargin(token) == 1 && strings.TrimSpace(token) == ""
}

func squareColor(sq Square) color.RGBA {
	if (sq.X+sq.Y)%2 == 0 {
		return darkSquare
	}
	return lightSquare
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
