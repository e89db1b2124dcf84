package main

import (
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// drawPNG paints the board and pane into a new context.
func drawPNG(snap *Snapshot, cell int) (*gg.Context, error) {
	lineHeight := float64(paneLineHeight)
	width := snap.Width * cell
	boardHeight := snap.Height * cell
	height := boardHeight + int(float64(len(snap.Pane)+1)*lineHeight)

	dc := gg.NewContext(width, height)
	dc.SetColor(paperColor)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	pieceFace := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    float64(cell) / 3,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	paneFace := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	dc.SetFontFace(pieceFace)
	for row := range snap.Height {
		for x := range snap.Width {
			sq := Square{X: x, Y: snap.Height - 1 - row}
			token := snap.Cells[row][x]
			if isOffBoard(token) {
				continue
			}
			drawPNGSquare(dc, float64(x*cell), float64(row*cell), float64(cell), sq, token)
		}
	}

	dc.SetFontFace(paneFace)
	dc.SetColor(inkColor)
	y := float64(boardHeight) + lineHeight
	for _, line := range snap.Pane {
		dc.DrawString(line, 4, y)
		y += lineHeight
	}
	return dc, nil
}

func drawPNGSquare(dc *gg.Context, x, y, cell float64, sq Square, token string) {
	dc.SetColor(squareColor(sq))
	dc.DrawRectangle(x, y, cell, cell)
	dc.Fill()
	if token == "" {
		return
	}

	cx, cy, r := x+cell/2, y+cell/2, cell*2/5
	if c, ok := highlightColors[token]; ok {
		dc.DrawCircle(cx, cy, r/2)
		if token == "open" {
			dc.SetLineWidth(3)
			dc.SetColor(inkColor)
			dc.Stroke()
			return
		}
		dc.SetColor(color.RGBA{c.R, c.G, c.B, 0xcc})
		dc.Fill()
		return
	}

	var fill, ink color.Color = paperColor, inkColor
	if isBlackPiece(token) {
		fill, ink = inkColor, paperColor
	}
	dc.DrawCircle(cx, cy, r)
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetLineWidth(2)
	dc.SetColor(inkColor)
	dc.Stroke()
	dc.SetColor(ink)
	dc.DrawStringAnchored(pieceLabel(token), cx, cy, 0.5, 0.35)
}

// RenderPNG encodes the diagram as a PNG image.
func RenderPNG(w io.Writer, snap *Snapshot, cell int) error {
	dc, err := drawPNG(snap, cell)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG writes the diagram to a PNG file.
func SavePNG(path string, snap *Snapshot, cell int) error {
	dc, err := drawPNG(snap, cell)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}
