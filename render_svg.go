package main

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

const paneLineHeight = 18

// RenderSVG draws the board and its description pane. Every square is a
// group whose id is the cell id, so the page can hit-test presses.
func RenderSVG(w io.Writer, snap *Snapshot, cell int) {
	width := snap.Width * cell
	boardHeight := snap.Height * cell
	height := boardHeight + (len(snap.Pane)+1)*paneLineHeight

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title(snap.Title)
	canvas.Rect(0, 0, width, height, "fill:"+hexColor(paperColor))

	for row := range snap.Height {
		for x := range snap.Width {
			sq := Square{X: x, Y: snap.Height - 1 - row}
			token := snap.Cells[row][x]
			if isOffBoard(token) {
				continue
			}
			canvas.Gid(sq.ID(snap.CellPrefix))
			drawSVGSquare(canvas, x*cell, row*cell, cell, sq, token)
			canvas.Gend()
		}
	}

	y := boardHeight + paneLineHeight
	for _, line := range snap.Pane {
		canvas.Text(4, y, line, "font-family:monospace;font-size:14px;fill:"+hexColor(inkColor))
		y += paneLineHeight
	}
	canvas.End()
}

func drawSVGSquare(canvas *svg.SVG, x, y, cell int, sq Square, token string) {
	canvas.Rect(x, y, cell, cell, "fill:"+hexColor(squareColor(sq)))
	if token == "" {
		return
	}
	drawSVGIcon(canvas, x, y, cell, token)
}

func drawSVGIcon(canvas *svg.SVG, x, y, cell int, token string) {
	cx, cy, r := x+cell/2, y+cell/2, cell*2/5
	if c, ok := highlightColors[token]; ok {
		style := "fill:" + hexColor(c) + ";fill-opacity:0.8"
		if token == "open" {
			style = fmt.Sprintf("fill:none;stroke:%s;stroke-width:3", hexColor(inkColor))
		}
		canvas.Circle(cx, cy, r/2, style)
		return
	}

	fill, ink := paperColor, inkColor
	if isBlackPiece(token) {
		fill, ink = inkColor, paperColor
	}
	canvas.Circle(cx, cy, r, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:2", hexColor(fill), hexColor(inkColor)))
	canvas.Text(cx, cy+cell/8, pieceLabel(token),
		fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-weight:bold;font-size:%dpx;fill:%s", cell/3, hexColor(ink)))
}

// RenderIconSVG draws a single icon on a transparent square.
func RenderIconSVG(w io.Writer, name string, size int) error {
	if !isIconName(name) {
		return fmt.Errorf("unknown icon %q", name)
	}
	canvas := svg.New(w)
	canvas.Start(size, size)
	drawSVGIcon(canvas, 0, 0, size, name)
	canvas.End()
	return nil
}
