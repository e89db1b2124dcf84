package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const tuiCellWidth = 4

var (
	tuiTitleStyle  = lipgloss.NewStyle().Bold(true)
	tuiStatusStyle = lipgloss.NewStyle().Faint(true)
	tuiCursorStyle = lipgloss.NewStyle().Underline(true)
)

// RunTUI explores a diagram in the terminal: holding the mouse button on a
// piece (or toggling with space) highlights its moves.
func RunTUI(live *LiveDiagram) error {
	p := tea.NewProgram(
		newTUIModel(live),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

type tuiModel struct {
	live   *LiveDiagram
	cursor Square
	mod    Modifier
	// modSet is true once a modifier key was pressed; until then each
	// square uses the diagram's default modifier.
	modSet bool
	status string
}

func newTUIModel(live *LiveDiagram) tuiModel {
	return tuiModel{live: live, status: "space: press/release  0-3: modifier  c: copy  p: png  q: quit"}
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

// squareAt maps a terminal position to a board square. The title takes the
// first line.
func (m tuiModel) squareAt(x, y int) (Square, bool) {
	w, h := m.live.State.Size()
	col, row := x/tuiCellWidth, y-1
	if col < 0 || col >= w || row < 0 || row >= h {
		return Square{}, false
	}
	return Square{X: col, Y: h - 1 - row}, true
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		switch msg.Type {
		case tea.MouseLeft:
			if sq, ok := m.squareAt(msg.X, msg.Y); ok {
				m.cursor = sq
				m.press(sq)
			}
		case tea.MouseRelease:
			m.live.Session.Release()
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.move(0, 1)
		case "down", "j":
			m.move(0, -1)
		case "left", "h":
			m.move(-1, 0)
		case "right", "l":
			m.move(1, 0)
		case "0", "1", "2", "3":
			m.mod, m.modSet = Modifier(msg.String()[0]-'0'), true
			m.status = fmt.Sprintf("modifier %d", m.mod)
		case " ", "enter":
			if _, _, active := m.live.Session.Active(); active {
				m.live.Session.Release()
			} else {
				m.press(m.cursor)
			}
		case "c":
			m.copyPane()
		case "p":
			path := m.live.Diagram.ID + ".png"
			if err := SavePNG(path, m.live.State.Snapshot(), defaultCellSize); err != nil {
				m.status = "export failed: " + err.Error()
			} else {
				m.status = "wrote " + path
			}
		}
	}
	return m, nil
}

func (m *tuiModel) move(dx, dy int) {
	w, h := m.live.State.Size()
	next := m.cursor.Add(Vector{DX: dx, DY: dy}, 1)
	if next.X >= 0 && next.X < w && next.Y >= 0 && next.Y < h {
		m.cursor = next
	}
}

func (m *tuiModel) press(sq Square) {
	mod := m.live.Diagram.ModifierAt(sq)
	if m.modSet {
		mod = m.mod
	}
	out, err := m.live.Session.Press(sq, mod)
	switch {
	case err != nil:
		m.status = err.Error()
	case out.Ignored:
		m.status = "release first"
	case out.Rule == nil:
		m.status = sq.ID(m.live.Table.CellPrefix) + ": nothing to show"
	default:
		m.status = fmt.Sprintf("%s: %d squares", sq.ID(m.live.Table.CellPrefix), len(out.Effects))
	}
}

func (m *tuiModel) copyPane() {
	snap := m.live.State.Snapshot()
	text := strings.Join(snap.Pane, "\n")
	if err := clipboard.WriteAll(text); err != nil {
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = "copied description"
}

func (m tuiModel) View() string {
	snap := m.live.State.Snapshot()
	var b strings.Builder
	b.WriteString(tuiTitleStyle.Render(snap.Title))
	b.WriteByte('\n')
	for row := range snap.Height {
		for x := range snap.Width {
			sq := Square{X: x, Y: snap.Height - 1 - row}
			b.WriteString(m.renderCell(sq, snap.Cells[row][x]))
		}
		b.WriteByte('\n')
	}
	for _, line := range snap.Pane {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(tuiStatusStyle.Render(m.status))
	return b.String()
}

func (m tuiModel) renderCell(sq Square, token string) string {
	if isOffBoard(token) {
		return strings.Repeat(" ", tuiCellWidth)
	}
	style := lipgloss.NewStyle().
		Width(tuiCellWidth).
		Align(lipgloss.Center).
		Background(lipgloss.Color(hexColor(squareColor(sq)))).
		Foreground(lipgloss.Color(hexColor(inkColor)))
	label := ""
	switch c, ok := highlightColors[token]; {
	case ok && token == "open":
		label = "()"
	case ok:
		style = style.Background(lipgloss.Color(hexColor(c)))
		label = "·"
	case token != "":
		label = pieceLabel(token)
		if isBlackPiece(token) {
			label = strings.ToLower(label)
		}
	}
	if sq == m.cursor {
		style = style.Inherit(tuiCursorStyle)
	}
	return style.Render(label)
}
