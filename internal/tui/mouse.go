// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/omnisearch/internal/gesture"
)

// Nominal cell size used to express mouse positions in the pixel units
// of the drag thresholds.
const (
	cellWidthPx  = 8
	cellHeightPx = 16
)

type gridCell struct {
	id     string
	x0, x1 int
}

// gridLayout is the screen position of the quick access row.
type gridLayout struct {
	row   int
	cells []gridCell
}

// at returns the shortcut drawn at column x of line y, or "".
func (g gridLayout) at(x, y int) string {
	if len(g.cells) == 0 || y != g.row {
		return ""
	}
	for _, c := range g.cells {
		if x >= c.x0 && x < c.x1 {
			return c.id
		}
	}
	return ""
}

func toPoint(msg tea.MouseMsg) gesture.Point {
	return gesture.Point{X: float64(msg.X * cellWidthPx), Y: float64(msg.Y * cellHeightPx)}
}

// handleMouse feeds left-button presses, motion and releases over the
// quick access row to the pointer sensor. A press and release on the
// same shortcut is a click.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.banner != "" || !m.gridVisible() {
		return m, nil
	}
	over := m.grid.at(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || over == "" || m.gesture.Dragging() {
			return m, nil
		}
		m.pressed = over
		m.gesture.PointerDown(over, toPoint(msg))
		for i, d := range m.deps.Shortcuts.List() {
			if d.ID == over {
				m.gridIndex = i
			}
		}

	case tea.MouseActionMotion:
		if m.pressed != "" {
			m.gesture.PointerMove(toPoint(msg), over)
		}

	case tea.MouseActionRelease:
		if m.pressed == "" {
			return m, nil
		}
		pressed := m.pressed
		m.pressed = ""
		m.gesture.PointerUp(over)
		if over == "" || over != pressed {
			// No click follows, so the suppression left by a drop would
			// otherwise swallow the next real one.
			m.gesture.AllowActivation()
			return m, nil
		}
		if def, ok := m.deps.Shortcuts.Find(over); ok {
			return m, m.activateCmd(def)
		}
	}
	return m, nil
}
