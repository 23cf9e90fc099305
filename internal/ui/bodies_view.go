package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/litescript/ls-orrery/internal/orrery"
	"github.com/litescript/ls-orrery/internal/state"
)

// Styles for the bodies table
var (
	bodiesTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	bodiesHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				Background(lipgloss.Color("235")).
				Padding(0, 1)

	bodiesRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	bodiesHiddenRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	bodiesSelectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
)

// BodiesViewModel is the tabular view over the whole arena: one row per
// body, stars included. Space toggles the selected body's visibility;
// the planet group rule applies, so toggling Jupiter's row flips its
// moons too.
type BodiesViewModel struct {
	width  int
	height int
	cursor int
	scene  *orrery.Scene
	state  *state.Manager
}

// NewBodiesViewModel creates the table view.
func NewBodiesViewModel(scene *orrery.Scene, mgr *state.Manager) BodiesViewModel {
	return BodiesViewModel{scene: scene, state: mgr}
}

// SetSize updates the viewport size.
func (m BodiesViewModel) SetSize(width, height int) BodiesViewModel {
	m.width = width
	m.height = height
	return m
}

// clampCursor pulls a cursor back inside the arena. The arena shrinks
// under the table when another view regenerates a smaller starfield.
func clampCursor(cursor, count int) int {
	if cursor >= count {
		cursor = count - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// Update handles input messages.
func (m BodiesViewModel) Update(msg tea.Msg) (BodiesViewModel, tea.Cmd) {
	count := m.scene.Len()
	m.cursor = clampCursor(m.cursor, count)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < count-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			if count > 0 {
				m.cursor = count - 1
			}

		case " ", "space", "enter":
			if m.cursor >= 0 && m.cursor < count {
				idx := orrery.BodyIndex(m.cursor)
				body := m.scene.Body(idx)
				v := !body.Visible
				m.scene.SetBodyVisible(idx, v)
				m.state.RecordVisibility(body.Name, v)
			}
		}
	}

	return m, nil
}

// SelectedBody returns the body under the cursor. A cursor stranded
// past the arena tail selects the last body instead.
func (m BodiesViewModel) SelectedBody() *orrery.Body {
	count := m.scene.Len()
	if count == 0 {
		return nil
	}
	return m.scene.Body(orrery.BodyIndex(clampCursor(m.cursor, count)))
}

// View renders the bodies table.
func (m BodiesViewModel) View() string {
	var b strings.Builder

	b.WriteString(bodiesTitleStyle.Render(fmt.Sprintf("Bodies (%d, %d stars)",
		m.scene.Len(), m.scene.StarCount())))
	b.WriteString("\n")

	header := fmt.Sprintf("%-12s %-7s %-11s %-8s %-8s %-8s %9s %9s %-4s",
		"Name", "Kind", "Radius", "Orbit", "Period", "Phase", "X", "Z", "Vis")
	b.WriteString(bodiesHeaderStyle.Render(header))
	b.WriteString("\n")

	count := m.scene.Len()
	if count == 0 {
		b.WriteString("  Empty scene\n")
		return b.String()
	}

	maxRows := m.height - 6
	if maxRows < 5 {
		maxRows = 5
	}

	cursor := clampCursor(m.cursor, count)

	startIdx := 0
	if cursor >= maxRows {
		startIdx = cursor - maxRows + 1
	}
	endIdx := startIdx + maxRows
	if endIdx > count {
		endIdx = count
	}

	for i := startIdx; i < endIdx; i++ {
		body := m.scene.Body(orrery.BodyIndex(i))

		orbit, period, phase := "-", "-", "-"
		if body.Orbit.Present {
			orbit = fmt.Sprintf("%.2f", body.Orbit.OrbitRadius)
			period = orrery.FormatPeriod(body.Orbit.PeriodDays)
			phase = orrery.FormatAngle(body.Orbit.Phase)
		}

		vis := "yes"
		if !body.Visible {
			vis = "no"
		}

		radius := orrery.FormatKm(body.RadiusKm)
		if body.Kind == orrery.BodyStar {
			radius = fmt.Sprintf("%.2f", body.Radius)
		}

		row := fmt.Sprintf("%s %-7s %-11s %-8s %-8s %-8s %9.2f %9.2f %-4s",
			runewidth.FillRight(runewidth.Truncate(body.Name, 12, ".."), 12),
			body.Kind.String(),
			radius,
			orbit,
			period,
			phase,
			body.Pos.X,
			body.Pos.Z,
			vis,
		)

		switch {
		case i == cursor:
			b.WriteString(bodiesSelectedRowStyle.Render(row))
		case !body.Visible:
			b.WriteString(bodiesHiddenRowStyle.Render(row))
		default:
			b.WriteString(bodiesRowStyle.Render(row))
		}
		b.WriteString("\n")
	}

	// Scroll indicator
	if count > maxRows {
		b.WriteString(fmt.Sprintf("\n  Showing %d-%d of %d bodies", startIdx+1, endIdx, count))
	}

	return b.String()
}
