// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/orrery"
	"github.com/litescript/ls-orrery/internal/state"
	"github.com/litescript/ls-orrery/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewOrrery ViewMode = iota
	ViewControls
	ViewBodies
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic status-line updates.
	TickMsg time.Time

	// FrameTickMsg drives one animation frame: advance the scene, redraw.
	FrameTickMsg time.Time
)

// DefaultFrameInterval is the frame cadence when no -fps flag is given,
// roughly 30 fps.
const DefaultFrameInterval = 33 * time.Millisecond

// Model is the root Bubble Tea model. All scene mutation happens inside
// Update, so frame advancement and control callbacks interleave on one
// goroutine and never overlap.
type Model struct {
	// Dependencies
	scene *orrery.Scene
	state *state.Manager

	frameInterval time.Duration

	// UI state
	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	frameTick int // drives the footer spinner

	// Sub-models
	orreryView OrreryViewModel
	controls   ControlsViewModel
	bodies     BodiesViewModel

	// Control-state snapshot, refreshed on TickMsg
	snapshot state.Snapshot
}

// New creates the root UI model over a built scene.
func New(scene *orrery.Scene, mgr *state.Manager, frameInterval time.Duration) Model {
	if frameInterval <= 0 {
		frameInterval = DefaultFrameInterval
	}
	return Model{
		scene:         scene,
		state:         mgr,
		frameInterval: frameInterval,
		viewMode:      ViewOrrery,
		orreryView:    NewOrreryViewModel(scene),
		controls:      NewControlsViewModel(scene, mgr),
		bodies:        NewBodiesViewModel(scene, mgr),
		snapshot:      mgr.Snapshot(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		frameTickCmd(m.frameInterval),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1":
			m.viewMode = ViewOrrery
		case "2":
			m.viewMode = ViewControls
		case "3":
			m.viewMode = ViewBodies

		case "tab":
			m.viewMode = (m.viewMode + 1) % 3

		case " ", "space":
			// Space outside the widget views pauses/resumes movement.
			if m.viewMode == ViewOrrery {
				m.state.ToggleMovement()
			} else {
				cmds = append(cmds, m.updateActiveView(msg))
			}

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Logo takes ~11 lines, tabs and footer the rest
		contentHeight := msg.Height - 15
		m.orreryView = m.orreryView.SetSize(msg.Width, contentHeight)
		m.controls = m.controls.SetSize(msg.Width, contentHeight)
		m.bodies = m.bodies.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())
		m.snapshot = m.state.Snapshot()

	case FrameTickMsg:
		cmds = append(cmds, frameTickCmd(m.frameInterval))
		m.frameTick++

		motion := m.state.Motion()
		start := time.Now()
		m.scene.Advance(motion)
		if motion.Enabled {
			m.state.RecordAdvance(time.Since(start))
		}

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewOrrery:
		m.orreryView, cmd = m.orreryView.Update(msg)
	case ViewControls:
		m.controls, cmd = m.controls.Update(msg)
	case ViewBodies:
		m.bodies, cmd = m.bodies.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewOrrery:
		content = m.orreryView.View()
	case ViewControls:
		content = m.controls.View()
	case ViewBodies:
		content = m.bodies.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs() + "\n"
}

func (m Model) renderLogo() string {
	// ASCII art with smooth truecolor gradient
	logo := []string{
		`   ██████╗ ██████╗ ██████╗ ███████╗██████╗ ██╗   ██╗`,
		`  ██╔═══██╗██╔══██╗██╔══██╗██╔════╝██╔══██╗╚██╗ ██╔╝`,
		`  ██║   ██║██████╔╝██████╔╝█████╗  ██████╔╝ ╚████╔╝ `,
		`  ██║   ██║██╔══██╗██╔══██╗██╔══╝  ██╔══██╗  ╚██╔╝  `,
		`  ╚██████╔╝██║  ██║██║  ██║███████╗██║  ██║   ██║   `,
		`   ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝   ╚═╝   `,
	}

	var b strings.Builder
	b.WriteString("\n")

	for row, line := range logo {
		runes := []rune(line)
		lineLen := len(runes)

		for col, r := range runes {
			color := gradientColor(col, row, lineLen, len(logo))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render("  Solar System · Animated Orrery"))
	b.WriteString("\n")

	copyright := fmt.Sprintf("  (c) 2025 litescript.net | v%s", version.Version)
	b.WriteString(muted.Render(copyright))
	b.WriteString("\n\n")

	return b.String()
}

// gradientColor returns a hex color for a position in the logo gradient.
// Solar palette: gold -> orange -> ember red, fading toward the bottom.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	// Gold (#FDB813) -> Orange (#F2711C) -> Ember (#D93B2B)
	var r, g, b float64

	if xRatio < 0.5 {
		t := xRatio / 0.5
		r = 253 + t*(242-253)
		g = 184 + t*(113-184)
		b = 19 + t*(28-19)
	} else {
		t := (xRatio - 0.5) / 0.5
		r = 242 + t*(217-242)
		g = 113 + t*(59-113)
		b = 28 + t*(43-28)
	}

	brightnessFactor := 1.0 - (yRatio * 0.45)
	r *= brightnessFactor
	g *= brightnessFactor
	b *= brightnessFactor

	ri, gi, bi := int(r), int(g), int(b)
	if ri > 255 {
		ri = 255
	}
	if gi > 255 {
		gi = 255
	}
	if bi > 255 {
		bi = 255
	}
	if ri < 0 {
		ri = 0
	}
	if gi < 0 {
		gi = 0
	}
	if bi < 0 {
		bi = 0
	}

	return fmt.Sprintf("#%02X%02X%02X", ri, gi, bi)
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Orrery", "[2] Controls", "[3] Bodies"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FDB813")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F2711C"))
	pausedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	// Animated spinner frames
	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.frameTick%len(spinnerFrames)]

	var status string
	if m.snapshot.MovementEnabled {
		status = accentStyle.Render(spinner) + dimStyle.Render(fmt.Sprintf(
			" moving · planets ×%.1f moons ×%.1f · %d frames",
			m.snapshot.PlanetSpeed, m.snapshot.MoonSpeed, m.snapshot.FramesAdvanced))
		if m.snapshot.LastAdvance > 0 {
			status += dimStyle.Render(" (" + m.snapshot.LastAdvance.Round(time.Microsecond).String() + ")")
		}
	} else {
		status = pausedStyle.Render("⏸ paused") + dimStyle.Render(fmt.Sprintf(
			" · %d frames", m.snapshot.FramesAdvanced))
	}

	// View-specific help hints
	var help string
	switch m.viewMode {
	case ViewControls:
		help = dimStyle.Render("↑↓: select | space: toggle | ←/→: adjust")
	case ViewBodies:
		help = dimStyle.Render("↑↓: navigate | space: toggle visibility")
	default:
		help = dimStyle.Render("j/k: focus | +/-: zoom | arrows: pan | f: find | l: labels | z: mode | t: stars | space: pause")
	}

	return "  " + status + "  " + dimStyle.Render("|") + "  " + help
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func frameTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameTickMsg(t)
	})
}
