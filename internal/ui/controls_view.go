package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/litescript/ls-orrery/internal/orrery"
	"github.com/litescript/ls-orrery/internal/state"
)

// widgetKind selects a widget's rendering and input handling.
type widgetKind int

const (
	widgetToggle widgetKind = iota
	widgetSlider
)

// widget is one declarative control: a label, a kind, a numeric range
// for sliders, and accessors bound to the scene or the state manager.
// Every callback is a synchronous mutation with no return value; the
// slider's min/max/step is the only validation layer.
type widget struct {
	label string
	kind  widgetKind

	min, max, step float64
	format         string // Printf verb for the slider value

	value func() float64
	set   func(float64)

	on     func() bool
	toggle func()
}

// ControlsViewModel renders the control panel: a cursor-driven list of
// toggles and sliders mutating the scene and the control state.
type ControlsViewModel struct {
	width   int
	height  int
	cursor  int
	widgets []widget
}

// NewControlsViewModel builds the widget list over a scene and manager.
// Planet indices are captured at construction; the starfield lives at
// the arena tail, so they stay stable across star-count changes.
func NewControlsViewModel(scene *orrery.Scene, mgr *state.Manager) ControlsViewModel {
	widgets := []widget{
		{
			label:  "Move Bodies",
			kind:   widgetToggle,
			on:     mgr.MovementEnabled,
			toggle: func() { mgr.ToggleMovement() },
		},
		{
			label:  "Planets Speed",
			kind:   widgetSlider,
			min:    state.MinPlanetSpeed,
			max:    state.MaxPlanetSpeed,
			step:   state.SpeedStep,
			format: "%.1f",
			value:  mgr.PlanetSpeed,
			set:    func(v float64) { mgr.SetPlanetSpeed(v) },
		},
		{
			label:  "Moons Speed",
			kind:   widgetSlider,
			min:    state.MinMoonSpeed,
			max:    state.MaxMoonSpeed,
			step:   state.SpeedStep,
			format: "%.1f",
			value:  mgr.MoonSpeed,
			set:    func(v float64) { mgr.SetMoonSpeed(v) },
		},
	}

	// One visibility toggle per planet. Toggling a planet cascades to
	// its moons inside SetBodyVisible, so Earth, Jupiter, and Saturn
	// hide their satellites in the same callback.
	for _, pi := range scene.Planets() {
		pi := pi
		name := scene.Body(pi).Name
		widgets = append(widgets, widget{
			label: "Show " + name,
			kind:  widgetToggle,
			on:    func() bool { return scene.Body(pi).Visible },
			toggle: func() {
				v := !scene.Body(pi).Visible
				scene.SetBodyVisible(pi, v)
				mgr.RecordVisibility(name, v)
			},
		})
	}

	widgets = append(widgets,
		widget{
			label: "Show Stars",
			kind:  widgetToggle,
			on:    scene.StarsVisible,
			toggle: func() {
				v := !scene.StarsVisible()
				scene.SetStarsVisible(v)
				mgr.SetShowStars(v)
			},
		},
		widget{
			label:  "Star Count",
			kind:   widgetSlider,
			min:    0,
			max:    orrery.MaxStarCount,
			step:   10,
			format: "%.0f",
			value:  func() float64 { return float64(scene.StarCount()) },
			set: func(v float64) {
				// Regenerated stars inherit the group visibility flag
				n := mgr.SetStarCount(int(v))
				scene.SetStarCount(n)
			},
		},
		widget{
			label: "Wireframe",
			kind:  widgetToggle,
			on:    scene.Wireframe,
			toggle: func() {
				v := !scene.Wireframe()
				scene.SetWireframe(v)
				mgr.SetWireframe(v)
			},
		},
	)

	return ControlsViewModel{widgets: widgets}
}

// SetSize updates the viewport size.
func (m ControlsViewModel) SetSize(width, height int) ControlsViewModel {
	m.width = width
	m.height = height
	return m
}

// Update handles input messages.
func (m ControlsViewModel) Update(msg tea.Msg) (ControlsViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.widgets)-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			m.cursor = len(m.widgets) - 1

		case " ", "space", "enter":
			w := m.widgets[m.cursor]
			if w.kind == widgetToggle {
				w.toggle()
			}

		case "left", "h":
			m.adjust(-1)
		case "right", "l":
			m.adjust(1)
		}
	}
	return m, nil
}

// adjust steps the selected slider by its step, clamped to its range.
func (m *ControlsViewModel) adjust(direction int) {
	w := m.widgets[m.cursor]
	if w.kind != widgetSlider {
		return
	}

	v := w.value() + float64(direction)*w.step
	if v < w.min {
		v = w.min
	}
	if v > w.max {
		v = w.max
	}
	w.set(v)
}

// View renders the control panel.
func (m ControlsViewModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	b.WriteString(titleStyle.Render("Scene Controls"))
	b.WriteString("\n\n")

	maxRows := m.height - 4
	if maxRows < 5 {
		maxRows = 5
	}

	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}
	end := start + maxRows
	if end > len(m.widgets) {
		end = len(m.widgets)
	}

	for i := start; i < end; i++ {
		b.WriteString(m.renderWidget(m.widgets[i], i == m.cursor))
		b.WriteString("\n")
	}

	if len(m.widgets) > maxRows {
		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		b.WriteString(dimStyle.Render(fmt.Sprintf("\n  Showing %d-%d of %d controls", start+1, end, len(m.widgets))))
	}

	return b.String()
}

const (
	controlLabelWidth = 16
	sliderBarWidth    = 24
)

func (m ControlsViewModel) renderWidget(w widget, selected bool) string {
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FDB813")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	onStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	offStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	cursor := "  "
	if selected {
		cursor = cursorStyle.Render("▶ ")
	}

	label := runewidth.FillRight(w.label, controlLabelWidth)
	if selected {
		label = cursorStyle.Render(label)
	} else {
		label = labelStyle.Render(label)
	}

	switch w.kind {
	case widgetToggle:
		if w.on() {
			return cursor + label + onStyle.Render("[x] on")
		}
		return cursor + label + offStyle.Render("[ ] off")

	case widgetSlider:
		v := w.value()
		bar := renderSliderBar(v, w.min, w.max, sliderBarWidth)
		val := dimStyle.Render(fmt.Sprintf("  "+w.format, v))
		bounds := offStyle.Render(fmt.Sprintf("  (%s–%s)",
			fmt.Sprintf(w.format, w.min), fmt.Sprintf(w.format, w.max)))
		return cursor + label + bar + val + bounds

	default:
		return cursor + label
	}
}

// renderSliderBar draws a filled bar with a cool-to-warm gradient across
// the filled cells.
func renderSliderBar(v, min, max float64, width int) string {
	t := 0.0
	if max > min {
		t = (v - min) / (max - min)
	}
	filled := int(t * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	low, _ := colorful.Hex("#FDB813")
	high, _ := colorful.Hex("#D93B2B")

	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < filled; i++ {
		frac := float64(i) / float64(width-1)
		c := low.BlendHcl(high, frac).Clamped()
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
		b.WriteString(style.Render("█"))
	}
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))
	b.WriteString("]")

	return b.String()
}
