package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/orrery"
)

// LabelMode controls how body labels are displayed.
type LabelMode int

const (
	LabelNone    LabelMode = iota // No labels
	LabelFocused                  // Only focused body
	LabelAll                      // All bodies
)

// OrreryViewModel renders a top-down view of the scene on a rune-grid
// canvas.
type OrreryViewModel struct {
	width  int
	height int
	scene  *orrery.Scene
	camera astro.Camera

	// View state
	focusIdx   int     // Index into focusables (0 = Sun)
	zoomLevel  int     // Index into zoomLevels
	panX       float64 // Pan offset in display units
	panY       float64
	scaleMode  astro.ScaleMode
	labelMode  LabelMode
	userPanned bool // True if user has manually panned (disables auto-center on zoom)
}

// Discrete zoom levels for clean stepping
var zoomLevels = []float64{0.25, 0.5, 0.75, 1.0, 1.5, 2.0, 3.0, 5.0, 10.0}

// NewOrreryViewModel creates the canvas view over a scene.
func NewOrreryViewModel(scene *orrery.Scene) OrreryViewModel {
	return OrreryViewModel{
		scene:     scene,
		camera:    astro.DefaultCamera(),
		zoomLevel: 3, // Index of 1.0 in zoomLevels
		scaleMode: astro.ScaleLogR,
		labelMode: LabelFocused,
	}
}

// scale returns the current zoom scale.
func (m OrreryViewModel) scale() float64 {
	if m.zoomLevel < 0 || m.zoomLevel >= len(zoomLevels) {
		return 1.0
	}
	return zoomLevels[m.zoomLevel]
}

// SetSize updates the viewport size.
func (m OrreryViewModel) SetSize(width, height int) OrreryViewModel {
	m.width = width
	m.height = height
	return m
}

// focusables returns the arena indices the focus cursor cycles over: the
// Sun, every planet, and every moon, in arena order. Stars are skipped.
func (m OrreryViewModel) focusables() []orrery.BodyIndex {
	var out []orrery.BodyIndex
	for i, b := range m.scene.Bodies() {
		if b.Kind == orrery.BodyStar {
			continue
		}
		out = append(out, orrery.BodyIndex(i))
	}
	return out
}

// FocusedBody returns the body under the focus cursor.
func (m OrreryViewModel) FocusedBody() *orrery.Body {
	f := m.focusables()
	if m.focusIdx < 0 || m.focusIdx >= len(f) {
		return m.scene.Body(m.scene.Sun())
	}
	return m.scene.Body(f[m.focusIdx])
}

// Update handles input messages.
func (m OrreryViewModel) Update(msg tea.Msg) (OrreryViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		// Focus navigation
		case "j", "[":
			m.focusStep(-1)
		case "k", "]":
			m.focusStep(1)

		// Viewport panning
		case "up":
			m.panY -= 0.1 / m.scale()
			m.userPanned = true
		case "down":
			m.panY += 0.1 / m.scale()
			m.userPanned = true
		case "left":
			m.panX -= 0.1 / m.scale()
			m.userPanned = true
		case "right":
			m.panX += 0.1 / m.scale()
			m.userPanned = true
		case "c":
			m.panX, m.panY = 0, 0 // Center on Sun
			m.userPanned = false

		// Find/focus - center on selected body
		case "f":
			m.centerOnFocused()
			m.userPanned = false

		// Zoom (discrete levels) - only auto-center if user hasn't panned
		case "+", "=":
			if m.zoomLevel < len(zoomLevels)-1 {
				m.zoomLevel++
				if !m.userPanned {
					m.centerOnFocused()
				}
			}
		case "-":
			if m.zoomLevel > 0 {
				m.zoomLevel--
				if !m.userPanned {
					m.centerOnFocused()
				}
			}
		case "0":
			m.zoomLevel = 3
			if !m.userPanned {
				m.centerOnFocused()
			}

		// Scale mode toggle
		case "z":
			m.scaleMode = (m.scaleMode + 1) % 3
			if !m.userPanned {
				m.centerOnFocused()
			}

		// Label mode toggle
		case "l":
			m.labelMode = (m.labelMode + 1) % 3

		// Starfield toggle (group visibility, mesh and light together)
		case "t":
			m.scene.SetStarsVisible(!m.scene.StarsVisible())

		// Reset everything
		case "r":
			m.panX, m.panY = 0, 0
			m.zoomLevel = 3
			m.userPanned = false
		}
	}
	return m, nil
}

func (m *OrreryViewModel) focusStep(delta int) {
	f := m.focusables()
	if len(f) == 0 {
		return
	}
	m.focusIdx += delta
	if m.focusIdx >= len(f) {
		m.focusIdx = 0
	}
	if m.focusIdx < 0 {
		m.focusIdx = len(f) - 1
	}
	m.centerOnFocused()
	m.userPanned = false
}

// centerOnFocused pans the view to center on the currently focused body.
func (m *OrreryViewModel) centerOnFocused() {
	body := m.FocusedBody()
	if body.Kind == orrery.BodySun {
		m.panX, m.panY = 0, 0
		return
	}

	proj := astro.ProjectTopDown(body.Pos, m.projection())
	m.panX = -proj.X
	m.panY = -proj.Y
}

// projection is the stock top-down projection with the view's active
// scale mode.
func (m OrreryViewModel) projection() astro.ProjectionConfig {
	cfg := astro.DefaultProjectionConfig()
	cfg.Mode = m.scaleMode
	return cfg
}

// View renders the orrery view.
func (m OrreryViewModel) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for orrery view"
	}

	canvas := m.buildCanvas()
	hud := m.renderHUD()

	return lipgloss.JoinVertical(lipgloss.Left, canvas, hud)
}

// cell is one canvas position: a rune plus an optional truecolor hex.
type cell struct {
	ch    rune
	color string // hex color; empty selects the rune-based default style
	bold  bool
}

// bodyPos tracks a body's screen position for label rendering.
type bodyPos struct {
	x, y      int
	name      string
	color     string
	isFocused bool
}

// buildCanvas renders the scene to a colored string canvas.
func (m OrreryViewModel) buildCanvas() string {
	// Reserve space for HUD
	canvasH := m.height - 5
	if canvasH < 5 {
		canvasH = 5
	}
	canvasW := m.width

	grid := make([][]cell, canvasH)
	for y := range grid {
		grid[y] = make([]cell, canvasW)
		for x := range grid[y] {
			grid[y][x] = cell{ch: ' '}
		}
	}

	screenCenterX := canvasW / 2
	screenCenterY := canvasH / 2

	cfg := m.projection()

	// The camera's field of view fixes the base display scale: the
	// visible half-range at the look-at plane maps to 90% of the canvas
	// half-extent at zoom 1.
	baseRange := astro.ProjectTopDown(astro.Vec3{X: m.camera.VisibleRange()}, cfg).X
	maxDisplayR := float64(minInt(screenCenterX, screenCenterY*2)) * 0.9
	displayScale := maxDisplayR / baseRange * m.scale()

	// Pan offset moves the scene origin on screen
	originX := screenCenterX + int(m.panX*displayScale)
	originY := screenCenterY - int(m.panY*displayScale)

	// Stars behind everything
	m.drawStarfield(grid, originX, originY, displayScale, cfg)

	// Orbit rings for each planet, centered on the panned origin
	m.drawOrbitRings(grid, originX, originY, displayScale, cfg)

	focused := m.FocusedBody()
	var positions []bodyPos

	// Draw planets and moons (Sun last so it stays visible)
	for i, body := range m.scene.Bodies() {
		if body.Kind == orrery.BodySun || body.Kind == orrery.BodyStar {
			continue
		}
		if !body.Visible || m.camera.Culled(body.Pos) {
			continue
		}

		proj := astro.ProjectTopDown(body.Pos, cfg)
		sx := originX + int(proj.X*displayScale)
		sy := originY - int(proj.Y*displayScale*0.5) // Vertical aspect correction

		if sx < 0 || sx >= canvasW || sy < 0 || sy >= canvasH {
			continue
		}

		isFocused := m.scene.Body(orrery.BodyIndex(i)) == focused
		grid[sy][sx] = cell{
			ch:    bodyGlyph(body, isFocused),
			color: materialColor(body),
			bold:  isFocused,
		}

		positions = append(positions, bodyPos{
			x:         sx,
			y:         sy,
			name:      body.Name,
			color:     body.Color,
			isFocused: isFocused,
		})
	}

	// Draw Sun at panned origin LAST so it's always covered by nothing
	sun := m.scene.Body(m.scene.Sun())
	if sun.Visible && originX >= 0 && originX < canvasW && originY >= 0 && originY < canvasH {
		grid[originY][originX] = cell{
			ch:    bodyGlyph(*sun, sun == focused),
			color: materialColor(*sun),
			bold:  true,
		}
		positions = append(positions, bodyPos{
			x:         originX,
			y:         originY,
			name:      sun.Name,
			color:     sun.Color,
			isFocused: sun == focused,
		})
	}

	m.renderLabels(grid, canvasW, canvasH, positions)

	return renderGrid(grid)
}

func (m OrreryViewModel) drawOrbitRings(grid [][]cell, cx, cy int, scale float64, cfg astro.ProjectionConfig) {
	for _, pi := range m.scene.Planets() {
		p := m.scene.Body(pi)
		if !p.Visible {
			continue
		}
		proj := astro.ProjectTopDown(astro.Vec3{X: p.Orbit.OrbitRadius}, cfg)
		drawCircle(grid, cx, cy, proj.X*scale)
	}
}

func drawCircle(grid [][]cell, cx, cy int, r float64) {
	if r < 1 {
		return
	}

	h := len(grid)
	w := len(grid[0])

	steps := int(2 * math.Pi * r)
	if steps < 8 {
		steps = 8
	}
	if steps > 360 {
		steps = 360
	}

	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(r*math.Cos(theta))
		y := cy - int(r*math.Sin(theta)*0.5) // Aspect ratio correction

		if x >= 0 && x < w && y >= 0 && y < h && grid[y][x].ch == ' ' {
			grid[y][x] = cell{ch: '·'}
		}
	}
}

// drawStarfield renders the generated background stars. Stars only land
// on empty cells so they never cover a body or a ring.
func (m OrreryViewModel) drawStarfield(grid [][]cell, cx, cy int, displayScale float64, cfg astro.ProjectionConfig) {
	h := len(grid)
	w := len(grid[0])

	for _, si := range m.scene.Stars() {
		star := m.scene.Body(si)
		if !star.Visible || m.camera.Culled(star.Pos) {
			continue
		}

		proj := astro.ProjectTopDown(star.Pos, cfg)
		sx := cx + int(proj.X*displayScale)
		sy := cy - int(proj.Y*displayScale*0.5)

		if sx < 0 || sx >= w || sy < 0 || sy >= h {
			continue
		}
		if grid[sy][sx].ch != ' ' {
			continue
		}

		glyph := starGlyph(star.Mag)
		if glyph == ' ' {
			continue
		}
		grid[sy][sx] = cell{ch: glyph, color: starColor(*star)}
	}
}

// starGlyph returns a subtle glyph based on star magnitude.
// Brighter stars (lower magnitude) get slightly more prominent glyphs.
func starGlyph(mag float64) rune {
	switch {
	case mag <= 1.0:
		return '∗'
	case mag <= 2.5:
		return '·'
	case mag <= 3.5:
		return '˙'
	default:
		return ' ' // Very dim: skip to avoid clutter
	}
}

// starColor dims a star's palette color toward black with magnitude, so
// the faint stars recede without an extra glyph tier.
func starColor(b orrery.Body) string {
	// Mag -1 keeps full brightness, mag 4 drops to 30%.
	f := 1.0 - (b.Mag+1)/5*0.7
	if f < 0.3 {
		f = 0.3
	}
	return dimHex(b.Color, f)
}

// bodyGlyph selects the canvas rune for a body. The wireframe material
// flag switches the filled glyph set to the outline set.
func bodyGlyph(b orrery.Body, focused bool) rune {
	switch b.Kind {
	case orrery.BodySun:
		if b.Wireframe {
			return '◎'
		}
		return '☉'
	case orrery.BodyPlanet:
		if b.Class == astro.SizeBig {
			if b.Wireframe {
				return '◯'
			}
			if focused {
				return '◉'
			}
			return '●'
		}
		if b.Wireframe {
			return '○'
		}
		if focused {
			return '●'
		}
		return '•'
	case orrery.BodyMoon:
		if b.Wireframe {
			return '◦'
		}
		return '∙'
	default:
		return '?'
	}
}

// materialColor returns the body's render color, dimmed when the
// wireframe material is active.
func materialColor(b orrery.Body) string {
	if b.Wireframe {
		return dimHex(b.Color, 0.55)
	}
	return b.Color
}

// dimHex scales a hex color's luminance by f, leaving hue and
// saturation alone. Invalid colors pass through unchanged.
func dimHex(hex string, f float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	return colorful.Hsl(h, s, l*f).Hex()
}

// renderLabels draws body labels on the canvas based on label mode.
func (m OrreryViewModel) renderLabels(grid [][]cell, width, height int, positions []bodyPos) {
	if m.labelMode == LabelNone || len(positions) == 0 {
		return
	}

	for _, pos := range positions {
		showLabel := false
		switch m.labelMode {
		case LabelFocused:
			showLabel = pos.isFocused
		case LabelAll:
			showLabel = true
		}

		if !showLabel {
			continue
		}

		// Label sits to the right of the glyph with a 1-cell gap
		labelX := pos.x + 2
		labelY := pos.y

		if labelY < 0 || labelY >= height || labelX >= width {
			continue
		}

		labelText := pos.name
		if pos.isFocused {
			labelText = "◄ " + pos.name
		}

		// Clip to the remaining cells, rune-width aware
		avail := width - labelX
		if runewidth.StringWidth(labelText) > avail {
			labelText = runewidth.Truncate(labelText, avail, "…")
		}

		x := labelX
		for _, r := range labelText {
			if x >= width {
				break
			}
			// Only write over empty cells and orbit rings
			if grid[labelY][x].ch == ' ' || grid[labelY][x].ch == '·' {
				grid[labelY][x] = cell{ch: r, color: pos.color, bold: pos.isFocused}
			}
			x += runewidth.RuneWidth(r)
		}
	}
}

// renderGrid styles every cell and joins the canvas into one string.
func renderGrid(grid [][]cell) string {
	var b strings.Builder

	ringStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	for _, row := range grid {
		for _, c := range row {
			if c.ch == ' ' {
				b.WriteRune(' ')
				continue
			}

			if c.color == "" {
				b.WriteString(ringStyle.Render(string(c.ch)))
				continue
			}

			style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.color))
			if c.bold {
				style = style.Bold(true)
			}
			b.WriteString(style.Render(string(c.ch)))
		}
		b.WriteRune('\n')
	}

	return b.String()
}

func (m OrreryViewModel) renderHUD() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	focused := m.FocusedBody()

	// Header line with focus info
	if focused.Kind == orrery.BodySun {
		b.WriteString(headerStyle.Render("☉ Sun"))
		b.WriteString("  ")
		b.WriteString(dimStyle.Render("(center of the scene)"))
	} else {
		b.WriteString(headerStyle.Render(fmt.Sprintf("◆ %s", focused.Name)))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Radius: "))
		b.WriteString(valueStyle.Render(orrery.FormatKm(focused.RadiusKm)))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Orbit: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.2f", focused.Orbit.OrbitRadius)))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Period: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%s (×%.2f)",
			orrery.FormatPeriod(focused.Orbit.PeriodDays), focused.Orbit.NormPeriod)))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Phase: "))
		b.WriteString(valueStyle.Render(orrery.FormatAngle(focused.Orbit.Phase)))
	}
	b.WriteString("\n")

	// Second line: position + mode indicators
	if focused.Kind != orrery.BodySun {
		b.WriteString(labelStyle.Render("Pos: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("(%.2f, %.2f, %.2f)", focused.Pos.X, focused.Pos.Y, focused.Pos.Z)))
		b.WriteString("  ")
	}

	labelName := ""
	switch m.labelMode {
	case LabelNone:
		labelName = "off"
	case LabelFocused:
		labelName = "focus"
	case LabelAll:
		labelName = "all"
	}

	starsName := "off"
	if m.scene.StarsVisible() {
		starsName = "on"
	}

	wireName := "off"
	if m.scene.Wireframe() {
		wireName = "on"
	}

	b.WriteString(dimStyle.Render("Mode:"))
	b.WriteString(valueStyle.Render(m.scaleMode.String()))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Zoom:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.2gx", m.scale())))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Labels:"))
	b.WriteString(valueStyle.Render(labelName))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Stars:"))
	b.WriteString(valueStyle.Render(starsName))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Wire:"))
	b.WriteString(valueStyle.Render(wireName))

	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
