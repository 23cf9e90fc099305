// Package state provides thread-safe ownership of the scene's control
// properties.
package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/litescript/ls-orrery/internal/orrery"
)

// Speed multiplier bounds. The setters are the widget layer's backing
// store and the only place ranges are enforced; the scene kernel takes
// whatever multiplier it is handed.
const (
	MinPlanetSpeed = 1.0
	MaxPlanetSpeed = 25.0

	MinMoonSpeed = 1.0
	MaxMoonSpeed = 10.0

	SpeedStep = 0.1
)

// EventType represents the kind of control change.
type EventType string

const (
	EventSpeed     EventType = "SPEED"
	EventToggle    EventType = "TOGGLE"
	EventStarfield EventType = "STARFIELD"
)

// Event records one control-state change.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Label     string    `json:"label"`
	Value     string    `json:"value"`
}

// Manager handles the shared control state with thread-safe access. The
// TUI mutates it from the update loop between frames; the mutex covers
// the headless paths as well.
type Manager struct {
	mu sync.RWMutex

	movementEnabled bool
	planetSpeed     float64
	moonSpeed       float64
	starCount       int
	showStars       bool
	wireframe       bool

	// Frame stats
	framesAdvanced uint64
	lastAdvance    time.Duration

	// Control-change log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int
}

// Config holds the starting control properties.
type Config struct {
	MovementEnabled bool
	PlanetSpeed     float64
	MoonSpeed       float64
	StarCount       int
	ShowStars       bool
	Wireframe       bool
	MaxEvents       int
}

// DefaultConfig returns the scene's stock control state: movement on,
// both multipliers at 1, the default starfield shown.
func DefaultConfig() Config {
	return Config{
		MovementEnabled: true,
		PlanetSpeed:     1.0,
		MoonSpeed:       1.0,
		StarCount:       orrery.DefaultStarCount,
		ShowStars:       true,
		MaxEvents:       50,
	}
}

// NewManager creates a new control-state manager.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	return &Manager{
		movementEnabled: cfg.MovementEnabled,
		planetSpeed:     clamp(cfg.PlanetSpeed, MinPlanetSpeed, MaxPlanetSpeed),
		moonSpeed:       clamp(cfg.MoonSpeed, MinMoonSpeed, MaxMoonSpeed),
		starCount:       clampInt(cfg.StarCount, 0, orrery.MaxStarCount),
		showStars:       cfg.ShowStars,
		wireframe:       cfg.Wireframe,
		maxEvents:       maxEvents,
		events:          make([]Event, 0, maxEvents),
	}
}

// Snapshot represents an immutable copy of the control state.
type Snapshot struct {
	MovementEnabled bool
	PlanetSpeed     float64
	MoonSpeed       float64
	StarCount       int
	ShowStars       bool
	Wireframe       bool

	FramesAdvanced uint64
	LastAdvance    time.Duration

	Events []Event
}

// Snapshot returns a consistent copy of the current control state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Snapshot{
		MovementEnabled: m.movementEnabled,
		PlanetSpeed:     m.planetSpeed,
		MoonSpeed:       m.moonSpeed,
		StarCount:       m.starCount,
		ShowStars:       m.showStars,
		Wireframe:       m.wireframe,
		FramesAdvanced:  m.framesAdvanced,
		LastAdvance:     m.lastAdvance,
		Events:          m.getEventsOrdered(),
	}
}

// Motion returns the per-frame animation inputs for the scene kernel.
func (m *Manager) Motion() orrery.Motion {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return orrery.Motion{
		Enabled:     m.movementEnabled,
		PlanetSpeed: m.planetSpeed,
		MoonSpeed:   m.moonSpeed,
	}
}

// MovementEnabled reports whether bodies advance each frame.
func (m *Manager) MovementEnabled() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.movementEnabled
}

// SetMovementEnabled sets the movement gate.
func (m *Manager) SetMovementEnabled(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.movementEnabled == on {
		return
	}
	m.movementEnabled = on
	m.addEvent(Event{Type: EventToggle, Timestamp: time.Now(), Label: "Move Bodies", Value: onOff(on)})
}

// ToggleMovement flips the movement gate and returns the new value.
func (m *Manager) ToggleMovement() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.movementEnabled = !m.movementEnabled
	m.addEvent(Event{Type: EventToggle, Timestamp: time.Now(), Label: "Move Bodies", Value: onOff(m.movementEnabled)})
	return m.movementEnabled
}

// PlanetSpeed returns the planet speed multiplier.
func (m *Manager) PlanetSpeed() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.planetSpeed
}

// SetPlanetSpeed sets the planet speed multiplier, clamped to the widget
// range. Returns the value actually stored.
func (m *Manager) SetPlanetSpeed(v float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	v = clamp(v, MinPlanetSpeed, MaxPlanetSpeed)
	if v != m.planetSpeed {
		m.planetSpeed = v
		m.addEvent(Event{Type: EventSpeed, Timestamp: time.Now(), Label: "Planets Speed", Value: fmt.Sprintf("%.1f", v)})
	}
	return m.planetSpeed
}

// MoonSpeed returns the moon speed multiplier.
func (m *Manager) MoonSpeed() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.moonSpeed
}

// SetMoonSpeed sets the moon speed multiplier, clamped to the widget
// range. Returns the value actually stored.
func (m *Manager) SetMoonSpeed(v float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	v = clamp(v, MinMoonSpeed, MaxMoonSpeed)
	if v != m.moonSpeed {
		m.moonSpeed = v
		m.addEvent(Event{Type: EventSpeed, Timestamp: time.Now(), Label: "Moons Speed", Value: fmt.Sprintf("%.1f", v)})
	}
	return m.moonSpeed
}

// StarCount returns the configured starfield size.
func (m *Manager) StarCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.starCount
}

// SetStarCount sets the starfield size, clamped to the scene bound.
// Returns the value actually stored.
func (m *Manager) SetStarCount(n int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n = clampInt(n, 0, orrery.MaxStarCount)
	if n != m.starCount {
		m.starCount = n
		m.addEvent(Event{Type: EventStarfield, Timestamp: time.Now(), Label: "Star Count", Value: fmt.Sprintf("%d", n)})
	}
	return m.starCount
}

// ShowStars reports whether the starfield is shown.
func (m *Manager) ShowStars() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.showStars
}

// SetShowStars sets the starfield visibility flag.
func (m *Manager) SetShowStars(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.showStars == on {
		return
	}
	m.showStars = on
	m.addEvent(Event{Type: EventToggle, Timestamp: time.Now(), Label: "Show Stars", Value: onOff(on)})
}

// Wireframe reports whether materials render as wireframes.
func (m *Manager) Wireframe() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.wireframe
}

// SetWireframe sets the wireframe material flag.
func (m *Manager) SetWireframe(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.wireframe == on {
		return
	}
	m.wireframe = on
	m.addEvent(Event{Type: EventToggle, Timestamp: time.Now(), Label: "Wireframe", Value: onOff(on)})
}

// RecordAdvance notes one completed frame advance for the footer stats.
func (m *Manager) RecordAdvance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.framesAdvanced++
	m.lastAdvance = d
}

// RecordVisibility logs a body visibility change.
func (m *Manager) RecordVisibility(name string, visible bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.addEvent(Event{Type: EventToggle, Timestamp: time.Now(), Label: "Show " + name, Value: onOff(visible)})
}

// RecentEvents returns the last n control changes, oldest first.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// addEvent adds an event to the ring buffer. Callers hold the lock.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	// If buffer isn't full yet, just copy
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
