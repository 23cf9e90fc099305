// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - Wireframe render mode, starfield regeneration, control event log
// 0.3.0 - JSON snapshot export, headless summary and watch modes
// 0.2.0 - Moons with randomized orbits, bodies table, control panel
// 0.1.0 - Initial release: sun and nine planets on the canvas, frame loop
