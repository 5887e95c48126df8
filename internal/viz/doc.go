// Package viz provides the terminal front end for the kinetics lab.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: three tabs (Eyring plot, salt effect, transition-state animation)
//   - [Canvas]: Braille-based pixel canvas with a text overlay
//   - [BrailleSurface]: adapts a Canvas to the animation engine's surface
//   - Theme selection with 3 built-in color schemes
//
// # Key Bindings
//
//	Tab/1-3 - Switch tab
//	←/→     - ΔH‡ slider
//	↑/↓     - ΔS‡ slider
//	a/A b/B - Cycle ion charges
//	M       - Toggle associative/dissociative
//	T       - Cycle color themes
//	?       - Show help overlay
//
// # Animation
//
// The animation loop runs only while the Animation tab is visible. Leaving
// the tab or quitting cancels it.
package viz
