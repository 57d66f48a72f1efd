// Package explorer is an interactive terminal front end for the escape-time
// engine, built on Bubble Tea.
//
// The image is drawn with upper half blocks, two sub-pixels per cell, after
// downsampling a supersampled render.
//
// # Key Bindings
//
//	q / a     - Zoom in / out
//	w / s     - Double / halve iterations
//	← / →     - Step back / forward through history
//	n         - Fly to the next preset
//	r         - Return to the start viewport
//	t         - Cycle color themes
//	?         - Show help
//	esc       - Quit
//
// Left click recenters on the pointer; right click recenters and zooms in.
// Both animate. Hovering shows the raw iteration count under the pointer.
package explorer
