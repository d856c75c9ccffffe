// Package viz renders vorticity fields, in the terminal and to image files.
//
// The package has two halves:
//
//   - [FieldCanvas]: shaded character-cell rendering of a vorticity grid,
//     used by the live Bubble Tea view ([Model]) and the show command
//   - [RenderField] and [RenderSeries]: heatmap and time-series figures
//     written through gonum/plot (PNG, SVG, or PDF by file extension)
//
// # Key Bindings
//
//	Space - Pause/Resume integration
//	R     - Reset to the initial field
//	T     - Cycle color themes
//	+/-   - Double/halve the steps taken per frame
//	?     - Show help overlay
//
// Terminal output is styled with Lip Gloss and colored by the active
// [Theme]; positive and negative vorticity get separate colors so vortex
// pairs and shear layers read at a glance.
package viz
