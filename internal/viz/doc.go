// Package viz renders sorting progress in the terminal.
//
// The package implements the interactive TUI using the Bubble Tea framework:
//
//   - [Renderer]: draws loop frames as a lipgloss bar chart with a stats panel
//   - [App]: Bubble Tea model that maps keys to loop commands and ticks
//   - [Theme]: explicit palette passed to the renderer, 5 built in
//
// # Key Bindings
//
//	R     - Regenerate the array (cancels a running sort)
//	Space - Start sorting
//	A / D - Ascending / descending
//	B / I - Bubble sort / insertion sort
//	Q     - Quit
//
// Selection keys are ignored while a sort is running.
package viz
