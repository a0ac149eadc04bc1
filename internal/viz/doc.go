// Package viz draws the fitness landscape in the terminal.
//
//   - [Canvas]: braille pixel canvas with per-cell color classes
//   - [Camera] and [Scene]: orbit camera and the normalized wireframe of the
//     surface, path segments and points
//   - [Viewer]: interactive Bubble Tea model
//
// # Key Bindings
//
//	←/→ h/l - Rotate around the vertical axis
//	↑/↓ k/j - Tilt
//	+/-     - Zoom
//	T       - Cycle color themes
//	R       - Reset the camera
//	Q       - Quit
package viz
