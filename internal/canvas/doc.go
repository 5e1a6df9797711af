// Package canvas defines the drawing surface the wificonnect screens render to.
//
// Screens never pick pixel colors or font files. They address a fixed logical
// surface (320×240 by default) with logical Color and Font roles, ask the
// Canvas to measure text, and issue draw calls. Implementations map the roles
// onto something real:
//
//   - termcanvas: a tcell terminal screen, one cell per 8×16 logical pixels
//   - imgcanvas: an in-memory RGBA image encoded as PNG on Present
//   - Recorder: records every call, used by tests
//
// # Ordering
//
// Draw calls are applied in the order they are issued and nothing is visible
// until Present. Callers that replace a region must paint its background
// before drawing into it again.
package canvas
