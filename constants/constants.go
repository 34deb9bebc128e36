// Package constants holds the fixed layout and window tuning parameters
// shared between sizing and painting.
//
// These are layout tuning parameters, not protocol constants, but they
// must stay consistent between the layout package (which sizes boxes
// against them) and any painter (which must render within the same
// bounds). Grounded on saba_core::constants, referenced throughout
// ui/wasabi/src/app.rs in original_source as WINDOW_WIDTH,
// WINDOW_PADDING, CONTENT_AREA_WIDTH, etc.
package constants

const (
	// WindowWidth is the total width of the browser window, in pixels.
	WindowWidth = 1024

	// WindowPadding is the margin between the window edge and the content area.
	WindowPadding = 5

	// ContentAreaWidth is the width available to the layout tree.
	ContentAreaWidth = WindowWidth - WindowPadding*2

	// CharWidth is the width of one monospace character cell, in pixels.
	CharWidth = 8

	// CharHeightWithPadding is the height of one line of monospace text,
	// including inter-line padding, in pixels.
	CharHeightWithPadding = 16
)
