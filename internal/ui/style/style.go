// Package style provides shared color and icon constants for consistent
// terminal presentation across the CLI.
package style

// Colors, as hex strings consumable by termenv.RGBColor.
const (
	Slate  = "#667085"
	Green  = "#22A06B"
	Red    = "#D93025"
	Yellow = "#F59E0B"
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)
