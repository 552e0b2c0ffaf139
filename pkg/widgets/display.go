package widgets

import "github.com/go-drift/datetimepicker/pkg/platform"

// Display selects how the native picker presents itself.
type Display string

const (
	// DisplayDefault lets the platform pick a presentation for the mode.
	DisplayDefault Display = "default"
	// DisplaySpinner shows rotating wheels. It is available on every OS version.
	DisplaySpinner Display = "spinner"
	// DisplayCompact shows a tappable label that opens a popover.
	DisplayCompact Display = "compact"
	// DisplayInline shows a full calendar or clock in place.
	DisplayInline Display = "inline"
)

// Mode selects which components of the instant the picker edits.
type Mode string

const (
	ModeDate     Mode = "date"
	ModeTime     Mode = "time"
	ModeDateTime Mode = "datetime"
	// ModeCountdown edits a duration in hours and minutes. It is only
	// rendered as a spinner by the platform.
	ModeCountdown Mode = "countdown"
)

// ThemeVariant forces the picker's light or dark appearance.
type ThemeVariant string

const (
	ThemeVariantSystem ThemeVariant = ""
	ThemeVariantLight  ThemeVariant = "light"
	ThemeVariantDark   ThemeVariant = "dark"
)

// ModernDisplayMajorVersion is the first OS major version that renders the
// compact and inline displays.
const ModernDisplayMajorVersion = 14

// ResolveDisplay returns the display the native picker can actually render
// on the given OS version. Versions that cannot be parsed are treated as
// unsupported and get the spinner.
func ResolveDisplay(requested Display, version string) Display {
	major, ok := platform.MajorVersion(version)
	if !ok {
		return DisplaySpinner
	}
	if requested == DisplayInline && major < ModernDisplayMajorVersion {
		return DisplaySpinner
	}
	// Below 14 there is no compact presentation either, even though the
	// platform documents the default display per minor release.
	if major < ModernDisplayMajorVersion {
		return DisplaySpinner
	}
	return requested
}
