package widgets

import (
	stderrors "errors"
	"fmt"
	"math"

	"golang.org/x/sync/singleflight"

	"github.com/go-drift/datetimepicker/pkg/errors"
	"github.com/go-drift/datetimepicker/pkg/graphics"
	"github.com/go-drift/datetimepicker/pkg/platform"
)

// SpinnerHeight is the fixed height of the wheel picker in points.
const SpinnerHeight = 216.0

// Layout of the estimated heights, in multiples of the body line height
// unless noted.
const (
	compactRowPadding = 7.0 // points above and below the label
	inlineHeaderLines = 2.6
	inlineWeekRows    = 6
	inlineRowLines    = 2.1
)

var pickerChannel = platform.NewMethodChannel("drift/datetimepicker")

// DefaultHeightResolver is used by pickers that do not set HeightResolver.
var DefaultHeightResolver HeightResolver = NewPlatformHeightResolver()

// PlatformHeightResolver asks the native side for the intrinsic height of a
// display/mode pair. Spinner layouts have a fixed height and resolve
// synchronously; everything else is queried in the background. Without a
// native bridge it estimates the height from font metrics.
type PlatformHeightResolver struct {
	// Overrides pins heights per display and mode, skipping the native query.
	Overrides map[Display]map[Mode]float64

	group singleflight.Group
}

// NewPlatformHeightResolver creates a resolver with no overrides.
func NewPlatformHeightResolver() *PlatformHeightResolver {
	return &PlatformHeightResolver{}
}

// ResolveHeight implements HeightResolver.
func (r *PlatformHeightResolver) ResolveHeight(display Display, mode Mode) HeightResult {
	if h, ok := r.override(display, mode); ok {
		return ReadyHeight(h)
	}
	if display == DisplaySpinner || mode == ModeCountdown {
		return ReadyHeight(SpinnerHeight)
	}

	result, completer := PendingHeight()
	go func() {
		defer errors.Recover("widgets.PlatformHeightResolver.ResolveHeight")
		height, err := r.Query(display, mode)
		if err != nil {
			completer.Fail(err)
			return
		}
		completer.Complete(height)
	}()
	return result
}

// Query blocks until the native side reports the height of display/mode.
// Concurrent queries for the same pair share one native call.
func (r *PlatformHeightResolver) Query(display Display, mode Mode) (float64, error) {
	if h, ok := r.override(display, mode); ok {
		return h, nil
	}
	if display == DisplaySpinner || mode == ModeCountdown {
		return SpinnerHeight, nil
	}

	v, err, _ := r.group.Do(string(display)+"/"+string(mode), func() (any, error) {
		result, err := pickerChannel.Invoke("getDefaultDisplayValue", map[string]any{
			"mode":    string(mode),
			"display": string(display),
		})
		if stderrors.Is(err, platform.ErrPlatformUnavailable) {
			return EstimateHeight(display, mode)
		}
		if err != nil {
			return 0.0, fmt.Errorf("query picker height: %w", err)
		}

		payload, _ := result.(map[string]any)
		height, ok := platform.ToFloat64(payload["height"])
		if !ok || height <= 0 {
			return 0.0, &errors.ParseError{
				Channel:  pickerChannel.Name(),
				DataType: "picker height",
				Got:      result,
			}
		}
		return height, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

func (r *PlatformHeightResolver) override(display Display, mode Mode) (float64, bool) {
	if r.Overrides == nil {
		return 0, false
	}
	h, ok := r.Overrides[display][mode]
	return h, ok && h > 0
}

// EstimateHeight approximates the native height of display/mode from the
// metrics of the bundled body font.
func EstimateHeight(display Display, mode Mode) (float64, error) {
	if display == DisplaySpinner || mode == ModeCountdown {
		return SpinnerHeight, nil
	}

	line, err := graphics.LineHeight(graphics.DefaultFontSize)
	if err != nil {
		return 0, fmt.Errorf("estimate picker height: %w", err)
	}

	row := line + 2*compactRowPadding
	if display != DisplayInline || mode == ModeTime {
		return math.Ceil(row), nil
	}

	calendar := line * (inlineHeaderLines + 1 + inlineWeekRows*inlineRowLines)
	if mode == ModeDateTime {
		calendar += row
	}
	return math.Ceil(calendar), nil
}
