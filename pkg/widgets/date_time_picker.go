package widgets

import (
	"time"

	"github.com/go-drift/datetimepicker/pkg/core"
	"github.com/go-drift/datetimepicker/pkg/errors"
	"github.com/go-drift/datetimepicker/pkg/graphics"
	"github.com/go-drift/datetimepicker/pkg/platform"
)

// DefaultReadinessDelay is how long a freshly mounted picker shows
// PlaceholderDate before switching to its real value.
var DefaultReadinessDelay = 100 * time.Millisecond

// PlaceholderDate is shown by the native view until the picker is ready.
var PlaceholderDate = time.UnixMilli(0)

// DateTimePicker displays the platform date/time picker inline.
//
// DateTimePicker is a controlled component: it shows the Value you provide
// and calls OnChange when the user commits a selection. Update Value in your
// state in response to OnChange.
//
//	widgets.DateTimePicker{
//	    Value:   &s.when,
//	    Mode:    widgets.ModeDateTime,
//	    Display: widgets.DisplayInline,
//	    OnChange: func(event widgets.DateTimePickerEvent, date *time.Time) {
//	        if date != nil {
//	            s.SetState(func() { s.when = *date })
//	        }
//	    },
//	}
//
// Displays the running OS cannot render fall back to the spinner (see
// [ResolveDisplay]). Nothing is rendered until the picker height is known.
// Value must be non-nil; a nil Value fails the build with an
// [errors.PreconditionError].
type DateTimePicker struct {
	core.StatefulBase

	// Value is the instant shown by the picker. Required.
	Value *time.Time
	// MinimumDate is the earliest selectable instant (optional).
	MinimumDate *time.Time
	// MaximumDate is the latest selectable instant (optional).
	MaximumDate *time.Time
	// Mode defaults to ModeDate.
	Mode Mode
	// Display defaults to DisplayDefault.
	Display Display
	// Locale is a BCP 47 identifier such as "en_GB" (optional).
	Locale string
	// MinuteInterval restricts minutes to multiples of the interval. Must be
	// one of 1, 2, 3, 4, 5, 6, 10, 12, 15, 20, 30, or 0 for unset.
	MinuteInterval int
	// TimeZoneOffsetInMinutes pins the displayed zone (optional).
	TimeZoneOffsetInMinutes *int
	// TextColor of the picker text (optional).
	TextColor graphics.Color
	// AccentColor tints the selection (optional).
	AccentColor graphics.Color
	// ThemeVariant forces light or dark appearance.
	ThemeVariant ThemeVariant
	// Disabled disables interaction when true.
	Disabled bool
	// Style is host styling around the picker.
	Style Style
	// TestID identifies the native view in UI tests.
	TestID string

	// Element replaces the built-in native picker (optional).
	Element ElementBuilder
	// OnChange is called when the user commits a selection. date is nil if
	// native reported no timestamp.
	OnChange func(event DateTimePickerEvent, date *time.Time)

	// HeightResolver overrides DefaultHeightResolver.
	HeightResolver HeightResolver
	// ReadinessDelay overrides DefaultReadinessDelay when positive.
	ReadinessDelay time.Duration
}

func (p DateTimePicker) CreateState() core.State {
	return &dateTimePickerState{}
}

func (p DateTimePicker) mode() Mode {
	if p.Mode == "" {
		return ModeDate
	}
	return p.Mode
}

func (p DateTimePicker) display() Display {
	if p.Display == "" {
		return DisplayDefault
	}
	return p.Display
}

func (p DateTimePicker) effectiveDisplay() Display {
	return ResolveDisplay(p.display(), platform.Device.SystemVersion())
}

func (p DateTimePicker) heightResolver() HeightResolver {
	if p.HeightResolver != nil {
		return p.HeightResolver
	}
	return DefaultHeightResolver
}

func (p DateTimePicker) readinessDelay() time.Duration {
	if p.ReadinessDelay > 0 {
		return p.ReadinessDelay
	}
	return DefaultReadinessDelay
}

type heightKey struct {
	display Display
	mode    Mode
}

type dateTimePickerState struct {
	core.StateBase
	height    *core.Managed[*float64]
	ready     *core.Managed[bool]
	handle    *core.Ref[DateHandle]
	valueSync *core.Effect

	heightKey  heightKey
	generation int
}

func (s *dateTimePickerState) widget() DateTimePicker {
	return s.Element().Widget().(DateTimePicker)
}

func (s *dateTimePickerState) InitState() {
	w := s.widget()

	s.height = core.NewManaged[*float64](s, nil)
	s.ready = core.NewManaged(s, false)
	s.handle = core.UseRef[DateHandle](s)
	s.valueSync = core.UseEffect(s, func() func() {
		s.syncNativeValue()
		return nil
	})

	s.resolveHeight(heightKey{display: w.effectiveDisplay(), mode: w.mode()}, w.heightResolver())

	timer := core.AfterFunc(w.readinessDelay(), func() {
		platform.Dispatch(func() {
			if !s.IsDisposed() {
				s.ready.Set(true)
			}
		})
	})
	s.OnDispose(func() { timer.Stop() })
}

func (s *dateTimePickerState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	w := s.widget()
	key := heightKey{display: w.effectiveDisplay(), mode: w.mode()}
	if key != s.heightKey {
		s.resolveHeight(key, w.heightResolver())
	}
}

// resolveHeight starts resolving the height for key. Only the most recent
// resolution may update the height; the previous height stays in place
// until it completes.
func (s *dateTimePickerState) resolveHeight(key heightKey, resolver HeightResolver) {
	s.heightKey = key
	s.generation++
	generation := s.generation

	result := resolver.ResolveHeight(key.display, key.mode)
	if !result.Pending() {
		h := result.Height()
		s.height.Set(&h)
		return
	}

	result.OnComplete(func(height float64, err error) {
		platform.Dispatch(func() {
			if s.IsDisposed() || generation != s.generation {
				return
			}
			if err != nil {
				errors.Report(&errors.DriftError{
					Op:   "widgets.DateTimePicker.resolveHeight",
					Kind: errors.KindPlatform,
					Err:  err,
				})
				return
			}
			s.height.Set(&height)
		})
	})
}

// syncNativeValue pushes the current value straight onto the native view.
// The prop path alone drops rapid external updates.
func (s *dateTimePickerState) syncNativeValue() {
	w := s.widget()
	if w.Value == nil || w.OnChange == nil {
		return
	}
	handle, ok := s.handle.Current()
	if !ok || handle == nil {
		return
	}
	handle.SetNativeDate(w.Value.UnixMilli())
}

func (s *dateTimePickerState) handleRawChange(raw RawChangeEvent) {
	if s.IsDisposed() {
		return
	}
	event, date := NormalizeChange(raw)
	if onChange := s.widget().OnChange; onChange != nil {
		onChange(event, date)
	}
}

func (s *dateTimePickerState) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	if err := ValidateProps(w); err != nil {
		panic(err)
	}
	s.valueSync.Watch(w.Value.UnixMilli(), core.FuncIdentity(w.OnChange))

	height := s.height.Value()
	phase := renderPhase(height != nil, s.ready.Value())
	if phase == PhaseSuppressed {
		return nil
	}

	date := *w.Value
	if phase == PhasePlaceholder {
		date = PlaceholderDate
	}
	props := NativeProps{
		Date:                    date,
		MinimumDate:             w.MinimumDate,
		MaximumDate:             w.MaximumDate,
		Mode:                    w.mode(),
		Display:                 w.effectiveDisplay(),
		Locale:                  w.Locale,
		MinuteInterval:          w.MinuteInterval,
		TimeZoneOffsetInMinutes: w.TimeZoneOffsetInMinutes,
		TextColor:               w.TextColor,
		AccentColor:             w.AccentColor,
		ThemeVariant:            w.ThemeVariant,
		Disabled:                w.Disabled,
		TestID:                  w.TestID,
		Width:                   w.Style.Width,
		Height:                  *height,
		HandleRef:               s.handle,
		OnChange:                s.handleRawChange,
	}
	if w.Style.Height > 0 {
		props.Height = w.Style.Height
	}

	var child core.Widget
	if w.Element != nil {
		child = w.Element(props)
	} else {
		child = NativeDateTimePicker{Props: props}
	}
	return SizedBox{
		Width:           props.Width,
		Height:          props.Height,
		BackgroundColor: w.Style.BackgroundColor,
		Child:           child,
	}
}
