package widgets

import (
	"time"

	"github.com/go-drift/datetimepicker/pkg/core"
	"github.com/go-drift/datetimepicker/pkg/errors"
	"github.com/go-drift/datetimepicker/pkg/graphics"
	"github.com/go-drift/datetimepicker/pkg/platform"
)

// DateHandle is the imperative surface of a mounted native picker.
type DateHandle interface {
	// SetNativeDate shows the instant at Unix milliseconds millis.
	SetNativeDate(millis int64)
}

// NativeProps is the prop surface of the element that renders the picker:
// the built-in NativeDateTimePicker or a caller-supplied ElementBuilder.
type NativeProps struct {
	Date                    time.Time
	MinimumDate             *time.Time
	MaximumDate             *time.Time
	Mode                    Mode
	Display                 Display
	Locale                  string
	MinuteInterval          int
	TimeZoneOffsetInMinutes *int
	TextColor               graphics.Color
	AccentColor             graphics.Color
	ThemeVariant            ThemeVariant
	Disabled                bool
	TestID                  string
	Width                   float64
	Height                  float64

	// HandleRef receives the native handle once the view exists and is
	// cleared when it is torn down.
	HandleRef *core.Ref[DateHandle]
	// OnChange receives raw native change notifications.
	OnChange func(RawChangeEvent)
}

// ViewConfig converts the props to the native view configuration.
func (p NativeProps) ViewConfig() platform.DateTimePickerViewConfig {
	return platform.DateTimePickerViewConfig{
		Date:                    p.Date.UnixMilli(),
		MinimumDate:             unixMilliPtr(p.MinimumDate),
		MaximumDate:             unixMilliPtr(p.MaximumDate),
		Mode:                    string(p.Mode),
		Display:                 string(p.Display),
		Locale:                  p.Locale,
		MinuteInterval:          p.MinuteInterval,
		TimeZoneOffsetInMinutes: p.TimeZoneOffsetInMinutes,
		TextColor:               p.TextColor.ARGB(),
		AccentColor:             p.AccentColor.ARGB(),
		ThemeVariant:            string(p.ThemeVariant),
		Disabled:                p.Disabled,
		TestID:                  p.TestID,
	}
}

func unixMilliPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

// ElementBuilder renders a substitute for the built-in native picker. The
// substitute should set HandleRef and report changes through OnChange the
// way NativeDateTimePicker does.
type ElementBuilder func(props NativeProps) core.Widget

// NativeDateTimePicker embeds the platform date/time picker view.
//
// It is the prop-driven half of DateTimePicker: configuration changes are
// sent to native as a whole. Most code should use DateTimePicker, which also
// handles display fallback, sizing, and value synchronization.
type NativeDateTimePicker struct {
	core.StatefulBase

	Props NativeProps
}

func (n NativeDateTimePicker) CreateState() core.State {
	return &nativeDateTimePickerState{}
}

type nativeDateTimePickerState struct {
	core.StateBase
	platformView *platform.DateTimePickerView
	handleRef    *core.Ref[DateHandle]
}

func (s *nativeDateTimePickerState) props() NativeProps {
	return s.Element().Widget().(NativeDateTimePicker).Props
}

func (s *nativeDateTimePickerState) InitState() {
	props := s.props()

	view, err := platform.GetPlatformViewRegistry().Create(platform.DateTimePickerViewType, props.ViewConfig().Params())
	if err != nil {
		errors.Report(&errors.DriftError{
			Op:   "widgets.NativeDateTimePicker.InitState",
			Kind: errors.KindPlatform,
			Err:  err,
		})
		return
	}
	picker, ok := view.(*platform.DateTimePickerView)
	if !ok {
		return
	}

	s.platformView = picker
	picker.SetClient(s)
	picker.SetSize(props.Width, props.Height)
	s.attachHandle(props.HandleRef)
}

func (s *nativeDateTimePickerState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	if s.platformView == nil {
		return
	}
	props := s.props()

	if props.HandleRef != s.handleRef {
		s.detachHandle()
		s.attachHandle(props.HandleRef)
	}

	config := props.ViewConfig()
	if !config.Equal(s.platformView.Config()) {
		s.platformView.UpdateConfig(config)
	}
	s.platformView.SetSize(props.Width, props.Height)
}

func (s *nativeDateTimePickerState) Dispose() {
	s.detachHandle()
	if s.platformView != nil {
		platform.GetPlatformViewRegistry().Dispose(s.platformView.ViewID())
		s.platformView = nil
	}
	s.StateBase.Dispose()
}

// Build renders nothing in Go; the native view is composited by the host.
func (s *nativeDateTimePickerState) Build(ctx core.BuildContext) core.Widget {
	return nil
}

// OnDateChanged implements platform.DateTimePickerViewClient.
func (s *nativeDateTimePickerState) OnDateChanged(nativeEvent map[string]any) {
	if s.IsDisposed() {
		return
	}
	if onChange := s.props().OnChange; onChange != nil {
		onChange(RawChangeEvent{NativeEvent: nativeEvent})
	}
}

func (s *nativeDateTimePickerState) attachHandle(ref *core.Ref[DateHandle]) {
	s.handleRef = ref
	if ref != nil && s.platformView != nil {
		ref.Set(s.platformView)
	}
}

func (s *nativeDateTimePickerState) detachHandle() {
	if s.handleRef == nil {
		return
	}
	// Another picker may have claimed the ref since.
	if current, ok := s.handleRef.Current(); ok && current == DateHandle(s.platformView) {
		s.handleRef.Clear()
	}
	s.handleRef = nil
}
