package widgets_test

import (
	"fmt"
	"time"

	"github.com/go-drift/datetimepicker/pkg/core"
	"github.com/go-drift/datetimepicker/pkg/widgets"
)

type bookingForm struct {
	core.StatefulBase
}

func (bookingForm) CreateState() core.State { return &bookingFormState{} }

type bookingFormState struct {
	core.StateBase
	when     *core.Managed[time.Time]
	onChange func(widgets.DateTimePickerEvent, *time.Time)
}

func (s *bookingFormState) InitState() {
	s.when = core.NewManaged(s, time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC))
	s.onChange = func(event widgets.DateTimePickerEvent, date *time.Time) {
		if date != nil {
			s.when.Set(*date)
		}
	}
}

func (s *bookingFormState) Build(ctx core.BuildContext) core.Widget {
	when := s.when.Value()
	return widgets.DateTimePicker{
		Value:          &when,
		Mode:           widgets.ModeDateTime,
		Display:        widgets.DisplayInline,
		MinuteInterval: 15,
		OnChange:       s.onChange,
	}
}

func ExampleResolveDisplay() {
	fmt.Println(widgets.ResolveDisplay(widgets.DisplayInline, "13.7"))
	fmt.Println(widgets.ResolveDisplay(widgets.DisplayInline, "17.2"))
	fmt.Println(widgets.ResolveDisplay(widgets.DisplayCompact, "unknown"))
	// Output:
	// spinner
	// inline
	// spinner
}

func ExampleNormalizeChange() {
	event, date := widgets.NormalizeChange(widgets.RawChangeEvent{
		NativeEvent: map[string]any{"timestamp": float64(86_400_000), "utcOffset": float64(0)},
	})
	fmt.Println(event.Type, date.UTC().Format(time.DateOnly))
	// Output: set 1970-01-02
}

func ExampleDateTimePicker() {
	_ = bookingForm{}
}
