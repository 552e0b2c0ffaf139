package widgets_test

import (
	"testing"
	"time"

	"github.com/go-drift/datetimepicker/pkg/core"
	"github.com/go-drift/datetimepicker/pkg/graphics"
	"github.com/go-drift/datetimepicker/pkg/platform"
	drifttest "github.com/go-drift/datetimepicker/pkg/testing"
	"github.com/go-drift/datetimepicker/pkg/widgets"
)

func TestNativeDateTimePicker_CreateCarriesProps(t *testing.T) {
	tester, bridge := setupPicker(t, "17.2")
	date := instant("2025-05-05T12:00:00Z")
	minDate := instant("2025-01-01T00:00:00Z")
	offset := -300

	mustPump(t, tester.PumpWidget(widgets.NativeDateTimePicker{Props: widgets.NativeProps{
		Date:                    date,
		MinimumDate:             &minDate,
		Mode:                    widgets.ModeDateTime,
		Display:                 widgets.DisplayCompact,
		Locale:                  "de_DE",
		MinuteInterval:          15,
		TimeZoneOffsetInMinutes: &offset,
		AccentColor:             graphics.ColorBlue,
		ThemeVariant:            widgets.ThemeVariantDark,
		TestID:                  "start-date",
		Width:                   320,
		Height:                  36,
	}}))

	creates := bridge.CallsTo("drift/platform_views", "create")
	if len(creates) != 1 {
		t.Fatalf("create calls = %d, want 1", len(creates))
	}
	if creates[0].Args["viewType"] != platform.DateTimePickerViewType {
		t.Errorf("viewType = %v", creates[0].Args["viewType"])
	}
	params := creates[0].Args["params"].(map[string]any)
	want := map[string]any{
		"date":                    float64(date.UnixMilli()),
		"minimumDate":             float64(minDate.UnixMilli()),
		"mode":                    "datetime",
		"display":                 "compact",
		"locale":                  "de_DE",
		"minuteInterval":          float64(15),
		"timeZoneOffsetInMinutes": float64(-300),
		"accentColor":             float64(graphics.ColorBlue),
		"themeVariant":            "dark",
		"testID":                  "start-date",
		"disabled":                false,
	}
	for k, v := range want {
		if params[k] != v {
			t.Errorf("params[%q] = %v, want %v", k, params[k], v)
		}
	}
	if _, ok := params["maximumDate"]; ok {
		t.Error("unset maximumDate should be omitted")
	}

	geometry := bridge.CallsTo("drift/platform_views", "setGeometry")
	if len(geometry) != 1 || geometry[0].Args["width"] != float64(320) || geometry[0].Args["height"] != float64(36) {
		t.Errorf("setGeometry calls = %+v", geometry)
	}
}

func TestNativeDateTimePicker_UpdateConfigOnlyOnChange(t *testing.T) {
	tester, bridge := setupPicker(t, "17.2")
	date := instant("2025-05-05T12:00:00Z")
	minDate := instant("2025-01-01T00:00:00Z")
	props := widgets.NativeProps{Date: date, MinimumDate: &minDate, Height: 36}
	mustPump(t, tester.PumpWidget(widgets.NativeDateTimePicker{Props: props}))

	// A fresh pointer to the same bound is not a change.
	sameMin := minDate
	props.MinimumDate = &sameMin
	mustPump(t, tester.UpdateWidget(widgets.NativeDateTimePicker{Props: props}))
	if n := len(bridge.ViewMethodCalls("updateConfig")); n != 0 {
		t.Fatalf("updateConfig calls for equal config = %d, want 0", n)
	}

	props.Disabled = true
	mustPump(t, tester.UpdateWidget(widgets.NativeDateTimePicker{Props: props}))

	updates := bridge.ViewMethodCalls("updateConfig")
	if len(updates) != 1 || updates[0].Args["disabled"] != true {
		t.Errorf("updateConfig calls = %+v, want one with disabled", updates)
	}
	if n := len(bridge.ViewMethodCalls("setDate")); n != 0 {
		t.Errorf("config updates must not push setDate, got %d", n)
	}
}

func TestNativeDateTimePicker_HandleLifecycle(t *testing.T) {
	tester, bridge := setupPicker(t, "17.2")
	ref := core.NewRef[widgets.DateHandle]()
	mustPump(t, tester.PumpWidget(widgets.NativeDateTimePicker{Props: widgets.NativeProps{
		Date:      instant("2025-05-05T12:00:00Z"),
		HandleRef: ref,
	}}))

	handle, ok := ref.Current()
	if !ok || handle == nil {
		t.Fatal("handle should be published on mount")
	}
	target := instant("2025-06-01T00:00:00Z")
	handle.SetNativeDate(target.UnixMilli())
	pushes := bridge.ViewMethodCalls("setDate")
	if len(pushes) != 1 || pushes[0].Args["date"] != float64(target.UnixMilli()) {
		t.Errorf("setDate calls = %+v", pushes)
	}

	viewID := viewIDOf(t, bridge)
	tester.Unmount()

	if _, ok := ref.Current(); ok {
		t.Error("handle should be cleared on unmount")
	}
	disposes := bridge.CallsTo("drift/platform_views", "dispose")
	if len(disposes) != 1 || disposes[0].Args["viewId"] != float64(viewID) {
		t.Errorf("dispose calls = %+v", disposes)
	}
	if n := platform.GetPlatformViewRegistry().ViewCount(); n != 0 {
		t.Errorf("ViewCount = %d after unmount, want 0", n)
	}
}

func TestNativeDateTimePicker_ForwardsRawEvents(t *testing.T) {
	tester, bridge := setupPicker(t, "17.2")
	var got []widgets.RawChangeEvent
	mustPump(t, tester.PumpWidget(widgets.NativeDateTimePicker{Props: widgets.NativeProps{
		Date:     time.UnixMilli(0),
		OnChange: func(e widgets.RawChangeEvent) { got = append(got, e) },
	}}))

	if err := bridge.SendViewEvent(viewIDOf(t, bridge), "onDateChanged", map[string]any{"timestamp": float64(86_400_000)}); err != nil {
		t.Fatal(err)
	}

	if len(got) != 1 {
		t.Fatalf("events = %d, want 1", len(got))
	}
	if _, ok := got[0].NativeEvent["viewId"]; ok {
		t.Error("viewId should not leak into the native event")
	}
	if got[0].NativeEvent["timestamp"] != float64(86_400_000) {
		t.Errorf("timestamp = %v", got[0].NativeEvent["timestamp"])
	}
}

func TestNativeDateTimePicker_NoBridgeReportsError(t *testing.T) {
	platform.ResetForTest()
	t.Cleanup(platform.ResetForTest)
	tester := drifttest.NewWidgetTesterWithT(t)

	mustPump(t, tester.PumpWidget(widgets.NativeDateTimePicker{Props: widgets.NativeProps{Date: time.UnixMilli(0)}}))

	errs := tester.ReportedErrors()
	if len(errs) != 1 {
		t.Fatalf("reported errors = %v, want 1", errs)
	}
}
