package widgets_test

import (
	"testing"
	"time"

	"github.com/go-drift/datetimepicker/pkg/widgets"
)

func TestNormalizeChange_WithTimestamp(t *testing.T) {
	const millis = 1_700_000_000_123
	raw := widgets.RawChangeEvent{NativeEvent: map[string]any{
		"timestamp": float64(millis),
		"utcOffset": float64(-300),
		"target":    float64(12),
		"type":      "valueChanged",
	}}

	event, date := widgets.NormalizeChange(raw)

	if date == nil || !date.Equal(time.UnixMilli(millis)) {
		t.Fatalf("date = %v, want %v", date, time.UnixMilli(millis))
	}
	if event.Type != widgets.EventTypeSet {
		t.Errorf("Type = %q, want %q", event.Type, widgets.EventTypeSet)
	}
	if event.NativeEvent["type"] != widgets.EventTypeSet {
		t.Errorf("NativeEvent[type] = %v, want overridden to set", event.NativeEvent["type"])
	}
	if event.NativeEvent["target"] != float64(12) {
		t.Errorf("NativeEvent[target] = %v, want copied", event.NativeEvent["target"])
	}
	if event.Timestamp == nil || *event.Timestamp != millis {
		t.Errorf("Timestamp = %v, want %d", event.Timestamp, int64(millis))
	}
	if event.UTCOffset == nil || *event.UTCOffset != -300 {
		t.Errorf("UTCOffset = %v, want -300", event.UTCOffset)
	}
	if raw.NativeEvent["type"] != "valueChanged" {
		t.Error("NormalizeChange must not mutate the raw event")
	}
}

func TestNormalizeChange_WithoutTimestamp(t *testing.T) {
	tests := []struct {
		name   string
		native map[string]any
	}{
		{"absent", map[string]any{"utcOffset": 60}},
		{"nil map", nil},
		{"non-numeric", map[string]any{"timestamp": "soon"}},
		{"null", map[string]any{"timestamp": nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, date := widgets.NormalizeChange(widgets.RawChangeEvent{NativeEvent: tt.native})
			if date != nil {
				t.Errorf("date = %v, want nil", date)
			}
			if event.Timestamp != nil {
				t.Errorf("Timestamp = %v, want nil", *event.Timestamp)
			}
			if event.Type != widgets.EventTypeSet || event.NativeEvent["type"] != widgets.EventTypeSet {
				t.Errorf("event not tagged as set: %+v", event)
			}
		})
	}
}

func TestNormalizeChange_IntegerTimestamp(t *testing.T) {
	_, date := widgets.NormalizeChange(widgets.RawChangeEvent{NativeEvent: map[string]any{
		"timestamp": int64(0),
	}})
	if date == nil || date.UnixMilli() != 0 {
		t.Errorf("date = %v, want the Unix epoch", date)
	}
}
