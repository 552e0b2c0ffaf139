package widgets

import (
	"time"

	"github.com/go-drift/datetimepicker/pkg/platform"
)

// EventTypeSet tags an event where the user committed a selection.
const EventTypeSet = "set"

// RawChangeEvent is a change notification as delivered by the native view.
// NativeEvent["timestamp"] holds Unix milliseconds when native supplied one.
type RawChangeEvent struct {
	NativeEvent map[string]any
}

// DateTimePickerEvent is the normalized change event passed to OnChange.
type DateTimePickerEvent struct {
	// Type is always EventTypeSet.
	Type string
	// NativeEvent holds every native field, with "type" set to Type.
	NativeEvent map[string]any
	// Timestamp is the selected instant in Unix milliseconds, if reported.
	Timestamp *int64
	// UTCOffset is the native UTC offset in minutes, if reported.
	UTCOffset *int
}

// NormalizeChange converts a raw native notification into a typed event and
// the selected instant. The instant is nil when the notification carries no
// numeric timestamp.
func NormalizeChange(raw RawChangeEvent) (DateTimePickerEvent, *time.Time) {
	native := make(map[string]any, len(raw.NativeEvent)+1)
	for k, v := range raw.NativeEvent {
		native[k] = v
	}
	native["type"] = EventTypeSet

	event := DateTimePickerEvent{
		Type:        EventTypeSet,
		NativeEvent: native,
	}
	if offset, ok := platform.ToInt64(raw.NativeEvent["utcOffset"]); ok {
		minutes := int(offset)
		event.UTCOffset = &minutes
	}

	millis, ok := platform.ToInt64(raw.NativeEvent["timestamp"])
	if !ok {
		return event, nil
	}
	event.Timestamp = &millis
	date := time.UnixMilli(millis)
	return event, &date
}
