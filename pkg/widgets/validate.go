package widgets

import (
	"fmt"
	"slices"
	"time"

	"github.com/go-drift/datetimepicker/pkg/errors"
)

// minuteIntervals are the values the native picker accepts; 0 means unset.
var minuteIntervals = []int{1, 2, 3, 4, 5, 6, 10, 12, 15, 20, 30}

// ValidateProps checks the contracts a DateTimePicker must satisfy before it
// renders. Violations are returned as *errors.PreconditionError.
func ValidateProps(p DateTimePicker) error {
	if p.Value == nil {
		return &errors.PreconditionError{
			Widget:   "DateTimePicker",
			Contract: "value",
			Message:  "a value must be provided",
		}
	}
	if p.MinuteInterval != 0 && !slices.Contains(minuteIntervals, p.MinuteInterval) {
		return &errors.PreconditionError{
			Widget:   "DateTimePicker",
			Contract: "minuteInterval",
			Message:  fmt.Sprintf("%d is not one of %v", p.MinuteInterval, minuteIntervals),
		}
	}
	if p.MinimumDate != nil && p.MaximumDate != nil && p.MinimumDate.After(*p.MaximumDate) {
		return &errors.PreconditionError{
			Widget:   "DateTimePicker",
			Contract: "dateRange",
			Message:  fmt.Sprintf("minimum %s is after maximum %s", p.MinimumDate.Format(time.RFC3339), p.MaximumDate.Format(time.RFC3339)),
		}
	}
	return nil
}
