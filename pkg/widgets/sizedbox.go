package widgets

import (
	"github.com/go-drift/datetimepicker/pkg/core"
	"github.com/go-drift/datetimepicker/pkg/graphics"
)

// SizedBox reserves a fixed-size slot for its child. The host lays out the
// embedded native view inside this slot.
//
// A zero Width lets the child fill the available width.
//
//	SizedBox{Height: 216, Child: picker}
type SizedBox struct {
	core.StatelessBase
	Width           float64
	Height          float64
	BackgroundColor graphics.Color
	Child           core.Widget
}

func (s SizedBox) Build(ctx core.BuildContext) core.Widget {
	return s.Child
}

// Style is host styling applied around a DateTimePicker.
type Style struct {
	// Width of the picker slot. Zero fills the available width.
	Width float64
	// Height overrides the resolved height when non-zero.
	Height float64
	// BackgroundColor of the slot (optional).
	BackgroundColor graphics.Color
}
