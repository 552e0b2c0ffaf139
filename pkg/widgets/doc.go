// Package widgets provides the DateTimePicker component and its building
// blocks.
//
// DateTimePicker adapts the platform's inline date/time picker to the
// declarative widget model:
//
//   - ResolveDisplay downgrades displays the running OS cannot render.
//   - A HeightResolver sizes the picker before first paint, possibly
//     asynchronously. Nothing is rendered until the height is known.
//   - For a short window after mount the native view shows PlaceholderDate,
//     then the real value.
//   - Value changes are pushed straight onto the native view after each
//     build, in addition to the regular prop update.
//   - NormalizeChange turns native change notifications into a typed
//     DateTimePickerEvent and the selected instant.
//
// # Creation Pattern
//
// Use struct literals:
//
//	widgets.DateTimePicker{
//	    Value:    &s.when,
//	    Display:  widgets.DisplayInline,
//	    OnChange: s.onDateChange,
//	}
//
// Keep OnChange stable across builds (a method value stored once, or a
// field), since a new callback identity re-pushes the value to native.
//
// # Custom Rendering
//
// Set Element to render something else in place of the built-in
// NativeDateTimePicker. The builder receives the same NativeProps.
package widgets
