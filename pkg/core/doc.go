// Package core provides the widget and element framework that hosts the
// date/time picker: immutable Widgets, long-lived Elements, and States.
//
// # Stateful Widgets
//
// Embed StateBase in your state struct:
//
//	type myState struct {
//	    core.StateBase
//	    ready *core.Managed[bool]
//	}
//
//	func (s *myState) InitState() {
//	    s.ready = core.NewManaged(s, false)
//	}
//
// # Hooks
//
// Managed values trigger a rebuild when set. Ref holds a stable handle across
// rebuilds without triggering them. UseEffect registers a side effect that runs
// after the build has been committed and re-runs when its watched
// dependencies change. UseController ties a Disposable's lifetime to the state.
//
// # Build Errors
//
// A panicking Build is recovered, reported through errors.ReportBuildError,
// and replaced by the widget from the ErrorWidgetBuilder (nothing by
// default). See SetErrorWidgetBuilder.
//
// # Time
//
// Timers go through the package Clock so tests can substitute a fake one
// with SetClock.
package core
