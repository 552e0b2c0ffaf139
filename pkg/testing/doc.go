// Package testing provides a widget testing framework for datetimepicker
// widgets.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestMyWidget(t *testing.T) {
//	    bridge := drifttest.InstallFakeBridge(t)
//	    tester := drifttest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(MyWidget{})
//
//	    // Find elements
//	    picker := tester.Find(drifttest.ByType[widgets.NativeDateTimePicker]())
//
//	    // Inspect native traffic
//	    calls := bridge.ViewMethodCalls("setDate")
//	}
//
// # Time and Asynchrony
//
// The tester installs a FakeClock as the framework clock. Timers created
// through core.AfterFunc fire when the clock is advanced:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump()
//
// platform.Dispatch callbacks are queued and run at the start of the next
// Pump, the way a host runs them on the UI thread.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import drifttest "github.com/go-drift/datetimepicker/pkg/testing"
package testing
