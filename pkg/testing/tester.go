package testing

import (
	stderrors "errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/go-drift/datetimepicker/pkg/core"
	"github.com/go-drift/datetimepicker/pkg/errors"
	"github.com/go-drift/datetimepicker/pkg/platform"
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = stderrors.New("PumpAndSettle timed out: framework did not settle")

// WidgetTester provides isolated widget testing without a real host. It
// drives the same build and effect phases as the engine but uses a fake
// clock and a local dispatch queue instead of the UI thread.
type WidgetTester struct {
	buildOwner  *core.BuildOwner
	root        core.Element
	clock       *FakeClock
	prevClock   core.Clock
	handler     *captureHandler
	prevHandler errors.ErrorHandler

	mu         sync.Mutex
	dispatches []func()
}

// NewWidgetTester creates a tester with default test environment.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	clk := NewFakeClock()
	t := &WidgetTester{
		buildOwner: core.NewBuildOwner(),
		clock:      clk,
		handler:    &captureHandler{},
	}
	t.prevClock = core.SetClock(clk)
	t.prevHandler = errors.SetHandler(t.handler)
	// Register this tester's dispatch function with the platform package
	// so that platform.Dispatch works during tests
	platform.RegisterDispatch(t.Dispatch)
	return t
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree and restores global state (clock, error handler,
// dispatch). Must be called if not using NewWidgetTesterWithT.
func (t *WidgetTester) Cleanup() {
	t.Unmount()
	core.SetClock(t.prevClock)
	errors.SetHandler(t.prevHandler)
	platform.RegisterDispatch(nil)
}

// Clock returns the fake clock for advancing time in tests.
func (t *WidgetTester) Clock() *FakeClock {
	return t.clock
}

// PumpWidget mounts (or remounts) a widget and runs one full frame. It
// returns the first build error raised while doing so.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	t.Unmount()
	t.root = core.MountRoot(widget, t.buildOwner)
	return t.Pump()
}

// UpdateWidget replaces the root widget in place, keeping element state,
// and runs one frame. Widgets of a different type or key are remounted.
func (t *WidgetTester) UpdateWidget(widget core.Widget) error {
	if t.root == nil || !sameWidgetIdentity(t.root.Widget(), widget) {
		return t.PumpWidget(widget)
	}
	t.root.Update(widget)
	return t.Pump()
}

// Unmount tears down the mounted tree, disposing every state.
func (t *WidgetTester) Unmount() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
}

// Pump runs a single frame cycle: queued dispatches, then build and effects.
// It returns the first build error reported during the frame.
func (t *WidgetTester) Pump() error {
	// 1. Drain dispatch queue
	t.mu.Lock()
	dispatches := t.dispatches
	t.dispatches = nil
	t.mu.Unlock()
	for _, fn := range dispatches {
		fn()
	}

	// 2. Flush build and post-build effects
	t.buildOwner.FlushBuild()

	return t.handler.takeBuildError()
}

// PumpAndSettle runs frames until the framework is idle or the timeout
// is reached. Each frame advances the fake clock by frameDuration (16ms).
// Returns ErrSettleTimeout if the framework does not settle within timeout.
func (t *WidgetTester) PumpAndSettle(timeout time.Duration) error {
	const frameDuration = 16 * time.Millisecond
	var elapsed time.Duration
	for elapsed < timeout {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.needsWork() {
			return nil
		}
		t.clock.Advance(frameDuration)
		elapsed += frameDuration
	}
	return ErrSettleTimeout
}

// needsWork returns true if the framework has pending work.
func (t *WidgetTester) needsWork() bool {
	t.mu.Lock()
	queued := len(t.dispatches)
	t.mu.Unlock()
	return t.buildOwner.NeedsWork() || queued > 0 || t.clock.PendingTimers() > 0
}

// Dispatch queues a callback for the next frame, mirroring platform.Dispatch
// on a real host. It is safe to call from any goroutine.
func (t *WidgetTester) Dispatch(fn func()) {
	t.mu.Lock()
	t.dispatches = append(t.dispatches, fn)
	t.mu.Unlock()
}

// PendingDispatches returns the number of callbacks queued for the next frame.
func (t *WidgetTester) PendingDispatches() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.dispatches)
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.root
}

// Find evaluates a finder against the current element tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}

// ReportedErrors returns the non-build errors reported through the global
// error handler since the tester was created.
func (t *WidgetTester) ReportedErrors() []*errors.DriftError {
	return t.handler.reported()
}

func sameWidgetIdentity(a, b core.Widget) bool {
	if a == nil || b == nil {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return reflect.DeepEqual(a.Key(), b.Key())
}
