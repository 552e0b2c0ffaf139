package testing

import (
	"testing"
	"time"

	"github.com/go-drift/datetimepicker/pkg/core"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestFakeClock_AfterFuncFiresWhenDue(t *testing.T) {
	clk := NewFakeClock()
	fired := 0
	clk.AfterFunc(50*time.Millisecond, func() { fired++ })

	clk.Advance(49 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("timer fired early")
	}
	clk.Advance(time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	clk.Advance(time.Second)
	if fired != 1 {
		t.Errorf("one-shot timer fired %d times", fired)
	}
}

func TestFakeClock_FiresInDeadlineOrder(t *testing.T) {
	clk := NewFakeClock()
	var order []string
	clk.AfterFunc(30*time.Millisecond, func() { order = append(order, "late") })
	clk.AfterFunc(10*time.Millisecond, func() { order = append(order, "early") })
	clk.AfterFunc(10*time.Millisecond, func() { order = append(order, "early2") })

	clk.Advance(time.Second)

	want := []string{"early", "early2", "late"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
}

func TestFakeClock_Stop(t *testing.T) {
	clk := NewFakeClock()
	fired := false
	timer := clk.AfterFunc(10*time.Millisecond, func() { fired = true })

	if !timer.Stop() {
		t.Error("Stop() = false for pending timer")
	}
	if timer.Stop() {
		t.Error("second Stop() = true, want false")
	}
	clk.Advance(time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
	if clk.PendingTimers() != 0 {
		t.Errorf("PendingTimers() = %d, want 0", clk.PendingTimers())
	}
}

func TestWidgetTester_InstallsClock(t *testing.T) {
	tester := NewWidgetTesterWithT(t)

	fired := false
	core.AfterFunc(time.Second, func() { fired = true })
	tester.Clock().Advance(time.Second)

	if !fired {
		t.Error("core.AfterFunc should schedule on the tester's fake clock")
	}
}
