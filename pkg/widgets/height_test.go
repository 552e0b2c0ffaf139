package widgets_test

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/datetimepicker/pkg/widgets"
)

func TestReadyHeight(t *testing.T) {
	result := widgets.ReadyHeight(42)
	if result.Pending() {
		t.Fatal("ReadyHeight should not be pending")
	}
	if result.Height() != 42 {
		t.Errorf("Height() = %v, want 42", result.Height())
	}

	called := false
	result.OnComplete(func(h float64, err error) {
		called = true
		if h != 42 || err != nil {
			t.Errorf("OnComplete(%v, %v), want (42, nil)", h, err)
		}
	})
	if !called {
		t.Error("OnComplete on a ready result should run immediately")
	}
}

func TestPendingHeight_CompletesOnce(t *testing.T) {
	result, completer := widgets.PendingHeight()
	if !result.Pending() {
		t.Fatal("PendingHeight should be pending")
	}

	var got []float64
	result.OnComplete(func(h float64, err error) { got = append(got, h) })
	if len(got) != 0 {
		t.Fatal("callback ran before completion")
	}

	completer.Complete(300)
	completer.Complete(400)
	completer.Fail(stderrors.New("late"))

	if len(got) != 1 || got[0] != 300 {
		t.Errorf("callbacks = %v, want [300]", got)
	}

	// Registering after completion runs immediately with the stored height.
	var late float64
	result.OnComplete(func(h float64, err error) { late = h })
	if late != 300 {
		t.Errorf("late callback height = %v, want 300", late)
	}
}

func TestPendingHeight_Fail(t *testing.T) {
	result, completer := widgets.PendingHeight()
	want := stderrors.New("no metrics")

	var gotErr error
	result.OnComplete(func(h float64, err error) { gotErr = err })
	completer.Fail(want)

	if gotErr != want {
		t.Errorf("err = %v, want %v", gotErr, want)
	}
}

func TestHeightResolverFunc(t *testing.T) {
	var gotDisplay widgets.Display
	var gotMode widgets.Mode
	resolver := widgets.HeightResolverFunc(func(d widgets.Display, m widgets.Mode) widgets.HeightResult {
		gotDisplay, gotMode = d, m
		return widgets.ReadyHeight(1)
	})

	resolver.ResolveHeight(widgets.DisplayCompact, widgets.ModeTime)
	if gotDisplay != widgets.DisplayCompact || gotMode != widgets.ModeTime {
		t.Errorf("resolver got (%s, %s)", gotDisplay, gotMode)
	}
}
