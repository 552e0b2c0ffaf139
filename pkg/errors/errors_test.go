package errors

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestDriftErrorWithChannel(t *testing.T) {
	err := &DriftError{
		Op:      "widgets.PlatformHeightResolver",
		Kind:    KindPlatform,
		Channel: "drift/datetimepicker",
		Err:     stderrors.New("boom"),
	}
	got := err.Error()
	want := "channel=drift/datetimepicker"
	if !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindPlatform, "platform"},
		{KindParsing, "parsing"},
		{KindInit, "init"},
		{KindPanic, "panic"},
		{KindBuild, "build"},
		{KindPrecondition, "precondition"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPreconditionErrorString(t *testing.T) {
	err := &PreconditionError{Widget: "DateTimePicker", Contract: "value", Message: "value must not be nil"}
	want := `DateTimePicker: precondition "value" violated: value must not be nil`
	if got := err.Error(); got != want {
		t.Errorf("PreconditionError.Error() = %q, want %q", got, want)
	}
}

func TestBuildErrorUnwrapsPrecondition(t *testing.T) {
	pre := &PreconditionError{Widget: "DateTimePicker", Contract: "value"}
	err := &BuildError{Widget: "widgets.DateTimePicker", Recovered: pre, Err: pre}

	var target *PreconditionError
	if !stderrors.As(err, &target) {
		t.Fatal("errors.As should find the PreconditionError")
	}
	if target.Contract != "value" {
		t.Errorf("Contract = %q, want %q", target.Contract, "value")
	}
	if !strings.Contains(err.Error(), "error in widgets.DateTimePicker.Build()") {
		t.Errorf("BuildError.Error() = %q", err.Error())
	}
}

func TestBuildErrorString(t *testing.T) {
	err := &BuildError{Widget: "*widgets.Counter", Recovered: "nil pointer dereference"}
	want := "panic in *widgets.Counter.Build(): nil pointer dereference"
	if got := err.Error(); got != want {
		t.Errorf("BuildError.Error() = %q, want %q", got, want)
	}

	unknown := &BuildError{Widget: "*widgets.Counter"}
	if got := unknown.Error(); got != "unknown error in *widgets.Counter.Build()" {
		t.Errorf("BuildError.Error() = %q", got)
	}
}

func TestReport(t *testing.T) {
	var captured *DriftError
	old := SetHandler(&testHandler{onError: func(err *DriftError) { captured = err }})
	defer SetHandler(old)

	Report(&DriftError{Op: "test.op", Kind: KindInit, Err: stderrors.New("x")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportBuildError(t *testing.T) {
	var captured *BuildError
	old := SetHandler(&testHandler{onBuildError: func(err *BuildError) { captured = err }})
	defer SetHandler(old)

	ReportBuildError(&BuildError{Widget: "*widgets.Test", Recovered: "test panic"})

	if captured == nil {
		t.Fatal("expected build error to be captured")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	old := SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(old)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestSetHandlerNil(t *testing.T) {
	old := SetHandler(nil)
	defer SetHandler(old)
	if _, ok := getHandler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", getHandler())
	}
}

func TestLogHandlerWritesStructuredRecord(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	h.HandleError(&DriftError{
		Op:        "platform.invoke",
		Kind:      KindPlatform,
		Channel:   "drift/device",
		Err:       stderrors.New("unavailable"),
		Timestamp: time.Now(),
	})

	out := buf.String()
	for _, want := range []string{"op=platform.invoke", "kind=platform", "channel=drift/device", "err=unavailable"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

type testHandler struct {
	onError      func(*DriftError)
	onPanic      func(*PanicError)
	onBuildError func(*BuildError)
}

func (h *testHandler) HandleError(err *DriftError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func (h *testHandler) HandleBuildError(err *BuildError) {
	if h.onBuildError != nil {
		h.onBuildError(err)
	}
}
