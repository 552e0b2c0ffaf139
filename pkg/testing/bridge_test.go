package testing

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/datetimepicker/pkg/platform"
)

func TestFakeBridge_RecordsAndResponds(t *testing.T) {
	bridge := InstallFakeBridge(t)
	bridge.Respond("drift/device", "getSystemVersion", func(args map[string]any) (any, error) {
		return "17.0", nil
	})

	if got := platform.Device.SystemVersion(); got != "17.0" {
		t.Errorf("SystemVersion() = %q, want 17.0", got)
	}
	if n := len(bridge.CallsTo("drift/device", "getSystemVersion")); n != 1 {
		t.Errorf("calls = %d, want 1", n)
	}
}

func TestFakeBridge_ViewMethodCalls(t *testing.T) {
	bridge := InstallFakeBridge(t)
	view, err := platform.GetPlatformViewRegistry().Create(platform.DateTimePickerViewType, nil)
	if err != nil {
		t.Fatal(err)
	}
	view.(*platform.DateTimePickerView).SetNativeDate(99)

	calls := bridge.ViewMethodCalls("setDate")
	if len(calls) != 1 || calls[0].Args["date"] != float64(99) {
		t.Errorf("setDate calls = %+v", calls)
	}

	bridge.Reset()
	if len(bridge.Calls()) != 0 {
		t.Error("Reset should forget calls")
	}
}

func TestFakeBridge_ScriptedError(t *testing.T) {
	bridge := InstallFakeBridge(t)
	want := platform.NewChannelError("boom", "native failure")
	bridge.Respond("drift/platform_views", "create", func(map[string]any) (any, error) {
		return nil, want
	})

	_, err := platform.GetPlatformViewRegistry().Create(platform.DateTimePickerViewType, nil)
	if !stderrors.Is(err, want) {
		t.Errorf("err = %v, want %v", err, want)
	}
}

type recordingClient struct {
	events []map[string]any
}

func (c *recordingClient) OnDateChanged(e map[string]any) { c.events = append(c.events, e) }

func TestFakeBridge_SendViewEvent(t *testing.T) {
	bridge := InstallFakeBridge(t)
	view, err := platform.GetPlatformViewRegistry().Create(platform.DateTimePickerViewType, nil)
	if err != nil {
		t.Fatal(err)
	}
	client := &recordingClient{}
	view.(*platform.DateTimePickerView).SetClient(client)

	if err := bridge.SendViewEvent(view.ViewID(), "onDateChanged", map[string]any{"timestamp": 5}); err != nil {
		t.Fatal(err)
	}
	if len(client.events) != 1 || client.events[0]["timestamp"] != float64(5) {
		t.Errorf("events = %v", client.events)
	}
}
