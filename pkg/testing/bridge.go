package testing

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/go-drift/datetimepicker/pkg/platform"
)

// BridgeCall is one native method invocation recorded by a FakeBridge.
// Args holds the JSON-decoded arguments.
type BridgeCall struct {
	Channel string
	Method  string
	Args    map[string]any
}

// BridgeResponder scripts the native result of a method call.
type BridgeResponder func(args map[string]any) (any, error)

// FakeBridge is a platform.NativeBridge that records every invocation and
// answers with scripted responses. Unscripted methods return nil.
// All methods are safe for concurrent use.
type FakeBridge struct {
	mu        sync.Mutex
	calls     []BridgeCall
	responses map[string]BridgeResponder
}

var _ platform.NativeBridge = (*FakeBridge)(nil)

// NewFakeBridge creates an empty FakeBridge.
func NewFakeBridge() *FakeBridge {
	return &FakeBridge{responses: make(map[string]BridgeResponder)}
}

// InstallFakeBridge installs a new FakeBridge as the native bridge and resets
// platform state when the test finishes.
func InstallFakeBridge(t testing.TB) *FakeBridge {
	bridge := NewFakeBridge()
	platform.SetNativeBridge(bridge)
	t.Cleanup(platform.ResetForTest)
	return bridge
}

// Respond scripts the response for channel/method.
func (b *FakeBridge) Respond(channel, method string, responder BridgeResponder) {
	b.mu.Lock()
	b.responses[channel+"/"+method] = responder
	b.mu.Unlock()
}

// InvokeMethod implements platform.NativeBridge.
func (b *FakeBridge) InvokeMethod(channel, method string, argsData []byte) ([]byte, error) {
	var args map[string]any
	if len(argsData) > 0 {
		// Non-object payloads (such as null) leave args nil.
		_ = json.Unmarshal(argsData, &args)
	}

	b.mu.Lock()
	b.calls = append(b.calls, BridgeCall{Channel: channel, Method: method, Args: args})
	responder := b.responses[channel+"/"+method]
	b.mu.Unlock()

	var result any
	if responder != nil {
		var err error
		result, err = responder(args)
		if err != nil {
			return nil, err
		}
	}
	return platform.DefaultCodec.Encode(result)
}

// Calls returns every recorded call in order.
func (b *FakeBridge) Calls() []BridgeCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]BridgeCall(nil), b.calls...)
}

// CallsTo returns the recorded calls of channel/method.
func (b *FakeBridge) CallsTo(channel, method string) []BridgeCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	var result []BridgeCall
	for _, c := range b.calls {
		if c.Channel == channel && c.Method == method {
			result = append(result, c)
		}
	}
	return result
}

// ViewMethodCalls returns the invokeViewMethod calls made for a platform
// view method such as "setDate".
func (b *FakeBridge) ViewMethodCalls(method string) []BridgeCall {
	var result []BridgeCall
	for _, c := range b.CallsTo("drift/platform_views", "invokeViewMethod") {
		if c.Args["method"] == method {
			result = append(result, c)
		}
	}
	return result
}

// Reset forgets recorded calls. Scripted responses are kept.
func (b *FakeBridge) Reset() {
	b.mu.Lock()
	b.calls = nil
	b.mu.Unlock()
}

// SendEvent delivers a method call from "native" to Go, as a host would.
func (b *FakeBridge) SendEvent(channel, method string, args map[string]any) error {
	data, err := platform.DefaultCodec.Encode(args)
	if err != nil {
		return err
	}
	_, err = platform.HandleMethodCall(channel, method, data)
	return err
}

// SendViewEvent delivers a platform view event addressed to viewID.
func (b *FakeBridge) SendViewEvent(viewID int64, method string, args map[string]any) error {
	payload := make(map[string]any, len(args)+1)
	for k, v := range args {
		payload[k] = v
	}
	payload["viewId"] = viewID
	return b.SendEvent("drift/platform_views", method, payload)
}
