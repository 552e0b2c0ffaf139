package platform

import (
	"fmt"
	"sync"

	"github.com/go-drift/datetimepicker/pkg/errors"
)

// channelRegistry manages all registered method channels.
type channelRegistry struct {
	methodChannels map[string]*MethodChannel
	mu             sync.RWMutex
}

var registry = &channelRegistry{
	methodChannels: make(map[string]*MethodChannel),
}

func (r *channelRegistry) registerMethod(name string, ch *MethodChannel) {
	r.mu.Lock()
	r.methodChannels[name] = ch
	r.mu.Unlock()
}

func (r *channelRegistry) getMethodChannel(name string) *MethodChannel {
	r.mu.RLock()
	ch := r.methodChannels[name]
	r.mu.RUnlock()
	return ch
}

// NativeBridge defines the interface for calling native platform code.
type NativeBridge interface {
	// InvokeMethod calls a method on the native side.
	InvokeMethod(channel, method string, args []byte) ([]byte, error)
}

var (
	bridgeMu     sync.RWMutex
	nativeBridge NativeBridge
)

// SetNativeBridge sets the native bridge implementation.
// Called by the embedding host during initialization.
func SetNativeBridge(bridge NativeBridge) {
	bridgeMu.Lock()
	nativeBridge = bridge
	bridgeMu.Unlock()
}

func currentBridge() NativeBridge {
	bridgeMu.RLock()
	defer bridgeMu.RUnlock()
	return nativeBridge
}

// invokeNative calls a method on the native side.
func invokeNative(channel, method string, args any) (any, error) {
	bridge := currentBridge()
	if bridge == nil {
		return nil, ErrPlatformUnavailable
	}

	argsData, err := DefaultCodec.Encode(args)
	if err != nil {
		return nil, fmt.Errorf("encode %s.%s: %w", channel, method, err)
	}

	resultData, err := bridge.InvokeMethod(channel, method, argsData)
	if err != nil {
		return nil, err
	}

	return DefaultCodec.Decode(resultData)
}

// HandleMethodCall is called from the bridge when native invokes a Go method.
func HandleMethodCall(channel, method string, argsData []byte) ([]byte, error) {
	ch := registry.getMethodChannel(channel)
	if ch == nil {
		err := fmt.Errorf("%w: %s", ErrChannelNotFound, channel)
		errors.Report(&errors.DriftError{
			Op:      "platform.HandleMethodCall",
			Kind:    errors.KindPlatform,
			Channel: channel,
			Err:     err,
		})
		return nil, err
	}

	args, err := DefaultCodec.Decode(argsData)
	if err != nil {
		errors.Report(&errors.DriftError{
			Op:      "platform.HandleMethodCall",
			Kind:    errors.KindParsing,
			Channel: channel,
			Err:     err,
		})
		return nil, err
	}

	result, err := ch.handleCall(method, args)
	if err != nil {
		return nil, err
	}

	return DefaultCodec.Encode(result)
}

// ResetForTest resets all global platform state for test isolation: the
// native bridge, the dispatch function, the cached system version, and the
// platform view registry. This should only be called from tests.
func ResetForTest() {
	SetNativeBridge(nil)

	dispatchMu.Lock()
	dispatchFunc = nil
	dispatchMu.Unlock()

	Device.reset()

	if platformViewRegistry != nil {
		platformViewRegistry.mu.Lock()
		platformViewRegistry.views = make(map[int64]PlatformView)
		platformViewRegistry.mu.Unlock()
		platformViewRegistry.nextID.Store(0)
	}
}
