package platform

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-drift/datetimepicker/pkg/errors"
)

// PlatformView represents a native view embedded in the widget tree.
type PlatformView interface {
	// ViewID returns the unique identifier for this view.
	ViewID() int64

	// ViewType returns the type identifier for this view (e.g., "datetimepicker").
	ViewType() string

	// Create initializes the native view with given parameters.
	Create(params map[string]any) error

	// Dispose cleans up the native view.
	Dispose()

	// SetSize updates the view size in logical pixels.
	SetSize(width, height float64)

	// SetVisible shows or hides the native view.
	SetVisible(visible bool)
}

// PlatformViewFactory creates platform views of a specific type.
type PlatformViewFactory interface {
	// Create creates a new platform view instance.
	Create(viewID int64, params map[string]any) (PlatformView, error)

	// ViewType returns the view type this factory creates.
	ViewType() string
}

// viewEventHandler is implemented by views that accept events from native.
type viewEventHandler interface {
	handleViewEvent(method string, args map[string]any) bool
}

// PlatformViewRegistry manages platform view types and instances.
type PlatformViewRegistry struct {
	factories map[string]PlatformViewFactory
	views     map[int64]PlatformView
	nextID    atomic.Int64
	mu        sync.RWMutex
	channel   *MethodChannel
}

var (
	platformViewRegistry     *PlatformViewRegistry
	platformViewRegistryOnce sync.Once
)

// GetPlatformViewRegistry returns the global platform view registry.
func GetPlatformViewRegistry() *PlatformViewRegistry {
	platformViewRegistryOnce.Do(func() {
		platformViewRegistry = newPlatformViewRegistry()
	})
	return platformViewRegistry
}

func newPlatformViewRegistry() *PlatformViewRegistry {
	r := &PlatformViewRegistry{
		factories: make(map[string]PlatformViewFactory),
		views:     make(map[int64]PlatformView),
		channel:   NewMethodChannel("drift/platform_views"),
	}
	r.channel.SetHandler(r.handleMethodCall)
	return r
}

// RegisterFactory registers a factory for a platform view type.
func (r *PlatformViewRegistry) RegisterFactory(factory PlatformViewFactory) {
	r.mu.Lock()
	r.factories[factory.ViewType()] = factory
	r.mu.Unlock()
}

// Create creates a new platform view of the given type and asks native to
// instantiate it.
func (r *PlatformViewRegistry) Create(viewType string, params map[string]any) (PlatformView, error) {
	r.mu.RLock()
	factory, ok := r.factories[viewType]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrViewTypeNotFound, viewType)
	}

	viewID := r.nextID.Add(1)

	view, err := factory.Create(viewID, params)
	if err != nil {
		return nil, err
	}
	if err := view.Create(params); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.views[viewID] = view
	r.mu.Unlock()

	_, err = r.channel.Invoke("create", map[string]any{
		"viewId":   viewID,
		"viewType": viewType,
		"params":   params,
	})
	if err != nil {
		r.mu.Lock()
		delete(r.views, viewID)
		r.mu.Unlock()
		return nil, err
	}

	return view, nil
}

// Dispose destroys a platform view.
func (r *PlatformViewRegistry) Dispose(viewID int64) {
	r.mu.Lock()
	view, ok := r.views[viewID]
	if ok {
		delete(r.views, viewID)
	}
	r.mu.Unlock()

	if ok {
		view.Dispose()
		if _, err := r.channel.Invoke("dispose", map[string]any{"viewId": viewID}); err != nil {
			r.report("platform.PlatformViewRegistry.Dispose", err)
		}
	}
}

// GetView returns a platform view by ID.
func (r *PlatformViewRegistry) GetView(viewID int64) PlatformView {
	r.mu.RLock()
	view := r.views[viewID]
	r.mu.RUnlock()
	return view
}

// ViewCount returns the number of live views.
func (r *PlatformViewRegistry) ViewCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.views)
}

// UpdateViewSize notifies native of a view's size change.
func (r *PlatformViewRegistry) UpdateViewSize(viewID int64, width, height float64) error {
	_, err := r.channel.Invoke("setGeometry", map[string]any{
		"viewId": viewID,
		"width":  width,
		"height": height,
	})
	return err
}

// SetViewVisible notifies native to show or hide a view.
func (r *PlatformViewRegistry) SetViewVisible(viewID int64, visible bool) error {
	_, err := r.channel.Invoke("setVisible", map[string]any{
		"viewId":  viewID,
		"visible": visible,
	})
	return err
}

// InvokeViewMethod invokes a method on a specific platform view.
func (r *PlatformViewRegistry) InvokeViewMethod(viewID int64, method string, args map[string]any) (any, error) {
	invokeArgs := make(map[string]any, len(args)+2)
	for k, v := range args {
		invokeArgs[k] = v
	}
	invokeArgs["viewId"] = viewID
	invokeArgs["method"] = method
	return r.channel.Invoke("invokeViewMethod", invokeArgs)
}

// handleMethodCall processes incoming method calls from native code. Calls
// other than lifecycle acknowledgements are routed to the addressed view.
func (r *PlatformViewRegistry) handleMethodCall(method string, args any) (any, error) {
	switch method {
	case "onViewCreated", "onViewDisposed":
		return nil, nil
	}

	argsMap := parseMap(args)
	viewID, ok := ToInt64(argsMap["viewId"])
	if !ok {
		return nil, fmt.Errorf("%w: %s without viewId", ErrInvalidArguments, method)
	}

	view := r.GetView(viewID)
	if view == nil {
		return nil, fmt.Errorf("%w: %d", ErrViewNotFound, viewID)
	}

	handler, ok := view.(viewEventHandler)
	if !ok || !handler.handleViewEvent(method, argsMap) {
		return nil, ErrMethodNotFound
	}
	return nil, nil
}

func (r *PlatformViewRegistry) report(op string, err error) {
	errors.Report(&errors.DriftError{
		Op:      op,
		Kind:    errors.KindPlatform,
		Channel: r.channel.Name(),
		Err:     err,
	})
}

// basePlatformView provides common implementation for platform views.
type basePlatformView struct {
	viewID   int64
	viewType string
	width    float64
	height   float64
	visible  bool
}

func (v *basePlatformView) ViewID() int64 {
	return v.viewID
}

func (v *basePlatformView) ViewType() string {
	return v.viewType
}

func (v *basePlatformView) SetSize(width, height float64) {
	if v.width == width && v.height == height {
		return
	}
	v.width, v.height = width, height
	if err := GetPlatformViewRegistry().UpdateViewSize(v.viewID, width, height); err != nil {
		GetPlatformViewRegistry().report("platform.SetSize", err)
	}
}

func (v *basePlatformView) SetVisible(visible bool) {
	v.visible = visible
	if err := GetPlatformViewRegistry().SetViewVisible(v.viewID, visible); err != nil {
		GetPlatformViewRegistry().report("platform.SetVisible", err)
	}
}
