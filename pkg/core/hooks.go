package core

import (
	"reflect"
	"unsafe"
)

// UseController creates a controller and registers it for automatic disposal.
// The controller will be disposed when the state is disposed.
//
//	func (s *myState) InitState() {
//	    s.timer = core.UseController(s, func() *readinessTimer {
//	        return newReadinessTimer(delay, s.markReady)
//	    })
//	}
func UseController[C Disposable](s stateBase, create func() C) C {
	base := s.state()
	controller := create()
	base.OnDispose(func() {
		controller.Dispose()
	})
	return controller
}

// Managed holds a value and triggers rebuilds when it changes.
//
// Managed is NOT thread-safe. It must only be accessed from the UI thread.
// To update from a background goroutine, use platform.Dispatch:
//
//	go func() {
//	    h := measure()
//	    platform.Dispatch(func() {
//	        s.height.Set(&h)
//	    })
//	}()
type Managed[T any] struct {
	base  *StateBase
	value T
}

// NewManaged creates a new managed state value.
// Changes to this value will automatically trigger a rebuild.
func NewManaged[T any](s stateBase, initial T) *Managed[T] {
	return &Managed[T]{
		base:  s.state(),
		value: initial,
	}
}

// Value returns the current value.
func (m *Managed[T]) Value() T {
	return m.value
}

// Set updates the value and triggers a rebuild. It does nothing once the
// owning state has been disposed.
func (m *Managed[T]) Set(value T) {
	m.base.SetState(func() {
		m.value = value
	})
}

// Update applies a transformation to the current value and triggers a rebuild.
func (m *Managed[T]) Update(transform func(T) T) {
	m.base.SetState(func() {
		m.value = transform(m.value)
	})
}

// Ref is a stable, mutable slot that survives rebuilds without triggering them.
// It is typically used to hold a handle to a mounted child, such as a
// platform view, that a parent drives imperatively.
type Ref[T any] struct {
	current T
	set     bool
}

// NewRef creates an empty Ref.
func NewRef[T any]() *Ref[T] {
	return &Ref[T]{}
}

// UseRef creates an empty Ref that is cleared when the state is disposed.
func UseRef[T any](s stateBase) *Ref[T] {
	ref := NewRef[T]()
	s.state().OnDispose(ref.Clear)
	return ref
}

// Current returns the held value and whether one is set.
func (r *Ref[T]) Current() (T, bool) {
	return r.current, r.set
}

// Set stores v.
func (r *Ref[T]) Set(v T) {
	r.current = v
	r.set = true
}

// Clear empties the ref.
func (r *Ref[T]) Clear() {
	var zero T
	r.current = zero
	r.set = false
}

// Effect is a side effect that runs after the tree has been built and
// mounted, and re-runs whenever the dependencies passed to Watch change.
type Effect struct {
	base    *StateBase
	run     func() func()
	deps    []any
	armed   bool
	pending bool
	cleanup func()
}

// UseEffect registers an effect on the state. Call it once from InitState and
// call Watch on the returned Effect from every Build. run may return a cleanup
// function, which is called before the next run and on disposal.
//
//	func (s *myState) InitState() {
//	    s.sync = core.UseEffect(s, func() func() {
//	        s.push()
//	        return nil
//	    })
//	}
//
//	func (s *myState) Build(ctx core.BuildContext) core.Widget {
//	    s.sync.Watch(s.value, s.onChange)
//	    ...
//	}
func UseEffect(s stateBase, run func() func()) *Effect {
	base := s.state()
	effect := &Effect{base: base, run: run}
	base.OnDispose(func() {
		if effect.cleanup != nil {
			effect.cleanup()
			effect.cleanup = nil
		}
	})
	return effect
}

// Watch records the dependencies of the current build. If they differ from
// the previous build (or this is the first build), the effect is scheduled to
// run once the build is committed. Function-valued dependencies compare by
// identity, see FuncIdentity.
func (e *Effect) Watch(deps ...any) {
	if e.base.IsDisposed() {
		return
	}
	if e.armed && depsEqual(e.deps, deps) {
		return
	}
	e.deps = deps
	e.armed = true
	if e.pending {
		return
	}
	e.pending = true
	if owner := e.base.buildOwner(); owner != nil {
		owner.scheduleEffect(e)
		return
	}
	e.flush()
}

func (e *Effect) flush() {
	e.pending = false
	if e.base.IsDisposed() {
		return
	}
	if e.cleanup != nil {
		e.cleanup()
	}
	e.cleanup = e.run()
}

// FuncIdentity returns a value identifying a particular function value, or 0
// for nil and non-function values. Two closures created by separate
// evaluations of the same literal have different identities; copies of one
// function value share an identity.
func FuncIdentity(fn any) uintptr {
	if fn == nil {
		return 0
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return 0
	}
	// Func values are stored directly in the interface data word, which
	// points at the closure object.
	return uintptr((*[2]unsafe.Pointer)(unsafe.Pointer(&fn))[1])
}

func depsEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !depEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func depEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Kind() == reflect.Func {
		return FuncIdentity(a) == FuncIdentity(b)
	}
	if !ta.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}
