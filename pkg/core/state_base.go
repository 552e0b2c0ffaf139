package core

import "sync"

// stateBase is satisfied by any struct that embeds StateBase.
// Hooks and NewManaged accept stateBase so callers can pass s directly.
type stateBase interface {
	state() *StateBase
}

func (s *StateBase) state() *StateBase { return s }

// StateBase provides common functionality for stateful widget states.
// Embed this struct in your state to eliminate boilerplate.
//
//	type pickerState struct {
//	    core.StateBase
//	    height *core.Managed[*float64]
//	}
type StateBase struct {
	element   *StatefulElement
	disposers []func()
	disposed  bool
	mu        sync.Mutex
}

// SetElement stores the element reference for triggering rebuilds.
// This method is called automatically by the framework.
func (s *StateBase) SetElement(element *StatefulElement) {
	s.element = element
}

// Element returns the element associated with this state.
// Returns nil if the state has not been mounted.
func (s *StateBase) Element() *StatefulElement {
	return s.element
}

// SetState executes the given function and schedules a rebuild.
// Safe to call after disposal, where it becomes a no-op.
//
// SetState is NOT thread-safe. It must only be called from the UI thread.
// To update state from a background goroutine, use platform.Dispatch.
func (s *StateBase) SetState(fn func()) {
	if s.IsDisposed() {
		return
	}
	if fn != nil {
		fn()
	}
	if s.element != nil {
		s.element.MarkNeedsBuild()
	}
}

// OnDispose registers a cleanup function to be called when the state is disposed.
// Returns an unregister function that removes the cleanup again.
func (s *StateBase) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		cleanup()
		return func() {}
	}
	index := len(s.disposers)
	s.disposers = append(s.disposers, cleanup)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if index < len(s.disposers) {
			s.disposers[index] = nil
		}
	}
}

// RunDisposers executes all registered disposers in reverse order.
// This is called automatically by Dispose().
func (s *StateBase) RunDisposers() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	disposers := s.disposers
	s.disposers = nil
	s.mu.Unlock()

	for i := len(disposers) - 1; i >= 0; i-- {
		if disposers[i] != nil {
			disposers[i]()
		}
	}
}

// Dispose cleans up resources. Override this method if you need custom cleanup,
// but always call s.StateBase.Dispose() in your override.
func (s *StateBase) Dispose() {
	s.RunDisposers()
}

// InitState is a no-op default implementation.
func (s *StateBase) InitState() {}

// Build is a no-op default implementation that returns nil.
func (s *StateBase) Build(ctx BuildContext) Widget {
	return nil
}

// DidChangeDependencies is a no-op default implementation.
func (s *StateBase) DidChangeDependencies() {}

// DidUpdateWidget is a no-op default implementation.
func (s *StateBase) DidUpdateWidget(oldWidget StatefulWidget) {}

// IsDisposed returns true if this state has been disposed.
func (s *StateBase) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

func (s *StateBase) buildOwner() *BuildOwner {
	if s.element == nil {
		return nil
	}
	return s.element.buildOwner
}
