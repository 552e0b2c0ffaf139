package widgets

import "sync"

// HeightResolver computes the layout height of the native picker for a
// display and mode. Resolution may complete later; see HeightResult.
type HeightResolver interface {
	ResolveHeight(display Display, mode Mode) HeightResult
}

// HeightResolverFunc adapts a function to HeightResolver.
type HeightResolverFunc func(display Display, mode Mode) HeightResult

// ResolveHeight calls f.
func (f HeightResolverFunc) ResolveHeight(display Display, mode Mode) HeightResult {
	return f(display, mode)
}

// HeightResult is a height that is either available now or pending.
// The zero value is a ready height of 0.
type HeightResult struct {
	height  float64
	pending *heightFuture
}

// ReadyHeight returns a result that is already resolved.
func ReadyHeight(height float64) HeightResult {
	return HeightResult{height: height}
}

// PendingHeight returns an unresolved result and the completer that
// resolves it.
func PendingHeight() (HeightResult, *HeightCompleter) {
	future := &heightFuture{}
	return HeightResult{pending: future}, &HeightCompleter{future: future}
}

// Pending reports whether the height is not known yet.
func (r HeightResult) Pending() bool {
	return r.pending != nil
}

// Height returns a ready result's height, or 0 for a pending one.
func (r HeightResult) Height() float64 {
	return r.height
}

// OnComplete registers fn to be called once with the resolved height or the
// resolution error. fn runs synchronously on the goroutine that completes
// the result, or immediately if it is already complete.
func (r HeightResult) OnComplete(fn func(height float64, err error)) {
	if r.pending == nil {
		fn(r.height, nil)
		return
	}
	r.pending.onComplete(fn)
}

// HeightCompleter resolves a pending HeightResult. Only the first Complete
// or Fail takes effect.
type HeightCompleter struct {
	future *heightFuture
}

// Complete resolves the result with height.
func (c *HeightCompleter) Complete(height float64) {
	c.future.resolve(height, nil)
}

// Fail resolves the result with err.
func (c *HeightCompleter) Fail(err error) {
	c.future.resolve(0, err)
}

type heightFuture struct {
	mu        sync.Mutex
	done      bool
	height    float64
	err       error
	callbacks []func(float64, error)
}

func (f *heightFuture) onComplete(fn func(float64, error)) {
	f.mu.Lock()
	if !f.done {
		f.callbacks = append(f.callbacks, fn)
		f.mu.Unlock()
		return
	}
	height, err := f.height, f.err
	f.mu.Unlock()
	fn(height, err)
}

func (f *heightFuture) resolve(height float64, err error) {
	f.mu.Lock()
	if f.done {
		f.mu.Unlock()
		return
	}
	f.done = true
	f.height, f.err = height, err
	callbacks := f.callbacks
	f.callbacks = nil
	f.mu.Unlock()

	for _, fn := range callbacks {
		fn(height, err)
	}
}
