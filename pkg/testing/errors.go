package testing

import (
	"sync"

	"github.com/go-drift/datetimepicker/pkg/errors"
)

// captureHandler records everything reported to the global error handler
// while a tester is active.
type captureHandler struct {
	mu          sync.Mutex
	errors      []*errors.DriftError
	panics      []*errors.PanicError
	buildErrors []*errors.BuildError
}

func (h *captureHandler) HandleError(err *errors.DriftError) {
	h.mu.Lock()
	h.errors = append(h.errors, err)
	h.mu.Unlock()
}

func (h *captureHandler) HandlePanic(err *errors.PanicError) {
	h.mu.Lock()
	h.panics = append(h.panics, err)
	h.mu.Unlock()
}

func (h *captureHandler) HandleBuildError(err *errors.BuildError) {
	h.mu.Lock()
	h.buildErrors = append(h.buildErrors, err)
	h.mu.Unlock()
}

// takeBuildError returns the first build error recorded since the last call
// and forgets the rest.
func (h *captureHandler) takeBuildError() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.buildErrors) == 0 {
		return nil
	}
	first := h.buildErrors[0]
	h.buildErrors = nil
	return first
}

func (h *captureHandler) reported() []*errors.DriftError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*errors.DriftError(nil), h.errors...)
}
