package core

import (
	"sync"

	"github.com/go-drift/datetimepicker/pkg/errors"
)

// ErrorWidgetBuilder creates the widget shown in place of a widget whose
// build failed.
type ErrorWidgetBuilder func(err *errors.BuildError) Widget

var (
	errorWidgetBuilder ErrorWidgetBuilder = DefaultErrorWidgetBuilder
	errorBuilderMu     sync.RWMutex
)

// SetErrorWidgetBuilder configures the global error widget builder and
// returns the previous one. Pass nil to restore the default builder.
func SetErrorWidgetBuilder(builder ErrorWidgetBuilder) ErrorWidgetBuilder {
	errorBuilderMu.Lock()
	defer errorBuilderMu.Unlock()
	prev := errorWidgetBuilder
	if builder == nil {
		errorWidgetBuilder = DefaultErrorWidgetBuilder
	} else {
		errorWidgetBuilder = builder
	}
	return prev
}

// GetErrorWidgetBuilder returns the current error widget builder.
func GetErrorWidgetBuilder() ErrorWidgetBuilder {
	errorBuilderMu.RLock()
	defer errorBuilderMu.RUnlock()
	return errorWidgetBuilder
}

// DefaultErrorWidgetBuilder renders nothing in place of the failed widget.
func DefaultErrorWidgetBuilder(err *errors.BuildError) Widget {
	return nil
}
