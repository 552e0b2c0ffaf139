package core

// StatelessBase provides CreateElement and Key for stateless widgets.
// Embed it and implement Build:
//
//	type Greeting struct {
//	    core.StatelessBase
//	    Name string
//	}
//
//	func (g Greeting) Build(ctx core.BuildContext) core.Widget { ... }
type StatelessBase struct{}

// CreateElement returns an unmounted StatelessElement.
func (StatelessBase) CreateElement() Element { return NewStatelessElement(nil, nil) }

// Key returns nil.
func (StatelessBase) Key() any { return nil }

// StatefulBase provides CreateElement and Key for stateful widgets.
// Embed it and implement CreateState:
//
//	type Counter struct {
//	    core.StatefulBase
//	}
//
//	func (Counter) CreateState() core.State { return &counterState{} }
type StatefulBase struct{}

// CreateElement returns an unmounted StatefulElement.
func (StatefulBase) CreateElement() Element { return NewStatefulElement(nil, nil) }

// Key returns nil.
func (StatefulBase) Key() any { return nil }
