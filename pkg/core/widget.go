package core

// Widget is an immutable description of part of the UI.
type Widget interface {
	CreateElement() Element
	Key() any
}

// StatelessWidget builds its child purely from its own configuration.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns a State that survives rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State is the mutable, long-lived half of a StatefulWidget.
type State interface {
	SetElement(element *StatefulElement)
	InitState()
	Build(ctx BuildContext) Widget
	SetState(fn func())
	Dispose()
	DidChangeDependencies()
	DidUpdateWidget(oldWidget StatefulWidget)
}

// BuildContext gives widgets access to their location in the tree.
type BuildContext interface {
	Widget() Widget
	FindAncestor(predicate func(Element) bool) Element
}

// Element is the instantiation of a Widget at a particular location in the tree.
type Element interface {
	BuildContext
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	MarkNeedsBuild()
	RebuildIfNeeded()
	Depth() int
	VisitChildren(visitor func(Element) bool)
}

// Disposable is implemented by controllers that release resources.
type Disposable interface {
	Dispose()
}
