package core_test

import (
	"fmt"

	"github.com/go-drift/datetimepicker/pkg/core"
)

type greeter struct {
	core.StatefulBase
}

func (greeter) CreateState() core.State { return &greeterState{} }

type greeterState struct {
	core.StateBase
	name     *core.Managed[string]
	announce *core.Effect
}

func (s *greeterState) InitState() {
	s.name = core.NewManaged(s, "world")
	s.announce = core.UseEffect(s, func() func() {
		fmt.Println("hello,", s.name.Value())
		return nil
	})
}

func (s *greeterState) Build(ctx core.BuildContext) core.Widget {
	s.announce.Watch(s.name.Value())
	return nil
}

// This example shows an effect that re-runs only when its dependencies
// change.
func ExampleUseEffect() {
	owner := core.NewBuildOwner()
	root := core.MountRoot(greeter{}, owner)
	owner.FlushBuild()

	state := root.(*core.StatefulElement).State().(*greeterState)
	state.name.Set("drift")
	owner.FlushBuild()

	// Same value: the rebuild runs but the effect does not.
	state.name.Set("drift")
	owner.FlushBuild()

	// Output:
	// hello, world
	// hello, drift
}

// This example shows a Ref holding a handle published by another widget.
func ExampleRef() {
	ref := core.NewRef[string]()
	if _, ok := ref.Current(); !ok {
		fmt.Println("empty")
	}
	ref.Set("native view 7")
	v, _ := ref.Current()
	fmt.Println(v)
	ref.Clear()
	_, ok := ref.Current()
	fmt.Println(ok)

	// Output:
	// empty
	// native view 7
	// false
}
