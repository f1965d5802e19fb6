package core_test

import (
	"fmt"

	"github.com/katalvlaran/forcelayout/core"
)

// ExampleBuild binds a tiny influence graph and shows what was dropped.
func ExampleBuild() {
	g, rep := core.Build(
		[]core.NodeSpec{
			{Name: "rule-a", Cluster: core.Some(1)},
			{Name: "rule-b", Cluster: core.Some(1)},
			{Name: "rule-c"},
		},
		[]core.LinkSpec{
			{Source: "rule-a", Target: "rule-b", Value: core.Some(-0.8)},
			{Source: "rule-b", Target: "rule-c", Weight: core.Some(0.3)},
			{Source: "rule-c", Target: "rule-z"},
		},
	)

	fmt.Println("nodes:", g.NodeCount(), "links:", g.LinkCount())
	fmt.Println("max |value|:", g.MaxAbsValue())
	fmt.Println("malformed:", rep.MalformedLinks)
	// Output:
	// nodes: 3 links: 2
	// max |value|: 0.8
	// malformed: 1
}
