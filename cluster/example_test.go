package cluster_test

import (
	"fmt"

	"github.com/katalvlaran/forcelayout/cluster"
	"github.com/katalvlaran/forcelayout/core"
)

// ExampleAssigner shows colors surviving a data update.
func ExampleAssigner() {
	a := cluster.NewAssigner(cluster.DefaultPalette())

	first := a.Recompute([]*core.Node{
		{Name: "a", Cluster: 1}, {Name: "b", Cluster: 2}, {Name: "c", Cluster: 0},
	})
	fmt.Println(first.Color(1), first.Color(2), first.Color(0))

	second := a.Recompute([]*core.Node{
		{Name: "d", Cluster: 5}, {Name: "b", Cluster: 2},
	})
	fmt.Println(second.Color(5), second.Color(2))
	// Output:
	// #aec7e8 #ff7f0e #222
	// #aec7e8 #ff7f0e
}
