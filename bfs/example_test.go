package bfs_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridbfs/bfs"
	"github.com/katalvlaran/gridbfs/gridgraph"
)

// ExampleTraverse visits the 5×5 reference grid from the top-left corner.
// The cell (0,2) is adjacent to nothing reachable except (0,3), so it is
// reached last, after the walk climbs the right-hand column.
func ExampleTraverse() {
	g, _ := gridgraph.From2D([][]int{
		{1, 0, 1, 1, 1},
		{1, 1, 0, 0, 1},
		{0, 1, 1, 0, 1},
		{1, 0, 1, 1, 1},
		{1, 1, 0, 1, 1},
	})

	res, err := bfs.Traverse(g, gridgraph.At(0, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Len(), "cells")
	fmt.Println(res.Order[:5])
	fmt.Println(res.Order[len(res.Order)-1])
	// Output:
	// 15 cells
	// [(0, 0) (1, 0) (1, 1) (2, 1) (2, 2)]
	// (0, 2)
}

// ExampleTraverse_invalidStart shows that a blocked start aborts before any work.
func ExampleTraverse_invalidStart() {
	g, _ := gridgraph.From2D([][]int{{1, 0}})

	_, err := bfs.Traverse(g, gridgraph.At(0, 1))
	fmt.Println(errors.Is(err, bfs.ErrInvalidStart))

	_, err = bfs.Traverse(g, gridgraph.At(3, 3))
	fmt.Println(errors.Is(err, bfs.ErrInvalidStart), errors.Is(err, gridgraph.ErrOutOfBounds))
	// Output:
	// true
	// true true
}

// ExampleWalk streams cells one at a time, the way a printer would.
func ExampleWalk() {
	g, _ := gridgraph.From2D([][]int{
		{1, 1},
		{1, 0},
	})
	seq, _ := bfs.Walk(g, gridgraph.At(0, 0))
	for c := range seq {
		fmt.Print(c, " -> ")
	}
	fmt.Println("end")
	// Output:
	// (0, 0) -> (1, 0) -> (0, 1) -> end
}

// ExampleComponents labels the regions of a small map.
func ExampleComponents() {
	g, _ := gridgraph.From2D([][]int{
		{1, 1, 0, 1},
		{0, 0, 0, 1},
		{1, 0, 1, 1},
	})
	comps, _ := bfs.Components(g)
	for i, comp := range comps {
		fmt.Printf("region %d: %v\n", i, comp)
	}
	// Output:
	// region 0: [(0, 0) (0, 1)]
	// region 1: [(0, 3) (1, 3) (2, 3) (2, 2)]
	// region 2: [(2, 0)]
}
