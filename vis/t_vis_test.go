// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func dist(a, b []float64) float64 {
	return math.Sqrt((a[0]-b[0])*(a[0]-b[0]) + (a[1]-b[1])*(a[1]-b[1]))
}

func Test_edges01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("edges01. edges from adjacency matrix")

	adj := [][]float64{
		{0, 1, 0},
		{0, 0, 0.5},
		{-1, 0, 1},
	}
	edges := Edges(adj)
	io.Pforan("edges = %v\n", edges)
	chk.IntAssert(len(edges), 4)
	chk.Ints(tst, "e0", edges[0][:], []int{0, 1})
	chk.Ints(tst, "e1", edges[1][:], []int{1, 2})
	chk.Ints(tst, "e2", edges[2][:], []int{2, 0})
	chk.Ints(tst, "e3", edges[3][:], []int{2, 2})
}

func Test_layout01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("layout01. force-directed layout")

	// trivial graphs
	chk.IntAssert(len(SpringLayout(nil, 50, 1)), 0)
	pos := SpringLayout([][]float64{{0}}, 50, 1)
	chk.Array(tst, "single node", 1e-15, pos[0], []float64{0, 0})

	// two pairs
	adj := [][]float64{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	}
	pos = SpringLayout(adj, 50, 1)
	io.Pforan("pos = %v\n", pos)
	lim := 0.0
	for _, p := range pos {
		lim = math.Max(lim, math.Max(math.Abs(p[0]), math.Abs(p[1])))
	}
	chk.Float64(tst, "max |x|", 1e-14, lim, 1)
	d01, d02, d03 := dist(pos[0], pos[1]), dist(pos[0], pos[2]), dist(pos[0], pos[3])
	if d01 > d02 || d01 > d03 {
		tst.Errorf("connected nodes should be closer. d01=%g d02=%g d03=%g", d01, d02, d03)
	}

	// deterministic
	again := SpringLayout(adj, 50, 1)
	for i := range pos {
		chk.Array(tst, io.Sf("node %d", i), 1e-15, again[i], pos[i])
	}
}

func Test_graph01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("graph01. draw graph")

	_, err := DrawGraph([][]float64{{0, 1}, {1}}, "bad", "")
	if err == nil {
		tst.Errorf("non-square matrix should fail")
	}
	_, err = DrawGraph([][]float64{{0}}, "bad", "/tmp/fepx/graph.jpg")
	if err == nil {
		tst.Errorf("non-png figure should fail")
	}

	if chk.Verbose {
		adj := [][]float64{
			{0, 1, 1, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
			{1, 0, 0, 1},
		}
		fn := filepath.Join("/tmp/fepx", "test_graph01.png")
		res, err := DrawGraph(adj, "Graph Neural Network", fn)
		if err != nil {
			tst.Errorf("%v", err)
		}
		chk.String(tst, res, fn)
	}
}

func Test_graph02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("graph02. arrows between close nodes")

	r := 0.08
	xa, ya, xb, yb, ok := arrowEnds([]float64{0, 0}, []float64{1, 0}, r)
	if !ok {
		tst.Errorf("arrow between distinct nodes should be drawn")
		return
	}
	chk.Array(tst, "far", 1e-15, []float64{xa, ya, xb, yb}, []float64{r, 0, 1 - r, 0})

	xa, ya, xb, yb, ok = arrowEnds([]float64{0, 0}, []float64{0, 0.1}, r)
	if !ok {
		tst.Errorf("arrow between close nodes should be drawn")
		return
	}
	io.Pforan("close: %v %v -> %v %v\n", xa, ya, xb, yb)
	chk.Array(tst, "close", 1e-15, []float64{xa, ya, xb, yb}, []float64{0, 0.025, 0, 0.075})

	if _, _, _, _, ok = arrowEnds([]float64{0.5, 0.5}, []float64{0.5, 0.5}, r); ok {
		tst.Errorf("coincident nodes have no arrow direction")
	}
}

func Test_weights01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("weights01. draw weights")

	arr, err := pyArray([][]float64{
		{1, 2, 3},
		{4, 5.5, -6e-7},
	})
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.String(tst, arr, "[[1,2,3],[4,5.5,-6e-07]]")

	arr, err = pyArray([][]float64{{0.25, math.NaN(), math.Inf(1)}})
	if err != nil {
		tst.Errorf("single row should be accepted: %v", err)
		return
	}
	chk.String(tst, arr, "[[0.25,float('nan'),float('inf')]]")

	arr, err = pyArray([][]float64{{7}})
	if err != nil {
		tst.Errorf("single entry should be accepted: %v", err)
		return
	}
	chk.String(tst, arr, "[[7]]")

	if _, err = pyArray(nil); err == nil {
		tst.Errorf("empty matrix should fail")
	}
	if _, err = pyArray([][]float64{{}}); err == nil {
		tst.Errorf("empty row should fail")
	}
	if _, err = pyArray([][]float64{{1, 2}, {3}}); err == nil {
		tst.Errorf("ragged matrix should fail")
	}
	if _, err = DrawWeights([][]float64{{1, 2}}, "Weights Map", "weights.eps"); err == nil {
		tst.Errorf("non-png figure should fail")
	}

	if chk.Verbose {
		fn := filepath.Join("/tmp/fepx", "test_weights01.png")
		if _, err = DrawWeights([][]float64{{1, 2, 3, 4}}, "Weights Map", fn); err != nil {
			tst.Errorf("%v", err)
		}
	}
}

func Test_figpath01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("figpath01. output directory and filename key")

	dir, key := figPath("weights.png")
	chk.String(tst, dir, ".")
	chk.String(tst, key, "weights")

	dir, key = figPath("out/graph.png")
	chk.String(tst, dir, "out/")
	chk.String(tst, key, "graph")

	dir, key = figPath("/tmp/fepx/w.png")
	chk.String(tst, dir, "/tmp/fepx/")
	chk.String(tst, key, "w")
}
