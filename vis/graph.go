// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vis implements plotting of graphs and weight matrices
package vis

import (
	"math"
	"math/rand"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// constants
var (
	NodeRadius = 0.08      // radius of node circles in layout coordinates
	NodeColor  = "skyblue" // face color of nodes
	EdgeColor  = "k"       // color of arrows
	FontSize   = 10.0      // size of node labels
	Iterations = 50        // number of iterations of force-directed layout
	Seed       = int64(1)  // seed of initial positions in force-directed layout
)

// Edges returns the directed edges {i, j} corresponding to nonzero entries of an adjacency matrix
func Edges(adj [][]float64) (edges [][2]int) {
	for i, row := range adj {
		for j, v := range row {
			if v != 0 {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return
}

// SpringLayout computes node positions with the Fruchterman-Reingold force-directed algorithm.
// Edges attract their nodes regardless of direction. Positions are centred and scaled to [-1, 1]
//  Output:
//   pos -- [nnodes][2] x-y coordinates
func SpringLayout(adj [][]float64, iterations int, seed int64) (pos [][]float64) {

	// initial positions
	n := len(adj)
	pos = utl.Alloc(n, 2)
	if n < 2 {
		return
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		pos[i][0] = rng.Float64()
		pos[i][1] = rng.Float64()
	}

	// attraction
	A := utl.Alloc(n, n)
	for _, e := range Edges(adj) {
		if e[0] != e[1] && e[0] < n && e[1] < n {
			A[e[0]][e[1]] = 1
			A[e[1]][e[0]] = 1
		}
	}

	// temperature decreasing linearly down to zero
	k := math.Sqrt(1.0 / float64(n))
	t := 0.1 * math.Max(spread(pos, 0), spread(pos, 1))
	dt := t / float64(iterations+1)

	// iterations
	disp := utl.Alloc(n, 2)
	for it := 0; it < iterations; it++ {
		for i := 0; i < n; i++ {
			disp[i][0], disp[i][1] = 0, 0
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				dx := pos[i][0] - pos[j][0]
				dy := pos[i][1] - pos[j][1]
				d := math.Max(math.Sqrt(dx*dx+dy*dy), 0.01)
				f := k*k/(d*d) - A[i][j]*d/k
				disp[i][0] += dx * f
				disp[i][1] += dy * f
			}
		}
		for i := 0; i < n; i++ {
			l := math.Max(math.Sqrt(disp[i][0]*disp[i][0]+disp[i][1]*disp[i][1]), 0.01)
			pos[i][0] += disp[i][0] * t / l
			pos[i][1] += disp[i][1] * t / l
		}
		t -= dt
	}
	rescale(pos)
	return
}

// DrawGraph draws a directed graph given by a square adjacency matrix; nodes are labelled from 1
//  savePath -- path of png figure; e.g. "/tmp/fepx/graph.png". Use "" to show figure instead
func DrawGraph(adj [][]float64, title, savePath string) (string, error) {

	// check
	n := len(adj)
	for i, row := range adj {
		if len(row) != n {
			return savePath, chk.Err("adjacency matrix must be square. row %d has %d columns but there are %d rows", i, len(row), n)
		}
	}
	if err := checkPng(savePath); err != nil {
		return savePath, err
	}

	// layout
	pos := SpringLayout(adj, Iterations, Seed)
	r := NodeRadius

	// edges
	plt.Reset(true, &plt.A{Prop: 1})
	for _, e := range Edges(adj) {
		a, b := pos[e[0]], pos[e[1]]
		if e[0] == e[1] {
			plt.Circle(a[0]+r, a[1]+r, 0.6*r, &plt.A{Ec: EdgeColor, Fc: "none"})
			continue
		}
		xa, ya, xb, yb, ok := arrowEnds(a, b, r)
		if !ok {
			plt.Circle(b[0]+r, b[1]+r, 0.6*r, &plt.A{Ec: EdgeColor, Fc: "none"})
			continue
		}
		plt.Arrow(xa, ya, xb, yb, &plt.A{C: EdgeColor})
	}

	// nodes
	for i, p := range pos {
		plt.Circle(p[0], p[1], r, &plt.A{Fc: NodeColor, Ec: NodeColor})
		plt.Text(p[0], p[1], io.Sf("%d", i+1), &plt.A{Ha: "center", Va: "center", Fsz: FontSize})
	}

	// figure
	plt.Title(title, nil)
	plt.Equal()
	plt.AxisXrange(-1-2*r, 1+2*r)
	plt.AxisYrange(-1-2*r, 1+2*r)
	plt.AxisOff()
	return show(savePath)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// arrowEnds returns the tail and head of an arrow from node a to node b, leaving a gap of r
// around each node. The gap shrinks to a quarter of the distance when nodes are closer than 2r.
// ok is false if both nodes are at the same position
func arrowEnds(a, b []float64, r float64) (xa, ya, xb, yb float64, ok bool) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	l := math.Sqrt(dx*dx + dy*dy)
	if l == 0 {
		return
	}
	gap := math.Min(r, 0.25*l)
	ux, uy := dx/l, dy/l
	return a[0] + gap*ux, a[1] + gap*uy, b[0] - gap*ux, b[1] - gap*uy, true
}

// spread returns max - min of coordinate dim
func spread(pos [][]float64, dim int) float64 {
	lo, hi := pos[0][dim], pos[0][dim]
	for _, p := range pos {
		lo = math.Min(lo, p[dim])
		hi = math.Max(hi, p[dim])
	}
	return hi - lo
}

// rescale centres positions and scales them to [-1, 1]
func rescale(pos [][]float64) {
	n := float64(len(pos))
	for dim := 0; dim < 2; dim++ {
		mean := 0.0
		for _, p := range pos {
			mean += p[dim]
		}
		mean /= n
		for _, p := range pos {
			p[dim] -= mean
		}
	}
	lim := 0.0
	for _, p := range pos {
		lim = math.Max(lim, math.Max(math.Abs(p[0]), math.Abs(p[1])))
	}
	if lim > 0 {
		for _, p := range pos {
			p[0] /= lim
			p[1] /= lim
		}
	}
}
