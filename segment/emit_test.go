package segment

import (
	"math/rand"
	"testing"
)

func quadLeaf(x, y, w, h int, plane Plane) *Leaf {
	return &Leaf{
		Rect:  Rect{X: x, Y: y, W: w, H: h},
		Plane: plane,
		Corners: [4]Point{
			NewPoint(float64(x), float64(y), 10),
			NewPoint(float64(x+w), float64(y), 10),
			NewPoint(float64(x), float64(y+h), 10),
			NewPoint(float64(x+w), float64(y+h), 10),
		},
	}
}

// TestEmitClusters_SixVerticesPerLeaf verifies each leaf contributes exactly
// two triangles (6 vertices) and that every vertex in a cluster shares the
// cluster's single sampled color.
func TestEmitClusters_SixVerticesPerLeaf(t *testing.T) {
	plane := Plane{Normal: NewPoint(0, 0, 1), Anchor: NewPoint(0, 0, 10)}
	leaves := []*Leaf{quadLeaf(0, 0, 8, 8, plane), quadLeaf(8, 0, 8, 8, plane)}
	clusters := [][]int{{0, 1}}

	outVerts := make([]Point, 12)
	outColors := make([]Point, 12)
	rng := rand.New(rand.NewSource(1))

	n := emitClusters(leaves, clusters, outVerts, outColors, rng)
	if n != 12 {
		t.Fatalf("n = %d; want 12", n)
	}
	for i := 1; i < 12; i++ {
		if outColors[i] != outColors[0] {
			t.Errorf("outColors[%d] = %v; want %v (same cluster, same color)", i, outColors[i], outColors[0])
		}
	}
}

// TestEmitClusters_DeterministicWithSeededRNG verifies that two runs with
// identically seeded RNGs produce identical output — required for the
// Merge determinism property to extend to color assignment.
func TestEmitClusters_DeterministicWithSeededRNG(t *testing.T) {
	plane := Plane{Normal: NewPoint(0, 0, 1), Anchor: NewPoint(0, 0, 10)}
	leaves := []*Leaf{quadLeaf(0, 0, 8, 8, plane)}
	clusters := [][]int{{0}}

	run := func() []Point {
		out := make([]Point, 6)
		colors := make([]Point, 6)
		emitClusters(leaves, clusters, out, colors, rand.New(rand.NewSource(42)))
		return colors
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("colors[%d] differ across identically-seeded runs: %v vs %v", i, a[i], b[i])
		}
	}
}

// TestEmitClusters_StopsAtLeafBoundaryOnOverflow verifies that when the
// output buffer cannot hold a whole leaf's 6 vertices, emission stops
// before writing a partial quad rather than overrunning the slice.
func TestEmitClusters_StopsAtLeafBoundaryOnOverflow(t *testing.T) {
	plane := Plane{Normal: NewPoint(0, 0, 1), Anchor: NewPoint(0, 0, 10)}
	leaves := []*Leaf{quadLeaf(0, 0, 8, 8, plane), quadLeaf(8, 0, 8, 8, plane)}
	clusters := [][]int{{0, 1}}

	outVerts := make([]Point, 9) // room for one leaf (6) plus a partial second
	outColors := make([]Point, 9)
	rng := rand.New(rand.NewSource(1))

	n := emitClusters(leaves, clusters, outVerts, outColors, rng)
	if n != 6 {
		t.Fatalf("n = %d; want 6 (only the first leaf fits)", n)
	}
}
