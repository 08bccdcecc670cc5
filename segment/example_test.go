package segment_test

import (
	"fmt"
	"math/rand"

	"github.com/shanem2ms/depthplanes/segment"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Engine.Segment on a single flat plane
////////////////////////////////////////////////////////////////////////////////

// ExampleEngine_Segment demonstrates segmenting a perfectly flat depth
// patch into a single leaf and a single cluster.
// Scenario:
//
//   - A 16x16 grid of samples all lying on the z=10 plane.
//   - No residual ever exceeds the split thresholds, so the quad-tree
//     never recurses past the root tile.
//
// Complexity: O(W·H) for the scan, O(L) for adjacency/merge over L leaves.
func ExampleEngine_Segment() {
	samples := make([]segment.Point, 16*16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			samples[y*16+x] = segment.NewPoint(float64(x), float64(y), 10)
		}
	}
	grid, _ := segment.NewPointGrid(samples, 16, 16)

	engine := segment.NewEngine()
	seg := engine.Segment(grid)

	fmt.Println("leaves:", len(seg.Leaves))
	fmt.Println("clusters:", len(seg.Clusters))

	// Output:
	// leaves: 1
	// clusters: 1
}

////////////////////////////////////////////////////////////////////////////////
// Example: Engine.DepthMakePlanes over a stepped surface
////////////////////////////////////////////////////////////////////////////////

// ExampleEngine_DepthMakePlanes demonstrates triangulating two parallel
// flats separated by a depth step into a colored triangle-list buffer.
// Scenario:
//
//   - A 16x16 grid split down the middle: left half at z=10, right half at
//     z=40, both flat.
//   - Expect two clusters, so two distinct colors among the written
//     vertices, with every vertex belonging to one of exactly two colors.
//
// Complexity: O(W·H), Memory: O(W·H) for the output buffers.
func ExampleEngine_DepthMakePlanes() {
	samples := make([]segment.Point, 16*16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			z := 10.0
			if x >= 8 {
				z = 40.0
			}
			samples[y*16+x] = segment.NewPoint(float64(x), float64(y), z)
		}
	}
	grid, _ := segment.NewPointGrid(samples, 16, 16)

	engine := segment.NewEngine(segment.WithRNG(rand.New(rand.NewSource(1))))
	outVertices := make([]segment.Point, 4096)
	outColors := make([]segment.Point, 4096)

	n, err := engine.DepthMakePlanes(grid, outVertices, outColors)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	colors := map[segment.Point]bool{}
	for _, c := range outColors[:n] {
		colors[c] = true
	}

	fmt.Println("vertices a multiple of 6:", n%6 == 0)
	fmt.Println("distinct colors:", len(colors))

	// Output:
	// vertices a multiple of 6: true
	// distinct colors: 2
}
