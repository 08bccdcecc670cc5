package segment

import "math/rand"

// emitClusters triangulates each cluster's leaves into outVertices, with a
// matching per-vertex color in outColors, writing at most len(outVertices)
// vertices (outVertices and outColors must be the same length). If a
// cluster's vertices would overflow the buffer, emission stops at the last
// whole leaf that fits — never mid-quad — and the count written so far is
// returned. rng picks one color per cluster; inject a seeded *rand.Rand for
// deterministic tests.
func emitClusters(leaves []*Leaf, clusters [][]int, outVertices, outColors []Point, rng *rand.Rand) int {
	maxCount := len(outVertices)
	idx := 0

	for _, cluster := range clusters {
		color := Point{}
		color.X = rng.Float64()
		color.Y = rng.Float64()
		color.Z = rng.Float64()

		for _, leafIdx := range cluster {
			if idx+6 > maxCount {
				return idx
			}
			leaf := leaves[leafIdx]
			leaf.ClusterColor = Color{R: color.X, G: color.Y, B: color.Z}

			tl, tr, bl, br := leaf.Corners[0], leaf.Corners[1], leaf.Corners[2], leaf.Corners[3]

			outVertices[idx+0], outColors[idx+0] = tl, color
			outVertices[idx+1], outColors[idx+1] = tr, color
			outVertices[idx+2], outColors[idx+2] = bl, color
			outVertices[idx+3], outColors[idx+3] = tr, color
			outVertices[idx+4], outColors[idx+4] = br, color
			outVertices[idx+5], outColors[idx+5] = bl, color
			idx += 6
		}
	}

	return idx
}
