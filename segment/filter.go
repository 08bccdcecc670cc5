package segment

import "math"

// coverageLimit bounds how long a leaf's longest 3D diagonal may be
// relative to its normalized pixel-rectangle diagonal before it is dropped.
// Compiled in, not exposed through an EngineOption.
const coverageLimit = 20.0

// filterLeaves drops leaves whose 3D quad is implausible for its pixel
// footprint: a small patch whose corners span a long 3D distance usually
// means the fitted plane is grazing the sensor at a steep angle, or
// straddles a depth discontinuity.
//
// The comparison is unit-inconsistent (longestDiag is a 3D length, rectDiag
// a dimensionless fraction of the image diagonal). coverageLimit was
// calibrated against this exact formula, so the formula stays as is.
func filterLeaves(leaves []*Leaf, imageW, imageH int) []*Leaf {
	fullDiagonal := math.Hypot(float64(imageW), float64(imageH))
	out := leaves[:0]

	for _, leaf := range leaves {
		var longestDiag float64
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				if d := leaf.Corners[i].Sub(leaf.Corners[j]).Norm(); d > longestDiag {
					longestDiag = d
				}
			}
		}

		rectDiag := math.Hypot(float64(leaf.Rect.W), float64(leaf.Rect.H)) / fullDiagonal
		coverage := math.Abs(longestDiag / rectDiag)
		if coverage > coverageLimit {
			continue
		}
		out = append(out, leaf)
	}

	return out
}
