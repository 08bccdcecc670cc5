package depthkernels

import "github.com/shanem2ms/depthplanes/segment"

// badValue marks a gradient sample that straddles a missing depth reading.
const badValue = -0xFFFF

// edgeBias centers DepthFindEdges' output around zero, subtracted from
// both channels after squaring; calibrated for typical indoor depth-sensor
// gradient magnitudes.
const edgeBias = 3000.0

// dxy is a raw integer depth gradient: one signed step between two
// neighboring depth readings, or (badValue, badValue) if either reading
// was missing (a depth sensor reports 0 for "no return").
type dxy struct {
	dx, dy int
}

func (d dxy) isValid() bool { return d.dx != badValue && d.dy != badValue }
func (d dxy) lengthSq() int { return d.dx*d.dx + d.dy*d.dy }

// DepthFindEdges computes a per-pixel edge-strength field from a raw
// 16-bit depth buffer: a first-difference gradient pass along both axes,
// then a second-difference pass over that gradient, producing a field that
// responds most strongly where the depth surface bends sharply — a cheap
// precursor to plane segmentation that flags likely tile-split boundaries
// before any point-cloud math runs.
//
// depth and out must each have exactly width*height entries (out holds one
// Point per pixel; its X channel is always 0, Y carries the first-gradient
// magnitude minus edgeBias, Z the second-difference magnitude minus
// edgeBias). The one-pixel border of out is not written, since the gradient
// passes need a neighbor on every side.
func (k *Kernels) DepthFindEdges(depth []uint16, width, height int, out []segment.Point) error {
	n := width * height
	if len(depth) != n || len(out) != n {
		return ErrDimensionMismatch
	}

	scratch := k.getEdgeScratch(n)
	defer k.putEdgeScratch(scratch)
	d1, d2 := scratch.d1, scratch.d2

	for y := 0; y < height; y++ {
		for x := 1; x < width; x++ {
			px, nx := depth[y*width+x-1], depth[y*width+x]
			idx := y*width + x
			if px > 0 && nx > 0 {
				d1[idx].dx = int(nx) - int(px)
			} else {
				d1[idx].dx = badValue
			}
		}
	}
	for y := 1; y < height; y++ {
		for x := 0; x < width; x++ {
			py, ny := depth[(y-1)*width+x], depth[y*width+x]
			idx := y*width + x
			if py > 0 && ny > 0 {
				d1[idx].dy = int(ny) - int(py)
			} else {
				d1[idx].dy = badValue
			}
		}
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			idx := y*width + x
			d, dLeft, dUp := d1[idx], d1[idx-1], d1[idx-width]
			if d.isValid() && dLeft.isValid() && dUp.isValid() {
				ddx := dxy{d.dx - dLeft.dx, d.dy - dLeft.dy}
				ddy := dxy{d.dx - dUp.dx, d.dy - dUp.dy}
				d2[idx] = dxy{ddx.lengthSq(), ddy.lengthSq()}
			} else {
				d2[idx] = dxy{badValue, badValue}
			}
		}
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			idx := y*width + x
			fd := 0.0
			if d1[idx].isValid() {
				fd = float64(d1[idx].lengthSq())
			}
			fdd := 0.0
			if d2[idx].isValid() {
				fdd = float64(d2[idx].lengthSq())
			}
			out[idx] = segment.NewPoint(0, fd-edgeBias, fdd-edgeBias)
		}
	}

	return nil
}
