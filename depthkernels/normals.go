package depthkernels

import "github.com/shanem2ms/depthplanes/segment"

// pickedColor and unpickedColor are the two flat shades FindNormalsPicked's
// highlight path paints the field with; the single true pick location
// stands out against the neutral gray background instead of rendering a
// full normal field.
var (
	unpickedColor = segment.NewPoint(0.4, 0.4, 0.4)
	pickedColor   = segment.NewPoint(1, 1, 1)
)

// similarityThreshold bounds how far a candidate normal may be (Euclidean
// distance between unit vectors) from the picked normal before FindNormals
// renders it black instead of remapped color.
const similarityThreshold = 0.75

// computeNormals fills scratch with the unit surface normal at every
// interior pixel of points (a width*height grid), leaving the one-pixel
// border zeroed. The normal at (x,y) is the cross product of the
// horizontal and vertical central-difference tangents; pixels missing a
// valid 4-neighborhood are left as the zero vector.
func computeNormals(points []segment.Point, width, height int, scratch []segment.Point) {
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			right := points[y*width+x+1]
			left := points[y*width+x-1]
			up := points[(y-1)*width+x]
			down := points[(y+1)*width+x]
			idx := y*width + x

			if right.IsValid() && left.IsValid() && up.IsValid() && down.IsValid() {
				dx := right.Sub(left)
				dy := up.Sub(down)
				scratch[idx] = dx.Cross(dy).Normalize()
			} else {
				scratch[idx] = segment.Point{}
			}
		}
	}
}

// remap01 maps a unit normal's [-1,1]^3 components into [0,1]^3, the
// convention a color buffer or RGB-encoded normal map expects.
func remap01(n segment.Point) segment.Point {
	return segment.NewPoint((n.X+1)*0.5, (n.Y+1)*0.5, (n.Z+1)*0.5)
}

// renderFullNormalField remaps every interior pixel's computed normal into
// out unconditionally. Both FindNormals and FindNormalsPicked fall back to
// this when no pick coordinate is given (pickX < 0) — the one rendering
// mode the two device variants this package ports actually agree on.
func renderFullNormalField(scratch, out []segment.Point, width, height int) {
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			idx := y*width + x
			out[idx] = remap01(scratch[idx])
		}
	}
}

// FindNormals is the desktop rendering path: with no pick coordinate
// (pickX < 0) it remaps every interior pixel's surface normal to [0,1]^3
// unconditionally. With a valid pick coordinate, it instead renders only
// pixels whose normal lies within similarityThreshold of the normal at
// (pickX, pickY), in their remapped color; every other pixel is painted
// pure black. points and out must each have exactly width*height entries.
func (k *Kernels) FindNormals(points []segment.Point, width, height, pickX, pickY int, out []segment.Point) error {
	n := width * height
	if len(points) != n || len(out) != n {
		return ErrDimensionMismatch
	}

	scratch := k.getNormalScratch(n)
	defer k.putNormalScratch(scratch)

	computeNormals(points, width, height, scratch)

	if pickX < 0 || pickY < 0 || pickX >= width || pickY >= height {
		renderFullNormalField(scratch, out, width, height)
		return nil
	}

	picked := scratch[pickY*width+pickX]
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			idx := y*width + x
			if picked.Sub(scratch[idx]).Norm() < similarityThreshold {
				out[idx] = remap01(scratch[idx])
			} else {
				out[idx] = segment.Point{}
			}
		}
	}
	return nil
}

// FindNormalsPicked is the mobile/iOS rendering path: with no pick
// coordinate (pickX < 0) it falls back to the same unconditional remapped
// field FindNormals renders in that case. With a valid pick coordinate, it
// instead paints every interior pixel a flat neutral gray and highlights
// only the single pixel at (pickX, pickY); the surface normal values
// themselves never reach the output buffer in that mode.
func (k *Kernels) FindNormalsPicked(points []segment.Point, width, height, pickX, pickY int, out []segment.Point) error {
	n := width * height
	if len(points) != n || len(out) != n {
		return ErrDimensionMismatch
	}

	if pickX < 0 || pickY < 0 || pickX >= width || pickY >= height {
		scratch := k.getNormalScratch(n)
		defer k.putNormalScratch(scratch)
		computeNormals(points, width, height, scratch)
		renderFullNormalField(scratch, out, width, height)
		return nil
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			out[y*width+x] = unpickedColor
		}
	}
	out[pickY*width+pickX] = pickedColor
	return nil
}
