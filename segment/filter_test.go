package segment

import "testing"

func leafWithCorners(rect Rect, corners [4]Point) *Leaf {
	return &Leaf{Rect: rect, Corners: corners}
}

// TestFilterLeaves_KeepsFlatLeaf verifies a leaf whose 3D footprint matches
// its pixel footprint survives filtering.
func TestFilterLeaves_KeepsFlatLeaf(t *testing.T) {
	leaf := leafWithCorners(Rect{X: 0, Y: 0, W: 4, H: 4}, [4]Point{
		NewPoint(0, 0, 10),
		NewPoint(4, 0, 10),
		NewPoint(0, 4, 10),
		NewPoint(4, 4, 10),
	})

	out := filterLeaves([]*Leaf{leaf}, 8, 8)
	if len(out) != 1 {
		t.Fatalf("len(out) = %d; want 1", len(out))
	}
}

// TestFilterLeaves_DropsStretchedLeaf verifies a leaf whose corners span a
// 3D distance wildly disproportionate to its tiny pixel rectangle, against
// a large image, is dropped.
func TestFilterLeaves_DropsStretchedLeaf(t *testing.T) {
	leaf := leafWithCorners(Rect{X: 0, Y: 0, W: 1, H: 1}, [4]Point{
		NewPoint(0, 0, 0),
		NewPoint(1, 0, 10000),
		NewPoint(0, 1, 0),
		NewPoint(1, 1, 10000),
	})

	out := filterLeaves([]*Leaf{leaf}, 2048, 2048)
	if len(out) != 0 {
		t.Fatalf("len(out) = %d; want 0 for a grazing-angle leaf", len(out))
	}
}

// TestFilterLeaves_PreservesOrder verifies surviving leaves keep their
// relative order — downstream adjacency indices are positional.
func TestFilterLeaves_PreservesOrder(t *testing.T) {
	flat := func(x, y, w, h int) *Leaf {
		return leafWithCorners(Rect{X: x, Y: y, W: w, H: h}, [4]Point{
			NewPoint(float64(x), float64(y), 10),
			NewPoint(float64(x+w), float64(y), 10),
			NewPoint(float64(x), float64(y+h), 10),
			NewPoint(float64(x+w), float64(y+h), 10),
		})
	}
	leaves := []*Leaf{flat(0, 0, 4, 4), flat(4, 0, 4, 4), flat(0, 4, 4, 4)}

	out := filterLeaves(leaves, 8, 8)
	if len(out) != 3 {
		t.Fatalf("len(out) = %d; want 3", len(out))
	}
	for i, leaf := range out {
		if leaf != leaves[i] {
			t.Errorf("out[%d] reordered", i)
		}
	}
}
