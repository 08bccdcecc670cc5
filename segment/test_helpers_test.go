package segment

import "testing"

// flatGrid builds a W×H PointGrid where every sample is f(x, y).
func flatGrid(t *testing.T, w, h int, f func(x, y int) Point) *PointGrid {
	t.Helper()
	samples := make([]Point, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			samples[y*w+x] = f(x, y)
		}
	}
	grid, err := NewPointGrid(samples, w, h)
	if err != nil {
		t.Fatalf("flatGrid: NewPointGrid failed: %v", err)
	}
	return grid
}
