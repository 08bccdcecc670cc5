package depthkernels

import (
	"sync"

	"github.com/shanem2ms/depthplanes/segment"
)

// Kernels holds scratch-buffer pools shared across repeated calls to this
// instance's kernel functions. The zero value is not usable; construct
// with NewKernels.
type Kernels struct {
	edgePool   sync.Pool
	normalPool sync.Pool
}

// NewKernels constructs a Kernels instance with empty scratch pools. Reuse
// one Kernels across frames of the same (or similar) resolution to get the
// benefit of the pooling; a fresh Kernels per call defeats the purpose.
func NewKernels() *Kernels {
	return &Kernels{
		edgePool:   sync.Pool{New: func() interface{} { return new(edgeScratch) }},
		normalPool: sync.Pool{New: func() interface{} { return new([]segment.Point) }},
	}
}

// edgeScratch holds the two gradient buffers DepthFindEdges needs between
// its row-difference pass and its second-difference pass.
type edgeScratch struct {
	d1 []dxy
	d2 []dxy
}

func (k *Kernels) getEdgeScratch(n int) *edgeScratch {
	s := k.edgePool.Get().(*edgeScratch)
	if cap(s.d1) < n {
		s.d1 = make([]dxy, n)
	} else {
		s.d1 = s.d1[:n]
		for i := range s.d1 {
			s.d1[i] = dxy{}
		}
	}
	if cap(s.d2) < n {
		s.d2 = make([]dxy, n)
	} else {
		s.d2 = s.d2[:n]
		for i := range s.d2 {
			s.d2[i] = dxy{}
		}
	}
	return s
}

func (k *Kernels) putEdgeScratch(s *edgeScratch) {
	k.edgePool.Put(s)
}

// getNormalScratch returns a zeroed scratch buffer of n segment.Points,
// reusing a previously pooled backing array when it is large enough.
func (k *Kernels) getNormalScratch(n int) []segment.Point {
	buf := *k.normalPool.Get().(*[]segment.Point)
	if cap(buf) < n {
		return make([]segment.Point, n)
	}
	buf = buf[:n]
	zero := segment.Point{}
	for i := range buf {
		buf[i] = zero
	}
	return buf
}

func (k *Kernels) putNormalScratch(buf []segment.Point) {
	k.normalPool.Put(&buf)
}
