package gridsparse

import "math"

// Gridder pairs a grid with a kernel. It is immutable for the duration of a
// gridding pass and safe to share between goroutines.
type Gridder struct {
	Grid   *Grid
	Kernel Kernel
}

func NewGridder(dims []int, width Real) (*Gridder, error) {
	g, err := NewGrid(dims)
	if err != nil {
		return nil, err
	}
	k, err := NewKernel(width)
	if err != nil {
		return nil, err
	}
	return &Gridder{Grid: g, Kernel: k}, nil
}

// Bounds fills loc with the sample's continuous voxel location and lower/upper
// with its kernel box clamped to the grid. It reports false when the clamped
// box is empty in any dimension. loc is never clamped.
func (gr *Gridder) Bounds(coord, loc []Real, lower, upper []int) bool {
	h := gr.Kernel.Half
	ok := true
	for d, size := range gr.Grid.Dims {
		x := coord[d]*Real(size) + Real(gr.Grid.Half[d])
		loc[d] = x

		// Clamp both ends into [-1, size] first so int conversion is always defined.
		lo := math.Min(math.Max(math.Ceil(x-h), 0), Real(size))
		hi := math.Max(math.Min(math.Floor(x+h), Real(size-1)), -1)
		lower[d], upper[d] = int(lo), int(hi)
		if lower[d] > upper[d] {
			ok = false
		}
	}
	return ok
}

// clipped reports whether the unclamped kernel box around loc crosses a grid edge.
func (gr *Gridder) clipped(loc []Real) bool {
	h := gr.Kernel.Half
	for d, size := range gr.Grid.Dims {
		if math.Ceil(loc[d]-h) < 0 || math.Floor(loc[d]+h) > Real(size-1) {
			return true
		}
	}
	return false
}
