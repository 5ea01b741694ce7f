package gridsparse

import (
	"fmt"
	"math"
)

// Grid is an N-dimensional voxel grid linearized with dimension 0 varying fastest.
type Grid struct {
	Dims      []int
	Half      []int // ceil(Dims[d]/2), the grid-center offset
	Stride    []int // Stride[0] = 1, Stride[d] = Stride[d-1]*Dims[d-1]
	NumVoxels int
}

// NewGrid validates the shape and precomputes center offsets & strides.
func NewGrid(dims []int) (*Grid, error) {
	if len(dims) < 1 {
		return nil, fmt.Errorf("%w: need at least one dimension", ErrInvalidShape)
	}
	g := &Grid{
		Dims:   append([]int(nil), dims...),
		Half:   make([]int, len(dims)),
		Stride: make([]int, len(dims)),
	}
	n := 1
	for d, size := range dims {
		if size < 1 {
			return nil, fmt.Errorf("%w: dims[%d]=%d must be >= 1", ErrInvalidShape, d, size)
		}
		if n > math.MaxInt/size {
			return nil, fmt.Errorf("%w: voxel count overflows at dims[%d]=%d", ErrInvalidShape, d, size)
		}
		g.Half[d] = (size + 1) / 2
		g.Stride[d] = n
		n *= size
	}
	g.NumVoxels = n
	return g, nil
}

func (g *Grid) NDims() int { return len(g.Dims) }

// Index converts integer voxel coordinates to a linear index.
func (g *Grid) Index(seed []int) int {
	idx := 0
	for d, s := range seed {
		idx += s * g.Stride[d]
	}
	return idx
}

// Coord decodes a linear index back to voxel coordinates, reusing dst when it fits.
func (g *Grid) Coord(idx int, dst []int) []int {
	if cap(dst) < len(g.Dims) {
		dst = make([]int, len(g.Dims))
	}
	dst = dst[:len(g.Dims)]
	for d, size := range g.Dims {
		dst[d] = idx % size
		idx /= size
	}
	return dst
}

// VoxelLoc maps a normalized coordinate (roughly [-0.5, 0.5) per axis) into
// continuous voxel-index space.
func (g *Grid) VoxelLoc(coord, dst []Real) []Real {
	if cap(dst) < len(g.Dims) {
		dst = make([]Real, len(g.Dims))
	}
	dst = dst[:len(g.Dims)]
	for d, size := range g.Dims {
		dst[d] = coord[d]*Real(size) + Real(g.Half[d])
	}
	return dst
}
