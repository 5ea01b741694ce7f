package gridsparse

import (
	"fmt"
	"math"
)

// Kernel is a symmetric kernel of finite support. The searched region is a
// cube of side Width, the acceptance test is a sphere of radius Half.
type Kernel struct {
	Width  Real
	Half   Real
	HalfSq Real
}

func NewKernel(width Real) (Kernel, error) {
	if !isFinite(width) || width <= 0 {
		return Kernel{}, fmt.Errorf("%w: width must be finite and > 0, got %v", ErrInvalidKernel, width)
	}
	h := width * 0.5
	return Kernel{Width: width, Half: h, HalfSq: h * h}, nil
}

// NeighborBound is the largest number of voxels a single sample's box can hold:
// an interval of length Width contains at most floor(Width)+1 integers.
func (k Kernel) NeighborBound(ndims int) int {
	n := floatToInt(math.Floor(k.Width))
	if n < math.MaxInt {
		n++
	}
	return ipow(n, ndims)
}

// LegacyNeighborBound is ceil(Width)^ndims. It undercounts the box whenever a
// sample sits off-center, e.g. width 2 at an integer location spans 3 voxels.
func (k Kernel) LegacyNeighborBound(ndims int) int {
	return ipow(floatToInt(math.Ceil(k.Width)), ndims)
}

// floatToInt converts a non-negative integral float, saturating at math.MaxInt.
func floatToInt(x Real) int {
	if x >= Real(math.MaxInt) {
		return math.MaxInt
	}
	return int(x)
}

// ipow saturates at math.MaxInt.
func ipow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r = satMul(r, base)
	}
	return r
}

// satMul multiplies non-negative ints, saturating at math.MaxInt.
func satMul(a, b int) int {
	if b != 0 && a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}
