package gridsparse

import (
	"errors"
	"math"
	"testing"
)

func TestNewKernel(t *testing.T) {
	k, err := NewKernel(3)
	if err != nil {
		t.Fatal(err)
	}
	if k.Half != 1.5 || k.HalfSq != 2.25 {
		t.Fatalf("unexpected kernel %+v", k)
	}
	for _, w := range []Real{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := NewKernel(w); !errors.Is(err, ErrInvalidKernel) {
			t.Fatalf("width %v: expected ErrInvalidKernel, got %v", w, err)
		}
	}
}

func TestNeighborBounds(t *testing.T) {
	k, _ := NewKernel(2)
	if got := k.NeighborBound(3); got != 27 {
		t.Fatalf("NeighborBound=%d want 27", got)
	}
	if got := k.LegacyNeighborBound(3); got != 8 {
		t.Fatalf("LegacyNeighborBound=%d want 8", got)
	}
	k, _ = NewKernel(2.5)
	if k.NeighborBound(2) != 9 || k.LegacyNeighborBound(2) != 9 {
		t.Fatalf("width 2.5: bound=%d legacy=%d", k.NeighborBound(2), k.LegacyNeighborBound(2))
	}
}

func TestNeighborBoundsHugeWidth(t *testing.T) {
	k, err := NewKernel(1e30)
	if err != nil {
		t.Fatal(err)
	}
	if k.NeighborBound(1) != math.MaxInt || k.LegacyNeighborBound(2) != math.MaxInt {
		t.Fatalf("bounds should saturate: %d %d", k.NeighborBound(1), k.LegacyNeighborBound(2))
	}
	if k.NeighborBound(0) != 1 {
		t.Fatalf("zero dims bound=%d", k.NeighborBound(0))
	}
	if floatToInt(3) != 3 || floatToInt(math.Ldexp(1, 63)) != math.MaxInt {
		t.Fatal("floatToInt")
	}
}

func TestIPowSaturates(t *testing.T) {
	if ipow(10, 40) != math.MaxInt {
		t.Fatal("ipow should saturate")
	}
	if ipow(3, 0) != 1 || ipow(0, 2) != 0 {
		t.Fatal("ipow edge cases")
	}
}
