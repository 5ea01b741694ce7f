package gridsparse

import (
	"fmt"
	"strings"
)

// CapacityPolicy decides how the output buffers are sized and what happens
// when they would overflow.
type CapacityPolicy uint8

const (
	CapacityExact CapacityPolicy = iota // count pass first, then fill exactly-sized buffers
	CapacityGrow                        // append with dynamic growth
	CapacityFixed                       // caller-provided limit, fail fast on overflow
)

func (p CapacityPolicy) String() string {
	switch p {
	case CapacityExact:
		return "exact"
	case CapacityGrow:
		return "grow"
	case CapacityFixed:
		return "fixed"
	}
	return fmt.Sprintf("CapacityPolicy(%d)", uint8(p))
}

func ParseCapacityPolicy(s string) (CapacityPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "exact":
		return CapacityExact, nil
	case "grow":
		return CapacityGrow, nil
	case "fixed":
		return CapacityFixed, nil
	}
	return 0, fmt.Errorf("%w: unknown capacity policy %q", ErrInvalidConfig, s)
}

// Entries is the sparse output: three parallel, append-only sequences of
// zero-based sample indices, voxel linear indices and squared distances.
type Entries struct {
	Samples []int
	Voxels  []int
	DistSq  []Real

	limit int // < 0 means unlimited
}

func newEntries(capHint, limit int) *Entries {
	return &Entries{
		Samples: make([]int, 0, capHint),
		Voxels:  make([]int, 0, capHint),
		DistSq:  make([]Real, 0, capHint),
		limit:   limit,
	}
}

// newEntriesSized allocates n zeroed slots for windowed parallel writes.
func newEntriesSized(n int) *Entries {
	return &Entries{
		Samples: make([]int, n),
		Voxels:  make([]int, n),
		DistSq:  make([]Real, n),
		limit:   n,
	}
}

func (e *Entries) Len() int { return len(e.Samples) }

func (e *Entries) At(i int) (sample, voxel int, distSq Real) {
	return e.Samples[i], e.Voxels[i], e.DistSq[i]
}

func (e *Entries) add(sample, voxel int, distSq Real) error {
	if e.limit >= 0 && len(e.Samples) >= e.limit {
		return fmt.Errorf("%w: limit %d reached at sample %d", ErrCapacityExceeded, e.limit, sample)
	}
	e.Samples = append(e.Samples, sample)
	e.Voxels = append(e.Voxels, voxel)
	e.DistSq = append(e.DistSq, distSq)
	return nil
}

// OneBased returns copies of the sample and voxel indices shifted to 1-based,
// for consumers such as MATLAB-style sparse constructors.
func (e *Entries) OneBased() (samples, voxels []int) {
	samples = make([]int, len(e.Samples))
	voxels = make([]int, len(e.Voxels))
	for i := range e.Samples {
		samples[i] = e.Samples[i] + 1
		voxels[i] = e.Voxels[i] + 1
	}
	return samples, voxels
}

// counter only counts accepted voxels.
type counter struct{ n int }

func (c *counter) add(int, int, Real) error {
	c.n++
	return nil
}

// window writes into a pre-sized, disjoint region [pos, end) of shared Entries.
type window struct {
	e        *Entries
	pos, end int
}

func (w *window) add(sample, voxel int, distSq Real) error {
	if w.pos >= w.end {
		return fmt.Errorf("%w: window overrun at sample %d", ErrCapacityExceeded, sample)
	}
	w.e.Samples[w.pos] = sample
	w.e.Voxels[w.pos] = voxel
	w.e.DistSq[w.pos] = distSq
	w.pos++
	return nil
}
