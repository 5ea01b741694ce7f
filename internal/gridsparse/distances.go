package gridsparse

import "fmt"

// Options control buffer sizing and execution of a gridding pass. The zero
// value is a sequential, exactly-sized pass without pruning.
type Options struct {
	Policy   CapacityPolicy
	Capacity int  // CapacityFixed only; <= 0 means npts*NeighborBound
	Workers  int  // > 1 enables the two-pass parallel fill
	Prune    bool // skip branches whose partial distance already exceeds the support
}

// SparseDistances builds a Gridder for dims and width and runs Distances.
func SparseDistances(coords []Real, width Real, dims []int, opts Options) (*Entries, error) {
	gr, err := NewGridder(dims, width)
	if err != nil {
		return nil, err
	}
	return gr.Distances(coords, opts)
}

// Distances enumerates, for every sample, the voxels within kernel support and
// their squared distance in voxel units. coords is sample-major: sample p
// occupies coords[p*ndims : (p+1)*ndims].
//
// Entries come out in sample order, and within a sample in ascending voxel
// index (dimension ndims-1 outermost, dimension 0 innermost). The result does
// not depend on opts.Workers or opts.Prune.
func (gr *Gridder) Distances(coords []Real, opts Options) (*Entries, error) {
	npts, err := gr.checkCoords(coords)
	if err != nil {
		return nil, err
	}
	if opts.Policy > CapacityFixed {
		return nil, fmt.Errorf("%w: unknown capacity policy %d", ErrInvalidConfig, opts.Policy)
	}
	if opts.Workers > 1 && npts > 1 {
		return gr.distancesParallel(coords, npts, opts)
	}

	var e *Entries
	switch opts.Policy {
	case CapacityExact:
		c := &counter{}
		if err := gr.drive(coords, 0, npts, newWalker(gr, opts.Prune, c)); err != nil {
			return nil, err
		}
		e = newEntries(c.n, c.n)
	case CapacityGrow:
		e = newEntries(npts, -1)
	case CapacityFixed:
		// limit is only checked; the up-front allocation never exceeds what
		// the samples can produce, nor MaxPrealloc.
		limit := gr.fixedCapacity(npts, opts.Capacity)
		hint := min(limit, gr.fixedCapacity(npts, 0), MaxPrealloc)
		e = newEntries(hint, limit)
	}
	if err := gr.drive(coords, 0, npts, newWalker(gr, opts.Prune, e)); err != nil {
		return nil, err
	}
	return e, nil
}

// drive runs the enumerator for samples [start, end).
func (gr *Gridder) drive(coords []Real, start, end int, w *walker) error {
	nd := gr.Grid.NDims()
	for p := start; p < end; p++ {
		if !gr.Bounds(coords[p*nd:(p+1)*nd], w.loc, w.lower, w.upper) {
			continue
		}
		w.sample = p
		if err := w.walk(nd-1, 0, 0); err != nil {
			return err
		}
	}
	return nil
}

// checkCoords validates the coordinate buffer and returns the sample count.
func (gr *Gridder) checkCoords(coords []Real) (int, error) {
	nd := gr.Grid.NDims()
	if len(coords)%nd != 0 {
		return 0, fmt.Errorf("%w: %d values is not a multiple of ndims=%d", ErrInvalidCoords, len(coords), nd)
	}
	for i, c := range coords {
		if !isFinite(c) {
			return 0, fmt.Errorf("%w: sample %d dim %d is %v", ErrInvalidCoords, i/nd, i%nd, c)
		}
	}
	return len(coords) / nd, nil
}

func (gr *Gridder) fixedCapacity(npts, capacity int) int {
	if capacity > 0 {
		return capacity
	}
	return satMul(npts, gr.Kernel.NeighborBound(gr.Grid.NDims()))
}
