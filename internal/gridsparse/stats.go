package gridsparse

import (
	"gonum.org/v1/gonum/floats"
)

// Summary describes one gridding pass. It is computed after the fact and is
// not needed by the enumeration itself.
type Summary struct {
	Samples        int
	Entries        int
	EmptySamples   int // samples that produced no entries
	ClampedSamples int // samples whose kernel box crossed a grid edge
	MaxPerSample   int
	MinDistSq      Real
	MaxDistSq      Real
	MeanDistSq     Real
	VoxelsTouched  int // distinct voxels referenced by at least one entry
	NeighborBound  int // per-sample upper bound, (floor(width)+1)^ndims
	LegacyBound    int // per-sample estimate, ceil(width)^ndims
	LegacyOverflow bool
}

// Summarize computes diagnostics for entries produced by gr from coords.
// coords must be the buffer that was passed to Distances.
func Summarize(gr *Gridder, coords []Real, e *Entries) Summary {
	nd := gr.Grid.NDims()
	npts := len(coords) / nd
	s := Summary{
		Samples:       npts,
		Entries:       e.Len(),
		NeighborBound: gr.Kernel.NeighborBound(nd),
		LegacyBound:   gr.Kernel.LegacyNeighborBound(nd),
	}

	perSample := make([]int, npts)
	for _, p := range e.Samples {
		perSample[p]++
	}
	var loc []Real
	for p, n := range perSample {
		if n == 0 {
			s.EmptySamples++
		}
		s.MaxPerSample = imax(s.MaxPerSample, n)
		loc = gr.Grid.VoxelLoc(coords[p*nd:(p+1)*nd], loc)
		if gr.clipped(loc) {
			s.ClampedSamples++
		}
	}

	if s.Entries > 0 {
		s.MinDistSq = floats.Min(e.DistSq)
		s.MaxDistSq = floats.Max(e.DistSq)
		s.MeanDistSq = floats.Sum(e.DistSq) / Real(s.Entries)
	}

	seen := make(map[int]struct{}, s.Entries)
	for _, v := range e.Voxels {
		seen[v] = struct{}{}
	}
	s.VoxelsTouched = len(seen)

	s.LegacyOverflow = s.Entries > satMul(npts, s.LegacyBound)
	return s
}
