package gridsparse

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	gr, err := NewGridder(cfg.Dims, cfg.Width)
	if err != nil {
		return err
	}
	coords, err := cfg.LoadCoords()
	if err != nil {
		return err
	}
	runID := uuid.New().String()
	npts := len(coords) / gr.Grid.NDims()
	Logger().Info("gridding", "run", runID, "samples", npts, "dims", cfg.Dims, "width", cfg.Width, "capacity", opts.Policy.String(), "workers", opts.Workers)

	if Debug {
		traceSamples(gr, coords, DebugSamples)
	}

	if CountOnly {
		n, err := gr.CountEntries(coords, opts)
		if err != nil {
			return err
		}
		Logger().Info("count only", "run", runID, "entries", n,
			"bound", satMul(npts, gr.Kernel.NeighborBound(gr.Grid.NDims())),
			"legacyBound", satMul(npts, gr.Kernel.LegacyNeighborBound(gr.Grid.NDims())))
		return nil
	}

	start := time.Now()
	e, err := gr.Distances(coords, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	s := Summarize(gr, coords, e)
	Logger().Info("entries", "run", runID, "entries", s.Entries, "empty", s.EmptySamples, "clamped", s.ClampedSamples,
		"maxPerSample", s.MaxPerSample, "voxels", s.VoxelsTouched, "meanDistSq", s.MeanDistSq, "elapsed", elapsed)
	if s.LegacyOverflow {
		Logger().Warn("legacy capacity bound would have overflowed", "run", runID,
			"entries", s.Entries, "legacyBound", satMul(npts, s.LegacyBound))
	}

	h := Header{RunID: runID, Dims: cfg.Dims, Width: cfg.Width, OneBased: cfg.OneBased}
	out := cfg.Out
	if !filepath.IsAbs(out) {
		out = filepath.Join(cfg.dir, out)
	}
	switch cfg.Format {
	case FormatMsgpack:
		err = e.SaveMsgpack(out, h)
	default:
		err = e.SaveRaw(out, h)
	}
	if err != nil {
		return err
	}
	Logger().Info("saved", "run", runID, "path", out, "format", cfg.Format)
	return nil
}

// traceSamples logs location and clamped box of the first n samples.
func traceSamples(gr *Gridder, coords []Real, n int) {
	nd := gr.Grid.NDims()
	loc := make([]Real, nd)
	lower := make([]int, nd)
	upper := make([]int, nd)
	for p := 0; p < n && (p+1)*nd <= len(coords); p++ {
		ok := gr.Bounds(coords[p*nd:(p+1)*nd], loc, lower, upper)
		DebugLog("Sample %d: loc=%v lower=%v upper=%v nonEmpty=%v", p, loc, lower, upper, ok)
	}
}
