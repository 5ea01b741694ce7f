package gridsparse

import (
	"errors"
	"fmt"
	"sync"
)

type sampleRange struct{ start, end int }

// splitRange distributes n samples across workers evenly, with the remainder
// spread over the first workers. Empty ranges are dropped.
func splitRange(n, workers int) []sampleRange {
	if n <= 0 {
		return []sampleRange{}
	}
	workers = imax(workers, 1)
	if workers > n {
		workers = n
	}
	out := make([]sampleRange, 0, workers)
	base, rem := n/workers, n%workers
	start := 0
	for w := 0; w < workers; w++ {
		size := base
		if w < rem {
			size++
		}
		if size == 0 {
			continue
		}
		out = append(out, sampleRange{start, start + size})
		start += size
	}
	return out
}

// countPerSample runs the counting pass in parallel and returns the number of
// entries each sample will produce.
func (gr *Gridder) countPerSample(coords []Real, npts int, prune bool, workers int) ([]int, error) {
	counts := make([]int, npts)
	ranges := splitRange(npts, workers)
	errs := make([]error, len(ranges))
	var wg sync.WaitGroup
	wg.Add(len(ranges))
	for wid, r := range ranges {
		go func(wid int, r sampleRange) {
			defer wg.Done()
			c := &counter{}
			w := newWalker(gr, prune, c)
			for p := r.start; p < r.end; p++ {
				before := c.n
				if err := gr.drive(coords, p, p+1, w); err != nil {
					errs[wid] = err
					return
				}
				counts[p] = c.n - before
			}
		}(wid, r)
	}
	wg.Wait()
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return counts, nil
}

// distancesParallel is the count-then-fill variant: per-sample counts give
// disjoint output windows, so workers fill without any shared counter.
func (gr *Gridder) distancesParallel(coords []Real, npts int, opts Options) (*Entries, error) {
	counts, err := gr.countPerSample(coords, npts, opts.Prune, opts.Workers)
	if err != nil {
		return nil, err
	}
	offsets := make([]int, npts+1)
	for p, c := range counts {
		offsets[p+1] = offsets[p] + c
	}
	total := offsets[npts]
	if opts.Policy == CapacityFixed {
		if limit := gr.fixedCapacity(npts, opts.Capacity); total > limit {
			return nil, fmt.Errorf("%w: need %d entries, limit %d", ErrCapacityExceeded, total, limit)
		}
	}

	e := newEntriesSized(total)
	ranges := splitRange(npts, opts.Workers)
	errs := make([]error, len(ranges))
	var wg sync.WaitGroup
	wg.Add(len(ranges))
	for wid, r := range ranges {
		go func(wid int, r sampleRange) {
			defer wg.Done()
			win := &window{e: e, pos: offsets[r.start], end: offsets[r.end]}
			errs[wid] = gr.drive(coords, r.start, r.end, newWalker(gr, opts.Prune, win))
		}(wid, r)
	}
	wg.Wait()
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return e, nil
}
