package gridsparse

import (
	"errors"
	"sync"
)

// CountEntries returns how many entries Distances would produce for coords,
// without storing any of them. Use it to size buffers ahead of a pass.
func (gr *Gridder) CountEntries(coords []Real, opts Options) (int, error) {
	npts, err := gr.checkCoords(coords)
	if err != nil {
		return 0, err
	}
	if npts == 0 {
		return 0, nil
	}
	ranges := splitRange(npts, opts.Workers)

	type partial struct {
		n   int
		err error
	}
	var wg sync.WaitGroup
	totalsCh := make(chan partial, len(ranges))
	for _, r := range ranges {
		wg.Add(1)
		go func(r sampleRange) {
			defer wg.Done()
			c := &counter{}
			err := gr.drive(coords, r.start, r.end, newWalker(gr, opts.Prune, c))
			totalsCh <- partial{c.n, err}
		}(r)
	}

	wg.Wait()
	close(totalsCh)

	total := 0
	var errs []error
	for p := range totalsCh {
		total += p.n
		errs = append(errs, p.err)
	}
	if err := errors.Join(errs...); err != nil {
		return 0, err
	}
	return total, nil
}
