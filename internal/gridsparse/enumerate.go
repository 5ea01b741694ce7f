package gridsparse

// sink receives accepted triples. Implementations must either store the whole
// triple or return an error without storing anything.
type sink interface {
	add(sample, voxel int, distSq Real) error
}

// walker holds the per-sample state of the neighborhood recursion. One walker
// is owned by one goroutine and reused across samples.
type walker struct {
	stride []int
	halfSq Real
	prune  bool

	sample int
	loc    []Real
	lower  []int
	upper  []int
	out    sink
}

func newWalker(gr *Gridder, prune bool, out sink) *walker {
	n := gr.Grid.NDims()
	return &walker{
		stride: gr.Grid.Stride,
		halfSq: gr.Kernel.HalfSq,
		prune:  prune,
		loc:    make([]Real, n),
		lower:  make([]int, n),
		upper:  make([]int, n),
		out:    out,
	}
}

// walk visits every voxel of the box in dimensions [0, dim], with the higher
// dimensions already fixed into base (linear index) and acc (squared distance).
// Dimension dim is iterated ascending; dimension 0 is innermost.
func (w *walker) walk(dim, base int, acc Real) error {
	lo, hi := w.lower[dim], w.upper[dim]
	x := w.loc[dim]
	if dim == 0 {
		for i := lo; i <= hi; i++ {
			delta := Real(i) - x
			total := delta*delta + acc
			if total <= w.halfSq {
				if err := w.out.add(w.sample, base+i, total); err != nil {
					return err
				}
			}
		}
		return nil
	}
	stride := w.stride[dim]
	for i := lo; i <= hi; i++ {
		delta := Real(i) - x
		next := delta*delta + acc
		// Remaining dimensions only add non-negative terms.
		if w.prune && next > w.halfSq {
			continue
		}
		if err := w.walk(dim-1, base+i*stride, next); err != nil {
			return err
		}
	}
	return nil
}
