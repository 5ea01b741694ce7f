package gridsparse

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// Header describes the pass that produced a set of entries.
type Header struct {
	RunID    string
	Dims     []int
	Width    Real
	OneBased bool // indices are written 1-based
}

// indices returns the sample and voxel columns in the convention of h.
func (e *Entries) indices(h Header) (samples, voxels []int) {
	if h.OneBased {
		return e.OneBased()
	}
	return e.Samples, e.Voxels
}

// SaveRaw writes entries in little-endian binary:
//
//	int32 ndims, int32 dims[ndims], float64 width, uint8 oneBased, int64 n,
//	int64 samples[n], int64 voxels[n], float64 distSq[n]
func (e *Entries) SaveRaw(path string, h Header) error {
	if len(h.Dims) == 0 || len(h.Dims) > math.MaxInt32 {
		return fmt.Errorf("%w: header has %d dims", ErrInvalidShape, len(h.Dims))
	}
	for d, n := range h.Dims {
		if n < 0 || n > math.MaxInt32 {
			return fmt.Errorf("%w: dims[%d]=%d does not fit the int32 header", ErrInvalidShape, d, n)
		}
	}
	if len(e.Samples) != len(e.Voxels) || len(e.Samples) != len(e.DistSq) {
		return fmt.Errorf("entries length mismatch: samples=%d voxels=%d dist=%d", len(e.Samples), len(e.Voxels), len(e.DistSq))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	dims := make([]int32, len(h.Dims))
	for d, n := range h.Dims {
		dims[d] = int32(n)
	}
	var oneBased uint8
	if h.OneBased {
		oneBased = 1
	}
	samples, voxels := e.indices(h)
	n := len(samples)
	head := []interface{}{int32(len(dims)), dims, h.Width, oneBased, int64(n)}
	for _, v := range head {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	if n > 0 {
		if err := binary.Write(w, binary.LittleEndian, toInt64(samples)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, toInt64(voxels)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, e.DistSq); err != nil {
			return err
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}
	_ = f.Sync()
	return nil
}

func toInt64(xs []int) []int64 {
	out := make([]int64, len(xs))
	for i, x := range xs {
		out[i] = int64(x)
	}
	return out
}
