package gridsparse

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// SaveCoordsRaw writes sample-major coordinates as:
// int32 npts, int32 ndims, then npts*ndims float64 (little-endian).
func SaveCoordsRaw(path string, coords []Real, ndims int) error {
	if ndims < 1 || len(coords)%ndims != 0 {
		return fmt.Errorf("%w: %d values with ndims=%d", ErrInvalidCoords, len(coords), ndims)
	}
	if ndims > math.MaxInt32 || len(coords)/ndims > math.MaxInt32 {
		return fmt.Errorf("%w: npts=%d ndims=%d do not fit the int32 header", ErrInvalidCoords, len(coords)/ndims, ndims)
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
	if err := binary.Write(w, binary.LittleEndian, [2]int32{int32(len(coords) / ndims), int32(ndims)}); err != nil {
		return err
	}
	if len(coords) > 0 {
		if err := binary.Write(w, binary.LittleEndian, coords); err != nil {
			return err
		}
	}
	return w.Flush()
}

// LoadCoordsRaw reads a file written by SaveCoordsRaw.
func LoadCoordsRaw(path string) (coords []Real, ndims int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var hdr [2]int32
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, 0, fmt.Errorf("read coords header: %w", err)
	}
	npts, nd := int(hdr[0]), int(hdr[1])
	if npts < 0 || nd < 1 {
		return nil, 0, fmt.Errorf("%w: header npts=%d ndims=%d", ErrInvalidCoords, npts, nd)
	}
	if st, err := f.Stat(); err == nil {
		if want := int64(8) + int64(npts)*int64(nd)*8; st.Size() != want {
			return nil, 0, fmt.Errorf("%w: file size %d, expected %d", ErrInvalidCoords, st.Size(), want)
		}
	}
	coords = make([]Real, npts*nd)
	if len(coords) > 0 {
		if err := binary.Read(r, binary.LittleEndian, coords); err != nil {
			return nil, 0, fmt.Errorf("read coords body: %w", err)
		}
	}
	DebugLog("Loaded %d coordinates (ndims=%d) from %s", npts, nd, path)
	return coords, nd, nil
}
