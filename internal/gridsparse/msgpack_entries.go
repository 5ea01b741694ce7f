package gridsparse

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// entriesSnapshot is the msgpack form of a gridding pass.
type entriesSnapshot struct {
	RunID    string  `msgpack:"runId"`
	Dims     []int   `msgpack:"dims"`
	Width    Real    `msgpack:"width"`
	OneBased bool    `msgpack:"oneBased"`
	Samples  []int64 `msgpack:"samples"`
	Voxels   []int64 `msgpack:"voxels"`
	DistSq   []Real  `msgpack:"distSq"`
}

// SaveMsgpack writes entries and their header to path in msgpack format.
func (e *Entries) SaveMsgpack(path string, h Header) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	samples, voxels := e.indices(h)
	snap := entriesSnapshot{
		RunID:    h.RunID,
		Dims:     h.Dims,
		Width:    h.Width,
		OneBased: h.OneBased,
		Samples:  toInt64(samples),
		Voxels:   toInt64(voxels),
		DistSq:   e.DistSq,
	}
	return msgpack.NewEncoder(file).Encode(&snap)
}

// LoadMsgpack reads a file written by SaveMsgpack. Indices are returned as
// stored; check Header.OneBased.
func LoadMsgpack(path string) (*Entries, Header, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Header{}, err
	}
	defer file.Close()

	var snap entriesSnapshot
	if err := msgpack.NewDecoder(file).Decode(&snap); err != nil {
		return nil, Header{}, fmt.Errorf("decode %s: %w", path, err)
	}
	n := len(snap.Samples)
	if len(snap.Voxels) != n || len(snap.DistSq) != n {
		return nil, Header{}, fmt.Errorf("%s: column lengths differ (%d, %d, %d)", path, n, len(snap.Voxels), len(snap.DistSq))
	}
	e := newEntries(n, -1)
	for i := 0; i < n; i++ {
		e.Samples = append(e.Samples, int(snap.Samples[i]))
		e.Voxels = append(e.Voxels, int(snap.Voxels[i]))
	}
	e.DistSq = append(e.DistSq, snap.DistSq...)
	h := Header{RunID: snap.RunID, Dims: snap.Dims, Width: snap.Width, OneBased: snap.OneBased}
	return e, h, nil
}
