package gridsparse

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestEntriesMsgpack(t *testing.T) {
	e, err := SparseDistances([]Real{0, 0, 0.1, -0.2}, 2.5, []int{8, 6}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out", "entries.msgpack")
	h := Header{RunID: "run-1", Dims: []int{8, 6}, Width: 2.5, OneBased: true}
	if err := e.SaveMsgpack(path, h); err != nil {
		t.Fatalf("SaveMsgpack error: %v", err)
	}
	got, gh, err := LoadMsgpack(path)
	if err != nil {
		t.Fatalf("LoadMsgpack error: %v", err)
	}
	if !reflect.DeepEqual(gh, h) {
		t.Fatalf("header mismatch: %+v vs %+v", gh, h)
	}
	samples, voxels := e.OneBased()
	if !reflect.DeepEqual(got.Samples, samples) || !reflect.DeepEqual(got.Voxels, voxels) || !reflect.DeepEqual(got.DistSq, e.DistSq) {
		t.Fatal("stored entries differ from the 1-based export")
	}
}

func TestLoadMsgpackErrors(t *testing.T) {
	if _, _, err := LoadMsgpack(filepath.Join(t.TempDir(), "missing.msgpack")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
