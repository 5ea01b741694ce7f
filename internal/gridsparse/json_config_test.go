package gridsparse

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{"dims":[4,4],"width":2,"coords":[[0,0],[0.1,0.2]]}`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Capacity != DefaultCapacity || cfg.Out != DefaultOut || cfg.Format != DefaultFormat {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Policy != CapacityExact || opts.Workers != 0 {
		t.Fatalf("unexpected options %+v", opts)
	}
	coords, err := cfg.LoadCoords()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(coords, []Real{0, 0, 0.1, 0.2}) {
		t.Fatalf("coords=%v", coords)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := map[string]string{
		"no dims":      `{"width":2}`,
		"zero width":   `{"dims":[4],"width":0}`,
		"bad capacity": `{"dims":[4],"width":1,"capacity":"elastic"}`,
		"bad format":   `{"dims":[4],"width":1,"format":"csv"}`,
		"both coords":  `{"dims":[4],"width":1,"coords":[[0]],"coordsFile":"c.raw"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), body)
			if _, err := loadConfig(path); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
	if _, err := loadConfig(writeConfig(t, t.TempDir(), `{`)); err == nil {
		t.Fatal("expected JSON syntax error")
	}
}

func TestConfigLoadCoordsFromFile(t *testing.T) {
	dir := t.TempDir()
	if err := SaveCoordsRaw(filepath.Join(dir, "coords.raw"), []Real{0, 0.25, -0.25, 0}, 2); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(writeConfig(t, dir, `{"dims":[8,8],"width":2,"coordsFile":"coords.raw","format":"MSGPACK"}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != FormatMsgpack {
		t.Fatalf("format=%q", cfg.Format)
	}
	coords, err := cfg.LoadCoords()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(coords, []Real{0, 0.25, -0.25, 0}) {
		t.Fatalf("coords=%v", coords)
	}

	cfg.Dims = []int{8, 8, 8}
	if _, err := cfg.LoadCoords(); !errors.Is(err, ErrInvalidCoords) {
		t.Fatalf("expected ndims mismatch error, got %v", err)
	}
}

func TestConfigInlineCoordsRagged(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, t.TempDir(), `{"dims":[4,4],"width":1,"coords":[[0,0],[0.1]]}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.LoadCoords(); !errors.Is(err, ErrInvalidCoords) {
		t.Fatalf("expected ErrInvalidCoords, got %v", err)
	}
}

func TestConfigOptionsPruneOverride(t *testing.T) {
	cfg := &Config{Capacity: "fixed", MaxEntries: 10, Workers: 3}
	Prune = true
	defer func() { Prune = false }()
	opts, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	if opts != (Options{Policy: CapacityFixed, Capacity: 10, Workers: 3, Prune: true}) {
		t.Fatalf("unexpected options %+v", opts)
	}
}
