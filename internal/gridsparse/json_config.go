package gridsparse

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	Dims       []int    `json:"dims"`
	Width      Real     `json:"width"`
	Coords     [][]Real `json:"coords,omitempty"`     // inline samples, one row per sample
	CoordsFile string   `json:"coordsFile,omitempty"` // raw file, see SaveCoordsRaw; relative to the config
	Capacity   string   `json:"capacity,omitempty"`   // exact | grow | fixed
	MaxEntries int      `json:"maxEntries,omitempty"` // fixed capacity; 0 means npts*NeighborBound
	Workers    int      `json:"workers,omitempty"`
	Prune      bool     `json:"prune,omitempty"`
	OneBased   bool     `json:"oneBased,omitempty"`
	Out        string   `json:"out,omitempty"`
	Format     string   `json:"format,omitempty"` // raw | msgpack

	dir string
}

// Options translates the config into gridding options.
func (c *Config) Options() (Options, error) {
	pol, err := ParseCapacityPolicy(c.Capacity)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Policy:   pol,
		Capacity: c.MaxEntries,
		Workers:  c.Workers,
		Prune:    c.Prune || Prune,
	}, nil
}

// LoadCoords returns the sample-major coordinate buffer, from the inline rows
// or from CoordsFile.
func (c *Config) LoadCoords() ([]Real, error) {
	nd := len(c.Dims)
	if c.CoordsFile != "" {
		path := c.CoordsFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.dir, path)
		}
		coords, fileDims, err := LoadCoordsRaw(path)
		if err != nil {
			return nil, err
		}
		if fileDims != nd {
			return nil, fmt.Errorf("%w: %s has ndims=%d, config dims has %d", ErrInvalidCoords, path, fileDims, nd)
		}
		return coords, nil
	}
	coords := make([]Real, 0, len(c.Coords)*nd)
	for p, row := range c.Coords {
		if len(row) != nd {
			return nil, fmt.Errorf("%w: sample %d has %d components, want %d", ErrInvalidCoords, p, len(row), nd)
		}
		coords = append(coords, row...)
	}
	return coords, nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.dir = filepath.Dir(path)
	// Defaults / validation
	if len(cfg.Dims) == 0 {
		return nil, fmt.Errorf("%w: config has no dims", ErrInvalidConfig)
	}
	if cfg.Width <= 0 {
		return nil, fmt.Errorf("%w: width must be > 0, got %v", ErrInvalidConfig, cfg.Width)
	}
	if cfg.CoordsFile != "" && len(cfg.Coords) > 0 {
		return nil, fmt.Errorf("%w: both coords and coordsFile are set", ErrInvalidConfig)
	}
	if cfg.Capacity == "" {
		cfg.Capacity = DefaultCapacity
	}
	if _, err := ParseCapacityPolicy(cfg.Capacity); err != nil {
		return nil, err
	}
	if cfg.Out == "" {
		cfg.Out = DefaultOut
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	cfg.Format = strings.ToLower(cfg.Format)
	if cfg.Format != FormatRaw && cfg.Format != FormatMsgpack {
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, cfg.Format)
	}
	if cfg.Workers < 0 {
		cfg.Workers = 0
	}
	DebugLog("Loaded config from %s: dims=%v, width=%g, capacity=%s, workers=%d, format=%s", path, cfg.Dims, cfg.Width, cfg.Capacity, cfg.Workers, cfg.Format)
	return &cfg, nil
}
