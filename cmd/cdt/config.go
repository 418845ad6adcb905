package main

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config holds every setting the command line accepts. A TOML file can supply
// any of them; flags given on the command line win.
type Config struct {
	SVG        bool   `toml:"svg"`
	Parallel   int    `toml:"parallel"`
	MaxFlips   int    `toml:"max_flips"`
	NoLegalize bool   `toml:"no_legalize"`
	World      bool   `toml:"world"`
	PNG        string `toml:"png"`
	Size       int    `toml:"size"`
	Labels     bool   `toml:"labels"`
	Imgcat     bool   `toml:"imgcat"`
	Verbose    bool   `toml:"verbose"`
	NoColor    bool   `toml:"no_color"`
}

func DefaultConfig() Config {
	return Config{Parallel: 1, Size: 800}
}

// Read a config file over the defaults. Unknown keys are an error so typos
// don't go unnoticed.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "opening config")
	}
	defer f.Close()
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

// Overlay copies the fields named in set from flags onto cfg.
func (cfg *Config) Overlay(flags Config, set map[string]bool) {
	if set["svg"] {
		cfg.SVG = flags.SVG
	}
	if set["parallel"] {
		cfg.Parallel = flags.Parallel
	}
	if set["max-flips"] {
		cfg.MaxFlips = flags.MaxFlips
	}
	if set["no-legalize"] {
		cfg.NoLegalize = flags.NoLegalize
	}
	if set["world"] {
		cfg.World = flags.World
	}
	if set["png"] {
		cfg.PNG = flags.PNG
	}
	if set["size"] {
		cfg.Size = flags.Size
	}
	if set["labels"] {
		cfg.Labels = flags.Labels
	}
	if set["imgcat"] {
		cfg.Imgcat = flags.Imgcat
	}
	if set["verbose"] {
		cfg.Verbose = flags.Verbose
	}
	if set["no-color"] {
		cfg.NoColor = flags.NoColor
	}
}
