package main

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/glosario/catalog"
	"github.com/fwojciec/glosario/search"
	"github.com/pelletier/go-toml/v2"
)

// Config holds settings read from the TOML config file.
// Command-line flags and environment variables take precedence.
type Config struct {
	Source            string  `toml:"source"`
	DB                string  `toml:"db"`
	DebounceMS        int     `toml:"debounce_ms"`
	Retries           *int    `toml:"retries"`
	Concurrency       int     `toml:"concurrency"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// LoadConfig reads the config file at path. A missing file yields an
// empty Config; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	f, err := os.Open(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Debounce returns the configured quiet period, or search.DefaultDelay.
func (c Config) Debounce() time.Duration {
	if c.DebounceMS <= 0 {
		return search.DefaultDelay
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// RetryDelays returns the first n default retry delays, doubling past the
// defaults. Nil Retries keeps the loader default.
func (c Config) RetryDelays() []time.Duration {
	if c.Retries == nil {
		return nil
	}
	defaults := catalog.DefaultRetryDelays()
	delays := make([]time.Duration, 0, max(*c.Retries, 0))
	for n := range max(*c.Retries, 0) {
		if n < len(defaults) {
			delays = append(delays, defaults[n])
			continue
		}
		delays = append(delays, delays[n-1]*2)
	}
	return delays
}

// configDir returns ~/.glosario, or the working directory if the home
// directory is unknown.
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".glosario")
}

func defaultConfigPath() string {
	return filepath.Join(configDir(), "config.toml")
}

func defaultDBPath() string {
	dir := configDir()
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "glosario.db")
}

// defaultSource is used when neither flag, env nor config names a source.
const defaultSource = "data"
