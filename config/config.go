// Package config holds the tspdp command-line configuration.
//
// Values are layered, later layers winning:
//
//	Default() ← YAML file (Load) ← .env / TSPDP_* environment (ApplyEnv) ← flags
//
// The flag layer lives in cmd/tspdp; this package covers the rest.
package config

import (
	"bytes"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tspdp/tsp"
)

// EnvPrefix prefixes every environment override, e.g. TSPDP_LOG_LEVEL.
const EnvPrefix = "TSPDP_"

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved configuration of one tspdp invocation.
type Config struct {
	// LogLevel is a logrus level name (trace … panic).
	LogLevel string `yaml:"log_level"`

	// LogFormat is "text" or "json".
	LogFormat string `yaml:"log_format"`

	// Start is the default start node for text matrices.
	Start int `yaml:"start"`

	// MaxNodes bounds n before a solver is built, in [1..tsp.MaxNodes].
	MaxNodes int `yaml:"max_nodes"`

	// Output is the result format: "text", "json" or "yaml".
	Output string `yaml:"output"`

	// CacheDir holds the result store; empty means the user cache dir.
	CacheDir string `yaml:"cache_dir"`

	// NoCache disables the result store.
	NoCache bool `yaml:"no_cache"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		MaxNodes:  20,
		Output:    "text",
	}
}

// Load returns Default() overlaid with the YAML file at path.
// An empty path yields the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}
	var fromFile Config
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(&fromFile); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrapf(err, "parsing config %s", path)
	}
	if err = mergo.Merge(&cfg, fromFile, mergo.WithOverride); err != nil {
		return Config{}, errors.Wrap(err, "merging config")
	}

	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment without overriding variables that are already set.
// Missing files are ignored.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Wrapf(err, "loading %s", f)
		}
	}
	return nil
}

// ApplyEnv overrides fields from TSPDP_* variables found by lookup
// (os.LookupEnv in production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var (
		v   string
		ok  bool
		err error
	)
	if v, ok = lookup(EnvPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok = lookup(EnvPrefix + "LOG_FORMAT"); ok {
		c.LogFormat = v
	}
	if v, ok = lookup(EnvPrefix + "OUTPUT"); ok {
		c.Output = v
	}
	if v, ok = lookup(EnvPrefix + "CACHE_DIR"); ok {
		c.CacheDir = v
	}
	if v, ok = lookup(EnvPrefix + "START"); ok {
		if c.Start, err = strconv.Atoi(v); err != nil {
			return errors.Wrapf(ErrInvalid, "%sSTART=%q", EnvPrefix, v)
		}
	}
	if v, ok = lookup(EnvPrefix + "MAX_NODES"); ok {
		if c.MaxNodes, err = strconv.Atoi(v); err != nil {
			return errors.Wrapf(ErrInvalid, "%sMAX_NODES=%q", EnvPrefix, v)
		}
	}
	if v, ok = lookup(EnvPrefix + "NO_CACHE"); ok {
		if c.NoCache, err = strconv.ParseBool(v); err != nil {
			return errors.Wrapf(ErrInvalid, "%sNO_CACHE=%q", EnvPrefix, v)
		}
	}

	return nil
}

var (
	logLevels  = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}
	logFormats = []string{"text", "json"}
	outputs    = []string{"text", "json", "yaml"}
)

// Validate checks enumerations and bounds.
func (c Config) Validate() error {
	if !slices.Contains(logLevels, strings.ToLower(c.LogLevel)) {
		return errors.Wrapf(ErrInvalid, "log_level %q", c.LogLevel)
	}
	if !slices.Contains(logFormats, c.LogFormat) {
		return errors.Wrapf(ErrInvalid, "log_format %q", c.LogFormat)
	}
	if !slices.Contains(outputs, c.Output) {
		return errors.Wrapf(ErrInvalid, "output %q", c.Output)
	}
	if c.MaxNodes < 1 || c.MaxNodes > tsp.MaxNodes {
		return errors.Wrapf(ErrInvalid, "max_nodes %d not in [1..%d]", c.MaxNodes, tsp.MaxNodes)
	}
	if c.Start < 0 {
		return errors.Wrapf(ErrInvalid, "start %d", c.Start)
	}

	return nil
}
