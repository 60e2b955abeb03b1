// Package config loads layered ubench configuration from JSONC files.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/tailscale/hujson"
)

// Report formats.
const (
	FormatCSV   = "csv"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatAuto  = "auto"
)

var formats = []string{FormatCSV, FormatTable, FormatJSON, FormatAuto}

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	Delimiter  string   `json:"delimiter,omitempty"`
	IterScale  int      `json:"iter_scale,omitempty"`
	NumIters   int      `json:"num_iters,omitempty"`
	NumSamples int      `json:"num_samples,omitempty"`
	Verbose    bool     `json:"verbose,omitempty"`
	Sleep      string   `json:"sleep,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	SkipTags   []string `json:"skip_tags"`
	Format     string   `json:"format,omitempty"`
	Output     string   `json:"output,omitempty"`

	// Resolved (computed, not serialized)
	EffectiveCwd string `json:"-"`

	// Sources tracks which config files were loaded (for diagnostics)
	Sources Sources `json:"-"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// Default returns the default configuration. SkipTags is nil, meaning the
// harness default skip tags apply.
func Default() Config {
	return Config{
		Delimiter:  ",",
		IterScale:  1,
		NumIters:   0,
		NumSamples: 1,
		Format:     FormatAuto,
	}
}

// FileName is the default project config file name.
const FileName = ".ubench.json"

// globalPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/ubench/config.json if set, otherwise ~/.config/ubench/config.json.
// Returns empty string if home directory cannot be determined.
func globalPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "ubench", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "ubench", "config.json")
	}

	return ""
}

// LoadInput holds the inputs for Load.
type LoadInput struct {
	WorkDirOverride string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath      string            // -c/--config flag value
	Env             map[string]string // environment variables
}

// Load loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config (~/.config/ubench/config.json or $XDG_CONFIG_HOME/ubench/config.json)
// 3. Project config file at default location (.ubench.json, if exists)
// 4. Explicit config file via ConfigPath (replaces 3)
//
// Command flags are applied on top by the caller, followed by [Config.Validate].
func Load(input LoadInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	cfg := Default()

	globalCfg, globalFile, err := loadGlobal(input.Env)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Global = globalFile
	cfg = merge(cfg, globalCfg)

	projectCfg, projectFile, err := loadProject(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = projectFile
	cfg = merge(cfg, projectCfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	cfg.EffectiveCwd = workDir

	return cfg, nil
}

// loadGlobal loads the global user config file if it exists.
// Returns the config, the path if loaded, and any error.
func loadGlobal(env map[string]string) (Config, string, error) {
	path := globalPath(env)
	if path == "" {
		return Config{}, "", nil
	}

	cfg, loaded, err := loadFile(path, false)
	if err != nil || !loaded {
		return Config{}, "", err
	}

	return cfg, path, nil
}

// loadProject loads the project config file (.ubench.json) or an explicit config file.
// Returns the config, the path if loaded, and any error.
func loadProject(workDir, configPath string) (Config, string, error) {
	var (
		cfgFile   string
		mustExist bool
	)

	if configPath != "" {
		// Explicit config file - must exist
		cfgFile = configPath
		if !filepath.IsAbs(cfgFile) {
			cfgFile = filepath.Join(workDir, cfgFile)
		}

		mustExist = true

		_, statErr := os.Stat(cfgFile)
		if statErr != nil {
			return Config{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}
	} else {
		cfgFile = filepath.Join(workDir, FileName)
	}

	cfg, loaded, err := loadFile(cfgFile, mustExist)
	if err != nil || !loaded {
		return Config{}, "", err
	}

	return cfg, cfgFile, nil
}

// loadFile loads a config file. If mustExist is false, missing files return zero config.
// Returns the config, whether the file was loaded, and any error.
func loadFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if mustExist {
			return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
		}

		return Config{}, false, nil
	}

	cfg, parseErr := Parse(data)
	if parseErr != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, parseErr)
	}

	return cfg, true, nil
}

// Parse decodes a JSONC document. Fields that are absent stay zero, except
// that an explicitly empty "delimiter" is rejected.
func Parse(data []byte) (Config, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(standardized))
	decoder.DisallowUnknownFields()

	var cfg Config

	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	var raw map[string]any

	_ = json.Unmarshal(standardized, &raw)

	if val, exists := raw["delimiter"]; exists {
		if str, ok := val.(string); ok && str == "" {
			return Config{}, ErrDelimiterEmpty
		}
	}

	return cfg, nil
}

func merge(base, overlay Config) Config {
	if overlay.Delimiter != "" {
		base.Delimiter = overlay.Delimiter
	}

	if overlay.IterScale != 0 {
		base.IterScale = overlay.IterScale
	}

	if overlay.NumIters != 0 {
		base.NumIters = overlay.NumIters
	}

	if overlay.NumSamples != 0 {
		base.NumSamples = overlay.NumSamples
	}

	if overlay.Verbose {
		base.Verbose = true
	}

	if overlay.Sleep != "" {
		base.Sleep = overlay.Sleep
	}

	if overlay.Tags != nil {
		base.Tags = overlay.Tags
	}

	// An explicit empty list disables skipping, so only nil means "unset".
	if overlay.SkipTags != nil {
		base.SkipTags = overlay.SkipTags
	}

	if overlay.Format != "" {
		base.Format = overlay.Format
	}

	if overlay.Output != "" {
		base.Output = overlay.Output
	}

	return base
}

// Validate checks value ranges and formats.
func (c Config) Validate() error {
	if c.Delimiter == "" {
		return ErrDelimiterEmpty
	}

	if c.IterScale < 1 {
		return fmt.Errorf("%w: iter_scale must be >= 1, got %d", ErrInvalidValue, c.IterScale)
	}

	if c.NumIters < 0 {
		return fmt.Errorf("%w: num_iters must be >= 0, got %d", ErrInvalidValue, c.NumIters)
	}

	if c.NumSamples < 1 {
		return fmt.Errorf("%w: num_samples must be >= 1, got %d", ErrInvalidValue, c.NumSamples)
	}

	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("%w: format must be one of %s, got %q", ErrInvalidValue, strings.Join(formats, "|"), c.Format)
	}

	if _, err := c.SleepDuration(); err != nil {
		return err
	}

	return nil
}

// SleepDuration parses Sleep. An empty value means no sleep.
func (c Config) SleepDuration() (time.Duration, error) {
	if c.Sleep == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(c.Sleep)
	if err != nil {
		return 0, fmt.Errorf("%w: sleep: %w", ErrInvalidValue, err)
	}

	if d < 0 {
		return 0, fmt.Errorf("%w: sleep must be >= 0, got %s", ErrInvalidValue, c.Sleep)
	}

	return d, nil
}
