package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// Color modes for rendered output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	DataFile string `json:"data_file"`
	Color    string `json:"color,omitempty"`

	// Resolved paths (computed, not serialized)
	EffectiveCwd string `json:"-"` // Absolute working directory (from -C flag or os.Getwd)
	DataFileAbs  string `json:"-"` // Absolute path to the data file

	// Sources tracks which config files were loaded (for diagnostics)
	Sources ConfigSources `json:"-"`
}

// ConfigSources tracks which config files were loaded.
type ConfigSources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// DefaultDataFile is the data file name used when nothing else is configured.
const DefaultDataFile = "task_data.json"

// ConfigFileName is the default project config file name.
const ConfigFileName = ".tusk.json"

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DataFile: DefaultDataFile,
		Color:    ColorAuto,
	}
}

// globalConfigPath returns $XDG_CONFIG_HOME/tusk/config.json if set,
// otherwise ~/.config/tusk/config.json, or "" if neither can be determined.
func globalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "tusk", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "tusk", "config.json")
	}

	return ""
}

// LoadConfigInput holds the inputs for LoadConfig.
type LoadConfigInput struct {
	WorkDirOverride  string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath       string            // -c/--config flag value
	DataFileOverride string            // --data-file flag value; empty means no override
	ColorOverride    string            // --color flag value; empty means no override
	Env              map[string]string // environment variables
}

// LoadConfig loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config (~/.config/tusk/config.json or $XDG_CONFIG_HOME/tusk/config.json)
// 3. Project config file (.tusk.json in the working directory), or the
// explicit config file given by ConfigPath, which must exist
// 4. CLI overrides.
//
// All paths in the returned Config are resolved to absolute paths.
func LoadConfig(input LoadConfigInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return Config{}, fmt.Errorf("resolving working directory: %w", err)
	}

	cfg := DefaultConfig()

	globalPath := globalConfigPath(input.Env)
	if globalPath != "" {
		globalCfg, loaded, loadErr := loadConfigFile(globalPath, false)
		if loadErr != nil {
			return Config{}, loadErr
		}

		if loaded {
			cfg.Sources.Global = globalPath
			cfg = mergeConfig(cfg, globalCfg)
		}
	}

	projectPath := filepath.Join(workDir, ConfigFileName)
	mustExist := false

	if input.ConfigPath != "" {
		projectPath = input.ConfigPath
		if !filepath.IsAbs(projectPath) {
			projectPath = filepath.Join(workDir, projectPath)
		}

		mustExist = true
	}

	projectCfg, loaded, err := loadConfigFile(projectPath, mustExist)
	if err != nil {
		return Config{}, err
	}

	if loaded {
		cfg.Sources.Project = projectPath
		cfg = mergeConfig(cfg, projectCfg)
	}

	if input.DataFileOverride != "" {
		cfg.DataFile = input.DataFileOverride
	}

	if input.ColorOverride != "" {
		cfg.Color = input.ColorOverride
	}

	validateErr := validateConfig(cfg)
	if validateErr != nil {
		return Config{}, validateErr
	}

	cfg.EffectiveCwd = workDir

	if filepath.IsAbs(cfg.DataFile) {
		cfg.DataFileAbs = cfg.DataFile
	} else {
		cfg.DataFileAbs = filepath.Join(workDir, cfg.DataFile)
	}

	return cfg, nil
}

// loadConfigFile loads a config file. If mustExist is false, a missing file
// returns a zero config and loaded=false.
func loadConfigFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if mustExist {
				return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
			}

			return Config{}, false, nil
		}

		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigFileRead, path, err)
	}

	cfg, parseErr := parseConfig(data)
	if parseErr != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, parseErr)
	}

	return cfg, true, nil
}

func parseConfig(data []byte) (Config, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	unmarshalErr := json.Unmarshal(standardized, &cfg)
	if unmarshalErr != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", unmarshalErr)
	}

	// An explicit "data_file": "" is an error, an absent key is not.
	var raw map[string]any

	_ = json.Unmarshal(standardized, &raw)

	if val, exists := raw["data_file"]; exists {
		if str, ok := val.(string); ok && str == "" {
			return Config{}, ErrDataFileEmpty
		}
	}

	return cfg, nil
}

func mergeConfig(base, overlay Config) Config {
	if overlay.DataFile != "" {
		base.DataFile = overlay.DataFile
	}

	if overlay.Color != "" {
		base.Color = overlay.Color
	}

	return base
}

func validateConfig(cfg Config) error {
	if cfg.DataFile == "" {
		return ErrDataFileEmpty
	}

	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColor, cfg.Color)
	}

	return nil
}
