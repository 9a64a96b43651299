// Package config provides the configuration loader for minish.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"go.trai.ch/minish/internal/core/domain"
	"go.trai.ch/minish/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var hexColorRegex = regexp.MustCompile("^#[0-9a-fA-F]{6}$")

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration at path. An empty path selects the default location.
// A missing file yields the defaults.
func (l *Loader) Load(path string) (domain.Config, error) {
	if path == "" {
		path = domain.DefaultConfigPath()
	}

	cfg := domain.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	var file File
	found, err := readAndUnmarshalYAML(path, &file)
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}
	if !found {
		return cfg, nil
	}

	cfg.Path = path
	if err := apply(&cfg, &file); err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}

	if _, err := os.Stat(cfg.ProcRoot); err != nil {
		l.Logger.Warn("procRoot " + cfg.ProcRoot + " is not accessible, lp will fail")
	}

	return cfg, nil
}

func apply(cfg *domain.Config, file *File) error {
	if p := file.Prompt; p != nil {
		if p.Color != "" {
			if err := validateColor(p.Color); err != nil {
				return err
			}
			cfg.Prompt.Color = p.Color
		}
		if p.Bold != nil {
			cfg.Prompt.Bold = *p.Bold
		}
	}
	if file.ProcRoot != "" {
		cfg.ProcRoot = filepath.Clean(file.ProcRoot)
	}
	if file.Executor != nil {
		cfg.PTY = file.Executor.PTY
	}
	if file.Log != nil {
		cfg.LogJSON = file.Log.JSON
	}
	if file.Telemetry != nil {
		cfg.Trace = file.Telemetry.Trace
	}
	return nil
}

// validateColor accepts an ANSI index from 0 to 255 or a #rrggbb hex color.
func validateColor(color string) error {
	if hexColorRegex.MatchString(color) {
		return nil
	}
	if n, err := strconv.Atoi(color); err == nil && n >= 0 && n <= 255 {
		return nil
	}
	return zerr.With(domain.ErrInvalidColor, "color", color)
}

// readAndUnmarshalYAML reads a YAML file into target. It reports false when the file does not exist.
func readAndUnmarshalYAML[T any](configPath string, target *T) (bool, error) {
	// #nosec G304 -- configPath is chosen by the user
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return false, zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return true, nil
}
