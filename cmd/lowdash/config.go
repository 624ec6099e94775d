package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Config is the optional YAML file read before every command. Flags win
// over the file.
type Config struct {
	Log    []string `yaml:"log"`
	Format string   `yaml:"format"`
	Seed   string   `yaml:"seed"`
	// Defaults holds keyword arguments per function name, used when the
	// command line does not set the parameter.
	Defaults map[string]map[string]any `yaml:"defaults"`
}

// loadConfig reads the file at path. A missing file yields an empty Config
// unless required is set.
func loadConfig(path string, required bool) (*Config, error) {
	expandedPath, expandError := expandHomeDir(path)
	if expandError != nil {
		return nil, expandError
	}
	fileData, readError := os.ReadFile(expandedPath)
	if readError != nil {
		if errors.Is(readError, fs.ErrNotExist) && !required {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, readError)
	}
	var fileConfig Config
	if unmarshalError := yaml.UnmarshalStrict(fileData, &fileConfig); unmarshalError != nil {
		return nil, fmt.Errorf("parse %s: %w", path, unmarshalError)
	}
	return &fileConfig, nil
}

// expandHomeDir replaces a leading ~ with the user's home directory.
func expandHomeDir(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDirectory, homeError := os.UserHomeDir()
	if homeError != nil {
		return "", fmt.Errorf("expand %s: %w", path, homeError)
	}
	return filepath.Join(homeDirectory, strings.TrimPrefix(path, "~")), nil
}

var (
	logLevels  = regexp.MustCompile("^(debug|info|warn|error|fatal)$")
	logColors  = regexp.MustCompile("^(no)?colou?rs?$")
	logJSON    = regexp.MustCompile("^json$")
	errLogFlag = errors.New("unknown log flag")
)

// applyLogFlags sets the level and formatter of logger. The level defaults
// to warn so that a plain call prints nothing but its result.
func applyLogFlags(logger *logrus.Logger, logFlags []string) error {
	logger.SetLevel(logrus.WarnLevel)

	for _, flag := range logFlags {
		switch {
		case logLevels.MatchString(flag):
			level, parseError := logrus.ParseLevel(flag)
			if parseError != nil {
				return fmt.Errorf("invalid log level: %w", parseError)
			}
			logger.SetLevel(level)
		case logColors.MatchString(flag):
			if strings.HasPrefix(flag, "no") {
				logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})
			} else {
				logger.SetFormatter(&logrus.TextFormatter{ForceColors: true})
			}
		case logJSON.MatchString(flag):
			logger.SetFormatter(&logrus.JSONFormatter{})
		default:
			return fmt.Errorf("%w: %q", errLogFlag, flag)
		}
	}
	return nil
}
