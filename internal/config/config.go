// Package config reads the render config file that names the shader and
// texture resources to preview.
//
// The format is line oriented: `key = value` pairs, `#` starts a comment
// line, blank lines are skipped. Recognized keys are `vert`, `frag` and
// `texture`; anything else is reported with its position and ignored.
package config

import (
	"os"
	"strings"

	"shaderview/internal/utils"
)

// Config holds the three resource paths a preview needs. It is rebuilt from
// scratch on every reload; stale paths never survive a re-read.
type Config struct {
	VertPath    string
	FragPath    string
	TexturePath string
}

// Load reads and parses the config file at path. A file that cannot be read
// is an error for the caller to treat as fatal; malformed lines inside a
// readable file only produce warnings.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(path, string(data)), nil
}

func parse(path, content string) *Config {
	cfg := &Config{}

	for i, line := range strings.Split(content, "\n") {
		row := i + 1

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		rawKey, rawValue, found := strings.Cut(line, "=")
		key := strings.TrimSpace(rawKey)
		col := strings.Index(line, key) + 1

		if !found {
			utils.Warn("%s:%d:%d: malformed line, expected `key = value`", path, row, col)
			continue
		}

		value := strings.TrimSpace(rawValue)

		switch key {
		case "vert":
			cfg.VertPath = value
			utils.Info("Vertex Path: %s", value)
		case "frag":
			cfg.FragPath = value
			utils.Info("Fragment Path: %s", value)
		case "texture":
			cfg.TexturePath = value
			utils.Info("Texture Path: %s", value)
		default:
			utils.Warn("%s:%d:%d: unsupported key `%s`", path, row, col, key)
		}
	}

	return cfg
}
