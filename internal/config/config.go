// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// EnvFile names the environment variable that overrides the config location.
const EnvFile = "XMLDIFF_CFG_FILE"

// FileName is the config file name looked up in os.UserConfigDir.
const FileName = "xmldiff.yaml"

// ErrNotFound is returned by Load when no config file exists.
var ErrNotFound = errors.New("no config file found")

// Type is the in-memory representation of the loaded configuration.
//
// Namespace, when set, is tried first on every lookup, so with Namespace
// "compare" the key "sheet" resolves "compare.sheet" before "sheet".
type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

// Config holds the process-wide configuration. It is loaded lazily by the
// getters when empty.
var Config Type

// Load reads the YAML configuration file and replaces the global Config.
func Load() (Type, error) {
	path, err := File()
	if err != nil {
		return Type{}, err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Type{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	Config = Type{
		Source:    path,
		Namespace: Config.Namespace,
		Data:      data,
	}
	log.Debugf("config loaded: source=%s keys=%d", path, len(data))

	return Config, nil
}

// File returns the path of the config file. XMLDIFF_CFG_FILE wins when set and
// must name an existing regular file. Otherwise FileName is looked up in
// os.UserConfigDir.
func File() (string, error) {
	if path := os.Getenv(EnvFile); path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("config file not found at %s path: %s", EnvFile, path)
		}
		if info.IsDir() {
			return "", fmt.Errorf("%s points to a directory: %s", EnvFile, path)
		}
		return path, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", ErrNotFound
	}

	path := filepath.Join(dir, FileName)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path, nil
	}

	return "", ErrNotFound
}

// GetString returns the string value for the dotted key. A single
// defaultValue is returned when the key is missing.
func GetString(key string, defaultValue ...string) (string, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("value of %s is not a string", key)
	}
	return s, nil
}

// GetInt returns the integer value for the dotted key. YAML numbers may decode
// as int, int64 or float64; all are accepted.
func GetInt(key string, defaultValue ...int) (int, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("value of %s is not an int", key)
	}
}

// GetStringSlice returns the string list for the dotted key.
func GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return nil, err
	}

	switch v := val.(type) {
	case []string:
		return v, nil
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d of %s is not a string", i, key)
			}
			result[i] = s
		}
		return result, nil
	default:
		return nil, fmt.Errorf("value of %s is not a list", key)
	}
}

func lookup(key string) (any, error) {
	if len(Config.Data) == 0 {
		_, _ = Load()
	}
	return Config.get(key)
}

// get walks the tree for the dotted key, preferring the namespaced candidate.
func (cfg *Type) get(kspec string) (any, error) {
	candidates := []string{kspec}
	if cfg.Namespace != "" {
		candidates = []string{cfg.Namespace + "." + kspec, kspec}
	}

	for _, candidate := range candidates {
		var current interface{} = cfg.Data
		found := true
		for _, part := range strings.Split(candidate, ".") {
			m, ok := current.(map[string]interface{})
			if !ok {
				found = false
				break
			}
			if current, ok = m[part]; !ok {
				found = false
				break
			}
		}
		if found {
			return current, nil
		}
	}

	return nil, fmt.Errorf("no value found among: %v", candidates)
}
