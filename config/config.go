// Package config loads logger.Flags from files and the environment.
//
// Supported formats, chosen by file extension:
//
//	.toml        log = "WARN"  /  [combat] log = "verbose"
//	.yaml .yml   log: WARN     /  combat: {log: verbose}
//	.env         LOGGER_LOG=WARN  /  LOGGER_COMBAT_LOG=verbose
//
// Nested tables flatten with "." and keys are lower-cased, so both examples
// above, as well as a [Combat] section, produce the keys "log" and
// "combat.log".
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mordilloSan/go-catlog/logger"
)

// FromEnv reads LOGGER_* variables from the process environment.
func FromEnv() logger.Flags {
	return logger.FlagsFromEnv(logger.EnvPrefix, os.Environ())
}

// Merge combines flag sets; later sets win on conflicting keys.
func Merge(sets ...logger.Flags) logger.Flags {
	merged := logger.Flags{}
	for _, set := range sets {
		for k, v := range set {
			merged[k] = v
		}
	}
	return merged
}

// Load reads every path in order and merges the results.
func Load(paths ...string) (logger.Flags, error) {
	sets := make([]logger.Flags, 0, len(paths))
	for _, path := range paths {
		flags, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		sets = append(sets, flags)
	}
	return Merge(sets...), nil
}

// LoadFile reads a single configuration file.
func LoadFile(path string) (logger.Flags, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading configuration file %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		tree := map[string]any{}
		if _, err := toml.Decode(string(contents), &tree); err != nil {
			return nil, errors.Wrapf(err, "error decoding configuration file %s", path)
		}
		return flatten(tree)
	case ".yaml", ".yml":
		tree := map[string]any{}
		if err := yaml.Unmarshal(contents, &tree); err != nil {
			return nil, errors.Wrapf(err, "error decoding configuration file %s", path)
		}
		return flatten(tree)
	case ".env":
		env, err := godotenv.UnmarshalBytes(contents)
		if err != nil {
			return nil, errors.Wrapf(err, "error decoding configuration file %s", path)
		}
		environ := make([]string, 0, len(env))
		for k, v := range env {
			environ = append(environ, k+"="+v)
		}
		return logger.FlagsFromEnv(logger.EnvPrefix, environ), nil
	default:
		return nil, errors.Errorf("configuration file %s: unsupported format %q", path, ext)
	}
}

func flatten(tree map[string]any) (logger.Flags, error) {
	flags := logger.Flags{}
	if err := flattenInto(flags, "", tree); err != nil {
		return nil, err
	}
	return flags, nil
}

func flattenInto(flags logger.Flags, prefix string, tree map[string]any) error {
	for k, v := range tree {
		key := strings.ToLower(k)
		if prefix != "" {
			key = prefix + "." + key
		}
		if sub, ok := v.(map[string]any); ok {
			if err := flattenInto(flags, key, sub); err != nil {
				return err
			}
			continue
		}
		text, err := valueText(v)
		if err != nil {
			return errors.Wrapf(err, "key %s", key)
		}
		flags[key] = text
	}
	return nil
}

// valueText renders a decoded scalar or list in the form ParseLevelSet reads.
func valueText(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case int, int64, uint64:
		return fmt.Sprint(t), nil
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			s, err := valueText(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return "[" + strings.Join(parts, ",") + "]", nil
	case []string:
		return "[" + strings.Join(t, ",") + "]", nil
	}
	return "", errors.Errorf("unsupported value %v of type %T", v, v)
}

// Validate parses every key the logger consumes and reports all malformed
// values together. Keys for other purposes are ignored.
func Validate(flags logger.Flags) error {
	keys := make([]string, 0, len(flags))
	for k := range flags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var result *multierror.Error
	for _, k := range keys {
		if !Consumed(k) {
			continue
		}
		if _, err := logger.ParseLevelSet(flags[k]); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "key %s", k))
		}
	}
	return result.ErrorOrNil()
}

// Consumed reports whether the logger reads key.
func Consumed(key string) bool {
	for _, kind := range []logger.FlagKind{logger.KindLog, logger.KindThrow} {
		k := string(kind)
		if key == k || strings.HasSuffix(key, "."+k) {
			return true
		}
	}
	return false
}
