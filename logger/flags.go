package logger

import (
	"strings"
)

// Flags is the flat key to value configuration consulted when a Logger is
// built. Populate it once at startup and treat it as read-only afterwards.
type Flags map[string]string

// FlagKind selects which level set a configuration key controls.
type FlagKind string

const (
	// KindLog keys control which severities are logged.
	KindLog FlagKind = "log"
	// KindThrow keys control which severities fail instead of logging.
	KindThrow FlagKind = "throw"
)

// EnvPrefix is the environment variable prefix read by FlagsFromEnv.
const EnvPrefix = "LOGGER_"

// Lookup returns the value stored under key.
func (f Flags) Lookup(key string) (string, bool) {
	if f == nil {
		return "", false
	}
	v, ok := f[key]
	return v, ok
}

// FeatureID returns the configuration prefix for a category: the text before
// any '[' lower-cased. "Combat[boss]" yields "combat".
func FeatureID(category string) string {
	if i := strings.IndexByte(category, '['); i >= 0 {
		category = category[:i]
	}
	return strings.ToLower(category)
}

// Key returns the configuration key for kind, scoped to category when it is
// not empty.
func Key(kind FlagKind, category string) string {
	if category == "" {
		return string(kind)
	}
	return FeatureID(category) + "." + string(kind)
}

// Resolve computes the starting level set for one Logger.
//
// A per-category key wins over the global key, which wins over fallback. An
// empty category is the global logger and only the global key applies.
func Resolve(flags Flags, kind FlagKind, category string, fallback LevelSet) (LevelSet, error) {
	if category != "" {
		if v, ok := flags.Lookup(Key(kind, category)); ok {
			return ParseLevelSet(v)
		}
	}
	if v, ok := flags.Lookup(string(kind)); ok {
		return ParseLevelSet(v)
	}
	return fallback, nil
}

// FlagsFromEnv builds Flags from KEY=VALUE pairs as returned by os.Environ.
// Only names starting with prefix and ending in LOG or THROW are kept:
// LOGGER_LOG becomes "log" and LOGGER_COMBAT_THROW becomes "combat.throw".
func FlagsFromEnv(prefix string, environ []string) Flags {
	flags := Flags{}
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, prefix) {
			continue
		}
		if key, ok := EnvKey(strings.TrimPrefix(name, prefix)); ok {
			flags[key] = value
		}
	}
	return flags
}

// EnvKey maps an environment style name with its prefix removed, such as
// "COMBAT_LOG", to a configuration key such as "combat.log".
func EnvKey(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, kind := range []FlagKind{KindLog, KindThrow} {
		k := string(kind)
		if name == k {
			return k, true
		}
		if feature, ok := strings.CutSuffix(name, "_"+k); ok && feature != "" {
			return feature + "." + k, true
		}
	}
	return "", false
}
