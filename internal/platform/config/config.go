// Package config reads service settings from environment variables.
// Must* panics through the logger on missing or malformed values, May* logs and falls back
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"wordbound/internal/platform/logger"
)

// Conf is a namespaced view over environment variables (e.g. "CORE_API_")
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// key composes the fully qualified env var name
func (c Conf) key(k string) string { return c.prefix + k }

// Lookup returns the trimmed value and whether it was non-empty
func (c Conf) Lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(c.key(key)))
	return v, v != ""
}

// MustString panics if the key is missing or empty
func (c Conf) MustString(key string) string {
	v, ok := c.Lookup(key)
	if !ok {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	return v
}

// MustPort returns a listen address like ":4000" after validating 1..65535
func (c Conf) MustPort(key string) string {
	s := c.MustString(key)
	addr, ok := toAddr(s)
	if !ok {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg("invalid TCP port; expected 1..65535")
	}
	return addr
}

// MayPort is MustPort with a default. Values may be "4000" or ":4000"
func (c Conf) MayPort(key, def string) string {
	s, ok := c.Lookup(key)
	if !ok {
		s = def
	}
	if addr, ok := toAddr(s); ok {
		return addr
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Str("default", def).Msg("invalid port; using default")
	addr, _ := toAddr(def)
	return addr
}

func toAddr(s string) (string, bool) {
	s = strings.TrimPrefix(s, ":")
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		return "", false
	}
	return ":" + s, true
}

// MayString returns the value or def if missing or empty
func (c Conf) MayString(key, def string) string {
	if v, ok := c.Lookup(key); ok {
		return v
	}
	return def
}

// MayInt returns the value or def; logs and returns def if invalid
func (c Conf) MayInt(key string, def int) int {
	s, ok := c.Lookup(key)
	if !ok {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Int("default", def).Msg("invalid int; using default")
	return def
}

// MayBool returns the value or def; logs and returns def if invalid
func (c Conf) MayBool(key string, def bool) bool {
	s, ok := c.Lookup(key)
	if !ok {
		return def
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
	return def
}

// MayDuration returns the value or def; logs and returns def if invalid
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s, ok := c.Lookup(key)
	if !ok {
		return def
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
	return def
}

// MayCSV splits a comma separated value, dropping blanks; def if nothing remains
func (c Conf) MayCSV(key string, def []string) []string {
	s, ok := c.Lookup(key)
	if !ok {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value if it is one of allowed (case insensitive), def when unset,
// and panics otherwise
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return ""
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return a
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}

// MayFile returns the path if it names a readable regular file, "" when unset.
// A set but unusable path is logged and ignored
func (c Conf) MayFile(key string) string {
	p, ok := c.Lookup(key)
	if !ok {
		return ""
	}
	st, err := os.Stat(p)
	if err != nil || st.IsDir() {
		logger.Get().Warn().Err(err).Str("key", c.key(key)).Str("value", p).Msg("file not usable; ignoring")
		return ""
	}
	return p
}
