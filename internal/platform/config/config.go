// Package config reads application settings from environment variables
package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"padala/internal/platform/logger"
)

// Conf is a namespaced view over the environment (e.g., "API_", "RATES_").
// New() gives the root view; Prefix("API_") narrows it for a module.
type Conf struct{ prefix string }

// New returns the root Conf with no prefix
func New() Conf { return Conf{} }

// Prefix returns a child Conf scoped under an additional prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// key composes the fully-qualified env var name
func (c Conf) key(k string) string { return c.prefix + k }

// raw returns the trimmed env value for key, "" when unset
func (c Conf) raw(key string) string {
	return strings.TrimSpace(os.Getenv(c.key(key)))
}

// mustRaw returns the trimmed value or panics when it is missing
func (c Conf) mustRaw(key string) string {
	v := c.raw(key)
	if v == "" {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	return v
}

// badValue panics with the offending key and value
func (c Conf) badValue(key, val, text string) {
	logger.Get().Panic().Str("key", c.key(key)).Str("value", val).Msg(text)
}

// must reads a required key and parses it, panicking on either failure
func must[T any](c Conf, key, complaint string, parse func(string) (T, error)) T {
	s := c.mustRaw(key)
	v, err := parse(s)
	if err != nil {
		c.badValue(key, s, complaint)
	}
	return v
}

// may reads an optional key, logging a warning and returning def when the
// value is present but unparsable
func may[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s := c.raw(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().
			Str("key", c.key(key)).
			Str("value", s).
			Interface("default", def).
			Msg("unparsable value; using default")
		return def
	}
	return v
}

// MustString panics when the key is missing or empty
func (c Conf) MustString(key string) string { return c.mustRaw(key) }

// MustInt panics when the key is missing, empty, or not an int
func (c Conf) MustInt(key string) int {
	return must(c, key, "invalid int value", strconv.Atoi)
}

// MustBool panics when the key is missing, empty, or not a bool
func (c Conf) MustBool(key string) bool {
	return must(c, key, "invalid bool value", strconv.ParseBool)
}

// MustDuration panics when the key is missing or not a time.ParseDuration value
func (c Conf) MustDuration(key string) time.Duration {
	return must(c, key, "invalid duration (e.g., 250ms, 2s, 1h)", time.ParseDuration)
}

// MustURL panics when the key is missing or not an absolute URL
func (c Conf) MustURL(key string) *url.URL {
	return must(c, key, "invalid absolute URL", func(s string) (*url.URL, error) {
		u, err := url.Parse(s)
		if err == nil && !u.IsAbs() {
			err = errors.New("not absolute")
		}
		return u, err
	})
}

// MustPort validates 1..65535 and returns a net/http addr like ":4000"
func (c Conf) MustPort(key string) string {
	return must(c, key, "invalid TCP port; expected 1..65535", func(s string) (string, error) {
		p, err := strconv.Atoi(s)
		if err == nil && (p < 1 || p > 65535) {
			err = errors.New("out of range")
		}
		return ":" + s, err
	})
}

// Require panics unless every listed key is present and non-empty
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		c.mustRaw(k)
	}
}

// MayString returns the value, or def when missing or empty
func (c Conf) MayString(key, def string) string {
	if v := c.raw(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value, or def when missing; warns and defaults when unparsable
func (c Conf) MayInt(key string, def int) int {
	return may(c, key, def, strconv.Atoi)
}

// MayFloat64 returns the value, or def when missing; warns and defaults when unparsable
func (c Conf) MayFloat64(key string, def float64) float64 {
	return may(c, key, def, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

// MayBool returns the value, or def when missing; warns and defaults when unparsable
func (c Conf) MayBool(key string, def bool) bool {
	return may(c, key, def, strconv.ParseBool)
}

// MayDuration returns the value, or def when missing; warns and defaults when unparsable
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, time.ParseDuration)
}

// MayCSV splits a comma-separated value into trimmed parts; def when missing or all-blank
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.raw(key), ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value when it matches one of allowed (case-insensitive),
// def when empty, and panics on anything else
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return v
		}
	}
	logger.Get().Panic().
		Str("key", c.key(key)).
		Str("value", v).
		Strs("allowed", allowed).
		Msg("invalid enum value")
	return "" // unreachable
}
