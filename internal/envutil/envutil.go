// Where: ec2-starter/internal/envutil/envutil.go
// What: Execution context lookups over environment-style key/value sources.
// Why: Let the handler read configuration without binding to os.Getenv.
package envutil

import (
	"os"
	"strings"
)

// Lookup resolves a configuration key to its value.
// The boolean reports whether the key was present at all.
type Lookup interface {
	Lookup(key string) (string, bool)
}

// OSEnv reads the process environment at call time.
type OSEnv struct{}

func (OSEnv) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnv is a fixed set of values, used for tests and for CLI overrides.
type MapEnv map[string]string

func (m MapEnv) Lookup(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	value, ok := m[key]
	return value, ok
}

// Layered consults each source in order and returns the first non-empty value.
// Empty values in an earlier layer do not shadow later layers.
type Layered []Lookup

func (l Layered) Lookup(key string) (string, bool) {
	found := false
	for _, source := range l {
		if source == nil {
			continue
		}
		value, ok := source.Lookup(key)
		if !ok {
			continue
		}
		found = true
		if strings.TrimSpace(value) != "" {
			return value, true
		}
	}
	return "", found
}

// Value returns the trimmed value for key, or "" when absent.
func Value(env Lookup, key string) string {
	if env == nil {
		return ""
	}
	value, _ := env.Lookup(key)
	return strings.TrimSpace(value)
}

// ValueOr returns the trimmed value for key, or fallback when absent or empty.
func ValueOr(env Lookup, key, fallback string) string {
	if value := Value(env, key); value != "" {
		return value
	}
	return fallback
}

// Bool interprets common truthy spellings ("1", "true", "yes", "on").
func Bool(env Lookup, key string) bool {
	switch strings.ToLower(Value(env, key)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
