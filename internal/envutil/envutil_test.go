// Where: ec2-starter/internal/envutil/envutil_test.go
// What: Tests for execution context lookups.
package envutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSEnvReadsAtCallTime(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_KEY", "first")
	env := OSEnv{}
	assert.Equal(t, "first", Value(env, "ENVUTIL_TEST_KEY"))

	t.Setenv("ENVUTIL_TEST_KEY", "second")
	assert.Equal(t, "second", Value(env, "ENVUTIL_TEST_KEY"))
}

func TestMapEnvNilIsEmpty(t *testing.T) {
	var env MapEnv
	value, ok := env.Lookup("ANY")
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestLayeredFirstNonEmptyWins(t *testing.T) {
	env := Layered{
		MapEnv{"A": "", "B": "flag"},
		nil,
		MapEnv{"A": "file", "B": "file", "C": "file"},
	}

	assert.Equal(t, "file", Value(env, "A"))
	assert.Equal(t, "flag", Value(env, "B"))
	assert.Equal(t, "file", Value(env, "C"))

	value, ok := env.Lookup("D")
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestLayeredReportsPresentButEmpty(t *testing.T) {
	env := Layered{MapEnv{"A": "  "}}
	value, ok := env.Lookup("A")
	assert.True(t, ok)
	assert.Empty(t, value)
}

func TestValueTrimsAndDefaults(t *testing.T) {
	env := MapEnv{"A": "  padded  ", "B": "   "}
	assert.Equal(t, "padded", Value(env, "A"))
	assert.Equal(t, "fallback", ValueOr(env, "B", "fallback"))
	assert.Equal(t, "fallback", ValueOr(nil, "B", "fallback"))
}

func TestBool(t *testing.T) {
	env := MapEnv{"T1": "true", "T2": "YES", "T3": "1", "F1": "false", "F2": "nope"}
	for _, key := range []string{"T1", "T2", "T3"} {
		assert.True(t, Bool(env, key), key)
	}
	for _, key := range []string{"F1", "F2", "MISSING"} {
		assert.False(t, Bool(env, key), key)
	}
}
