// Where: ec2-starter/internal/config/file_test.go
// What: Tests for config file parsing and schema validation.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poruru/ec2-starter/internal/envutil"
)

func TestParseValidFile(t *testing.T) {
	content := `
instanceId: i-0abc123
region: eu-west-1
endpoint: http://localhost:4566
dryRun: true
onMissingInstanceId: fail
`
	file, err := Parse([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, "i-0abc123", file.InstanceID)
	require.NotNil(t, file.DryRun)
	assert.True(t, *file.DryRun)

	env := file.Env()
	assert.Equal(t, envutil.MapEnv{
		"EC2_INSTANCE_ID":           "i-0abc123",
		"AWS_REGION":                "eu-west-1",
		"EC2_ENDPOINT_URL":          "http://localhost:4566",
		"EC2_STARTER_DRY_RUN":       "true",
		"EC2_STARTER_ON_MISSING_ID": "fail",
	}, env)
}

func TestParseEmptyFile(t *testing.T) {
	file, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, file.Env())
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("instanceId: i-1\ninstances: [i-2]\n"))
	require.Error(t, err)
}

func TestParseRejectsWrongTypes(t *testing.T) {
	_, err := Parse([]byte("dryRun: sometimes\n"))
	require.Error(t, err)
}

func TestParseRejectsUnknownPolicy(t *testing.T) {
	_, err := Parse([]byte("onMissingInstanceId: retry\n"))
	require.Error(t, err)
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("instanceId: [unterminated\n"))
	require.Error(t, err)
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starter.yaml")
	require.NoError(t, os.WriteFile(path, []byte("instanceId: i-disk\n"), 0o600))

	file, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "i-disk", file.InstanceID)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "absent.yaml")
}
