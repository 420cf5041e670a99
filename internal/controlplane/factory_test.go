// Where: ec2-starter/internal/controlplane/factory_test.go
// What: Tests for AWS config resolution.
package controlplane

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poruru/ec2-starter/internal/envutil"
)

func TestOptionsFromEnv(t *testing.T) {
	env := envutil.MapEnv{
		"AWS_REGION":                    " ap-northeast-1 ",
		"EC2_ENDPOINT_URL":              "http://localhost:4566",
		"EC2_STARTER_ACCESS_KEY_ID":     "test",
		"EC2_STARTER_SECRET_ACCESS_KEY": "secret",
	}
	assert.Equal(t, Options{
		Region:          "ap-northeast-1",
		Endpoint:        "http://localhost:4566",
		AccessKeyID:     "test",
		SecretAccessKey: "secret",
	}, OptionsFromEnv(env))
}

func TestOptionsFromEnvDefaultsRegion(t *testing.T) {
	opts := OptionsFromEnv(envutil.MapEnv{"AWS_REGION": "  "})
	assert.Equal(t, defaultAWSRegion, opts.Region)
}

func TestLoadAWSConfigDefaults(t *testing.T) {
	cfg, err := loadAWSConfig(context.Background(), Options{AccessKeyID: "a", SecretAccessKey: "b"})
	require.NoError(t, err)
	assert.Equal(t, defaultAWSRegion, cfg.Region)
	require.NotNil(t, cfg.Retryer)
	assert.IsType(t, aws.NopRetryer{}, cfg.Retryer())
}

func TestLoadAWSConfigStaticCredentials(t *testing.T) {
	cfg, err := loadAWSConfig(context.Background(), Options{
		Region:          "eu-central-1",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AKIDEXAMPLE", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
}

func TestLoadAWSConfigRejectsHalfCredentials(t *testing.T) {
	_, err := loadAWSConfig(context.Background(), Options{AccessKeyID: "only-key"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "EC2_STARTER_SECRET_ACCESS_KEY")
}

func TestAWSClientFactoryBuildsStarter(t *testing.T) {
	starter, err := AWSClientFactory{}.EC2(context.Background(), Options{
		Region:          "us-west-2",
		Endpoint:        "http://127.0.0.1:1",
		AccessKeyID:     "a",
		SecretAccessKey: "b",
	})
	require.NoError(t, err)
	assert.NotNil(t, starter)
}
