// Where: ec2-starter/internal/controlplane/factory.go
// What: AWS client factory for the EC2 control plane.
// Why: Encapsulate SDK configuration (region, endpoint override, retries).
package controlplane

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/poruru/ec2-starter/internal/constants"
	"github.com/poruru/ec2-starter/internal/envutil"
)

const defaultAWSRegion = "us-east-1"

// Options configures how the EC2 client is built.
type Options struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// OptionsFromEnv resolves client options from the execution context.
// The region defaults to us-east-1.
func OptionsFromEnv(env envutil.Lookup) Options {
	return Options{
		Region:          envutil.ValueOr(env, constants.EnvAWSRegion, defaultAWSRegion),
		Endpoint:        envutil.Value(env, constants.EnvEndpointURL),
		AccessKeyID:     envutil.Value(env, constants.EnvAccessKeyID),
		SecretAccessKey: envutil.Value(env, constants.EnvSecretAccessKey),
	}
}

type ClientFactory interface {
	EC2(ctx context.Context, opts Options) (Starter, error)
}

// AWSClientFactory builds Starters backed by the aws-sdk-go-v2 EC2 client.
type AWSClientFactory struct{}

func (AWSClientFactory) EC2(ctx context.Context, opts Options) (Starter, error) {
	cfg, err := loadAWSConfig(ctx, opts)
	if err != nil {
		return nil, err
	}
	endpoint := strings.TrimSpace(opts.Endpoint)
	client := ec2.NewFromConfig(cfg, func(options *ec2.Options) {
		if endpoint != "" {
			options.BaseEndpoint = aws.String(endpoint)
		}
	})
	return NewEC2Starter(client), nil
}

// loadAWSConfig resolves the shared AWS configuration. Retries are disabled:
// one invocation issues one StartInstances request and the trigger source
// owns re-invocation.
func loadAWSConfig(ctx context.Context, opts Options) (aws.Config, error) {
	region := strings.TrimSpace(opts.Region)
	if region == "" {
		region = defaultAWSRegion
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	}

	accessKey := strings.TrimSpace(opts.AccessKeyID)
	secretKey := strings.TrimSpace(opts.SecretAccessKey)
	switch {
	case accessKey != "" && secretKey != "":
		creds := credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")
		loadOpts = append(loadOpts, config.WithCredentialsProvider(creds))
	case accessKey != "" || secretKey != "":
		return aws.Config{}, fmt.Errorf(
			"both %s and %s are required for static credentials",
			constants.EnvAccessKeyID,
			constants.EnvSecretAccessKey,
		)
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return cfg, nil
}
