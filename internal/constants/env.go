// Where: ec2-starter/internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

const (
	// Target Configuration (resolved per invocation)
	EnvInstanceID      = "EC2_INSTANCE_ID"
	EnvOnMissingTarget = "EC2_STARTER_ON_MISSING_ID"

	// Control Plane Configuration (resolved when the client is built)
	EnvAWSRegion       = "AWS_REGION"
	EnvEndpointURL     = "EC2_ENDPOINT_URL"
	EnvAccessKeyID     = "EC2_STARTER_ACCESS_KEY_ID"
	EnvSecretAccessKey = "EC2_STARTER_SECRET_ACCESS_KEY"
	EnvDryRun          = "EC2_STARTER_DRY_RUN"

	// Lambda Advanced Logging Controls
	EnvLambdaLogFormat = "AWS_LAMBDA_LOG_FORMAT"
	EnvLambdaLogLevel  = "AWS_LAMBDA_LOG_LEVEL"
)
