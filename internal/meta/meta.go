// Where: ec2-starter/internal/meta/meta.go
// What: Application identity constants.
// Why: Keep names shared by the CLI and the Lambda entrypoint in one place.
package meta

const (
	AppName    = "ec2-starter"
	LambdaName = "ec2-starter-lambda"
	Summary    = "Request that a single EC2 instance transition to running."
)
