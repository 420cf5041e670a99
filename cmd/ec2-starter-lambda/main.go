// Where: ec2-starter/cmd/ec2-starter-lambda/main.go
// What: Lambda runtime entrypoint.
// Why: Bootstrap the trigger handler once per execution environment.
package main

import (
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/poruru/ec2-starter/internal/controlplane"
	"github.com/poruru/ec2-starter/internal/envutil"
	"github.com/poruru/ec2-starter/internal/logging"
	"github.com/poruru/ec2-starter/internal/meta"
	"github.com/poruru/ec2-starter/internal/starter"
	"github.com/poruru/ec2-starter/internal/version"
)

func main() {
	env := envutil.OSEnv{}
	logger := logging.New(os.Stdout, logging.OptionsFromEnv(env))
	slog.SetDefault(logger)

	// The EC2 client is built on the first invocation and reused while the
	// execution environment stays warm.
	client := controlplane.NewLazyStarter(controlplane.AWSClientFactory{}, env)
	handler := starter.New(client, logger)

	logger.Debug("Runtime initialized", "app", meta.LambdaName, "version", version.Get().Version)
	lambda.Start(handler.Invoke)
}
