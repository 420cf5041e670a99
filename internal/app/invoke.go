// Where: ec2-starter/internal/app/invoke.go
// What: Local invocation of the trigger handler.
// Why: Let operators exercise the same code path the Lambda runtime uses.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/poruru/ec2-starter/internal/config"
	"github.com/poruru/ec2-starter/internal/constants"
	"github.com/poruru/ec2-starter/internal/controlplane"
	"github.com/poruru/ec2-starter/internal/envutil"
	"github.com/poruru/ec2-starter/internal/logging"
	"github.com/poruru/ec2-starter/internal/starter"
	"github.com/poruru/ec2-starter/internal/ui"
)

func runInvoke(cli CLI, deps Dependencies, out io.Writer) int {
	cmd := cli.Invoke

	env, err := resolveInvokeEnv(cmd, deps.Env)
	if err != nil {
		return exitWithError(out, err)
	}

	logger := logging.New(deps.LogOut, logging.Options{
		Format: logging.ParseFormat(cmd.LogFormat),
		Level:  logging.ParseLevel(cmd.LogLevel),
	})
	handler := starter.New(controlplane.NewLazyStarter(deps.Clients, env), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if cmd.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cmd.Timeout)
		defer cancel()
	}

	policy := starter.ResolveMissingTargetPolicy(env, logger)
	outcome := handler.Handle(ctx, env)
	if err := ui.RenderReport(out, newReport(outcome), cmd.Output, cmd.Format); err != nil {
		return exitWithError(out, err)
	}
	return invokeExitCode(outcome, policy)
}

// invokeExitCode mirrors what the Lambda runtime would record: a control-plane
// failure exits 1, a missing target exits 1 only under the fail policy.
func invokeExitCode(outcome starter.Outcome, policy starter.MissingTargetPolicy) int {
	if outcome.Kind == starter.ControlPlaneError || policy.HostError(outcome) != nil {
		return 1
	}
	return 0
}

// resolveInvokeEnv layers the execution context: flags, config file, env file,
// then the process environment. The env file is read, never exported.
func resolveInvokeEnv(cmd InvokeCmd, base envutil.Lookup) (envutil.Lookup, error) {
	flags := envutil.MapEnv{
		constants.EnvInstanceID:  cmd.InstanceID,
		constants.EnvAWSRegion:   cmd.Region,
		constants.EnvEndpointURL: cmd.Endpoint,
	}
	if cmd.DryRun {
		flags[constants.EnvDryRun] = "true"
	}
	layers := envutil.Layered{flags}

	if cmd.Config != "" {
		file, err := config.Load(cmd.Config)
		if err != nil {
			return nil, err
		}
		layers = append(layers, file.Env())
	}

	if cmd.EnvFile != "" {
		values, err := godotenv.Read(cmd.EnvFile)
		if err != nil {
			return nil, fmt.Errorf("read env file %s: %w", cmd.EnvFile, err)
		}
		layers = append(layers, envutil.MapEnv(values))
	}

	return append(layers, base), nil
}

func newReport(outcome starter.Outcome) ui.Report {
	report := ui.Report{
		Outcome:       outcome.Kind.String(),
		InstanceID:    outcome.InstanceID,
		PreviousState: outcome.Change.Previous,
		CurrentState:  outcome.Change.Current,
		DryRun:        outcome.Change.DryRun,
		Failure:       string(outcome.Failure),
	}
	if outcome.Err != nil {
		report.Error = outcome.Err.Error()
	}
	return report
}
