// Where: ec2-starter/internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/poruru/ec2-starter/internal/controlplane"
	"github.com/poruru/ec2-starter/internal/envutil"
	"github.com/poruru/ec2-starter/internal/meta"
	"github.com/poruru/ec2-starter/internal/ui"
	"github.com/poruru/ec2-starter/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// Tests swap the client factory and environment; main wires the real ones.
type Dependencies struct {
	Out     io.Writer
	LogOut  io.Writer
	Env     envutil.Lookup
	Clients controlplane.ClientFactory
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Invoke  InvokeCmd  `cmd:"" help:"Request that the target EC2 instance start (one attempt)"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type (
	InvokeCmd struct {
		InstanceID string        `name:"instance-id" short:"i" help:"Target instance (overrides EC2_INSTANCE_ID)"`
		Region     string        `help:"AWS region (overrides AWS_REGION)"`
		Endpoint   string        `help:"EC2 endpoint override (overrides EC2_ENDPOINT_URL)"`
		Config     string        `short:"c" help:"Path to a YAML config file"`
		EnvFile    string        `name:"env-file" help:"Path to .env file"`
		DryRun     bool          `name:"dry-run" help:"Check permissions without starting the instance"`
		Timeout    time.Duration `default:"30s" help:"Invocation timeout"`
		Output     string        `short:"o" enum:"text,json,yaml" default:"text" help:"Output format (text/json/yaml)"`
		Format     string        `help:"Go template for the report (sprig functions available)"`
		LogFormat  string        `name:"log-format" enum:"json,text" default:"text" help:"Log format"`
		LogLevel   string        `name:"log-level" default:"info" help:"Log level (debug/info/warn/error)"`
	}
	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments and dispatches to the matching handler.
// Returns 0 on success, 1 on error or on a failed invocation.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.LogOut == nil {
		deps.LogOut = os.Stderr
	}
	if deps.Env == nil {
		deps.Env = envutil.OSEnv{}
	}
	if deps.Clients == nil {
		deps.Clients = controlplane.AWSClientFactory{}
	}

	if len(args) == 0 {
		return runNoArgs(out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description(meta.Summary),
		kong.Writers(out, out),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	if exitCode, handled := dispatchCommand(ctx.Command(), cli, deps, out); handled {
		return exitCode
	}

	ui.New(out).Warn("unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	handlers := map[string]commandHandler{
		"invoke":  runInvoke,
		"version": runVersion,
	}
	if handler, ok := handlers[command]; ok {
		return handler(cli, deps, out), true
	}
	return 1, false
}

func runVersion(_ CLI, _ Dependencies, out io.Writer) int {
	fmt.Fprintln(out, version.Get().String())
	return 0
}

func runNoArgs(out io.Writer) int {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s invoke --instance-id <id> [flags]\n", meta.AppName)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Try: %s --help\n", meta.AppName)
	return 0
}

// exitWithError prints an error message and returns exit code 1.
func exitWithError(out io.Writer, err error) int {
	ui.New(out).Failure(err.Error())
	return 1
}
