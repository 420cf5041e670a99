// Where: ec2-starter/cmd/ec2-starter/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru/ec2-starter/internal/app"
	"github.com/poruru/ec2-starter/internal/controlplane"
	"github.com/poruru/ec2-starter/internal/envutil"
)

// buildDependencies constructs the runtime dependencies required by the CLI.
// Logs go to stderr so stdout carries only the rendered report.
func buildDependencies() app.Dependencies {
	return app.Dependencies{
		Out:     os.Stdout,
		LogOut:  os.Stderr,
		Env:     envutil.OSEnv{},
		Clients: controlplane.AWSClientFactory{},
	}
}
