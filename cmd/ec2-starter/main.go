// Where: ec2-starter/cmd/ec2-starter/main.go
// What: Operator CLI entrypoint.
// Why: Run one local invocation of the trigger handler with configured dependencies.
package main

import (
	"os"

	"github.com/poruru/ec2-starter/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}
