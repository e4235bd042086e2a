// artifactcheck - Structural compliance checks for agent-generated Markdown
// Author: Jonathan Vella
// Source: https://github.com/jonathan-vella/rebel-ops

package main

import (
	"os"

	"github.com/jonathan-vella/rebel-ops/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
