// Command modetoggle mounts a labelled widget with a light/dark toggle.
package main

import (
	"os"

	"github.com/opencode-ai/modetoggle/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.Execute(version))
}
