// Command goshift shifts the bytes of files while keeping their multi-byte text structure intact.
package main

import (
	"os"

	"github.com/idelchi/goshift/internal/commands"
	"github.com/idelchi/goshift/internal/config"
)

// version is set at build time.
var version = "unknown - unofficial & generated by unknown"

func main() {
	cfg := &config.Config{}

	if err := commands.NewRootCommand(cfg, version).Execute(); err != nil {
		os.Exit(1)
	}
}
