// pacbuild generates proxy.pac files for Zscaler ZIA Disaster Recovery
// mode from a domain allow-list, deduplicated against Zscaler's
// pre-selected destinations list and validated before writing.
package main

import (
	"fmt"
	"os"

	"github.com/p4th0r/pacbuild/internal/cli"
)

// version is set via ldflags at build time
var version = "dev"

func main() {
	rootCmd := cli.NewRootCmd(version)
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[pacbuild] Error: %v\n", err)
		os.Exit(1)
	}
}
