// Command enginegen generates engine simulator scripts.
package main

import (
	"os"

	"github.com/leapstack-labs/enginegen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
