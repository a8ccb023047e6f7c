// Command nualg generates N/U validation datasets and runs worked demos.
package main

import (
	"os"

	"github.com/abba-01/nu-algebra/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
