// main is the command-line entrypoint for fedcurve.
package main

import (
	"fedcurve/cmd"
	"fedcurve/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
