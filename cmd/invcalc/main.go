package main

import (
	"fmt"
	"os"

	"github.com/Dan9191/investment-calculator/cmd/invcalc/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
