package main

import (
	"fmt"
	"os"

	"github.com/dholab/Lail-et-al-2024-analysis-pipeline/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
