package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/homefiles/cmd/homefiles"
	"github.com/arthur-debert/homefiles/pkg/output"
)

func main() {
	rootCmd := homefiles.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output.NewRenderer(os.Stderr, output.FormatAuto).Error(err)
		fmt.Fprintln(os.Stderr, "Run 'homefiles --help' for usage.")
		os.Exit(1)
	}
}
