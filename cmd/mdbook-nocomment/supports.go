package main

import (
	"os"

	"github.com/spf13/cobra"

	"nocomment/internal/config"
	"nocomment/internal/preprocess"
)

var supportsCmd = &cobra.Command{
	Use:   "supports <renderer>",
	Short: "Check whether a renderer is supported by this preprocessor",
	Long: `Check whether a renderer is supported by this preprocessor.
Exits with status 0 when supported and 1 when not; nothing is printed.`,
	Args: cobra.ExactArgs(1),
	Run:  runSupports,
}

func runSupports(_ *cobra.Command, args []string) {
	p := preprocess.New(config.Default(), nil)
	if !p.SupportsRenderer(args[0]) {
		os.Exit(1)
	}
}
