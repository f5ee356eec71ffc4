// Package main implements the equipdash CLI for inspecting the dashboard configuration.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errInvalidConfig is returned after the validation errors have been printed.
var errInvalidConfig = errors.New("configuration is invalid")

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errInvalidConfig) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

type rootFlags struct {
	envDir string
	mode   string
	format string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "equipdash",
		Short:         "Equipment dashboard CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.envDir, "env-dir", ".", "directory holding .env files (empty to skip them)")
	root.PersistentFlags().StringVar(&flags.mode, "mode", "", "build mode (defaults to $MODE, then development)")
	root.PersistentFlags().StringVarP(&flags.format, "format", "o", "text", "output format: text, json, yaml")

	root.AddCommand(newConfigCmd(flags))
	return root
}
