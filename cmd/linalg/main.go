// SPDX-License-Identifier: MIT

// Command linalg evaluates linear-algebra worksheets.
//
//	linalg run demo.yaml more.yaml --style
//	linalg identity 3
//	linalg ops
//	linalg version
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/katalvlaran/linalg/internal/worksheet"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	styled   bool
	verbose  bool
	failFast bool
	epsilon  float64
)

// main registers the commands and exits with status 1 when the executed
// command returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "linalg",
		Short:         "vector and matrix worksheet evaluator",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	runCmd := &cobra.Command{
		Use:   "run [worksheet.yaml...]",
		Short: "evaluate worksheets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), verbose)
			runner := worksheet.NewRunner(worksheet.WithLogger(logger), worksheet.WithEpsilon(epsilon))
			return runFiles(cmd.Context(), cmd.OutOrStdout(), runner, args, runConfig{
				styled:   styled,
				failFast: failFast,
				logger:   logger,
			})
		},
	}
	runCmd.Flags().BoolVar(&styled, "style", false, "render with colors and boxes")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every step at debug level")
	runCmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop at the first failing worksheet")
	runCmd.Flags().Float64Var(&epsilon, "eps", worksheet.DefaultEpsilon, "tolerance for equal steps")

	identityCmd := &cobra.Command{
		Use:   "identity [n]",
		Short: "print the n×n identity matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid size %q: %w", args[0], err)
			}
			id, err := matrix.Identity(n)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), id)
			return err
		},
	}

	opsCmd := &cobra.Command{
		Use:   "ops",
		Short: "list worksheet operations",
		Run: func(cmd *cobra.Command, args []string) {
			for _, op := range worksheet.Ops() {
				fmt.Fprintln(cmd.OutOrStdout(), op)
			}
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "linalg %s\n", version)
		},
	}

	rootCmd.AddCommand(runCmd, identityCmd, opsCmd, versionCmd)

	return rootCmd
}

// newLogger returns a text logger writing to w; verbose lowers the level to debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
