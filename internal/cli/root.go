// Package cli implements the interop command line tool.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arloliu/interop"
)

var version = "0.1.0"

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:     "interop",
	Short:   "Inspect and convert sequencing InterOp metric files",
	Version: version,
	Long: `interop reads the binary metric files written to the InterOp folder of a
sequencing run. It prints headers and records, converts files between
versions and compression formats, and summarizes which metric groups a run
folder holds.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		noColor, _ := cmd.Flags().GetBool("no-color")
		if noColor {
			color.NoColor = true
		}
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command. It is called once by main.
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		errorColor().Fprintln(os.Stderr, "Error:", err)
		return err
	}

	return nil
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every file read and written")
	RootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	RootCmd.AddCommand(groupsCmd)
	RootCmd.AddCommand(infoCmd)
	RootCmd.AddCommand(dumpCmd)
	RootCmd.AddCommand(convertCmd)
	RootCmd.AddCommand(runCmd)
}

// logger returns the logger selected by --verbose.
func logger(cmd *cobra.Command) *interop.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return interop.NoopLogger()
	}

	return interop.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func headingColor() *color.Color {
	return color.New(color.Bold).Add(color.FgCyan)
}

func okColor() *color.Color {
	return color.New(color.Bold).Add(color.FgGreen)
}

func errorColor() *color.Color {
	return color.New(color.Bold).Add(color.FgRed)
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
