// Package cli wires the engine's external interfaces (batch file
// selection, watch mode, the fluent/YAML schema surfaces) into a cobra
// command tree. None of it is the engine; it is the command-line entry
// point, file I/O, and XML parser instantiation that sits outside it.
package cli

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "xrefcheck",
	Short: "Validate cross-reference links in an XML document against a declarative rule schema",
}

// Execute runs the CLI, returning any error cobra itself could not resolve.
func Execute() error {
	rootCmd.AddCommand(newValidateCmd())
	return rootCmd.Execute()
}
