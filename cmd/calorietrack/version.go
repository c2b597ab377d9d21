// ABOUTME: CLI command for printing the build version.
// ABOUTME: The version string is injected with -ldflags at build time.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Annotations: map[string]string{annotationNoSession: "true"},
	Use:         "version",
	Short:       "Print the version",
	Args:        cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "calorietrack %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
