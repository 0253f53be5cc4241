// hlslreflect inspects, validates, and strips HLSL reflection containers
// produced by the reflect package's binary codec.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hlslreflect",
	Short: "Inspect and manipulate DHRD shader-reflection containers",
}

func main() {
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(stripCmd)
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
