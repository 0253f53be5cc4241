package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gogpu/hlslreflect/reflect"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Load and validate a DHRD container without printing its contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		noColor, _ := cmd.Flags().GetBool("no-color")
		color.NoColor = noColor

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		if _, err := reflect.Load(data, false); err != nil {
			color.New(color.FgRed, color.Bold).Fprintln(cmd.OutOrStdout(), "invalid")
			return err
		}

		color.New(color.FgGreen, color.Bold).Fprintln(cmd.OutOrStdout(), "valid")
		return nil
	},
}
