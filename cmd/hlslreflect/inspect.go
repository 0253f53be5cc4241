package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gogpu/hlslreflect/reflect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print a human-readable dump of a DHRD container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		noColor, _ := cmd.Flags().GetBool("no-color")
		cfg, err := loadConfig("")
		if err != nil {
			return err
		}
		color.NoColor = noColor || !cfg.Display.Color

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		r, err := reflect.Load(data, true)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		header := color.New(color.FgCyan, color.Bold)
		header.Fprintf(cmd.OutOrStdout(), "%s (%d nodes)\n", args[0], len(r.Nodes))
		r.Printf(cmd.OutOrStdout())
		return nil
	},
}
