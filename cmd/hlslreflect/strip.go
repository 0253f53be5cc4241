package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/hlslreflect/reflect"
)

var stripCmd = &cobra.Command{
	Use:   "strip <in> <out>",
	Short: "Load a DHRD container, strip debug symbols, and write the result",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		r, err := reflect.Load(data, false)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		r.StripSymbols()
		out := reflect.Dump(r)

		if err := os.WriteFile(args[1], out, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", args[1], err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "stripped %s -> %s (%d bytes)\n", args[0], args[1], len(out))
		return nil
	},
}
