package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcbridejc/switchboard/netlist"
)

var buildCmd = &cobra.Command{
	Use:   "build <netlist.yaml>",
	Short: "Compile a YAML netlist into a device program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		jsonPath, _ := cmd.Flags().GetString("json")
		if out == "" {
			out = strings.TrimSuffix(args[0], ".yaml")
			out = strings.TrimSuffix(out, ".yml") + ".bin"
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		f, err := netlist.Parse(data)
		if err != nil {
			return err
		}
		g, err := f.Compile()
		if err != nil {
			return err
		}
		return emit(g, out, jsonPath)
	},
}

func init() {
	buildCmd.Flags().StringP("out", "o", "", "output path for the binary program (default: input with .bin)")
	buildCmd.Flags().String("json", "", "also write a JSON dump of the coalesced graph")
	rootCmd.AddCommand(buildCmd)
}
