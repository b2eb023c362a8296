package main

import (
	"github.com/spf13/cobra"

	"github.com/mcbridejc/switchboard"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Emit the built-in two-light dimmer demo system",
	Long: `Builds the demo system: two two-button dimmers with software overrides
joined onto output slots 3 and 4, and writes its device program.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		jsonPath, _ := cmd.Flags().GetString("json")

		g, err := switchboard.DimmerDemo()
		if err != nil {
			return err
		}
		return emit(g, out, jsonPath)
	},
}

func init() {
	exampleCmd.Flags().StringP("out", "o", "example1.bin", "output path for the binary program")
	exampleCmd.Flags().String("json", "", "also write a JSON dump of the coalesced graph")
	rootCmd.AddCommand(exampleCmd)
}
