package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcbridejc/switchboard"
)

var rootCmd = &cobra.Command{
	Use:   "switchboard",
	Short: "Compile event graphs into device programs",
	Long: `Switchboard compiles a declarative description of event-driven logic
(buttons, software inputs, latches, muxes, level cyclers) into the binary
program evaluated on-device, plus an optional human-readable JSON dump.`,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// emit coalesces g and writes the binary program, plus a JSON dump when
// jsonPath is non-empty.
func emit(g *switchboard.Graph, binPath, jsonPath string) error {
	g.Coalesce()

	bin, err := switchboard.Encode(g)
	if err != nil {
		return err
	}
	if err := os.WriteFile(binPath, bin, 0o644); err != nil {
		return err
	}
	if jsonPath != "" {
		data, err := json.MarshalIndent(g.Dump(), "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
			return err
		}
	}
	fmt.Printf("%s: %d buttons, %d software ports, %d cells, %d bytes\n",
		binPath, len(g.Buttons()), len(g.Software()), len(g.Cells()), len(bin))
	return nil
}
