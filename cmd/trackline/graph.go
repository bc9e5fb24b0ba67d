package main

import (
	"fmt"
	"os"

	"github.com/aretw0/trackline/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [current-step]",
	Short: "Export the dialogue graph visualization",
	Long:  `Validates the dialogue graph and outputs a Mermaid diagram (graph TD), highlighting the given step.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		current := ""
		if len(args) > 0 {
			current = args[0]
		}
		if err := cli.RenderGraph(os.Stdout, current); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
