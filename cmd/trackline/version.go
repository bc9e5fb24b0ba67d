package main

import (
	"fmt"

	"github.com/aretw0/trackline"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of trackline",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("trackline version %s\n", trackline.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
