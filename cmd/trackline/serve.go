package main

import (
	"fmt"
	"os"

	"github.com/aretw0/trackline/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts one conversation and exposes it over HTTP: POST /turns, GET /transcript,
GET /state, GET /events (SSE), GET /health and GET /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")

		opts := cli.ServeOptions{
			CommonOptions: commonOptions(cmd),
			Addr:          addr,
		}
		if err := cli.RunServe(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on (default from config, :8080)")
}
