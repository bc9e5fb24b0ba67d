package main

import (
	"fmt"
	"os"

	"github.com/aretw0/trackline/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trackline",
	Short: "Trackline is a lost-package tracking assistant",
	Long: `Trackline walks a user through finding a lost package: it asks for a tracking number,
validates it, falls back to an order number or email, and offers a human agent when it gets stuck.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("env-file", "", "Load TRACKLINE_* variables from a .env file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().String("session-id", "", "Session identifier (default: random UUID)")
	rootCmd.PersistentFlags().String("redis-addr", "", "Mirror the transcript to a Redis stream at this address")
}

func commonOptions(cmd *cobra.Command) cli.CommonOptions {
	configPath, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")
	debug, _ := cmd.Flags().GetBool("debug")
	sessionID, _ := cmd.Flags().GetString("session-id")
	redisAddr, _ := cmd.Flags().GetString("redis-addr")
	return cli.CommonOptions{
		ConfigPath: configPath,
		EnvFile:    envFile,
		Debug:      debug,
		SessionID:  sessionID,
		RedisAddr:  redisAddr,
	}
}
