package main

import (
	"fmt"
	"os"

	"github.com/aretw0/trackline/internal/cli"
	"github.com/spf13/cobra"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the assistant in the terminal",
	Long: `Starts a conversation on stdin/stdout. Type exit or quit to leave.
With --json, input and output are newline-delimited JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		jsonMode, _ := cmd.Flags().GetBool("json")
		noBanner, _ := cmd.Flags().GetBool("no-banner")
		style, _ := cmd.Flags().GetString("style")

		opts := cli.ChatOptions{
			CommonOptions: commonOptions(cmd),
			JSON:          jsonMode,
			NoBanner:      noBanner,
			Style:         style,
		}
		if err := cli.RunChat(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	chatCmd.Flags().Bool("no-banner", false, "Do not print the banner")
	chatCmd.Flags().String("style", "", "Glamour style for bot messages (dark, light, notty; default: auto)")

	// chat is the default if no command is provided
	rootCmd.Run = chatCmd.Run
	rootCmd.Flags().AddFlagSet(chatCmd.Flags())
}
