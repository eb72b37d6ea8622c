package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the taskdeck application
var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "Manage tasks on a remote task service",
	Long: `taskdeck is a client for a remote task management service. It lists,
creates, edits, completes, and deletes tasks over the service's REST API.

It can run as:
  - A standalone CLI tool (default)
  - An MCP (Model Context Protocol) server for AI assistants`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			level = slog.LevelDebug
		}
		// stderr keeps stdout clean for command output and the MCP
		// stdio transport.
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "taskdeck version %s\n" .Version}}`)

	// If no subcommand is provided, run the list command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "list")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("base-url", "", "Base URL of the task service. Can also use TASKDECK_BASE_URL env var.")
	rootCmd.PersistentFlags().String("token", "", "Session token for the task service. Can also use TASKDECK_TOKEN env var.")
	rootCmd.PersistentFlags().String("token-file", "", "File holding the session token. Can also use TASKDECK_TOKEN_FILE env var.")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newDoneCmd())
	rootCmd.AddCommand(newRmCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
	rootCmd.AddCommand(newVersionCmd())
}
