package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/api"
	"github.com/taskdeck/taskdeck/internal/controller"
	"github.com/taskdeck/taskdeck/internal/session"
)

// resolveBaseURL returns the task service base URL from the flag or
// the TASKDECK_BASE_URL environment variable.
func resolveBaseURL(cmd *cobra.Command) (string, error) {
	baseURL, _ := cmd.Flags().GetString("base-url")
	if baseURL == "" {
		baseURL = os.Getenv("TASKDECK_BASE_URL")
	}
	if baseURL == "" {
		return "", fmt.Errorf("no base URL configured: set --base-url or TASKDECK_BASE_URL")
	}
	return baseURL, nil
}

// resolveTokenProvider picks the session token source: an explicit
// token beats a token file, and both fall back to their TASKDECK_*
// environment variables. Without either, the default token file under
// the user's home directory is used.
func resolveTokenProvider(cmd *cobra.Command) session.TokenProvider {
	token, _ := cmd.Flags().GetString("token")
	if token == "" {
		token = os.Getenv("TASKDECK_TOKEN")
	}
	if token != "" {
		return session.NewStaticProvider(token)
	}

	tokenFile, _ := cmd.Flags().GetString("token-file")
	if tokenFile == "" {
		tokenFile = os.Getenv("TASKDECK_TOKEN_FILE")
	}
	if tokenFile == "" {
		tokenFile = filepath.Join(homeDir(), ".config", "taskdeck", "token")
	}
	return session.NewFileProvider(tokenFile)
}

// newAPIClient builds the authenticated task API client from the
// persistent flags.
func newAPIClient(cmd *cobra.Command) (*api.Client, error) {
	baseURL, err := resolveBaseURL(cmd)
	if err != nil {
		return nil, err
	}
	return api.New(api.Config{
		BaseURL: baseURL,
		Tokens:  resolveTokenProvider(cmd),
		Logger:  slog.Default(),
	})
}

// newController wires a controller over the API client.
func newController(cmd *cobra.Command, confirm controller.ConfirmFunc) (*controller.Controller, error) {
	client, err := newAPIClient(cmd)
	if err != nil {
		return nil, err
	}
	return controller.New(controller.Config{
		Service: client,
		Confirm: confirm,
		Logger:  slog.Default(),
	}), nil
}

// parseTaskID parses a task ID command argument.
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task ID %q", arg)
	}
	return id, nil
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	// Windows fallback
	return os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
}
