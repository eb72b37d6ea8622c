// Package cmd implements the command-line interface for taskdeck.
//
// This package provides the following commands:
//   - list: List tasks, optionally filtered by status
//   - add: Create a new task
//   - edit: Update fields of an existing task
//   - done: Toggle a task between completed and pending
//   - rm: Delete a task
//   - serve: Start the MCP server to provide task tools for AI assistants
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// The list command is the default command when no subcommand is specified.
//
// Connection settings come from persistent flags or their TASKDECK_*
// environment equivalents: --base-url (TASKDECK_BASE_URL), --token
// (TASKDECK_TOKEN), and --token-file (TASKDECK_TOKEN_FILE).
package cmd
