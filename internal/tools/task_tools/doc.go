// Package task_tools provides MCP tools for managing tasks.
//
// This package implements MCP (Model Context Protocol) tools that wrap
// the task API client, exposing task management to AI assistants over
// the same authenticated REST surface the CLI uses.
//
// # Available Tools
//
//   - task_list_tasks: List tasks, optionally filtered by status
//   - task_create_task: Create a new task
//   - task_update_task: Replace an existing task
//   - task_complete_task: Toggle a task between completed and pending
//   - task_delete_task: Delete a task
//
// All tools except task_list_tasks are write tools and are only
// registered when the server is not in read-only mode.
//
// # Authentication
//
// The underlying client asks its session token provider for a bearer
// token per request; without one, tools return an authentication error
// and no request reaches the API.
package task_tools
