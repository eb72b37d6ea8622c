package task_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/taskdeck/taskdeck/internal/instrumentation"
	"github.com/taskdeck/taskdeck/internal/task"
	"github.com/taskdeck/taskdeck/internal/tools/common"
)

// Service is the slice of the task API the tools depend on.
// *api.Client satisfies it.
type Service interface {
	ListTasks(ctx context.Context) ([]task.Task, error)
	CreateTask(ctx context.Context, draft task.Draft) error
	UpdateTask(ctx context.Context, id int64, t task.Task) error
	DeleteTask(ctx context.Context, id int64) error
}

// getTaskIDFromArgs extracts the numeric task ID from request arguments.
// JSON numbers arrive as float64.
func getTaskIDFromArgs(args map[string]interface{}) (int64, error) {
	switch v := args["taskId"].(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, fmt.Errorf("taskId is required and must be a number")
	}
}

// findTask fetches the current list and returns the task with the
// given ID.
func findTask(ctx context.Context, svc Service, id int64) (task.Task, error) {
	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		return task.Task{}, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return task.Task{}, fmt.Errorf("task %d not found", id)
}

// RegisterTaskTools registers all task management tools with the MCP
// server. Write tools are skipped in read-only mode.
func RegisterTaskTools(s *mcpserver.MCPServer, svc Service, metrics *instrumentation.Metrics, readOnly bool) error {
	// List tasks tool (read-only, always available)
	listTasksTool := mcp.NewTool("task_list_tasks",
		mcp.WithDescription("List tasks, optionally filtered by status"),
		mcp.WithString("filter",
			mcp.Description("Status filter: 'Pending', 'Completed', 'Expired', or 'All' (default: 'All')"),
		),
	)

	s.AddTool(listTasksTool, common.InstrumentedToolHandler("task_list_tasks", metrics,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			filter := task.FilterAll
			if f, ok := args["filter"].(string); ok && f != "" {
				filter = task.Filter(f)
				if !filter.Valid() {
					return mcp.NewToolResultError(fmt.Sprintf("unknown filter %q", f)), nil
				}
			}

			tasks, err := svc.ListTasks(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list tasks: %v", err)), nil
			}

			result, _ := json.MarshalIndent(filter.Apply(tasks), "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	if readOnly {
		return nil
	}

	// Create task tool
	createTaskTool := mcp.NewTool("task_create_task",
		mcp.WithDescription("Create a new task"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The title of the new task"),
		),
		mcp.WithString("description",
			mcp.Description("Description for the task"),
		),
		mcp.WithString("deadline",
			mcp.Description("Deadline in 'YYYY-MM-DDTHH:MM' local time (omit for no deadline)"),
		),
	)

	s.AddTool(createTaskTool, common.InstrumentedToolHandler("task_create_task", metrics,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			title, ok := args["title"].(string)
			if !ok || title == "" {
				return mcp.NewToolResultError("title is required"), nil
			}

			draft := task.Draft{Title: title}
			if description, ok := args["description"].(string); ok {
				draft.Description = description
			}
			if deadline, ok := args["deadline"].(string); ok {
				draft.Deadline = deadline
			}

			if err := svc.CreateTask(ctx, draft); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create task: %v", err)), nil
			}

			return mcp.NewToolResultText(fmt.Sprintf("Task %q created successfully", title)), nil
		}))

	// Update task tool
	updateTaskTool := mcp.NewTool("task_update_task",
		mcp.WithDescription("Replace an existing task. All fields are resent; omitted fields are cleared."),
		mcp.WithNumber("taskId",
			mcp.Required(),
			mcp.Description("The ID of the task to update"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The new title for the task"),
		),
		mcp.WithString("description",
			mcp.Description("The new description for the task"),
		),
		mcp.WithString("deadline",
			mcp.Description("New deadline in 'YYYY-MM-DDTHH:MM' local time (omit to clear)"),
		),
		mcp.WithString("status",
			mcp.Description("New status: 'Pending' or 'Completed' (default: 'Pending')"),
		),
	)

	s.AddTool(updateTaskTool, common.InstrumentedToolHandler("task_update_task", metrics,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			taskID, err := getTaskIDFromArgs(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			title, ok := args["title"].(string)
			if !ok || title == "" {
				return mcp.NewToolResultError("title is required"), nil
			}

			t := task.Task{ID: taskID, Title: title}
			if description, ok := args["description"].(string); ok {
				t.Description = description
			}
			if deadline, ok := args["deadline"].(string); ok {
				t.Deadline = task.EditableToWire(deadline)
			}
			if status, ok := args["status"].(string); ok {
				t.Status = task.Status(status)
			}
			t.Status = t.Status.Effective()

			if err := svc.UpdateTask(ctx, taskID, t); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to update task: %v", err)), nil
			}

			result, _ := json.MarshalIndent(t, "", "  ")
			return mcp.NewToolResultText(fmt.Sprintf("Task updated successfully:\n%s", string(result))), nil
		}))

	// Complete task tool
	completeTaskTool := mcp.NewTool("task_complete_task",
		mcp.WithDescription("Toggle a task between completed and pending"),
		mcp.WithNumber("taskId",
			mcp.Required(),
			mcp.Description("The ID of the task to toggle"),
		),
	)

	s.AddTool(completeTaskTool, common.InstrumentedToolHandler("task_complete_task", metrics,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			taskID, err := getTaskIDFromArgs(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			t, err := findTask(ctx, svc, taskID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to toggle task: %v", err)), nil
			}

			if t.Status.Effective() == task.StatusCompleted {
				t.Status = task.StatusPending
			} else {
				t.Status = task.StatusCompleted
			}

			if err := svc.UpdateTask(ctx, taskID, t); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to toggle task: %v", err)), nil
			}

			return mcp.NewToolResultText(fmt.Sprintf("Task %d (%s) is now %s", taskID, t.Title, t.Status)), nil
		}))

	// Delete task tool
	deleteTaskTool := mcp.NewTool("task_delete_task",
		mcp.WithDescription("Delete a task"),
		mcp.WithNumber("taskId",
			mcp.Required(),
			mcp.Description("The ID of the task to delete"),
		),
	)

	s.AddTool(deleteTaskTool, common.InstrumentedToolHandler("task_delete_task", metrics,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, _ := request.Params.Arguments.(map[string]interface{})

			taskID, err := getTaskIDFromArgs(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := svc.DeleteTask(ctx, taskID); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to delete task: %v", err)), nil
			}

			return mcp.NewToolResultText(fmt.Sprintf("Task %d deleted successfully", taskID)), nil
		}))

	return nil
}
