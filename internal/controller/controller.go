package controller

import (
	"context"
	"log/slog"
	"sync"

	"github.com/taskdeck/taskdeck/internal/logging"
	"github.com/taskdeck/taskdeck/internal/task"
)

// Service is the slice of the task API the controller depends on.
// *api.Client satisfies it; tests substitute a fake.
type Service interface {
	ListTasks(ctx context.Context) ([]task.Task, error)
	CreateTask(ctx context.Context, draft task.Draft) error
	UpdateTask(ctx context.Context, id int64, t task.Task) error
	DeleteTask(ctx context.Context, id int64) error
}

// ConfirmFunc decides whether a destructive action on the given task
// should proceed. A nil ConfirmFunc means always proceed.
type ConfirmFunc func(t task.Task) bool

// Config holds the dependencies for a Controller.
type Config struct {
	Service Service

	// Confirm gates task deletion. Optional; nil skips confirmation.
	Confirm ConfirmFunc

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Controller owns the task list view state.
type Controller struct {
	svc     Service
	confirm ConfirmFunc
	logger  *slog.Logger

	mu        sync.Mutex
	tasks     []task.Task
	filter    task.Filter
	editingID *int64
	form      task.Draft
	loading   bool
	errMsg    string
	activated bool
}

// New creates a controller with an empty task list and the pending
// filter active.
func New(cfg Config) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		svc:     cfg.Service,
		confirm: cfg.Confirm,
		logger:  logger,
		tasks:   []task.Task{},
		filter:  task.FilterPending,
	}
}

// Activate performs the initial load. Repeated calls are no-ops; use
// Refresh to reload explicitly.
func (c *Controller) Activate(ctx context.Context) {
	c.mu.Lock()
	if c.activated {
		c.mu.Unlock()
		return
	}
	c.activated = true
	c.mu.Unlock()

	c.Refresh(ctx)
}

// Refresh reloads the task list from the service. On failure the
// previous list is kept and the error is stored for display.
func (c *Controller) Refresh(ctx context.Context) {
	c.beginAction()

	tasks, err := c.svc.ListTasks(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.errMsg = err.Error()
		c.logger.Error("failed to load tasks", logging.Err(err))
		return
	}
	c.tasks = tasks
	c.errMsg = ""
}

// Create submits a new task and refetches the list so the
// server-assigned ID becomes visible. The form is cleared only once
// the create succeeds, so a failure keeps the draft for retry.
func (c *Controller) Create(ctx context.Context, draft task.Draft) {
	c.mutate(ctx, "create", func(ctx context.Context) error {
		return c.svc.CreateTask(ctx, draft)
	}, func() {
		c.form = task.Draft{}
	})
}

// Update replaces the task with the given ID from a draft. The full
// record is resent; the draft's status is preserved as-is. An edit in
// progress for the ID ends only when the update succeeds, so a failure
// keeps the form for retry.
func (c *Controller) Update(ctx context.Context, id int64, draft task.Draft) {
	t := task.Task{
		ID:          id,
		Title:       draft.Title,
		Description: draft.Description,
		Status:      draft.Status.Effective(),
		Deadline:    task.EditableToWire(draft.Deadline),
	}

	c.mutate(ctx, "update", func(ctx context.Context) error {
		return c.svc.UpdateTask(ctx, id, t)
	}, func() {
		if c.editingID != nil && *c.editingID == id {
			c.editingID = nil
			c.form = task.Draft{}
		}
	})
}

// Delete removes the task with the given ID after confirmation. A
// declined confirmation leaves the list and error state untouched.
func (c *Controller) Delete(ctx context.Context, id int64) {
	t, ok := c.taskByID(id)
	if !ok {
		return
	}
	if c.confirm != nil && !c.confirm(t) {
		return
	}

	c.mutate(ctx, "delete", func(ctx context.Context) error {
		return c.svc.DeleteTask(ctx, id)
	}, nil)
}

// ToggleComplete flips the task between completed and pending, leaving
// title, description, and deadline exactly as the server sent them.
func (c *Controller) ToggleComplete(ctx context.Context, id int64) {
	t, ok := c.taskByID(id)
	if !ok {
		return
	}

	if t.Status.Effective() == task.StatusCompleted {
		t.Status = task.StatusPending
	} else {
		t.Status = task.StatusCompleted
	}

	c.mutate(ctx, "toggle", func(ctx context.Context) error {
		return c.svc.UpdateTask(ctx, id, t)
	}, nil)
}

// BeginEdit loads the task into the form with the deadline translated
// to the editable layout. Unknown IDs are ignored.
func (c *Controller) BeginEdit(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, t := range c.tasks {
		if t.ID == id {
			c.editingID = &id
			c.form = task.Draft{
				Title:       t.Title,
				Description: t.Description,
				Deadline:    task.WireToEditable(t.Deadline),
				Status:      t.Status.Effective(),
			}
			return
		}
	}
}

// CancelEdit discards the form and leaves edit mode.
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editingID = nil
	c.form = task.Draft{}
}

// SetFilter switches the visible projection. Invalid filters are
// ignored.
func (c *Controller) SetFilter(f task.Filter) {
	if !f.Valid() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = f
}

// SetForm replaces the form state, e.g. as the user types.
func (c *Controller) SetForm(d task.Draft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = d
}

// Visible returns the tasks matching the active filter.
func (c *Controller) Visible() []task.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter.Apply(c.tasks)
}

// Tasks returns a copy of the full loaded list.
func (c *Controller) Tasks() []task.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]task.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Filter returns the active filter.
func (c *Controller) Filter() task.Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Editing reports the ID under edit, if any.
func (c *Controller) Editing() (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editingID == nil {
		return 0, false
	}
	return *c.editingID, true
}

// Form returns the current form state.
func (c *Controller) Form() task.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Loading reports whether an action is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the display message from the last failed action, empty
// after a success.
func (c *Controller) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// mutate runs a write against the service and, on success, applies
// onSuccess under the lock and refetches the list. The service calls
// happen outside the lock. A failed write leaves all state except
// loading and the error message untouched.
func (c *Controller) mutate(ctx context.Context, operation string, fn func(ctx context.Context) error, onSuccess func()) {
	c.beginAction()
	logger := logging.WithOperation(c.logger, operation)

	if err := fn(ctx); err != nil {
		c.mu.Lock()
		c.loading = false
		c.errMsg = err.Error()
		c.mu.Unlock()
		logger.Error("task action failed", logging.Err(err))
		return
	}

	if onSuccess != nil {
		c.mu.Lock()
		onSuccess()
		c.mu.Unlock()
	}

	tasks, err := c.svc.ListTasks(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.errMsg = err.Error()
		logger.Error("refresh after task action failed", logging.Err(err))
		return
	}
	c.tasks = tasks
	c.errMsg = ""
}

func (c *Controller) beginAction() {
	c.mu.Lock()
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()
}

func (c *Controller) taskByID(id int64) (task.Task, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}
