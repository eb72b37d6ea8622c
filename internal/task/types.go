package task

// Status is the lifecycle state of a task as reported by the server.
type Status string

// Statuses understood by the task API.
const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusExpired   Status = "Expired"
)

// Effective returns the status with the server's default applied:
// a missing or unknown status counts as pending.
func (s Status) Effective() Status {
	switch s {
	case StatusCompleted, StatusExpired:
		return s
	default:
		return StatusPending
	}
}

// Task represents a single task record as exchanged with the server.
// ID is assigned by the server on creation and is zero until then.
// Deadline is an RFC 3339 UTC timestamp or nil when the task has no
// deadline.
type Task struct {
	ID          int64   `json:"taskId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      Status  `json:"status"`
	Deadline    *string `json:"deadline"`
}

// Draft holds the in-progress form values for a task being created or
// edited. Deadline is in the editable format; Status is optional and
// defaults to pending when the draft is submitted.
type Draft struct {
	Title       string
	Description string
	Deadline    string
	Status      Status
}

// IsZero reports whether the draft holds no values.
func (d Draft) IsZero() bool {
	return d == Draft{}
}

// Filter selects a subset of tasks by effective status.
type Filter string

// Filters accepted by the list controller and the CLI.
const (
	FilterPending   Filter = "Pending"
	FilterCompleted Filter = "Completed"
	FilterExpired   Filter = "Expired"
	FilterAll       Filter = "All"
)

// Valid reports whether f is one of the known filters.
func (f Filter) Valid() bool {
	switch f {
	case FilterPending, FilterCompleted, FilterExpired, FilterAll:
		return true
	}
	return false
}

// Apply returns the tasks visible under the filter. FilterAll returns
// the input unchanged; any other filter keeps tasks whose effective
// status equals it. The projection is pure and never mutates ts.
func (f Filter) Apply(ts []Task) []Task {
	if f == FilterAll {
		return ts
	}
	var visible []Task
	for _, t := range ts {
		if t.Status.Effective() == Status(f) {
			visible = append(visible, t)
		}
	}
	return visible
}
