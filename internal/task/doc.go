// Package task defines the task domain model shared by the API client,
// the list controller, the CLI and the MCP tools.
//
// A task is identified by a server-assigned numeric ID and carries a
// title, an optional description, a status (pending, completed or
// expired) and an optional deadline.
//
// # Deadline formats
//
// Deadlines exist in two representations:
//   - the wire format: an RFC 3339 UTC timestamp string (or null),
//     exchanged with the server
//   - the editable format: a timezone-naive, minute-precision string
//     ("2006-01-02T15:04") in local time, used by input fields and
//     CLI flags
//
// WireToEditable and EditableToWire translate between the two and
// round-trip at minute precision. Invalid or empty input never yields
// an invalid date: the editable sentinel is the empty string and the
// wire sentinel is nil.
package task
