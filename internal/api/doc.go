// Package api provides the authenticated client for the remote task
// management API.
//
// This package wraps the task service's REST endpoints and provides
// functionality for:
//   - Listing the full task collection (GET /tasks)
//   - Creating tasks (POST /tasks)
//   - Replacing tasks (PUT /tasks/{taskId})
//   - Deleting tasks (DELETE /tasks/{taskId})
//
// # Authentication
//
// Every operation asks the configured session.TokenProvider for the
// current bearer token before any network I/O. When no session is
// active the operation fails with a session.AuthError and no request
// is sent. The token is attached verbatim in the Authorization header.
//
// # Error Normalization
//
// Non-2xx responses become an *HTTPError carrying the status code and
// the JSON error body when the server sent one; otherwise the error
// message falls back to the raw status line (for example
// "403 Forbidden"). A 2xx response with an empty body is a valid
// empty result.
//
// # Configuration
//
// Clients are constructed from an explicit Config rather than any
// process-wide setup, so isolated instances with different base URLs,
// transports, or credentials can coexist (and be pointed at test
// servers).
//
// # Example Usage
//
//	client, err := api.New(api.Config{
//	    BaseURL: "https://tasks.example.com/prod",
//	    Tokens:  session.NewStaticProvider(token),
//	})
//	if err != nil {
//	    return err
//	}
//
//	tasks, err := client.ListTasks(ctx)
//	if err != nil {
//	    return err
//	}
package api
