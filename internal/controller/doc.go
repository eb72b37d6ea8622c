// Package controller holds the client-side state machine for the task
// list: the loaded tasks, the active filter, the edit form, and the
// loading/error indicators a frontend renders from.
//
// The controller talks to the task API through the Service interface
// (satisfied by *api.Client) and refetches the full list after every
// mutation, so its view of the collection is always the server's.
// Errors from any action are captured as a display string rather than
// propagated; the loading flag is cleared on every outcome.
//
// State is guarded by a mutex but network calls run outside it, so
// overlapping actions are safe; when responses race, the last one to
// resolve wins.
package controller
