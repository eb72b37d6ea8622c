// Package common provides shared helpers for MCP tool implementations,
// currently the instrumentation wrapper that gives every tool handler a
// trace span and invocation metrics.
package common
