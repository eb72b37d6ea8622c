// Package server hosts the auxiliary HTTP surface for the taskdeck MCP
// server: a dedicated Prometheus metrics endpoint with its own
// listener and graceful shutdown.
//
// Serving metrics on a separate port keeps operational data away from
// the MCP transport; the endpoint also answers /healthz for liveness
// probes.
package server
