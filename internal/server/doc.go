// Package server exposes the workbench HTTP API.
//
// Endpoints:
//   - POST /run-experiment        submit an experiment, returns a task ID
//   - GET  /task-status/{id}      poll a task snapshot
//   - GET  /ws/task-status/{id}   stream task snapshots over WebSocket
//   - GET  /backends              list registered pricing backends
//   - GET  /health                liveness probe
//
// Experiments run in background goroutines; the handlers never block on
// a pricing call.
package server
