// Package writer implements result sinks for benchmark records.
//
// Writers:
//   - JSONL writer (newline-delimited JSON file, always on)
//   - Postgres writer (optional, enabled by config)
//
// All writers use append-only semantics (never update, only insert).
package writer
