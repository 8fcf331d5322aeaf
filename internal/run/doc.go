// Package run executes experiment cases against registered pricing
// backends: it expands parameter sweeps, times each pricing call, and
// hands the resulting records to the configured sinks. An unknown
// backend name skips that combination and logs it; it never aborts the
// rest of the run.
package run
