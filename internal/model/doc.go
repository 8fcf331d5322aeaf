// Package model defines the shared record types exchanged between the
// experiment runner, the result writers, and the HTTP API.
//
// Conventions:
//   - Timestamps: UTC, RFC 3339
//   - Elapsed times: milliseconds as float64
//   - Field names mirror the pricing function signature (S0, K, T, r,
//     sigma, num_paths, num_steps, seed)
package model
