// Package pricer implements Longstaff-Schwartz Monte Carlo (LSM) pricing
// of American put options under geometric Brownian motion.
//
// Three interchangeable implementations share the same path generation
// and regression helpers:
//   - PriceAmericanPut: single backward pass over per-path pending
//     cash flows (the fast default)
//   - PriceAmericanPutMatrix: dense cash-flow table with forward-scan
//     lookup, kept as an independently-structured cross-check
//   - PriceAmericanPutParallel: path work sharded across goroutines
//
// All implementations are deterministic for a fixed seed. The seed is
// part of the public contract: equal inputs produce bit-identical
// results on repeat calls.
package pricer
