// Package task tracks background experiment runs in memory.
//
// Tasks move pending -> running -> completed or failed. Every update
// publishes a snapshot to subscribers with latest-wins semantics: a
// slow subscriber may miss intermediate progress but always observes
// the most recent state, including the terminal one.
package task
