// Package database provides the PostgreSQL connection pool backing the
// optional results sink. The results table is append-only; nothing in
// the workbench ever updates or deletes a row.
package database
