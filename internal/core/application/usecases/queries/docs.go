// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers bypass the
// domain model and read directly from the database for optimal performance.
// Queries never modify state and never append audit events.
package queries
