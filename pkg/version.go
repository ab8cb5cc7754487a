// Package memimport imports member records from a CSV export into the
// members table of a hosted relational backend.
package memimport

var (
	// Version of memimport, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
