// Package app wires application dependencies for the CLI.
//
// It loads Config, builds the log backend, RNG, metrics, report store and
// benchmark service from it, and exposes them via the Wire struct for
// commands to use.
package app
