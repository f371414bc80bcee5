// Package commands defines the pqmudh CLI and wires dependencies for subcommands.
//
// Commands
//
//   - run       Time pqXDH against the pqMuDH combiners
//   - selftest  Check that both combiners agree on every parameter branch
//
// # Implementation
//
// The root command loads the TOML config (or defaults), applies flag
// overrides and builds the dependency graph before any subcommand runs. The
// graph is closed after the subcommand returns, which also writes the
// metrics export when one is configured.
package commands
