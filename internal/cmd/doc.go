// Package cmd provides the cobra command implementations for the varcleaner CLI.
//
// This package contains all subcommand definitions and their execution
// logic for the varcleaner command-line interface. Each command is
// implemented as a separate file with a New<Command>Cmd() factory function
// following cobra conventions.
//
// Commands:
//   - clean: Merge every duplicate package group and back up the originals
//   - scan: Report duplicate package groups without changing anything
//   - seed: Generate a synthetic package tree for testing
//   - version: Show detailed version and build information
//
// The root command (root.go) assembles all subcommands with organized
// grouping for improved help output.
package cmd
