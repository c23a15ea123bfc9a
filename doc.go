// Package main provides the varcleaner command-line interface.
//
// varcleaner deduplicates a tree of versioned .var archive packages. Copies
// of the same package accumulated at different sub-paths are merged into a
// single archive that keeps the largest revision of every internal file,
// and the originals are relocated to a backup folder.
//
// The main binary supports multiple subcommands:
//   - clean: Merge every duplicate package group and back up the originals
//   - scan: Report duplicate package groups without changing anything
//   - seed: Generate a synthetic package tree for testing
package main
