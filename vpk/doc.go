// Package vpk implements the var package merge pipeline.
//
// A var package is a zip container holding a tree of named member entries.
// Content distribution tools tend to accumulate several revisions of the
// same package at different sub-paths; this package finds those duplicate
// groups and collapses each one into a single merged archive.
//
// Key Components:
//
// Archive Codec:
//   - ExtractArchive opens a container for random-access read and unpacks
//     every member into a destination directory, rejecting entry names that
//     would escape it
//   - PackDirectory rebuilds a container from a directory tree with
//     forward-slash entry names and a fixed compression method
//
// Group Discovery:
//   - DiscoverGroups scans a root recursively for .var files and groups
//     their absolute paths by basename
//
// Merge Orchestration:
//   - Merger runs one pipeline per duplicate group: concurrent extraction
//     into indexed workspaces, size-based reconciliation of members,
//     repackaging, and relocation of the originals to a backup tree
//   - Groups run concurrently under a fixed outer worker cap; members of a
//     group extract concurrently under an inner pool sized to the group
//
// Reconciliation keeps, for every relative member path, the largest
// occurrence found across a group's extracted copies. Size is a merge
// heuristic, not a correctness proof; ties keep the first occurrence seen.
package vpk
