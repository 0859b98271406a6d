// Package foreststore provides an ephemeral, thread-safe, in-memory store of
// named forests for the API server.
//
// # Purpose
//
// Console screens keep asking the same questions of one hierarchy (the menu
// tree, the department tree): render it, list the valid parents of a node,
// show the breadcrumb of a node. The store lets a hierarchy be built once,
// either at startup from the configured source or through the API, and then
// queried by name from any number of concurrent requests.
//
// # Concurrency Model
//
// Snapshots are stored in a sync.Map keyed by forest name. A stored forest
// is never mutated; replacing a forest stores a fresh snapshot, so readers
// holding the previous one keep a consistent view.
//
// # Characteristics
//
//   - **Ephemeral:** nothing survives a restart
//   - **Whole-forest writes:** a snapshot is replaced, never patched
package foreststore
