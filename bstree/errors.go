package bstree

import "errors"

// Sentinel errors for structural edits.
var (
	// ErrNodeOutOfRange indicates a node id outside [0, N).
	ErrNodeOutOfRange = errors.New("bstree: node id out of range")

	// ErrSameNode indicates delete and target resolved to the same node.
	ErrSameNode = errors.New("bstree: delete and target must be distinct nodes")
)
