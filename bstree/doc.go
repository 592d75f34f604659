// Package bstree is documented at the top of bstree.go (the Tree type and
// its flat-array representation) and edit.go (DeleteAndInsert and the
// rotate-down/insert-with-displacement algorithms it composes).
package bstree
