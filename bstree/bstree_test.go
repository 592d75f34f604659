package bstree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outlineopt/fpcore/bstree"
)

func TestNew_ChainShape(t *testing.T) {
	tr := bstree.New(4)
	require.Equal(t, 0, tr.RootID())
	require.NoError(t, tr.Validate())

	for i := 0; i < 3; i++ {
		require.Equal(t, i+1, tr.LeftChild(i))
		require.Equal(t, bstree.None, tr.RightChild(i))
	}
	require.Equal(t, bstree.None, tr.LeftChild(3))
	require.Equal(t, bstree.None, tr.Parent(0))
	require.Equal(t, 0, tr.Parent(1))
}

func TestUnvisitAll(t *testing.T) {
	tr := bstree.New(3)
	tr.Visit(0)
	tr.Visit(2)
	require.True(t, tr.IsVisited(0))
	require.True(t, tr.IsVisited(2))
	require.False(t, tr.IsVisited(1))

	tr.UnvisitAll()
	require.False(t, tr.IsVisited(0))
	require.False(t, tr.IsVisited(2))
}

func TestClone_IsIndependent(t *testing.T) {
	tr := bstree.New(3)
	clone := tr.Clone()

	require.NoError(t, tr.DeleteAndInsert(2, 0, bstree.NewBitCoin(0), 0))
	require.Equal(t, 1, clone.LeftChild(0), "clone must not observe mutations to the original")
}

func TestDeleteAndInsert_LeafNode(t *testing.T) {
	// Chain 0 -> 1 -> 2 -> 3 (all left children).
	tr := bstree.New(4)
	// Delete leaf 3, insert as left child of 1.
	require.NoError(t, tr.DeleteAndInsert(3, 1, bstree.NewBitCoin(0), 0 /*left slot; displaced subtree goes left*/))
	require.NoError(t, tr.Validate())
	require.Equal(t, 3, tr.LeftChild(1))
	require.Equal(t, 2, tr.LeftChild(3), "1's old left child (2) must have been displaced onto the inserted node")
}

func TestDeleteAndInsert_RootWithOneChild(t *testing.T) {
	tr := bstree.New(3) // 0 -> 1 -> 2, root=0 has only a left child.
	require.NoError(t, tr.DeleteAndInsert(0, 2, bstree.NewBitCoin(0), 1 /*attach as right child*/))
	require.NoError(t, tr.Validate())
	require.Equal(t, 1, tr.RootID(), "deleting the root must reassign root to its surviving child")
	require.Equal(t, 0, tr.RightChild(2))
}

func TestDeleteAndInsert_TwoChildRootRotatesDown(t *testing.T) {
	// Build: root 0 has left=1, right=2. Both leaves.
	tr := bstree.New(3)
	require.NoError(t, tr.DeleteAndInsert(2, 0, bstree.NewBitCoin(0), 1 /*attach 2 as right child of 0*/))
	require.NoError(t, tr.Validate())
	require.Equal(t, 0, tr.RootID())
	require.Equal(t, 1, tr.LeftChild(0))
	require.Equal(t, 2, tr.RightChild(0))

	// Now delete root 0 (two children): coin bit 0 = 1 selects right child (2) to rotate up.
	require.NoError(t, tr.DeleteAndInsert(0, 1, bstree.NewBitCoin(1), 0))
	require.NoError(t, tr.Validate())
	require.Equal(t, 2, tr.RootID(), "root with two children must rotate its chosen child to the top")
}

func TestDeleteAndInsert_RejectsSameNode(t *testing.T) {
	tr := bstree.New(3)
	require.ErrorIs(t, tr.DeleteAndInsert(0, 0, bstree.NewBitCoin(0), 0), bstree.ErrSameNode)
}

func TestDeleteAndInsert_RejectsOutOfRange(t *testing.T) {
	tr := bstree.New(3)
	require.ErrorIs(t, tr.DeleteAndInsert(0, 5, bstree.NewBitCoin(0), 0), bstree.ErrNodeOutOfRange)
}

func TestDeleteAndInsert_PreservesNodeSet(t *testing.T) {
	tr := bstree.New(6)
	ops := []struct {
		del, target int
		coin        uint64
		pos         uint64
	}{
		{5, 0, 0, 1},
		{3, 2, 1, 2},
		{0, 4, 0, 3},
		{1, 2, 1, 0},
	}
	for _, op := range ops {
		require.NoError(t, tr.DeleteAndInsert(op.del, op.target, bstree.NewBitCoin(op.coin), op.pos))
		require.NoError(t, tr.Validate())
	}

	seen := make(map[int]bool)
	var walk func(id int)
	walk = func(id int) {
		if id == bstree.None {
			return
		}
		seen[id] = true
		walk(tr.LeftChild(id))
		walk(tr.RightChild(id))
	}
	walk(tr.RootID())
	require.Len(t, seen, 6)
	for i := 0; i < 6; i++ {
		require.True(t, seen[i], "node %d must still be present", i)
	}
}
