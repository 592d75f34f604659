package bstree

// Coin is a deterministic source of single-bit choices, consumed in a
// documented order so that the same seed always produces the same tree
// edits. floorplan constructs one from its PRNG for each delete_and_insert
// call.
type Coin interface {
	// Next returns the next bit (false/true), advancing the stream.
	Next() bool
}

// bitCoin draws successive low bits out of a fixed-width word, matching
// "bit 0 selects left vs right; on each step re-shift" from the spec. Once
// the word is exhausted it keeps yielding false deterministically rather
// than panicking — tree height is always far below 64, so this never
// triggers in practice, but it keeps Next total.
type bitCoin struct {
	bits uint64
}

// NewBitCoin returns a Coin that peels bits off seed starting from bit 0.
func NewBitCoin(seed uint64) Coin { return &bitCoin{bits: seed} }

func (c *bitCoin) Next() bool {
	bit := c.bits&1 == 1
	c.bits >>= 1

	return bit
}

// DeleteAndInsert deletes node deleteID from the tree and re-inserts it
// adjacent to targetID, per spec.md §4.2. deleteID and targetID must be
// distinct valid node ids.
//
// deleteCoin drives the two-children rotate-down during deletion (one bit
// per rotation step: false=pull up the left child, true=pull up the right
// child). Bit 0 of insertPosition selects which slot under targetID the
// node is attached to (see insertAt); if that slot is already occupied, bit 1
// of insertPosition selects which side of the newly inserted node receives
// the displaced subtree.
func (t *Tree) DeleteAndInsert(deleteID, targetID int, deleteCoin Coin, insertPosition uint64) error {
	if !t.inRange(deleteID) || !t.inRange(targetID) {
		return ErrNodeOutOfRange
	}
	if deleteID == targetID {
		return ErrSameNode
	}

	t.delete(deleteID, deleteCoin)
	t.insertAt(deleteID, targetID, insertPosition)

	return nil
}

// delete removes d from the tree, rotating it down to a leaf/one-child
// position first when it has two children, then splicing it out. d's own
// links are reset to None so it is ready to be reinserted elsewhere by the
// caller. If d is the root, the rotate-down (or direct splice, if d already
// has ≤1 child) naturally reassigns root to whichever node ends up at the
// top — see DESIGN.md for the rationale.
func (t *Tree) delete(d int, coin Coin) {
	for t.left[d] != None && t.right[d] != None {
		if coin.Next() {
			t.rotateUp(d, t.right[d])
		} else {
			t.rotateUp(d, t.left[d])
		}
	}

	// d now has at most one child; splice it out.
	var child int
	if t.left[d] != None {
		child = t.left[d]
	} else {
		child = t.right[d]
	}
	p := t.parent[d]
	if child != None {
		t.parent[child] = p
	}
	if p == None {
		t.root = child
	} else {
		*t.childSlot(p, d) = child
	}

	t.parent[d] = None
	t.left[d] = None
	t.right[d] = None
}

// rotateUp swaps d with its child c (c must be t.left[d] or t.right[d]),
// promoting c into d's former position and pushing d down into the slot c
// vacates. d keeps whichever child of its own was not involved in the
// swap; c keeps whichever child of its own was not involved. This is the
// standard single BST rotation, reused here as the "swap D with one of its
// children" step from spec.md §4.2.
func (t *Tree) rotateUp(d, c int) {
	p := t.parent[d]

	if t.left[d] == c {
		inner := t.right[c]
		t.left[d] = inner
		if inner != None {
			t.parent[inner] = d
		}
		t.right[c] = d
	} else {
		inner := t.left[c]
		t.right[d] = inner
		if inner != None {
			t.parent[inner] = d
		}
		t.left[c] = d
	}

	t.parent[d] = c
	t.parent[c] = p
	if p == None {
		t.root = c
	} else {
		*t.childSlot(p, d) = c
	}
}

// insertAt attaches node n under target, per spec.md §4.2: bit 0 of
// position picks target's left (0) or right (1) slot; if that slot already
// holds a subtree, bit 1 of position picks whether that displaced subtree
// becomes n's left (0) or right (1) child. If the slot was empty, n is
// attached as a leaf.
func (t *Tree) insertAt(n, target int, position uint64) {
	onRight := position&1 == 1
	displacedOnRight := (position>>1)&1 == 1

	var existing int
	if onRight {
		existing = t.right[target]
		t.right[target] = n
	} else {
		existing = t.left[target]
		t.left[target] = n
	}
	t.parent[n] = target
	t.left[n] = None
	t.right[n] = None

	if existing != None {
		t.parent[existing] = n
		if displacedOnRight {
			t.right[n] = existing
		} else {
			t.left[n] = existing
		}
	}
}
