// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

// Package tct implements the Tiered Commitment Tree: a three-tier, 24-level quad-tree
// accumulator over opaque field-element commitments, with incremental serialization and
// selective forgetting of witness data.
package tct

// commitmentTierRootHeight, blockTierRootHeight and epochTierRootHeight are the heights of the
// roots of the commitment, block and epoch tiers. blockBoundaryHeight and epochBoundaryHeight
// name the node one level above a tier's own root, which is where EndBlock and EndEpoch seal
// and advance.
const (
	commitmentTierRootHeight uint8 = 8
	blockTierRootHeight      uint8 = 16
	epochTierRootHeight      uint8 = 24

	blockBoundaryHeight = commitmentTierRootHeight + 1
	epochBoundaryHeight = blockTierRootHeight + 1
)

// Tree is a Tiered Commitment Tree. The zero value is not usable; construct one with New.
type Tree struct {
	root      *internalNode
	position  Position
	forgotten Forgotten
	index     map[Commitment]Position
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{index: make(map[Commitment]Position)}
}

// Position is the position the next Insert will be placed at.
func (t *Tree) Position() Position { return t.position }

// Len reports how many positions have been consumed so far (by insertion or by sealing an
// empty block/epoch).
func (t *Tree) Len() uint64 { return uint64(t.position) }

// Root returns the root hash of the tree. An entirely empty tree (nothing inserted and no block
// or epoch ended yet, so no root node exists) hashes
// as though it were a single sealed, empty node: its children pad with One rather than Zero,
// since there is no in-progress frontier to speak of yet.
func (t *Tree) Root() Hash {
	if t.root == nil {
		one := One()
		return NodeHash(epochTierRootHeight, one, one, one, one)
	}
	return t.root.Hash()
}

// Insert adds a commitment at the tree's current position, returning that position. Duplicate
// commitments (still active, i.e. not forgotten) are rejected, as is inserting past capacity.
func (t *Tree) Insert(c Commitment, w Witness) (Position, error) {
	if t.position >= MaxPosition {
		return 0, ErrFull
	}
	if _, dup := t.index[c]; dup {
		return 0, ErrDuplicateCommitment
	}
	if t.root == nil {
		t.root = newFrontierInternal(epochTierRootHeight)
	}
	pos := t.position
	if !t.root.insertLeaf(c, w, t.forgotten) {
		return 0, ErrFull
	}
	if w == Keep {
		t.index[c] = pos
	}
	t.position++
	return pos, nil
}

// EndBlock seals the current block (the currently open commitment-tier subtree), even if it is
// empty, and advances the position to the start of the next block.
func (t *Tree) EndBlock() error {
	if t.root == nil {
		t.root = newFrontierInternal(epochTierRootHeight)
	}
	if err := t.root.forceSealBoundary(blockBoundaryHeight); err != nil {
		return err
	}
	t.position = blockBoundary(t.position)
	return nil
}

// EndEpoch seals the current epoch (the currently open block-tier subtree), even if it is
// empty, and advances the position to the start of the next epoch. An epoch boundary is always
// also a block boundary, so this implicitly ends the current block first.
func (t *Tree) EndEpoch() error {
	if t.root == nil {
		t.root = newFrontierInternal(epochTierRootHeight)
	}
	if err := t.root.forceSealBoundary(epochBoundaryHeight); err != nil {
		return err
	}
	t.position = epochBoundary(t.position)
	return nil
}

// PositionOf reports the position of c, if it is currently witnessed (inserted with Keep, and
// not since forgotten).
func (t *Tree) PositionOf(c Commitment) (Position, bool) {
	pos, ok := t.index[c]
	return pos, ok
}

// Witness returns an auth path for c, if it is currently witnessed (inserted with Keep, and not
// since forgotten). Lookup is by the commitment itself, via the tree's commitment index, not by
// position.
func (t *Tree) Witness(c Commitment) (*Proof, error) {
	pos, ok := t.PositionOf(c)
	if !ok {
		return nil, ErrNotWitnessed
	}
	return t.witnessAt(pos)
}

// witnessAt returns an auth path for the commitment at pos, if it exists and is still witnessed.
func (t *Tree) witnessAt(pos Position) (*Proof, error) {
	if t.root == nil || pos >= t.position {
		return nil, ErrNotWitnessed
	}
	_, l := t.root.path(pos)
	if l == nil || !l.witnessed() {
		return nil, ErrNotWitnessed
	}
	return &Proof{
		Position:   pos,
		Commitment: *l.commitment,
		AuthPath:   t.root.authPath(pos),
	}, nil
}

// Forget discards c, retaining only its hash, and removes it from the commitment index. It
// reports whether anything changed (false if c was never witnessed to begin with).
func (t *Tree) Forget(c Commitment) bool {
	pos, ok := t.PositionOf(c)
	if !ok {
		return false
	}
	return t.forgetAt(pos)
}

// forgetAt discards the commitment at pos, retaining only its hash. It reports whether anything
// changed (false if pos was never witnessed to begin with, or does not exist).
func (t *Tree) forgetAt(pos Position) bool {
	if t.root == nil {
		return false
	}
	chain, l := t.root.path(pos)
	if l == nil || !l.witnessed() {
		return false
	}
	c := *l.commitment
	stamp := t.forgotten.next()
	l.forget(stamp)
	delete(t.index, c)
	for _, n := range chain {
		n.stamp = stamp
	}

	// Walk back up the spine, collapsing any Complete ancestor whose every child has become
	// fully hash-only. Stops at the first ancestor that doesn't collapse, since that ancestor's
	// own parent then also retains a live (non-collapsed) child.
	for i := len(chain) - 1; i >= 1; i-- {
		node := chain[i]
		collapsed := node.collapseIfPossible()
		if collapsed == Node(node) {
			break
		}
		parent := chain[i-1]
		idx := digitAt(pos, parent.height)
		parent.children[idx] = collapsed
	}
	return true
}

// ForgottenCounter returns the monotonic stamp of the most recent Forget call, for use by
// incremental serialization to identify what changed since a prior snapshot.
func (t *Tree) ForgottenCounter() Forgotten { return t.forgotten }
