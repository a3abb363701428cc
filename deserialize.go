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

package tct

import (
	"context"
	"sort"

	"github.com/tctlabs/tct/storage"
)

// Deserialize rebuilds a Tree from a Reader. Entries may arrive from the Reader in any order;
// Deserialize sorts hash entries coarsest-first (largest height first) so that a later, finer
// entry always refines a coarser placeholder rather than the reverse, then applies commitment
// entries, then does a final pass (finishInitialize) that rejects any Uninitialized hash and
// computes the root hash.
func Deserialize(ctx context.Context, r storage.Reader) (*Tree, error) {
	pos, err := r.Position(ctx)
	if err != nil {
		return nil, &StorageError{Op: "position", Err: err}
	}
	forg, err := r.Forgotten(ctx)
	if err != nil {
		return nil, &StorageError{Op: "forgotten", Err: err}
	}
	hashes, err := r.Hashes(ctx)
	if err != nil {
		return nil, &StorageError{Op: "hashes", Err: err}
	}
	commitments, err := r.Commitments(ctx)
	if err != nil {
		return nil, &StorageError{Op: "commitments", Err: err}
	}

	t := New()
	t.position = Position(pos)
	t.forgotten = Forgotten(forg)
	if t.position == 0 && len(hashes) == 0 && len(commitments) == 0 {
		return t, nil
	}
	t.root = newFrontierInternal(epochTierRootHeight)

	sort.Slice(hashes, func(i, j int) bool { return hashes[i].Height > hashes[j].Height })
	for _, e := range hashes {
		if e.Height == 0 {
			setNodeAt(t.root, Position(e.Position), 0, &leaf{hash: HashFromBytes(e.Hash), stamp: forgottenNone})
			continue
		}
		if e.Height >= epochTierRootHeight {
			continue // the root's own summarized hash is recomputed, never trusted blindly
		}
		setNodeAt(t.root, Position(e.Position), e.Height, &hashNode{height: e.Height, hash: HashFromBytes(e.Hash)})
	}

	for _, e := range commitments {
		l := ensureLeaf(t.root, Position(e.Position), e.Commitment)
		c := Commitment(e.Commitment)
		l.commitment = &c
		t.index[c] = Position(e.Position)
	}

	markAllSealed(t.root)
	reopenFrontier(t.root, t.position)

	if err := finishInitialize(t.root); err != nil {
		return nil, err
	}
	return t, nil
}

// markAllSealed marks every internalNode built from the entry stream as Complete. Every node
// setNodeAt/ensureLeaf materialize reflects data that was already serialized, i.e. already
// finished, subtree; reopenFrontier then reopens exactly the nodes still accepting inserts.
func markAllSealed(n *internalNode) {
	n.place = PlaceComplete
	n.focus = -1
	n.cache.clear()
	for _, child := range n.children {
		if c, ok := child.(*internalNode); ok {
			markAllSealed(c)
		}
	}
}

// reopenFrontier walks the path from root down to the next insertion point (pos) and restores
// each node along it to Frontier, with focus set to the digit pos would descend through,
// creating any not-yet-materialized node along the way. Every node off this path stays Complete,
// matching a tree that has nothing left to insert into except its current frontier.
func reopenFrontier(root *internalNode, pos Position) {
	cur := root
	for {
		idx := digitAt(pos, cur.height)
		cur.place = PlaceFrontier
		cur.focus = int8(idx)
		cur.cache.clear()
		if cur.height == 1 {
			return
		}
		child, ok := cur.children[idx].(*internalNode)
		if !ok {
			child = newFrontierInternal(cur.height - 1)
			cur.children[idx] = child
		}
		cur = child
	}
}

// setNodeAt places node at (pos, height), creating intermediate frontier internalNodes down to
// height+1 as needed. It is a no-op for height >= the root's own height, since the root cannot
// be replaced with a leaf node value.
func setNodeAt(root *internalNode, pos Position, height uint8, node Node) {
	cur := root
	for cur.height > height+1 {
		idx := digitAt(pos, cur.height)
		child, ok := cur.children[idx].(*internalNode)
		if !ok {
			child = newFrontierInternal(cur.height - 1)
			cur.children[idx] = child
		}
		cur.cache.clear()
		cur = child
	}
	if cur.height == height+1 {
		idx := digitAt(pos, cur.height)
		cur.children[idx] = node
		cur.cache.clear()
	}
}

// ensureLeaf returns the leaf at pos, creating the path down to it (and the leaf itself, from
// the given commitment, if no hash entry had already placed one) if necessary.
func ensureLeaf(root *internalNode, pos Position, commitment [32]byte) *leaf {
	cur := root
	for cur.height > 1 {
		idx := digitAt(pos, cur.height)
		child, ok := cur.children[idx].(*internalNode)
		if !ok {
			child = newFrontierInternal(cur.height - 1)
			cur.children[idx] = child
		}
		cur.cache.clear()
		cur = child
	}
	idx := digitAt(pos, 1)
	if l, ok := cur.children[idx].(*leaf); ok {
		return l
	}
	l := &leaf{hash: Of(Commitment(commitment))}
	cur.children[idx] = l
	cur.cache.clear()
	return l
}

// finishInitialize returns ErrCorrupt if any hashNode in the tree carries the Uninitialized
// sentinel, and otherwise computes and caches the root hash. An absent child is padded like any
// other absent child; it is not reported as an error.
func finishInitialize(root *internalNode) error {
	if root == nil {
		return nil
	}
	if !checkResolvable(root) {
		return ErrCorrupt
	}
	root.Hash()
	return nil
}

func checkResolvable(n Node) bool {
	v, ok := n.(*internalNode)
	if !ok {
		return true
	}
	for _, child := range v.children {
		if child == nil {
			continue
		}
		if h, isHash := child.(*hashNode); isHash && h.hash.IsUninitialized() {
			return false
		}
		if !checkResolvable(child) {
			return false
		}
	}
	return true
}
