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

// internalNode is the single node representation used at every height from 1 (just above a
// leaf) to 24 (the root), spanning all three tiers. A tier boundary (height 8, 16, 24) changes
// nothing about this type; it only ever matters to the façade that decides when to force a
// seal (tree.go).
type internalNode struct {
	height   uint8
	place    Place
	children [4]Node // nil entry means absent; padded per place when hashed
	focus    int8    // index of the next frontier insertion point; -1 once sealed
	cache    cachedHash
	stamp    Forgotten
}

func newFrontierInternal(height uint8) *internalNode {
	return &internalNode{height: height, place: PlaceFrontier, focus: 0}
}

func (n *internalNode) Height() uint8 { return n.height }

// Hash computes (and memoizes) this node's hash from its four children, padding absent children
// per n.place.
func (n *internalNode) Hash() Hash {
	if h, ok := n.cache.get(); ok {
		return h
	}
	pad := paddingFor(n.place)
	var hs [4]Hash
	for i, child := range n.children {
		if child == nil {
			hs[i] = pad
		} else {
			hs[i] = child.Hash()
		}
	}
	h := NodeHash(n.height, hs[0], hs[1], hs[2], hs[3])
	n.cache.store(h)
	return h
}

// full reports whether this node has no room left for another insertion: either genuinely sealed
// (Complete) or a Frontier whose focus has walked off the end.
func (n *internalNode) full() bool {
	return n.place != PlaceFrontier || n.focus > 3
}

// insertLeaf places a new leaf at the next available frontier position beneath n, creating
// intermediate frontier nodes as needed and advancing n's focus across filled children. It
// reports whether there was room.
func (n *internalNode) insertLeaf(c Commitment, w Witness, stamp Forgotten) bool {
	if n.place != PlaceFrontier {
		return false
	}
	for {
		if n.focus > 3 {
			return false
		}
		if n.height == 1 {
			if n.children[n.focus] == nil {
				n.children[n.focus] = newLeaf(c, w, stamp)
				n.cache.clear()
				return true
			}
		} else {
			child, _ := n.children[n.focus].(*internalNode)
			if child == nil {
				child = newFrontierInternal(n.height - 1)
				n.children[n.focus] = child
			}
			if child.place == PlaceFrontier && child.insertLeaf(c, w, stamp) {
				n.cache.clear()
				return true
			}
		}
		if !n.advanceFocus() {
			return false
		}
	}
}

// advanceFocus seals whatever sits at the current focus (a no-op for a leaf, or for an absent
// slot) and moves the focus one slot to the right. It reports whether a slot remains.
func (n *internalNode) advanceFocus() bool {
	if child, ok := n.children[n.focus].(*internalNode); ok {
		child.seal()
	}
	n.focus++
	n.cache.clear()
	return n.focus <= 3
}

// forceSealBoundary is used by end_block/end_epoch (tree.go) to seal whatever sits at the
// focus of the frontier node at targetHeight (a subtree of height targetHeight-1), even if it
// is partial or entirely untouched, and advance past it. It descends from n (always the tree root, height 24) along
// the live frontier spine, creating frontier nodes along the way if a block or epoch is ended
// before anything has been inserted into it.
func (n *internalNode) forceSealBoundary(targetHeight uint8) error {
	chain := []*internalNode{n}
	cur := n
	for cur.height > targetHeight {
		if cur.place != PlaceFrontier || cur.focus < 0 || cur.focus > 3 {
			return ErrFull
		}
		child, _ := cur.children[cur.focus].(*internalNode)
		if child == nil {
			child = newFrontierInternal(cur.height - 1)
			cur.children[cur.focus] = child
		}
		cur = child
		chain = append(chain, cur)
	}
	if cur.place != PlaceFrontier || cur.focus < 0 || cur.focus > 3 {
		return ErrFull
	}
	cur.advanceFocus()
	for _, a := range chain {
		a.cache.clear()
	}
	return nil
}

// seal forces n, and the single still-open child on its frontier spine if any, to Complete.
// Children already sealed or absent are untouched: an absent child's padding simply changes
// from Zero to One the next time its parent's hash is recomputed, which is why seal always
// clears the cache.
func (n *internalNode) seal() {
	if n.place != PlaceFrontier {
		return
	}
	if n.focus >= 0 && n.focus <= 3 {
		if child, ok := n.children[n.focus].(*internalNode); ok {
			child.seal()
		}
	}
	n.place = PlaceComplete
	n.focus = -1
	n.cache.clear()
}

// path descends to height 0 along the digits of pos, returning the chain of internalNodes
// visited (root-nearest first, i.e. n itself first) and the leaf at the end, or nil if pos was
// never inserted.
func (n *internalNode) path(pos Position) ([]*internalNode, *leaf) {
	chain := make([]*internalNode, 0, n.height)
	cur := n
	for {
		chain = append(chain, cur)
		idx := digitAt(pos, cur.height)
		if cur.height == 1 {
			l, _ := cur.children[idx].(*leaf)
			return chain, l
		}
		child, _ := cur.children[idx].(*internalNode)
		if child == nil {
			return chain, nil
		}
		cur = child
	}
}

// authPath builds the 24-entry (down to n.height entries, for a subtree rooted above height 0)
// sibling path for pos, root-nearest first: at each level, the three hashes of the children not
// on the path to pos, in ascending child-index order.
func (n *internalNode) authPath(pos Position) [][3]Hash {
	out := make([][3]Hash, 0, n.height)
	cur := n
	for {
		idx := digitAt(pos, cur.height)
		pad := paddingFor(cur.place)
		var sibs [3]Hash
		j := 0
		for i, child := range cur.children {
			if uint64(i) == idx {
				continue
			}
			if child == nil {
				sibs[j] = pad
			} else {
				sibs[j] = child.Hash()
			}
			j++
		}
		out = append(out, sibs)
		if cur.height == 1 {
			return out
		}
		child, _ := cur.children[idx].(*internalNode)
		if child == nil {
			// Nothing further down the path exists, the rest of the way is all padding; the
			// caller only reaches here via Witness, which already validated the leaf exists.
			return out
		}
		cur = child
	}
}

// collapseIfPossible returns a hashNode standing in for n if n is Complete and every child is
// already fully collapsed (nil, a hashNode, or a forgotten leaf); otherwise it returns n
// unchanged. The replacement carries the same hash, so callers never need to invalidate a
// parent's cache when swapping a child for its collapse.
func (n *internalNode) collapseIfPossible() Node {
	if n.place != PlaceComplete {
		return n
	}
	for _, child := range n.children {
		if !isFullyCollapsed(child) {
			return n
		}
	}
	return &hashNode{height: n.height, hash: n.Hash(), stamp: n.stamp}
}
