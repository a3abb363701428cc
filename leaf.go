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

// leaf is the single leaf representation used at height 0 everywhere in the tree: no per-tier
// leaf types exist, since a tier boundary is a sealing-time concept, not a structural one.
//
// A leaf with a non-nil commitment is witnessed: Witness(...) can produce an auth path that
// terminates on it. Once forgotten (or inserted with Forget to begin with) the commitment is
// nil and only hash survives.
type leaf struct {
	hash       Hash
	commitment *Commitment
	stamp      Forgotten
}

func newLeaf(c Commitment, w Witness, stamp Forgotten) *leaf {
	l := &leaf{hash: Of(c), stamp: stamp}
	if w == Keep {
		cc := c
		l.commitment = &cc
	}
	return l
}

func (l *leaf) Height() uint8 { return 0 }
func (l *leaf) Hash() Hash    { return l.hash }

// witnessed reports whether this leaf still retains its commitment.
func (l *leaf) witnessed() bool { return l.commitment != nil }

// forget discards the commitment, stamping the leaf with the forget in progress. It is a no-op
// if the leaf was never witnessed to begin with.
func (l *leaf) forget(stamp Forgotten) (changed bool) {
	if l.commitment == nil {
		return false
	}
	l.commitment = nil
	l.stamp = stamp
	return true
}
