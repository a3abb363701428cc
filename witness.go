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

// Proof is an auth path for a single commitment: the sibling triples needed to recompute the
// tree root from the leaf outward, root-nearest first.
type Proof struct {
	Position   Position
	Commitment Commitment
	AuthPath   [][3]Hash
}

// Verify recomputes the root from p and reports whether it matches root. It does not consult a
// Tree at all: a Proof is self-contained evidence, verifiable by a party holding only root.
func (p *Proof) Verify(root Hash) bool {
	h := Of(p.Commitment)
	n := len(p.AuthPath)
	for i := n - 1; i >= 0; i-- {
		height := uint8(n - i)
		digit := digitAt(p.Position, height)
		sibs := p.AuthPath[i]
		var vals [4]Hash
		j := 0
		for k := 0; k < 4; k++ {
			if uint64(k) == digit {
				vals[k] = h
			} else {
				vals[k] = sibs[j]
				j++
			}
		}
		h = NodeHash(height, vals[0], vals[1], vals[2], vals[3])
	}
	return h.Equal(root)
}
