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

// Forgotten is a monotonic version stamp. Every leaf and every internal node records the
// Forgotten value current at the moment it was last touched by a forget() call; an internal
// node never touched by one carries zero, and a leaf never touched by one carries the tree's
// counter as of its insertion. The incremental serializer uses the stamp to decide which
// subtrees changed since a prior snapshot.
type Forgotten uint64

// forgottenNone is the stamp carried by a node that has never been the target of a forget().
const forgottenNone Forgotten = 0

// next returns the stamp to use for the forget() currently in progress, advancing the tree's
// counter. It panics on overflow rather than wrapping, since a wrapped stamp would silently
// compare less than an earlier one and corrupt incremental serialization.
func (f *Forgotten) next() Forgotten {
	if *f == ^Forgotten(0) {
		panic("tct: Forgotten counter overflowed")
	}
	*f++
	return *f
}

// after reports whether f is strictly newer than since, i.e. whether a subtree stamped f changed
// after a snapshot taken at since.
func (f Forgotten) after(since Forgotten) bool {
	return f > since
}
