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

// Node is any element of the tree that can report its own height and hash: a leaf, a fully
// built internalNode, or a hashNode standing in for a subtree whose interior has been discarded.
// A nil Node in a children array always means "absent", and is padded per the parent's Place
// rather than represented as a value of this interface.
type Node interface {
	Height() uint8
	Hash() Hash
}

// hashNode stands in for a subtree this process no longer holds the interior of, either because
// every leaf beneath it has been forgotten (collapseIfPossible) or because deserialization
// placed it from a stored hash entry (carrying that entry's hash; finishInitialize rejects one
// whose hash is Uninitialized).
type hashNode struct {
	height uint8
	hash   Hash
	stamp  Forgotten
}

func (h *hashNode) Height() uint8 { return h.height }
func (h *hashNode) Hash() Hash    { return h.hash }

// isFullyCollapsed reports whether n (a child slot, possibly nil) already carries nothing but a
// hash: nil, a hashNode, or a leaf whose commitment has been forgotten. Such a child can never
// contribute structure that collapseIfPossible would need to preserve.
func isFullyCollapsed(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *hashNode:
		return true
	case *leaf:
		return v.commitment == nil
	default:
		return false
	}
}
