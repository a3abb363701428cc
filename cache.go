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

// cachedHash is a lazy, once-only hash memoization cell. It has no locking: callers are expected
// to hold the tree exclusively, so interior mutability here is safe without synchronization.
//
// Every site that invalidates a cache (seal, collapse, forget) does so because the node's own
// hash is about to change, not merely because it might be recomputed later; a value that is
// "stale but still servable one more time" never arises here, so there is no third state between
// empty and set.
type cachedHash struct {
	hash Hash
	set  bool
}

// get returns the cached hash, if any.
func (c *cachedHash) get() (Hash, bool) {
	if c.set {
		return c.hash, true
	}
	return Hash{}, false
}

// store stores h in the cache. Once set to a resolved value it is returned forever until clear.
func (c *cachedHash) store(h Hash) {
	c.hash = h
	c.set = true
}

// clear drops the cache without invalidating anything the cache might have been backing; callers
// must have already arranged for the underlying structure to be correct.
func (c *cachedHash) clear() {
	c.set = false
	c.hash = Hash{}
}
