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

// Position is a 48-bit index into the tree: 24 base-4 digits, grouped into three 16-bit fields
// epoch|block|commitment (8 digits each), matching the tree's three-tier nesting. Digit 0 (the 2
// least-significant bits) selects among the 4 children at height 1 (just above a leaf); digit 23
// (the 2 most-significant bits) selects among the 4 children at height 24 (the root).
type Position uint64

// MaxPosition is one past the last addressable position: capacity 4^24.
const MaxPosition Position = 1 << 48

// tierSpan is the number of leaves in one 8-deep tier (4^8).
const tierSpan Position = 1 << 16

// EpochSpan is the number of leaf positions in one epoch (4^16).
const EpochSpan = tierSpan * tierSpan

// BlockSpan is the number of leaf positions in one block (4^8).
const BlockSpan = tierSpan

// Epoch returns the epoch-field digits of p.
func (p Position) Epoch() uint16 { return uint16(p >> 32) }

// Block returns the block-field digits of p, within its epoch.
func (p Position) Block() uint16 { return uint16(p >> 16) }

// CommitmentIndex returns the commitment-field digits of p, within its block.
func (p Position) CommitmentIndex() uint16 { return uint16(p) }

// digitAt returns the base-4 digit of p that selects a child at the given height (1..24).
func digitAt(p Position, height uint8) uint64 {
	sanityCheckHeight(height)
	shift := uint(height-1) * 2
	return uint64(p>>shift) & 3
}

// blockBoundary returns the position at which the block following the one containing p begins.
// Sealing always consumes the rest of the current block, even an entirely empty one: sealing at
// p == 0 advances to exactly BlockSpan.
func blockBoundary(p Position) Position {
	return (p/BlockSpan + 1) * BlockSpan
}

// epochBoundary returns the position at which the epoch following the one containing p begins.
func epochBoundary(p Position) Position {
	return (p/EpochSpan + 1) * EpochSpan
}
