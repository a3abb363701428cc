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
	"errors"
	"fmt"
)

var (
	// ErrDuplicateCommitment is returned by Tree.Insert when the commitment is already in the
	// tree's commitment index: inserted with Keep and not since forgotten. A commitment inserted
	// with Forget is not in the index and does not block a later insert.
	ErrDuplicateCommitment = errors.New("tct: commitment already present in tree")

	// ErrFull is returned when an insert, end_block, or end_epoch would exceed the tree's
	// capacity (4^24 leaves, or the current tier/epoch boundary for the respective operation).
	ErrFull = errors.New("tct: tree is full")

	// ErrNotWitnessed is returned by Witness when the commitment was inserted with Forget, has
	// since been forgotten, or was never inserted.
	ErrNotWitnessed = errors.New("tct: position is not witnessed")

	// ErrCorrupt is returned by deserialization when the incoming stream is structurally
	// inconsistent with a valid tree.
	ErrCorrupt = errors.New("tct: corrupt tree encoding")
)

// StorageError wraps an error returned by a Reader or Writer implementation, so callers can
// distinguish storage-layer failures from tree-structure failures with errors.Is.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("tct: storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// PositionError reports an operation attempted against a position outside the tree's current
// bounds.
type PositionError struct {
	Op  string
	Pos Position
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("tct: %s: position %d out of range", e.Op, e.Pos)
}
