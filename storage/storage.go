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

// Package storage defines the persistence boundary a Tree is serialized across: three
// depth-first streams (new hashes, new commitments, forgotten-range deletions), plus the two
// scalar fields (position, forgotten counter) needed to resume.
//
// This package has no opinion on the backing store. An in-memory implementation suitable for
// tests lives in memstore.go; a real deployment would back Reader/Writer with whatever database
// it already uses.
package storage

import "context"

// HashEntry is one node's hash, at a given position and height, as produced by the depth-first
// hash stream.
type HashEntry struct {
	Position uint64
	Height   uint8
	Hash     [32]byte
}

// CommitmentEntry is one witnessed leaf's commitment, at a given position.
type CommitmentEntry struct {
	Position   uint64
	Commitment [32]byte
}

// Writer receives the three streams produced by serializing a Tree, plus its two scalar fields.
// Implementations should treat AddHash/AddCommitment/DeleteRange as idempotent upserts: a
// resumed incremental serialization may resend entries the writer already has.
type Writer interface {
	AddHash(ctx context.Context, entry HashEntry) error
	AddCommitment(ctx context.Context, entry CommitmentEntry) error
	DeleteRange(ctx context.Context, fromPosition, toPosition uint64) error
	SetPosition(ctx context.Context, position uint64) error
	SetForgotten(ctx context.Context, forgotten uint64) error
}

// Reader supplies what Deserialize needs to rebuild a Tree: its two scalar fields and the two
// entry streams, which may be returned in any order.
type Reader interface {
	Position(ctx context.Context) (uint64, error)
	Forgotten(ctx context.Context) (uint64, error)
	Hashes(ctx context.Context) ([]HashEntry, error)
	Commitments(ctx context.Context) ([]CommitmentEntry, error)
}
