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

package storage

import (
	"context"
	"sync"
)

// MemStore is an in-memory Reader and Writer, useful for tests and as a reference
// implementation of the storage contract.
type MemStore struct {
	mu          sync.Mutex
	position    uint64
	forgotten   uint64
	hashes      map[hashKey]HashEntry
	commitments map[uint64]CommitmentEntry
}

// hashKey identifies a hash entry: several heights can share one starting position.
type hashKey struct {
	position uint64
	height   uint8
}

func NewMemStore() *MemStore {
	return &MemStore{
		hashes:      make(map[hashKey]HashEntry),
		commitments: make(map[uint64]CommitmentEntry),
	}
}

func (m *MemStore) AddHash(_ context.Context, entry HashEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hashes[hashKey{position: entry.Position, height: entry.Height}] = entry
	return nil
}

func (m *MemStore) AddCommitment(_ context.Context, entry CommitmentEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commitments[entry.Position] = entry
	return nil
}

func (m *MemStore) DeleteRange(_ context.Context, fromPosition, toPosition uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for p := fromPosition; p < toPosition; p++ {
		delete(m.commitments, p)
	}
	for k := range m.hashes {
		if k.position >= fromPosition && k.position < toPosition {
			delete(m.hashes, k)
		}
	}
	return nil
}

func (m *MemStore) SetPosition(_ context.Context, position uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = position
	return nil
}

func (m *MemStore) SetForgotten(_ context.Context, forgotten uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forgotten = forgotten
	return nil
}

func (m *MemStore) Position(context.Context) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position, nil
}

func (m *MemStore) Forgotten(context.Context) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.forgotten, nil
}

func (m *MemStore) Hashes(context.Context) ([]HashEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]HashEntry, 0, len(m.hashes))
	for _, e := range m.hashes {
		out = append(out, e)
	}
	return out, nil
}

func (m *MemStore) Commitments(context.Context) ([]CommitmentEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]CommitmentEntry, 0, len(m.commitments))
	for _, e := range m.commitments {
		out = append(out, e)
	}
	return out, nil
}
