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
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tctlabs/tct/storage"
)

// spanAt returns the number of leaf positions covered by a subtree rooted at the given height
// (4^height; 1 for a leaf at height 0).
func spanAt(height uint8) Position {
	return Position(1) << (uint(height) * 2)
}

// Serializer builds up the parameters of a single serialization pass with fluent setters, then
// writes the three depth-first streams (new hashes, new commitments, forgotten-range deletions)
// to a storage.Writer.
//
// The zero value returned by NewSerializer performs a full, from-scratch serialization: every
// node and every witnessed commitment. Calling Position narrows it to an incremental pass.
type Serializer struct {
	tree          *Tree
	since         Position
	lastForgotten Forgotten
	keepInternal  bool
	bufferSize    int
}

// NewSerializer returns a Serializer for t, defaulting to a full serialization with internal
// node hashes included.
func NewSerializer(t *Tree) *Serializer {
	return &Serializer{tree: t, keepInternal: true, bufferSize: 64}
}

// Position makes the serialization incremental: only nodes and commitments at or past pos are
// written, as though resuming from a prior snapshot taken at that position.
func (s *Serializer) Position(pos Position) *Serializer {
	s.since = pos
	return s
}

// LastForgotten makes the deletion stream incremental as well: only subtrees forgotten after f
// produce a DeleteRange call. Pairs with Position when resuming from a prior snapshot that also
// recorded its Forgotten counter.
func (s *Serializer) LastForgotten(f Forgotten) *Serializer {
	s.lastForgotten = f
	return s
}

// KeepInternal includes a hash entry for every sealed (Complete) internal node visited (the
// default). Frontier internal nodes never get a hash entry, with or without this option.
func (s *Serializer) KeepInternal() *Serializer {
	s.keepInternal = true
	return s
}

// OmitInternal skips hash entries for internalNodes whose hash a reader can always recompute
// from their children (every internalNode qualifies; only hashNode and leaf entries are ever
// load-bearing). This trades a larger Deserialize-time recomputation pass for a smaller stream.
func (s *Serializer) OmitInternal() *Serializer {
	s.keepInternal = false
	return s
}

// BufferSize sets the channel buffer between the tree walk and the writer goroutines.
func (s *Serializer) BufferSize(n int) *Serializer {
	s.bufferSize = n
	return s
}

// WriteTo runs the serialization, writing to w. The three streams run concurrently: one
// goroutine per stream, fed by a single depth-first walk of the tree.
func (s *Serializer) WriteTo(ctx context.Context, w storage.Writer) error {
	t := s.tree
	hashCh := make(chan storage.HashEntry, s.bufferSize)
	commitCh := make(chan storage.CommitmentEntry, s.bufferSize)
	delCh := make(chan delRange, s.bufferSize)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for h := range hashCh {
			if err := w.AddHash(ctx, h); err != nil {
				return &StorageError{Op: "add-hash", Err: err}
			}
		}
		return nil
	})
	g.Go(func() error {
		for c := range commitCh {
			if err := w.AddCommitment(ctx, c); err != nil {
				return &StorageError{Op: "add-commitment", Err: err}
			}
		}
		return nil
	})
	g.Go(func() error {
		for d := range delCh {
			if err := w.DeleteRange(ctx, d.from, d.to); err != nil {
				return &StorageError{Op: "delete-range", Err: err}
			}
		}
		return nil
	})
	g.Go(func() error {
		defer close(hashCh)
		defer close(commitCh)
		defer close(delCh)
		if t.root != nil {
			walk := walker{
				since:         s.since,
				lastForgotten: s.lastForgotten,
				keepInternal:  s.keepInternal,
				hashCh:        hashCh,
				commitCh:      commitCh,
				delCh:         delCh,
			}
			walk.run(t.root, 0)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if err := w.SetPosition(ctx, uint64(t.position)); err != nil {
		return &StorageError{Op: "set-position", Err: err}
	}
	return w.SetForgotten(ctx, uint64(t.forgotten))
}

// Serialize is a convenience for NewSerializer(t).WriteTo(ctx, w): a full, from-scratch
// serialization of every node and witnessed commitment, optionally narrowed by opts.
func (t *Tree) Serialize(ctx context.Context, w storage.Writer, opts ...SerializeOption) error {
	s := NewSerializer(t)
	for _, opt := range opts {
		opt(s)
	}
	return s.WriteTo(ctx, w)
}

// SerializeOption adapts the one-shot Tree.Serialize convenience to the Serializer builder.
type SerializeOption func(*Serializer)

// WithSince is shorthand for (*Serializer).Position, for callers using the Tree.Serialize
// convenience form instead of NewSerializer directly.
func WithSince(sincePosition Position) SerializeOption {
	return func(s *Serializer) { s.Position(sincePosition) }
}

// WithBufferSize is shorthand for (*Serializer).BufferSize.
func WithBufferSize(n int) SerializeOption {
	return func(s *Serializer) { s.BufferSize(n) }
}

// HashesSlice and CommitmentsSlice are synchronous alternatives to WriteTo for callers that
// would rather collect the two entry streams into slices than implement storage.Writer. They
// discard the deletion stream; use WriteTo directly when deletions matter.
func (s *Serializer) HashesSlice(ctx context.Context) ([]storage.HashEntry, error) {
	mem := storage.NewMemStore()
	if err := s.WriteTo(ctx, mem); err != nil {
		return nil, err
	}
	return mem.Hashes(ctx)
}

func (s *Serializer) CommitmentsSlice(ctx context.Context) ([]storage.CommitmentEntry, error) {
	mem := storage.NewMemStore()
	if err := s.WriteTo(ctx, mem); err != nil {
		return nil, err
	}
	return mem.Commitments(ctx)
}

type delRange = struct{ from, to uint64 }

// walker carries the fields a single WriteTo pass threads through the recursive tree walk.
type walker struct {
	since         Position
	lastForgotten Forgotten
	keepInternal  bool
	hashCh        chan<- storage.HashEntry
	commitCh      chan<- storage.CommitmentEntry
	delCh         chan<- delRange
}

func (wk walker) run(n Node, base Position) {
	span := spanAt(n.Height())
	newSubtree := base+span > wk.since
	switch v := n.(type) {
	case *leaf:
		if !newSubtree {
			if v.stamp.after(wk.lastForgotten) && v.commitment == nil {
				wk.delCh <- delRange{uint64(base), uint64(base + 1)}
			}
			return
		}
		if v.witnessed() {
			// A witnessed leaf's hash is cheaply recomputed from its commitment on the other side
			// (Of(commitment)); only a forgotten or never-witnessed leaf's hash is essential, since
			// nothing else names it.
			wk.commitCh <- storage.CommitmentEntry{Position: uint64(base), Commitment: *v.commitment}
		} else {
			wk.hashCh <- storage.HashEntry{Position: uint64(base), Height: 0, Hash: v.hash.Bytes()}
		}
	case *hashNode:
		if !newSubtree {
			if v.stamp.after(wk.lastForgotten) {
				wk.delCh <- delRange{uint64(base), uint64(base + span)}
			}
			return
		}
		wk.hashCh <- storage.HashEntry{Position: uint64(base), Height: v.height, Hash: v.hash.Bytes()}
	case *internalNode:
		// Always recurse, even into an otherwise-old subtree: a leaf inside it may have been
		// forgotten since the snapshot this call is incremental against, and that deletion
		// still needs to reach delCh. Only the hash entry for v itself is skipped when nothing
		// beneath it is new.
		childSpan := span / 4
		for i, child := range v.children {
			if child == nil {
				continue
			}
			wk.run(child, base+Position(i)*childSpan)
		}
		// A Frontier node's hash is transient: it changes on every insert beneath it, so it is
		// never worth persisting. Only a sealed (Complete) subtree's hash is a stable fact about
		// the tree, and even then only when the caller asked to keep internal hashes at all.
		if newSubtree && wk.keepInternal && v.place == PlaceComplete {
			wk.hashCh <- storage.HashEntry{Position: uint64(base), Height: v.height, Hash: v.Hash().Bytes()}
		}
	}
}
