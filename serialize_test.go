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
	"testing"

	"github.com/tctlabs/tct/storage"
)

func buildSampleTree(t *testing.T) (*Tree, []Commitment) {
	t.Helper()
	tr := New()
	var commitments []Commitment
	for i := byte(0); i < 40; i++ {
		w := Keep
		if i%6 == 0 {
			w = Forget
		}
		c := commitmentFromByte(i)
		if _, err := tr.Insert(c, w); err != nil {
			t.Fatal(err)
		}
		if w == Keep {
			commitments = append(commitments, c)
		}
		if i == 20 {
			if err := tr.EndBlock(); err != nil {
				t.Fatal(err)
			}
		}
	}
	return tr, commitments
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tr, commitments := buildSampleTree(t)
	root := tr.Root()

	store := storage.NewMemStore()
	if err := tr.Serialize(ctx, store); err != nil {
		t.Fatal(err)
	}

	restored, err := Deserialize(ctx, store)
	if err != nil {
		t.Fatal(err)
	}
	if restored.Root() != root {
		t.Fatalf("restored root %s != original root %s", restored.Root(), root)
	}
	if restored.Position() != tr.Position() {
		t.Fatalf("restored position %d != original %d", restored.Position(), tr.Position())
	}
	for _, c := range commitments {
		proof, err := restored.Witness(c)
		if err != nil {
			t.Fatalf("restored witness %x: %v", c, err)
		}
		if !proof.Verify(root) {
			t.Fatalf("restored proof for %x did not verify", c)
		}
	}
}

func TestDeserializeThenContinueInserting(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tr := New()
	for i := byte(0); i < 10; i++ {
		if _, err := tr.Insert(commitmentFromByte(i), Keep); err != nil {
			t.Fatal(err)
		}
	}
	if err := tr.EndBlock(); err != nil {
		t.Fatal(err)
	}

	store := storage.NewMemStore()
	if err := tr.Serialize(ctx, store); err != nil {
		t.Fatal(err)
	}
	restored, err := Deserialize(ctx, store)
	if err != nil {
		t.Fatal(err)
	}

	for i := byte(10); i < 15; i++ {
		origPos, err := tr.Insert(commitmentFromByte(i), Keep)
		if err != nil {
			t.Fatal(err)
		}
		restoredPos, err := restored.Insert(commitmentFromByte(i), Keep)
		if err != nil {
			t.Fatal(err)
		}
		if origPos != restoredPos {
			t.Fatalf("position mismatch after resume: original %d, restored %d", origPos, restoredPos)
		}
	}
	if restored.Root() != tr.Root() {
		t.Fatal("root diverged after inserting into a restored tree")
	}
}

func TestDeserializeEmptyTree(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := storage.NewMemStore()
	tr := New()
	if err := tr.Serialize(ctx, store); err != nil {
		t.Fatal(err)
	}
	restored, err := Deserialize(ctx, store)
	if err != nil {
		t.Fatal(err)
	}
	if restored.Root() != tr.Root() {
		t.Fatal("empty tree did not round-trip")
	}
}

func TestIncrementalSerializeOnlyEmitsNewEntries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tr := New()
	for i := byte(0); i < 5; i++ {
		if _, err := tr.Insert(commitmentFromByte(i), Keep); err != nil {
			t.Fatal(err)
		}
	}
	store := storage.NewMemStore()
	if err := tr.Serialize(ctx, store); err != nil {
		t.Fatal(err)
	}
	firstCommitments, err := store.Commitments(ctx)
	if err != nil {
		t.Fatal(err)
	}
	sincePos := tr.Position()

	for i := byte(5); i < 8; i++ {
		if _, err := tr.Insert(commitmentFromByte(i), Keep); err != nil {
			t.Fatal(err)
		}
	}
	if err := tr.Serialize(ctx, store, WithSince(sincePos)); err != nil {
		t.Fatal(err)
	}
	secondCommitments, err := store.Commitments(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(secondCommitments) <= len(firstCommitments) {
		t.Fatalf("expected incremental serialize to add entries: had %d, now %d", len(firstCommitments), len(secondCommitments))
	}
	if len(secondCommitments) != 8 {
		t.Fatalf("expected 8 total commitments, got %d", len(secondCommitments))
	}

	fresh := storage.NewMemStore()
	if err := tr.Serialize(ctx, fresh, WithSince(sincePos)); err != nil {
		t.Fatal(err)
	}
	onlyNew, err := fresh.Commitments(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(onlyNew) != 3 {
		t.Fatalf("expected incremental serialize to emit only the 3 new commitments, got %d", len(onlyNew))
	}
}
