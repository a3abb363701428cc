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

import "testing"

func commitmentFromByte(b byte) Commitment {
	var c Commitment
	c[0] = b
	c[31] = 0xff
	return c
}

func TestEmptyTreeRootIsOnePadded(t *testing.T) {
	t.Parallel()

	tr := New()
	one := One()
	want := NodeHash(epochTierRootHeight, one, one, one, one)
	if tr.Root() != want {
		t.Fatal("empty tree root does not use one-padding")
	}
}

func TestInsertAdvancesPositionMonotonically(t *testing.T) {
	t.Parallel()

	tr := New()
	for i := byte(0); i < 10; i++ {
		pos, err := tr.Insert(commitmentFromByte(i), Keep)
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
		if pos != Position(i) {
			t.Fatalf("insert %d: position = %d, want %d", i, pos, i)
		}
	}
}

func TestDuplicateCommitmentRejected(t *testing.T) {
	t.Parallel()

	tr := New()
	c := commitmentFromByte(1)
	if _, err := tr.Insert(c, Keep); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Insert(c, Keep); err != ErrDuplicateCommitment {
		t.Fatalf("err = %v, want ErrDuplicateCommitment", err)
	}
}

func TestForgetThenReinsertSameCommitmentSucceeds(t *testing.T) {
	t.Parallel()

	tr := New()
	c := commitmentFromByte(1)
	pos, err := tr.Insert(c, Keep)
	if err != nil {
		t.Fatal(err)
	}
	if !tr.Forget(c) {
		t.Fatal("forget reported no change")
	}
	if _, err := tr.Insert(c, Keep); err != nil {
		t.Fatalf("reinsert after forget: %v", err)
	}
	_ = pos
}

func TestWitnessAndVerify(t *testing.T) {
	t.Parallel()

	tr := New()
	var commitments []Commitment
	for i := byte(0); i < 16; i++ {
		c := commitmentFromByte(i)
		if _, err := tr.Insert(c, Keep); err != nil {
			t.Fatal(err)
		}
		commitments = append(commitments, c)
	}
	root := tr.Root()
	for _, c := range commitments {
		proof, err := tr.Witness(c)
		if err != nil {
			t.Fatalf("witness %x: %v", c, err)
		}
		if !proof.Verify(root) {
			t.Fatalf("proof for commitment %x did not verify", c)
		}
	}
}

func TestForgottenLeafNotWitnessed(t *testing.T) {
	t.Parallel()

	tr := New()
	c := commitmentFromByte(9)
	if _, err := tr.Insert(c, Keep); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Witness(c); err != nil {
		t.Fatalf("witness before forget: %v", err)
	}
	tr.Forget(c)
	if _, err := tr.Witness(c); err != ErrNotWitnessed {
		t.Fatalf("err = %v, want ErrNotWitnessed", err)
	}
}

func TestInsertedWithForgetIsNeverWitnessed(t *testing.T) {
	t.Parallel()

	tr := New()
	c := commitmentFromByte(2)
	if _, err := tr.Insert(c, Forget); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Witness(c); err != ErrNotWitnessed {
		t.Fatalf("err = %v, want ErrNotWitnessed", err)
	}
}

func TestPositionOfTracksWitnessedCommitments(t *testing.T) {
	t.Parallel()

	tr := New()
	c := commitmentFromByte(3)
	pos, err := tr.Insert(c, Keep)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := tr.PositionOf(c)
	if !ok || got != pos {
		t.Fatalf("PositionOf = (%d, %v), want (%d, true)", got, ok, pos)
	}
	tr.Forget(c)
	if _, ok := tr.PositionOf(c); ok {
		t.Fatal("PositionOf still reports a forgotten commitment")
	}
}

func TestEndBlockOnEmptyTreeAdvancesByBlockSpan(t *testing.T) {
	t.Parallel()

	tr := New()
	if err := tr.EndBlock(); err != nil {
		t.Fatal(err)
	}
	if tr.Position() != BlockSpan {
		t.Fatalf("position = %d, want %d", tr.Position(), BlockSpan)
	}
}

func TestEndBlockThenInsertContinuesAtBoundary(t *testing.T) {
	t.Parallel()

	tr := New()
	p0, err := tr.Insert(commitmentFromByte(1), Keep)
	if err != nil {
		t.Fatal(err)
	}
	if p0 != 0 {
		t.Fatalf("p0 = %d, want 0", p0)
	}
	if err := tr.EndBlock(); err != nil {
		t.Fatal(err)
	}
	p1, err := tr.Insert(commitmentFromByte(2), Keep)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != BlockSpan {
		t.Fatalf("p1 = %d, want %d", p1, BlockSpan)
	}
}

func TestEndEpochImpliesBlockAlignedPosition(t *testing.T) {
	t.Parallel()

	tr := New()
	if _, err := tr.Insert(commitmentFromByte(1), Keep); err != nil {
		t.Fatal(err)
	}
	if err := tr.EndEpoch(); err != nil {
		t.Fatal(err)
	}
	if tr.Position() != EpochSpan {
		t.Fatalf("position = %d, want %d", tr.Position(), EpochSpan)
	}
}

func TestSealingTwiceAtSameBoundaryIsHarmless(t *testing.T) {
	t.Parallel()

	tr := New()
	if err := tr.EndBlock(); err != nil {
		t.Fatal(err)
	}
	pos1 := tr.Position()
	if err := tr.EndBlock(); err != nil {
		t.Fatal(err)
	}
	if tr.Position() != pos1+BlockSpan {
		t.Fatalf("position = %d, want %d", tr.Position(), pos1+BlockSpan)
	}
}
