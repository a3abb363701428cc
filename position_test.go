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

func TestPositionFields(t *testing.T) {
	t.Parallel()

	p := Position(0)
	p |= Position(7) << 32  // epoch
	p |= Position(11) << 16 // block
	p |= Position(3)        // commitment

	if p.Epoch() != 7 {
		t.Fatalf("epoch = %d, want 7", p.Epoch())
	}
	if p.Block() != 11 {
		t.Fatalf("block = %d, want 11", p.Block())
	}
	if p.CommitmentIndex() != 3 {
		t.Fatalf("commitment index = %d, want 3", p.CommitmentIndex())
	}
}

func TestDigitAt(t *testing.T) {
	t.Parallel()

	// Position 0b11_10_01_00 (digit 0 = 00, digit 1 = 01, digit 2 = 10, digit 3 = 11).
	p := Position(0b11_10_01_00)
	want := []uint64{0, 1, 2, 3}
	for i, w := range want {
		if got := digitAt(p, uint8(i+1)); got != w {
			t.Fatalf("digitAt(height %d) = %d, want %d", i+1, got, w)
		}
	}
}

func TestDigitAtInvalidHeight(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range height")
		}
	}()
	digitAt(0, 25)
}

func TestBlockAndEpochBoundary(t *testing.T) {
	t.Parallel()

	if got := blockBoundary(0); got != BlockSpan {
		t.Fatalf("blockBoundary(0) = %d, want %d", got, BlockSpan)
	}
	if got := blockBoundary(1); got != BlockSpan {
		t.Fatalf("blockBoundary(1) = %d, want %d", got, BlockSpan)
	}
	if got := epochBoundary(0); got != EpochSpan {
		t.Fatalf("epochBoundary(0) = %d, want %d", got, EpochSpan)
	}
}
