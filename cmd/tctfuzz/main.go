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

// Command tctfuzz repeatedly builds a tree from random commitments, interleaved with random
// forgets and tier seals, and checks that a serialize/deserialize round trip reproduces the
// same root hash and that every still-witnessed position still verifies.
package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/davecgh/go-spew/spew"

	"github.com/tctlabs/tct"
	"github.com/tctlabs/tct/storage"
)

func randCommitment() tct.Commitment {
	var c tct.Commitment
	if _, err := rand.Read(c[:]); err != nil {
		panic(err)
	}
	return c
}

func randIntn(n int64) int64 {
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		panic(err)
	}
	return v.Int64()
}

func main() {
	for attempt := 0; ; attempt++ {
		fmt.Println("attempt #", attempt)
		runAttempt()
	}
}

func runAttempt() {
	tree := tct.New()
	var witnessed []tct.Commitment

	const steps = 2000
	for i := 0; i < steps; i++ {
		switch {
		case i%97 == 0:
			if err := tree.EndBlock(); err != nil {
				panic(err)
			}
		case i%997 == 0:
			if err := tree.EndEpoch(); err != nil {
				panic(err)
			}
		case len(witnessed) > 0 && i%31 == 0:
			idx := randIntn(int64(len(witnessed)))
			c := witnessed[idx]
			tree.Forget(c)
			witnessed = append(witnessed[:idx], witnessed[idx+1:]...)
		default:
			w := tct.Keep
			if i%5 == 0 {
				w = tct.Forget
			}
			c := randCommitment()
			if _, err := tree.Insert(c, w); err != nil {
				panic(err)
			}
			if w == tct.Keep {
				witnessed = append(witnessed, c)
			}
		}
	}

	root := tree.Root()
	for _, c := range witnessed {
		proof, err := tree.Witness(c)
		if err != nil {
			fmt.Println(spew.Sdump(tree))
			panic(err)
		}
		if !proof.Verify(root) {
			fmt.Println(spew.Sdump(proof))
			panic("proof failed to verify against tree root")
		}
	}

	store := storage.NewMemStore()
	ctx := context.Background()
	if err := tree.Serialize(ctx, store); err != nil {
		panic(err)
	}
	restored, err := tct.Deserialize(ctx, store)
	if err != nil {
		panic(err)
	}
	if restored.Root() != root {
		fmt.Println(spew.Sdump(tree, restored))
		panic("round-tripped tree has a different root")
	}
	for _, c := range witnessed {
		proof, err := restored.Witness(c)
		if err != nil {
			fmt.Println(spew.Sdump(restored))
			panic(err)
		}
		if !proof.Verify(root) {
			fmt.Println(spew.Sdump(proof))
			panic("round-tripped proof failed to verify against tree root")
		}
	}
}
