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

import "golang.org/x/sync/errgroup"

// BatchWitness produces a Proof for each of commitments, in order, using up to concurrency
// goroutines. Witness itself never mutates the tree, but it does lazily populate each node's
// hash cache on first use, and that cache has no lock (cache.go): fanning out Witness calls
// against a cold tree would be a data race under -race. BatchWitness avoids this by forcing
// Root() once, single-threaded, before fanning out, which recursively populates every node's
// cache; every concurrent Witness call afterward only ever reads an already-set cache.
//
// If any commitment fails to witness, BatchWitness returns the first such error and no proofs.
func (t *Tree) BatchWitness(commitments []Commitment, concurrency int) ([]*Proof, error) {
	if concurrency < 1 {
		concurrency = 1
	}
	t.Root()
	out := make([]*Proof, len(commitments))
	g := new(errgroup.Group)
	g.SetLimit(concurrency)
	for i, c := range commitments {
		i, c := i, c
		g.Go(func() error {
			p, err := t.Witness(c)
			if err != nil {
				return err
			}
			out[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// BatchVerify checks each proof against root concurrently, using up to concurrency goroutines.
// It reports whether every proof verified.
func BatchVerify(proofs []*Proof, root Hash, concurrency int) bool {
	if concurrency < 1 {
		concurrency = 1
	}
	g := new(errgroup.Group)
	g.SetLimit(concurrency)
	results := make([]bool, len(proofs))
	for i, p := range proofs {
		i, p := i, p
		g.Go(func() error {
			results[i] = p.Verify(root)
			return nil
		})
	}
	_ = g.Wait()
	for _, ok := range results {
		if !ok {
			return false
		}
	}
	return true
}
