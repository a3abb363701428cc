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
	"bytes"

	"github.com/karalabe/ssz"
)

// wireProof is the fixed-size SSZ encoding of a Proof: a Proof always carries exactly 24 sibling
// triples (one per height from the root down to a leaf), so it has no dynamic-length fields and
// needs no offset table.
type wireProof struct {
	Position   uint64
	Commitment [32]byte
	AuthPath   [24][3][32]byte
}

func (w *wireProof) SizeSSZ(*ssz.Sizer) uint32 {
	return 8 + 32 + 24*3*32
}

func (w *wireProof) DefineSSZ(codec *ssz.Codec) {
	ssz.DefineUint64(codec, &w.Position)
	ssz.DefineStaticBytes(codec, &w.Commitment)
	for i := range w.AuthPath {
		for j := range w.AuthPath[i] {
			ssz.DefineStaticBytes(codec, &w.AuthPath[i][j])
		}
	}
}

// MarshalSSZ encodes p as SSZ bytes. It requires p.AuthPath to have exactly 24 entries, which is
// always true for a Proof produced by Tree.Witness.
func (p *Proof) MarshalSSZ() ([]byte, error) {
	w := proofToWire(p)
	var buf bytes.Buffer
	if err := ssz.EncodeToStream(&buf, w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalSSZ decodes an SSZ-encoded Proof produced by MarshalSSZ.
func UnmarshalSSZ(data []byte) (*Proof, error) {
	var w wireProof
	if err := ssz.DecodeFromStream(bytes.NewReader(data), &w, uint32(len(data))); err != nil {
		return nil, err
	}
	return wireToProof(&w), nil
}

func proofToWire(p *Proof) *wireProof {
	w := &wireProof{Position: uint64(p.Position), Commitment: p.Commitment}
	for i, sibs := range p.AuthPath {
		if i >= 24 {
			break
		}
		for j, h := range sibs {
			w.AuthPath[i][j] = h.Bytes()
		}
	}
	return w
}

func wireToProof(w *wireProof) *Proof {
	p := &Proof{Position: Position(w.Position), Commitment: w.Commitment, AuthPath: make([][3]Hash, 24)}
	for i := range w.AuthPath {
		for j := range w.AuthPath[i] {
			p.AuthPath[i][j] = HashFromBytes(w.AuthPath[i][j])
		}
	}
	return p
}
