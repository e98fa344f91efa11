// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nullbyte-density
// Source: github.com/nullbyte-density/density

package density

import (
	"encoding/binary"
	"math/bits"
)

// signature is the 64-bit flag vector labelling each of a block's 64 words
// as compressed (bit=1) or literal (bit=0). Bit 0 (LSB) describes word 0.
// Little-endian on the wire.
type signature uint64

// test reports whether the word at the given shift (0..63) was encoded as a
// compressed 16-bit dictionary reference.
func (s signature) test(shift uint) bool {
	return (s>>shift)&1 == 1
}

// popcount returns the number of compressed words the signature marks.
func (s signature) popcount() int {
	return bits.OnesCount64(uint64(s))
}

// bodyLength returns the number of body bytes this signature's block
// occupies on the wire: 256 bytes minus 2 bytes for every compressed
// reference (a 32-bit literal shrinks to a 16-bit index).
func (s signature) bodyLength() int {
	return ProcessUnitSize - 2*s.popcount()
}

// decodeSignatureLE reads a little-endian 64-bit signature from the front of
// buf. Caller guarantees len(buf) >= signatureSize.
func decodeSignatureLE(buf []byte) signature {
	return signature(binary.LittleEndian.Uint64(buf))
}

// encodeSignatureLE writes s as little-endian into the front of buf. Caller
// guarantees len(buf) >= signatureSize.
func encodeSignatureLE(buf []byte, s signature) {
	binary.LittleEndian.PutUint64(buf, uint64(s))
}

// setBit returns s with bit `shift` set to 1 (word `shift` marked compressed).
func (s signature) setBit(shift uint) signature {
	return s | (1 << shift)
}
