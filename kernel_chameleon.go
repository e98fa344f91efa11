// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nullbyte-density
// Source: github.com/nullbyte-density/density
//
// Grounded on original_source/src/kernel_chameleon_decode.c: the phase
// switch below is a direct port of density_chameleon_decode_process, goto
// fallthrough replaced by Go's own case-to-case fallthrough (the reference's
// DENSITY_FORCE_INLINE goto-based resumption has no analogue worth chasing
// in Go — a switch inside a for-loop gives the same one-branch resumption
// cost spec.md §9 asks for).

package density

import "encoding/binary"

// chameleonEncodeWorstCaseBlockSize is the most bytes one encoded block can
// occupy: a signature plus 64 literal (uncompressed) 32-bit words.
const chameleonEncodeWorstCaseBlockSize = signatureSize + ProcessUnitSize

type chameleonPhase int

const (
	chameleonPhasePrepareBlock chameleonPhase = iota
	chameleonPhaseSignature
	chameleonPhaseDecompressBody
	chameleonPhaseScanBlock
)

// chameleonState is shared by the decode and encode state machines: both
// need the dictionary, the cadence counter and a current phase, and only
// differ in what process() does once it reaches the per-block work.
type chameleonState struct {
	frameCounter
	dict            chameleonDictionary
	sig             signature
	bodyLength      int
	endDataOverhead int
	phase           chameleonPhase
	inBytes         int
	outBytes        int
}

// bytesProcessed reports the running total of input bytes consumed and
// output bytes produced so far, the counters StatusInfoEfficiencyCheck
// invites a caller to inspect.
func (s *chameleonState) bytesProcessed() (in, out int) {
	return s.inBytes, s.outBytes
}

func (s *chameleonState) init(parameter parameterByte, endDataOverhead int) {
	s.frameCounter.init(parameter)
	s.dict.reset()
	s.endDataOverhead = endDataOverhead
	s.phase = chameleonPhasePrepareBlock
}

// decodeProcess drives decode across suspensions on input/output shortage,
// per spec.md §4.F. It writes decoded bytes into out[*outPos:] and advances
// *outPos; it never writes past len(out).
func (s *chameleonState) decodeProcess(in *memoryTeleport, out []byte, outPos *int, flush bool) (Status, error) {
	for {
		switch s.phase {
		case chameleonPhasePrepareBlock:
			if status := s.frameCounter.checkState(len(out)-*outPos, minOutputLookahead, &s.dict); status != StatusReady {
				return status, nil
			}
			s.phase = chameleonPhaseSignature
			fallthrough

		case chameleonPhaseSignature:
			if flush {
				remaining := in.available() - blockFooterSize - s.endDataOverhead
				if remaining < ProcessUnitSize {
					if remaining < 0 {
						return StatusReady, ErrTruncatedStream
					}
					if remaining > len(out)-*outPos {
						return StatusStallOnOutput, nil
					}
					if !in.copy(out[*outPos:*outPos+remaining], remaining) {
						return StatusReady, ErrTruncatedStream
					}
					*outPos += remaining
					s.inBytes += remaining
					s.outBytes += remaining
					return StatusFinished, nil
				}
			}

			if !flush && in.available()-blockFooterSize-s.endDataOverhead < ProcessUnitSize+signatureSize {
				// Not flushing yet, and what's buffered could still turn out
				// to be (the start of) the verbatim tail once flush arrives:
				// hold off reading a signature until enough is buffered to
				// rule that out, per spec.md §4.F's flush semantics.
				return StatusStallOnInput, nil
			}

			window, ok := in.read(signatureSize)
			if !ok {
				return StatusStallOnInput, nil
			}
			s.sig = decodeSignatureLE(window)
			s.frameCounter.signatureRead()
			s.bodyLength = s.sig.bodyLength()
			s.inBytes += signatureSize
			s.phase = chameleonPhaseDecompressBody
			fallthrough

		case chameleonPhaseDecompressBody:
			window, ok := in.read(s.bodyLength)
			if !ok {
				return StatusStallOnInput, nil
			}
			s.decodeBody(window, out[*outPos:*outPos+ProcessUnitSize])
			*outPos += ProcessUnitSize
			s.inBytes += s.bodyLength
			s.outBytes += ProcessUnitSize
			s.phase = chameleonPhasePrepareBlock
			continue

		default:
			return StatusReady, ErrMalformedStream
		}
	}
}

// decodeBody decodes exactly wordsPerBlock words from in into out, per
// spec.md §4.F's body-decode rule: a compressed word emits the dictionary
// entry its 16-bit index names; a literal word is written verbatim and
// stored into the dictionary at its hash's slot. Writes exactly
// ProcessUnitSize bytes to out regardless of signature popcount (P4).
func (s *chameleonState) decodeBody(in, out []byte) {
	inPos, outPos := 0, 0
	for shift := uint(0); shift < wordsPerBlock; shift++ {
		if s.sig.test(shift) {
			// Chameleon's dictionary has exactly 1<<16 entries, so any
			// 16-bit wire index is in-bounds by construction; no runtime
			// bound check is needed (unlike Swift's smaller dictionary).
			idx := binary.LittleEndian.Uint16(in[inPos:])
			inPos += 2
			binary.LittleEndian.PutUint32(out[outPos:], s.dict.lookup(idx))
		} else {
			word := binary.LittleEndian.Uint32(in[inPos:])
			inPos += 4
			s.dict.store(hashChameleon(word), word)
			binary.LittleEndian.PutUint32(out[outPos:], word)
		}
		outPos += 4
	}
}

// encodeProcess drives encode across suspensions, the symmetric counterpart
// to decodeProcess: it reads whole blocks of input, hashes each word against
// the dictionary to decide compressed-vs-literal, and writes a signature
// followed by the block body. When flush is set and fewer than
// ProcessUnitSize bytes of input remain, they are copied verbatim as the
// stream's uncompressed tail (P8) instead of being framed as a block.
func (s *chameleonState) encodeProcess(in *memoryTeleport, out []byte, outPos *int, flush bool) (Status, error) {
	for {
		switch s.phase {
		case chameleonPhasePrepareBlock:
			if status := s.frameCounter.checkState(len(out)-*outPos, chameleonEncodeWorstCaseBlockSize, &s.dict); status != StatusReady {
				return status, nil
			}
			s.phase = chameleonPhaseScanBlock
			fallthrough

		case chameleonPhaseScanBlock:
			if in.available() < ProcessUnitSize {
				if !flush {
					return StatusStallOnInput, nil
				}
				tail := in.available()
				if tail == 0 {
					return StatusFinished, nil
				}
				if tail > len(out)-*outPos {
					return StatusStallOnOutput, nil
				}
				in.copy(out[*outPos:*outPos+tail], tail)
				*outPos += tail
				s.inBytes += tail
				s.outBytes += tail
				return StatusFinished, nil
			}

			window, ok := in.read(ProcessUnitSize)
			if !ok {
				return StatusStallOnInput, nil
			}

			sig, bodyLen := s.encodeBody(window, out[*outPos+signatureSize:])
			encodeSignatureLE(out[*outPos:*outPos+signatureSize], sig)
			*outPos += signatureSize + bodyLen
			s.inBytes += ProcessUnitSize
			s.outBytes += signatureSize + bodyLen
			s.frameCounter.signatureRead()
			s.phase = chameleonPhasePrepareBlock
			continue

		default:
			return StatusReady, ErrMalformedStream
		}
	}
}

// encodeBody hashes each of wordsPerBlock words in in against the
// dictionary. A hit emits a 16-bit index and sets the signature bit; a miss
// emits the word verbatim. The dictionary slot is stored unconditionally —
// on a hit the stored value already equals the word being matched, so this
// is a no-op there and a genuine update on a miss, keeping the encoder's
// dictionary bit-for-bit identical to the decoder's at every block boundary
// (P3).
func (s *chameleonState) encodeBody(in, outBody []byte) (signature, int) {
	var sig signature
	outPos := 0
	for shift := uint(0); shift < wordsPerBlock; shift++ {
		word := binary.LittleEndian.Uint32(in[shift*4:])
		h := hashChameleon(word)

		if s.dict.lookup(h) == word {
			sig = sig.setBit(shift)
			binary.LittleEndian.PutUint16(outBody[outPos:], h)
			outPos += 2
		} else {
			binary.LittleEndian.PutUint32(outBody[outPos:], word)
			outPos += 4
		}

		s.dict.store(h, word)
	}
	return sig, outPos
}
