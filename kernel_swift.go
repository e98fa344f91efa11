// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nullbyte-density
// Source: github.com/nullbyte-density/density
//
// Grounded on original_source/src/algorithms/swift/core/swift_encode.h: same
// per-word compressed-vs-literal decision as Chameleon, against a smaller,
// 4096-entry dictionary addressed by a 12-bit hash. Framing (signature,
// block, stream layout, reset cadence) is identical to Chameleon — see
// SPEC_FULL.md's "Swift's smaller dictionary changes hash truncation, not
// cadence" note — and the cadence counter, signature and stream code are
// shared. This file keeps its own copy of the phase loops; what differs
// from Chameleon is the dictionary type, the hash, and the mandatory
// wire-index bound check that Chameleon's dictionary size makes unnecessary.

package density

import "encoding/binary"

// swiftEncodeWorstCaseBlockSize mirrors chameleonEncodeWorstCaseBlockSize.
const swiftEncodeWorstCaseBlockSize = signatureSize + ProcessUnitSize

type swiftState struct {
	frameCounter
	dict            swiftDictionary
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
func (s *swiftState) bytesProcessed() (in, out int) {
	return s.inBytes, s.outBytes
}

func (s *swiftState) init(parameter parameterByte, endDataOverhead int) {
	s.frameCounter.init(parameter)
	s.dict.reset()
	s.endDataOverhead = endDataOverhead
	s.phase = chameleonPhasePrepareBlock
}

func (s *swiftState) decodeProcess(in *memoryTeleport, out []byte, outPos *int, flush bool) (Status, error) {
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
			if err := s.decodeBody(window, out[*outPos:*outPos+ProcessUnitSize]); err != nil {
				return StatusReady, err
			}
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

// decodeBody is Chameleon's decodeBody with one addition: a wire-supplied
// compressed index must be bound-checked against swiftDictionarySize, since
// Swift's dictionary (4096 entries) is smaller than the full 16-bit index
// range a malformed stream could present.
func (s *swiftState) decodeBody(in, out []byte) error {
	inPos, outPos := 0, 0
	for shift := uint(0); shift < wordsPerBlock; shift++ {
		if s.sig.test(shift) {
			idx := binary.LittleEndian.Uint16(in[inPos:])
			inPos += 2
			if int(idx) >= swiftDictionarySize {
				return ErrMalformedStream
			}
			binary.LittleEndian.PutUint32(out[outPos:], s.dict.lookup(idx))
		} else {
			word := binary.LittleEndian.Uint32(in[inPos:])
			inPos += 4
			s.dict.store(hashSwift(word), word)
			binary.LittleEndian.PutUint32(out[outPos:], word)
		}
		outPos += 4
	}
	return nil
}

func (s *swiftState) encodeProcess(in *memoryTeleport, out []byte, outPos *int, flush bool) (Status, error) {
	for {
		switch s.phase {
		case chameleonPhasePrepareBlock:
			if status := s.frameCounter.checkState(len(out)-*outPos, swiftEncodeWorstCaseBlockSize, &s.dict); status != StatusReady {
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

func (s *swiftState) encodeBody(in, outBody []byte) (signature, int) {
	var sig signature
	outPos := 0
	for shift := uint(0); shift < wordsPerBlock; shift++ {
		word := binary.LittleEndian.Uint32(in[shift*4:])
		h := hashSwift(word)

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
