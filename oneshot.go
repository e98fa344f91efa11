// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nullbyte-density
// Source: github.com/nullbyte-density/density

package density

import "fmt"

// growthChunk is how much scratch space Encode/Decode append whenever the
// streaming state machine reports StatusStallOnOutput.
const growthChunk = ProcessUnitSize * 4

// Encode compresses src in one shot with the given algorithm. opts may be
// nil (no periodic dictionary reset). The returned slice is a complete,
// self-contained stream: main header, blocks, verbatim tail, main footer.
func Encode(src []byte, alg Algorithm, opts *EncoderOptions) ([]byte, error) {
	enc, err := NewEncoder(alg, opts)
	if err != nil {
		return nil, err
	}
	enc.Feed(src)

	out := make([]byte, mainHeaderSize, mainHeaderSize+len(src)+growthChunk)
	enc.WriteHeader(out)
	outPos := mainHeaderSize

	for {
		status, err := enc.Continue(out, &outPos, true)
		if err != nil {
			return nil, err
		}

		switch status {
		case StatusFinished:
			out = out[:outPos]
			footer := make([]byte, mainFooterSize)
			writeMainFooter(footer)
			return append(out, footer...), nil

		case StatusStallOnOutput:
			out = append(out, make([]byte, growthChunk)...)

		case StatusInfoNewBlock, StatusInfoEfficiencyCheck:
			// Informational only; the caller's driver loop (here, this
			// function) just re-enters Continue without touching buffers.

		case StatusStallOnInput:
			// flush=true means every byte was already Feed-ed up front;
			// encode handles a short final block as a verbatim tail
			// instead of stalling, so this should be unreachable.
			return nil, fmt.Errorf("%w: encoder stalled on input during one-shot encode", ErrMalformedStream)

		default:
			return nil, fmt.Errorf("%w: unexpected status %v from encoder", ErrMalformedStream, status)
		}
	}
}

// Decode decompresses a complete stream (main header through main footer) in
// one shot. opts may be nil.
func Decode(stream []byte, opts *DecoderOptions) ([]byte, error) {
	if len(stream) == 0 {
		return nil, ErrEmptyInput
	}

	alg, param, err := readMainHeader(stream)
	if err != nil {
		return nil, err
	}

	dec, err := NewDecoder(alg, byte(param), opts)
	if err != nil {
		return nil, err
	}
	dec.Feed(stream[mainHeaderSize:])

	out := make([]byte, growthChunk, len(stream)+growthChunk)
	outPos := 0

	for {
		status, err := dec.Continue(out, &outPos, true)
		if err != nil {
			return nil, err
		}

		switch status {
		case StatusFinished:
			if err := dec.VerifyFooter(); err != nil {
				return nil, err
			}
			return out[:outPos], nil

		case StatusStallOnOutput:
			out = append(out, make([]byte, growthChunk)...)

		case StatusInfoNewBlock, StatusInfoEfficiencyCheck:
			// Informational only; loop again without touching buffers.

		case StatusStallOnInput:
			return nil, fmt.Errorf("%w: stream ended mid-block", ErrTruncatedStream)

		default:
			return nil, fmt.Errorf("%w: unexpected status %v from decoder", ErrMalformedStream, status)
		}
	}
}
