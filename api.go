// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nullbyte-density
// Source: github.com/nullbyte-density/density

package density

import "fmt"

// decodeKernel is implemented by chameleonState and swiftState.
type decodeKernel interface {
	decodeProcess(in *memoryTeleport, out []byte, outPos *int, flush bool) (Status, error)
	bytesProcessed() (in, out int)
}

// encodeKernel is implemented by chameleonState and swiftState.
type encodeKernel interface {
	encodeProcess(in *memoryTeleport, out []byte, outPos *int, flush bool) (Status, error)
	bytesProcessed() (in, out int)
}

// DecoderOptions configures a Decoder.
type DecoderOptions struct {
	// EndDataOverhead is the number of trailing bytes (the main footer) the
	// decoder must never consume while flushing, so the stream framer can
	// still find and verify them afterwards.
	EndDataOverhead int
}

// DefaultDecoderOptions reserves exactly the main footer's size.
func DefaultDecoderOptions() *DecoderOptions {
	return &DecoderOptions{EndDataOverhead: mainFooterSize}
}

// Decoder is the public streaming decode API (spec.md component H): Feed
// supplies input chunks, Continue drives the state machine, Finish is a
// no-op kept for symmetry with the reference's init/continue/finish shape.
type Decoder struct {
	teleport memoryTeleport
	kernel   decodeKernel
	alg      Algorithm
}

// NewDecoder constructs a Decoder for alg, keyed off the wire parameter
// byte exactly as read from a stream's main header. Returns ErrMalformedStream
// if alg is unknown or parameter has reserved bits set.
func NewDecoder(alg Algorithm, parameter byte, opts *DecoderOptions) (*Decoder, error) {
	if !alg.valid() {
		return nil, fmt.Errorf("%w: unknown algorithm %v", ErrMalformedStream, alg)
	}
	p := parameterByte(parameter)
	if err := p.validate(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = DefaultDecoderOptions()
	}

	d := &Decoder{alg: alg}
	switch alg {
	case AlgorithmChameleon:
		st := &chameleonState{}
		st.init(p, opts.EndDataOverhead)
		d.kernel = st
	case AlgorithmSwift:
		st := &swiftState{}
		st.init(p, opts.EndDataOverhead)
		d.kernel = st
	}
	return d, nil
}

// Feed enqueues a chunk of compressed input. The chunk must not be mutated
// until it has been fully consumed; the in count of BytesProcessed reports
// how many compressed bytes have been consumed so far.
func (d *Decoder) Feed(chunk []byte) {
	d.teleport.feed(chunk)
}

// Continue drives decoding. It writes decoded bytes into out starting at
// *outPos and advances *outPos; callers resume a stalled Continue by passing
// the same out and outPos back in (after draining out[:*outPos] on
// StatusStallOnOutput, or after Feed-ing more input on StatusStallOnInput).
// flush tells the decoder no more input will ever arrive, so a
// shorter-than-one-block tail should be emitted verbatim instead of awaited.
func (d *Decoder) Continue(out []byte, outPos *int, flush bool) (Status, error) {
	return d.kernel.decodeProcess(&d.teleport, out, outPos, flush)
}

// Finish is a no-op: the block footer and main footer are the stream
// framer's concern, not the kernel's (spec.md §4.F).
func (d *Decoder) Finish() (Status, error) {
	return StatusReady, nil
}

// BytesProcessed reports the running total of compressed bytes consumed and
// raw bytes produced so far. Meaningful to inspect once Continue has
// returned StatusInfoEfficiencyCheck.
func (d *Decoder) BytesProcessed() (in, out int) {
	return d.kernel.bytesProcessed()
}

// VerifyFooter checks that exactly mainFooterSize bytes remain buffered
// (the reserved, never-consumed endDataOverhead) and that they match the
// main footer's fixed terminator. Call it once Continue has returned
// StatusFinished.
func (d *Decoder) VerifyFooter() error {
	footer, ok := d.teleport.read(mainFooterSize)
	if !ok {
		return fmt.Errorf("%w: main footer missing", ErrTruncatedStream)
	}
	for i, b := range mainFooterMagic {
		if footer[i] != b {
			return fmt.Errorf("%w: main footer mismatch", ErrMalformedStream)
		}
	}
	return nil
}

// EncoderOptions configures an Encoder.
type EncoderOptions struct {
	// ResetDictionaryCycleShift sets how often (every 1<<shift blocks) the
	// dictionary is wiped. 0 disables periodic reset.
	ResetDictionaryCycleShift byte
}

// DefaultEncoderOptions disables periodic dictionary resets.
func DefaultEncoderOptions() *EncoderOptions {
	return &EncoderOptions{}
}

// Encoder is the public streaming encode API, symmetric to Decoder.
type Encoder struct {
	teleport  memoryTeleport
	kernel    encodeKernel
	alg       Algorithm
	parameter parameterByte
}

// NewEncoder constructs an Encoder for alg with the given options.
func NewEncoder(alg Algorithm, opts *EncoderOptions) (*Encoder, error) {
	if !alg.valid() {
		return nil, fmt.Errorf("%w: unknown algorithm %v", ErrMalformedStream, alg)
	}
	if opts == nil {
		opts = DefaultEncoderOptions()
	}
	p, err := newParameterByte(opts.ResetDictionaryCycleShift)
	if err != nil {
		return nil, err
	}

	e := &Encoder{alg: alg, parameter: p}
	switch alg {
	case AlgorithmChameleon:
		st := &chameleonState{}
		st.init(p, 0)
		e.kernel = st
	case AlgorithmSwift:
		st := &swiftState{}
		st.init(p, 0)
		e.kernel = st
	}
	return e, nil
}

// Feed enqueues a chunk of raw input to be compressed.
func (e *Encoder) Feed(chunk []byte) {
	e.teleport.feed(chunk)
}

// Continue drives encoding; same cursor contract as Decoder.Continue.
func (e *Encoder) Continue(out []byte, outPos *int, flush bool) (Status, error) {
	return e.kernel.encodeProcess(&e.teleport, out, outPos, flush)
}

// WriteHeader writes the main header (algorithm id + parameter byte) into
// the front of out, which must have length >= mainHeaderSize. Callers write
// this once, before the first Continue call's output.
func (e *Encoder) WriteHeader(out []byte) {
	writeMainHeader(out, e.alg, e.parameter)
}

// WriteFooter writes the main footer terminator into the front of out,
// which must have length >= mainFooterSize. Callers write this once, after
// Continue has returned StatusFinished.
func (e *Encoder) WriteFooter(out []byte) {
	writeMainFooter(out)
}

// BytesProcessed reports the running total of raw bytes consumed and
// compressed bytes produced so far. Meaningful to inspect once Continue has
// returned StatusInfoEfficiencyCheck.
func (e *Encoder) BytesProcessed() (in, out int) {
	return e.kernel.bytesProcessed()
}
