// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nullbyte-density
// Source: github.com/nullbyte-density/density

package density

import "fmt"

// Wire layout, per spec.md §6:
//
//	0            mainHeader   (algorithm id u8, parameter u8, 2 reserved zero bytes)
//	H            kernel stream = sequence of blocks, block footer every
//	             PreferredBlockSignatures signatures, a verbatim tail at the end
//	H+K          mainFooter   (fixed-size terminator)
const (
	mainHeaderSize  = 4
	blockFooterSize = 0 // no per-block marker in this wire format; reserved for growth.
	mainFooterSize  = 4
)

// mainFooterMagic is the fixed terminator bytes written by writeMainFooter and
// reserved (via endDataOverhead) against the kernel ever consuming them.
var mainFooterMagic = [mainFooterSize]byte{0x44, 0x4E, 0x53, 0x31} // "DNS1"

// writeMainHeader encodes the main header (algorithm id, parameter byte, two
// reserved zero bytes) into the front of buf, which must have length >=
// mainHeaderSize.
func writeMainHeader(buf []byte, alg Algorithm, parameter parameterByte) {
	buf[0] = byte(alg)
	buf[1] = byte(parameter)
	buf[2] = 0
	buf[3] = 0
}

// readMainHeader decodes and validates a main header from the front of buf.
func readMainHeader(buf []byte) (Algorithm, parameterByte, error) {
	if len(buf) < mainHeaderSize {
		return 0, 0, fmt.Errorf("%w: main header truncated", ErrMalformedStream)
	}

	alg := Algorithm(buf[0])
	if !alg.valid() {
		return 0, 0, fmt.Errorf("%w: unknown algorithm id %d", ErrMalformedStream, buf[0])
	}

	param := parameterByte(buf[1])
	if err := param.validate(); err != nil {
		return 0, 0, err
	}

	if buf[2] != 0 || buf[3] != 0 {
		return 0, 0, fmt.Errorf("%w: main header reserved bytes set", ErrMalformedStream)
	}

	return alg, param, nil
}

// writeMainFooter writes the stream terminator into the front of buf, which
// must have length >= mainFooterSize.
func writeMainFooter(buf []byte) {
	copy(buf, mainFooterMagic[:])
}
