// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/nullbyte-density/density

package density

import "errors"

// Sentinel errors for the kernel codecs. Stall conditions are not errors —
// see Status — these are reserved for conditions the caller cannot recover
// from by supplying more input or output room.
var (
	// ErrMalformedStream is returned when the main footer does not match its
	// terminator, a Swift dictionary index is out of range, the algorithm id
	// is unknown, or the parameter byte or header has reserved bits set.
	ErrMalformedStream = errors.New("density: malformed stream")
	// ErrTruncatedStream is returned in flush mode when fewer bytes remain
	// than the footers require, including the case where that subtraction
	// would underflow, and when the main footer is missing.
	ErrTruncatedStream = errors.New("density: truncated stream")
	// ErrEmptyInput is returned by Decode when the stream is empty. Encode
	// accepts empty input.
	ErrEmptyInput = errors.New("density: empty input")
)
