// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nullbyte-density
// Source: github.com/nullbyte-density/density

package density

import "github.com/klauspost/cpuid/v2"

// scratchAlignment is the host's cache line size, used to round the
// teleport's indirect scratch buffer up to a cache-line-friendly capacity so
// the hot decode loop's reads and writes don't needlessly straddle lines.
// Falls back to a conservative 64 bytes when cpuid can't determine it (e.g.
// non-x86 hosts it hasn't been taught about).
var scratchAlignment = func() int {
	if cpuid.CPU.CacheLine > 0 {
		return cpuid.CPU.CacheLine
	}
	return 64
}()

// alignUp rounds n up to the next multiple of align.
func alignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return (n + align - 1) / align * align
}
