// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nullbyte-density
// Source: github.com/nullbyte-density/density

package density

import "golang.org/x/exp/slices"

// memoryTeleport buffers caller-supplied input chunks to deliver contiguous
// read windows to a kernel, stitching byte ranges of whatever size a caller
// happens to hand over into the fixed-size windows the codec needs.
//
// Each Feed call enqueues a "direct" reference to caller memory — no copy.
// When a requested window is fully covered by the head chunk, read returns a
// subslice of it directly (the fast path). When it straddles more than one
// chunk, read assembles the window into an internally owned scratch buffer
// (the "indirect" slow path) and returns that instead. Either way, the bytes
// making up the returned window are consumed: they leave the FIFO as part of
// the same call, never re-ordered, never replayed.
type memoryTeleport struct {
	chunks  [][]byte
	scratch []byte
}

// feed appends a caller-supplied chunk to the FIFO. The chunk must not be
// mutated by the caller until every byte of it has been consumed by a
// subsequent read/copy/cursorAdvance — there is no internal copy on this
// fast path.
func (t *memoryTeleport) feed(chunk []byte) {
	if len(chunk) == 0 {
		return
	}
	t.chunks = append(t.chunks, chunk)
}

// available returns the total number of buffered bytes across every queued
// chunk (direct bytes plus whatever is already staged in the indirect
// scratch buffer counts only once it's part of a chunk again — scratch
// itself is write-only staging, never a read source for available).
func (t *memoryTeleport) available() int {
	n := 0
	for _, c := range t.chunks {
		n += len(c)
	}
	return n
}

// read returns a contiguous n-byte window and consumes those n bytes from
// the FIFO, or returns ok=false (and consumes nothing) if fewer than n bytes
// are currently buffered.
func (t *memoryTeleport) read(n int) (window []byte, ok bool) {
	if n == 0 {
		return nil, true
	}
	if t.available() < n {
		return nil, false
	}
	if len(t.chunks[0]) >= n {
		window = t.chunks[0][:n]
		t.cursorAdvance(n)
		return window, true
	}

	if cap(t.scratch) < n {
		t.scratch = make([]byte, alignUp(n, scratchAlignment))
	}
	t.scratch = t.scratch[:n]
	t.copy(t.scratch, n)
	return t.scratch, true
}

// copy drains exactly n bytes into dst (which must have length >= n),
// consuming them from the FIFO. Returns false (and consumes nothing) if
// fewer than n bytes are buffered.
func (t *memoryTeleport) copy(dst []byte, n int) bool {
	if n == 0 {
		return true
	}
	if t.available() < n {
		return false
	}

	copied := 0
	for copied < n {
		head := t.chunks[0]
		take := n - copied
		if take > len(head) {
			take = len(head)
		}
		copy(dst[copied:copied+take], head[:take])
		copied += take
		t.cursorAdvance(take)
	}
	return true
}

// cursorAdvance consumes n bytes from the front of the FIFO without copying
// them anywhere. read and copy call it to drop the bytes they hand out, so a
// window returned by read is already consumed.
func (t *memoryTeleport) cursorAdvance(n int) {
	for n > 0 && len(t.chunks) > 0 {
		head := t.chunks[0]
		if n < len(head) {
			t.chunks[0] = head[n:]
			return
		}
		n -= len(head)
		t.chunks = slices.Delete(t.chunks, 0, 1)
	}
}
