package density

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func roundTrip(t *testing.T, alg Algorithm, data []byte, resetShift byte) []byte {
	t.Helper()

	compressed, err := Encode(data, alg, &EncoderOptions{ResetDictionaryCycleShift: resetShift})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	out, err := Decode(compressed, nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d bytes", len(out), len(data))
	}

	return compressed
}

func TestChameleon_RoundTrip_Empty(t *testing.T) {
	roundTrip(t, AlgorithmChameleon, nil, 0)
}

func TestChameleon_RoundTrip_SingleLiteralWord(t *testing.T) {
	// X = 00 00 00 00: one literal word, input shorter than one block. The
	// whole thing becomes the verbatim uncompressed tail.
	data := []byte{0, 0, 0, 0}
	compressed := roundTrip(t, AlgorithmChameleon, data, 0)

	tail := compressed[len(compressed)-mainFooterSize-len(data) : len(compressed)-mainFooterSize]
	if !bytes.Equal(tail, data) {
		t.Fatalf("tail = %x, want verbatim %x", tail, data)
	}
}

func TestChameleon_RoundTrip_AllSameWord64x(t *testing.T) {
	// X = (00 00 00 00) x 64: one full block. The dictionary starts zeroed,
	// and hashChameleon(0) == 0, so dict.lookup(0) already equals the first
	// word before it's ever stored: even word 0 hits, and the signature is
	// all-compressed (0xFFFFFFFFFFFFFFFF).
	data := make([]byte, 256)
	roundTrip(t, AlgorithmChameleon, data, 0)
}

func TestChameleon_RoundTrip_AllDistinctWords(t *testing.T) {
	// 64 distinct 32-bit words: every word misses the (empty, and never
	// repeating) dictionary, so the signature is all-literal.
	data := make([]byte, 256)
	for i := 0; i < 64; i++ {
		binary.LittleEndian.PutUint32(data[i*4:], uint32(i*2654435761+1))
	}
	roundTrip(t, AlgorithmChameleon, data, 0)
}

func TestChameleon_RoundTrip_ChunkedDelivery(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog!!!!"), 21) // 987 bytes
	compressed, err := Encode(data, AlgorithmChameleon, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	for _, chunkSize := range []int{1, 7, 999} {
		dec, err := NewDecoder(AlgorithmChameleon, byte(compressed[1]), nil)
		if err != nil {
			t.Fatalf("chunkSize=%d: NewDecoder failed: %v", chunkSize, err)
		}

		body := compressed[mainHeaderSize:]
		out := make([]byte, len(data)+mainFooterSize+256)
		outPos := 0

		for offset := 0; offset < len(body); offset += chunkSize {
			end := min(offset+chunkSize, len(body))
			dec.Feed(body[offset:end])

			flush := end == len(body)
			for {
				status, err := dec.Continue(out, &outPos, flush)
				if err != nil {
					t.Fatalf("chunkSize=%d: Continue failed: %v", chunkSize, err)
				}
				if status == StatusStallOnOutput {
					out = append(out, make([]byte, growthChunk)...)
					continue
				}
				if status == StatusStallOnInput || status == StatusFinished {
					break
				}
			}
			if outPos >= len(data) {
				break
			}
		}

		if !bytes.Equal(out[:outPos], data) {
			t.Fatalf("chunkSize=%d: decoded mismatch (got %d bytes, want %d)", chunkSize, outPos, len(data))
		}
	}
}

func TestChameleon_BlockOutputSize(t *testing.T) {
	// P4: every successfully decoded block writes exactly ProcessUnitSize
	// bytes, regardless of signature popcount.
	data := make([]byte, ProcessUnitSize)
	for i := range data {
		data[i] = byte(i)
	}

	compressed, err := Encode(data, AlgorithmChameleon, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	dec, err := NewDecoder(AlgorithmChameleon, byte(compressed[1]), nil)
	if err != nil {
		t.Fatalf("NewDecoder failed: %v", err)
	}
	dec.Feed(compressed[mainHeaderSize:])

	out := make([]byte, ProcessUnitSize+minOutputLookahead)
	outPos := 0
	status, err := dec.Continue(out, &outPos, true)
	if err != nil {
		t.Fatalf("Continue failed: %v", err)
	}
	if status != StatusFinished {
		t.Fatalf("status = %v, want StatusFinished", status)
	}
	if outPos != ProcessUnitSize {
		t.Fatalf("outPos = %d, want exactly %d (one block)", outPos, ProcessUnitSize)
	}
}

func TestChameleon_CorruptedSignature_ReturnsMalformed(t *testing.T) {
	data := bytes.Repeat([]byte("corruption-test-payload-"), 20)
	compressed, err := Encode(data, AlgorithmChameleon, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// Overwrite the low byte of the first block's signature and cut the
	// stream to the signature plus four body bytes. What is left after the
	// header is shorter than one block, so the flushing decoder copies it as
	// the verbatim tail and the last four bytes, read as the main footer, do
	// not match its terminator.
	corrupted := append([]byte{}, compressed...)
	corrupted[mainHeaderSize] = 0xFF // marks words 0-7 of block 0 "compressed"
	corrupted = corrupted[:mainHeaderSize+signatureSize+4]

	_, err = Decode(corrupted, nil)
	if err == nil {
		t.Fatal("expected error decoding corrupted/truncated stream, got nil")
	}
}
