// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/nullbyte-density/density

/*
Package density implements the Chameleon and Swift kernels of the Density
hash-based byte compressor: a streaming, superfast lossless codec built
around a fixed-size dictionary of last-seen 32-bit words.

Both kernels share the same framing (64-word blocks, a 64-bit signature
marking each word compressed or literal, periodic dictionary resets) and
differ only in dictionary size and hash width. Chameleon's dictionary holds
65536 entries (16-bit hash); Swift's holds 4096 (12-bit hash), trading ratio
for faster warm-up on small inputs.

# Streaming

Encoder and Decoder expose an explicit init/continue/finish state machine.
Continue never blocks: it returns a Status telling the caller whether more
input is needed (StatusStallOnInput), more output room is needed
(StatusStallOnOutput), a block boundary was crossed (StatusInfoNewBlock,
StatusInfoEfficiencyCheck — informational, not terminal), or the stream is
done (StatusFinished).

	dec, err := density.NewDecoder(density.AlgorithmChameleon, parameter, nil)
	outPos := 0
	for {
	    dec.Feed(nextChunk)
	    status, err := dec.Continue(out, &outPos, flush)
	    switch status {
	    case density.StatusStallOnInput:
	        // supply more bytes via Feed, then Continue again
	    case density.StatusStallOnOutput:
	        // drain out[:outPos], reset outPos to 0, then Continue again
	    case density.StatusFinished:
	        return
	    }
	}

# One-shot

For callers holding the whole input in memory, Encode/Decode wrap the
streaming API:

	compressed, err := density.Encode(data, density.AlgorithmChameleon, nil)
	out, err := density.Decode(compressed, nil)
*/
package density
