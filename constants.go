// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nullbyte-density
// Source: github.com/nullbyte-density/density

package density

// Block and signature geometry, shared by both kernels.
const (
	// wordsPerBlock is the number of 32-bit words described by one signature.
	wordsPerBlock = 64

	// ProcessUnitSize is the number of output bytes one fully decoded block
	// always produces, regardless of signature popcount.
	ProcessUnitSize = wordsPerBlock * 4

	// signatureSize is the wire size, in bytes, of one block's signature.
	signatureSize = 8

	// PreferredEfficiencyCheckSignatures is the signature count, within a
	// reset cycle, at which an efficiency-check signal fires.
	PreferredEfficiencyCheckSignatures = 64

	// PreferredBlockSignatures is the signature count that closes a reset
	// cycle and resets signaturesCount/efficiencyChecked.
	PreferredBlockSignatures = 256

	// minOutputLookahead is the output headroom required before starting a
	// new block (one full block's worth of bytes).
	minOutputLookahead = ProcessUnitSize
)

// chameleonHashMultiplier is the odd 32-bit constant Chameleon and Swift both
// multiply a word by before taking the high bits as a dictionary index.
const chameleonHashMultiplier = 0x9D46C91B

// Dictionary sizes (entries) per kernel.
const (
	chameleonDictionarySize = 1 << 16 // 65536 entries, 16-bit hash
	swiftDictionarySize     = 1 << 12 // 4096 entries, 12-bit hash
)
