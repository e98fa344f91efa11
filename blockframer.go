// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nullbyte-density
// Source: github.com/nullbyte-density/density

package density

// dictionaryResetter is implemented by a kernel's dictionary so frameCounter
// can trigger a periodic wipe without knowing the concrete dictionary type
// (chameleonDictionary vs swiftDictionary have different sizes but the same
// reset contract).
type dictionaryResetter interface {
	reset()
}

// frameCounter implements the block-framer cadence shared by both kernels:
// an efficiency-check signal at most once every PreferredEfficiencyCheckSignatures
// signatures, and a new-block signal (with an optional periodic dictionary
// reset) every PreferredBlockSignatures signatures.
type frameCounter struct {
	signaturesCount   int
	efficiencyChecked bool
	resetCycle        uint64
	parameter         parameterByte
}

// init reinitializes the counter for a fresh stream, priming resetCycle
// from the parameter byte's reset shift.
func (f *frameCounter) init(parameter parameterByte) {
	f.signaturesCount = 0
	f.efficiencyChecked = false
	f.parameter = parameter
	if shift := parameter.resetShift(); shift > 0 {
		f.resetCycle = (uint64(1) << shift) - 1
	} else {
		f.resetCycle = 0
	}
}

// checkState inspects outAvailable (output headroom) and the running
// signature count, per spec.md §4.E:
//  1. Not enough output headroom for a full block -> StatusStallOnOutput.
//  2. Exactly PreferredEfficiencyCheckSignatures signatures since the last
//     reset, not yet flagged -> flag it, StatusInfoEfficiencyCheck.
//  3. Exactly PreferredBlockSignatures signatures -> reset the counters,
//     decrement or reload resetCycle, possibly reset the dictionary,
//     StatusInfoNewBlock.
//  4. Otherwise -> StatusReady.
func (f *frameCounter) checkState(outAvailable, requiredLookahead int, dict dictionaryResetter) Status {
	if outAvailable < requiredLookahead {
		return StatusStallOnOutput
	}

	switch f.signaturesCount {
	case PreferredEfficiencyCheckSignatures:
		if !f.efficiencyChecked {
			f.efficiencyChecked = true
			return StatusInfoEfficiencyCheck
		}
	case PreferredBlockSignatures:
		f.signaturesCount = 0
		f.efficiencyChecked = false

		if f.resetCycle > 0 {
			f.resetCycle--
		} else if shift := f.parameter.resetShift(); shift > 0 {
			dict.reset()
			f.resetCycle = (uint64(1) << shift) - 1
		}

		return StatusInfoNewBlock
	}

	return StatusReady
}

// signatureRead records that one more signature has been consumed, advancing
// the cadence counter.
func (f *frameCounter) signatureRead() {
	f.signaturesCount++
}
