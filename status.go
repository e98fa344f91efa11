// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nullbyte-density
// Source: github.com/nullbyte-density/density

package density

// Status reports the outcome of Continue/Finish. Non-nil errors from those
// methods are reserved for unrecoverable conditions (see errors.go); Status
// covers every recoverable or informational outcome.
type Status int

const (
	// StatusReady means processing can continue; the caller does not need
	// to take any action before calling Continue again.
	StatusReady Status = iota
	// StatusFinished means the stream is fully decoded or encoded.
	StatusFinished
	// StatusStallOnInput means Continue needs more bytes: call Feed, then
	// Continue again.
	StatusStallOnInput
	// StatusStallOnOutput means the output buffer passed to Continue has
	// less than one block's worth of headroom left: drain it, then call
	// Continue again with the same (or a fresh) buffer.
	StatusStallOnOutput
	// StatusInfoNewBlock is informational: a block boundary (every
	// PreferredBlockSignatures signatures) was crossed, possibly resetting
	// the dictionary. The caller may inspect stream-level stats and should
	// call Continue again without changing buffers.
	StatusInfoNewBlock
	// StatusInfoEfficiencyCheck is informational: PreferredEfficiencyCheckSignatures
	// signatures have been processed since the last reset. The caller may
	// inspect stream-level stats and should call Continue again without
	// changing buffers.
	StatusInfoEfficiencyCheck
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusFinished:
		return "finished"
	case StatusStallOnInput:
		return "stall-on-input"
	case StatusStallOnOutput:
		return "stall-on-output"
	case StatusInfoNewBlock:
		return "info-new-block"
	case StatusInfoEfficiencyCheck:
		return "info-efficiency-check"
	default:
		return "status(unknown)"
	}
}

// isInfo reports whether s is purely informational: the driver loop should
// re-enter Continue without touching either buffer.
func (s Status) isInfo() bool {
	return s == StatusInfoNewBlock || s == StatusInfoEfficiencyCheck
}
