// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nullbyte-density
// Source: github.com/nullbyte-density/density

package density

// chameleonDictionary is Chameleon's 65536-entry table of last-seen 32-bit
// words, indexed by hashChameleon. The codec state that owns one exclusively
// owns it for its lifetime; there is no sharing between states.
type chameleonDictionary [chameleonDictionarySize]uint32

func (d *chameleonDictionary) reset() {
	clear(d[:])
}

func (d *chameleonDictionary) lookup(index uint16) uint32 {
	return d[index]
}

func (d *chameleonDictionary) store(index uint16, word uint32) {
	d[index] = word
}

// swiftDictionary is Swift's smaller, 4096-entry counterpart, indexed by
// hashSwift. Same contract as chameleonDictionary.
type swiftDictionary [swiftDictionarySize]uint32

func (d *swiftDictionary) reset() {
	clear(d[:])
}

func (d *swiftDictionary) lookup(index uint16) uint32 {
	return d[index]
}

func (d *swiftDictionary) store(index uint16, word uint32) {
	d[index] = word
}
