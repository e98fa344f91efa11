package density

import "testing"

func TestSignature_TestAndSetBit(t *testing.T) {
	var sig signature
	sig = sig.setBit(0)
	sig = sig.setBit(63)

	if !sig.test(0) {
		t.Fatal("expected bit 0 set")
	}
	if !sig.test(63) {
		t.Fatal("expected bit 63 set")
	}
	if sig.test(1) {
		t.Fatal("expected bit 1 clear")
	}
}

func TestSignature_Popcount(t *testing.T) {
	var sig signature
	for shift := uint(0); shift < 10; shift++ {
		sig = sig.setBit(shift)
	}
	if got := sig.popcount(); got != 10 {
		t.Fatalf("popcount = %d, want 10", got)
	}
}

func TestSignature_BodyLength(t *testing.T) {
	cases := []struct {
		popcount int
		want     int
	}{
		{0, 256},
		{64, 128},
		{8, 240},
	}

	for _, c := range cases {
		var sig signature
		for shift := uint(0); shift < uint(c.popcount); shift++ {
			sig = sig.setBit(shift)
		}
		if got := sig.bodyLength(); got != c.want {
			t.Fatalf("popcount=%d: bodyLength() = %d, want %d", c.popcount, got, c.want)
		}
	}
}

func TestSignature_EncodeDecodeLE_RoundTrip(t *testing.T) {
	sig := signature(0x0102030405060708)
	buf := make([]byte, signatureSize)
	encodeSignatureLE(buf, sig)

	got := decodeSignatureLE(buf)
	if got != sig {
		t.Fatalf("decodeSignatureLE(encodeSignatureLE(sig)) = %#x, want %#x", uint64(got), uint64(sig))
	}

	if buf[0] != 0x08 || buf[7] != 0x01 {
		t.Fatalf("signature not little-endian on the wire: %x", buf)
	}
}
