package density

import (
	"bytes"
	"testing"
)

func TestMemoryTeleport_AvailableAndRead_FastPath(t *testing.T) {
	var tp memoryTeleport
	tp.feed([]byte("0123456789"))

	if got := tp.available(); got != 10 {
		t.Fatalf("available() = %d, want 10", got)
	}

	window, ok := tp.read(4)
	if !ok {
		t.Fatal("read(4) failed, want success")
	}
	if !bytes.Equal(window, []byte("0123")) {
		t.Fatalf("window = %q, want %q", window, "0123")
	}
	if got := tp.available(); got != 6 {
		t.Fatalf("available() after read = %d, want 6", got)
	}
}

func TestMemoryTeleport_Read_SlowPathAcrossChunks(t *testing.T) {
	var tp memoryTeleport
	tp.feed([]byte("ab"))
	tp.feed([]byte("cd"))
	tp.feed([]byte("efgh"))

	window, ok := tp.read(6)
	if !ok {
		t.Fatal("read(6) failed, want success")
	}
	if !bytes.Equal(window, []byte("abcdef")) {
		t.Fatalf("window = %q, want %q", window, "abcdef")
	}
	if got := tp.available(); got != 2 {
		t.Fatalf("available() after read = %d, want 2", got)
	}

	window, ok = tp.read(2)
	if !ok {
		t.Fatal("read(2) failed, want success")
	}
	if !bytes.Equal(window, []byte("gh")) {
		t.Fatalf("window = %q, want %q", window, "gh")
	}
}

func TestMemoryTeleport_Read_InsufficientFails(t *testing.T) {
	var tp memoryTeleport
	tp.feed([]byte("abc"))

	if _, ok := tp.read(4); ok {
		t.Fatal("read(4) succeeded with only 3 bytes buffered")
	}
	if got := tp.available(); got != 3 {
		t.Fatalf("available() after failed read = %d, want 3 (nothing consumed)", got)
	}
}

func TestMemoryTeleport_Copy(t *testing.T) {
	var tp memoryTeleport
	tp.feed([]byte("hello"))
	tp.feed([]byte("world"))

	dst := make([]byte, 8)
	if !tp.copy(dst, 8) {
		t.Fatal("copy(8) failed, want success")
	}
	if !bytes.Equal(dst, []byte("hellowor")) {
		t.Fatalf("dst = %q, want %q", dst, "hellowor")
	}
	if got := tp.available(); got != 2 {
		t.Fatalf("available() after copy = %d, want 2", got)
	}
}

func TestMemoryTeleport_CursorAdvance(t *testing.T) {
	var tp memoryTeleport
	tp.feed([]byte("0123456789"))

	tp.cursorAdvance(3)
	if got := tp.available(); got != 7 {
		t.Fatalf("available() after cursorAdvance(3) = %d, want 7", got)
	}

	window, ok := tp.read(7)
	if !ok {
		t.Fatal("read(7) failed, want success")
	}
	if !bytes.Equal(window, []byte("3456789")) {
		t.Fatalf("window = %q, want %q", window, "3456789")
	}
}

func TestMemoryTeleport_FIFOOrderAcrossManyChunks(t *testing.T) {
	var tp memoryTeleport
	chunks := [][]byte{[]byte("a"), []byte("bb"), []byte("ccc"), []byte("dddd")}
	for _, c := range chunks {
		tp.feed(c)
	}

	out := make([]byte, 0, 10)
	for tp.available() > 0 {
		n := min(3, tp.available())
		window, ok := tp.read(n)
		if !ok {
			t.Fatalf("read(%d) failed", n)
		}
		out = append(out, window...)
	}

	if !bytes.Equal(out, []byte("abbcccdddd")) {
		t.Fatalf("reassembled = %q, want %q", out, "abbcccdddd")
	}
}
