package patch

import (
	"bytes"
	"testing"
)

func TestApplyMidBuffer(t *testing.T) {
	dst := make([]byte, 20)
	n := Apply(dst, 10, []byte{0xAA, 0xBB, 0xCC})
	if n != 3 {
		t.Fatalf("Apply wrote %d bytes, want 3", n)
	}
	want := make([]byte, 20)
	want[10], want[11], want[12] = 0xAA, 0xBB, 0xCC
	if !bytes.Equal(dst, want) {
		t.Fatalf("buffer = % X, want % X", dst, want)
	}
}

func TestApplyTruncatesAtEnd(t *testing.T) {
	dst := []byte{0, 1, 2, 3, 4}
	n := Apply(dst, 3, []byte{0xAA, 0xBB, 0xCC, 0xDD})
	if n != 2 {
		t.Fatalf("Apply wrote %d bytes, want 2", n)
	}
	want := []byte{0, 1, 2, 0xAA, 0xBB}
	if !bytes.Equal(dst, want) {
		t.Fatalf("buffer = % X, want % X", dst, want)
	}
	if len(dst) != 5 {
		t.Fatalf("buffer length changed to %d", len(dst))
	}
}

func TestApplyNoOpOutOfRange(t *testing.T) {
	orig := []byte{1, 2, 3, 4, 5}
	for _, pos := range []int64{-1, -100, 5, 6, 1 << 40} {
		dst := bytes.Clone(orig)
		if n := Apply(dst, pos, []byte{0xFF, 0xFF}); n != 0 {
			t.Fatalf("pos=%d: wrote %d bytes, want 0", pos, n)
		}
		if !bytes.Equal(dst, orig) {
			t.Fatalf("pos=%d: buffer mutated to % X", pos, dst)
		}
	}
}

func TestApplyEmptyPayload(t *testing.T) {
	dst := []byte{1, 2, 3}
	if n := Apply(dst, 1, nil); n != 0 {
		t.Fatalf("empty payload wrote %d bytes", n)
	}
	if !bytes.Equal(dst, []byte{1, 2, 3}) {
		t.Fatalf("empty payload mutated buffer: % X", dst)
	}
}

func TestApplyEmptyBuffer(t *testing.T) {
	if n := Apply(nil, 0, []byte{0xAA}); n != 0 {
		t.Fatalf("empty buffer accepted %d bytes", n)
	}
}
