package hexstr

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDecodePairs(t *testing.T) {
	got, err := Decode([]byte("0102030A"))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if want := []byte{0x01, 0x02, 0x03, 0x0A}; !bytes.Equal(got, want) {
		t.Fatalf("Decode = % X, want % X", got, want)
	}
}

func TestDecodeCaseInsensitive(t *testing.T) {
	upper, err := Decode([]byte("AABBCC"))
	if err != nil {
		t.Fatalf("Decode upper: %v", err)
	}
	lower, err := Decode([]byte("aabbcc"))
	if err != nil {
		t.Fatalf("Decode lower: %v", err)
	}
	if !bytes.Equal(upper, lower) {
		t.Fatalf("case must not affect decoding: % X vs % X", upper, lower)
	}
}

func TestDecodeEmpty(t *testing.T) {
	got, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil): %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Decode(nil) = % X, want empty", got)
	}
}

func TestDecodeOddLength(t *testing.T) {
	if _, err := Decode([]byte("ABC")); !errors.Is(err, ErrOddLength) {
		t.Fatalf("odd input: got %v, want ErrOddLength", err)
	}
}

func TestDecodeInvalidDigit(t *testing.T) {
	for _, in := range []string{"GG", "0x01", "AA BB", "A-"} {
		_, err := Decode([]byte(in))
		if !errors.Is(err, ErrInvalidDigit) {
			t.Fatalf("Decode(%q): got %v, want ErrInvalidDigit", in, err)
		}
	}
}

func TestDecodeErrorReportsPosition(t *testing.T) {
	_, err := Decode([]byte("AAZB"))
	if err == nil || !strings.Contains(err.Error(), "position 2") {
		t.Fatalf("error should name position 2, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	// Decode then re-encode must reproduce the digits, case folded.
	inputs := []string{"00", "deadbeef", "DEADBEEF", "0123456789abcdefABCDEF00ff"}
	for _, in := range inputs {
		b, err := Decode([]byte(in))
		if err != nil {
			t.Fatalf("Decode(%q): %v", in, err)
		}
		if got, want := Encode(b), strings.ToLower(in); got != want {
			t.Fatalf("round trip of %q = %q, want %q", in, got, want)
		}
	}
}
