package rle

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestCompress(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"", ""},
		{"aaabbb", "3a3b"},
		{"abc", "1a1b1c"},
		{"aaaaaaaaaaab", "11a1b"},
	} {
		got := Compress([]byte(tc.in))
		if string(got) != tc.want {
			t.Fatalf("%q: %q", tc.in, got)
		}
	}
}

func TestDecompress(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"", ""},
		{"3a3b", "aaabbb"},
		{"12x", "xxxxxxxxxxxx"},
	} {
		got, err := Decompress([]byte(tc.in))
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if string(got) != tc.want {
			t.Fatalf("%q: %q", tc.in, got)
		}
	}
}

func TestDecompressMalformed(t *testing.T) {
	for _, in := range []string{"a", "3a3", "x3a"} {
		if _, err := Decompress([]byte(in)); err == nil {
			t.Fatalf("%q: expected error", in)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	in := []byte("wwwwaaadexxxxxxywww")
	out, err := Decompress(Compress(in))
	if err != nil {
		t.Fatalf("%v", err)
	}
	if !bytes.Equal(out, in) {
		t.Fatalf("%q", out)
	}
}

func TestBinaryEscape(t *testing.T) {
	for _, tc := range []struct {
		in   []byte
		want []byte
	}{
		{nil, nil},
		{[]byte{0xff}, []byte{0xff, 0x00}},
		{[]byte{0x00, 0x00, 0x00, 0x00, 0x00}, []byte{0xff, 5, 0x00}},
		{[]byte{'h', 'i'}, []byte{'h', 'i'}},
		{[]byte{0xff, 0xff, 0xff, 0xff}, []byte{0xff, 4, 0xff}},
	} {
		got := CompressBinary(tc.in)
		if !bytes.Equal(got, tc.want) {
			t.Fatalf("%x: %x", tc.in, got)
		}
		back, err := DecompressBinary(got)
		if err != nil {
			t.Fatalf("%x: %v", tc.in, err)
		}
		if !bytes.Equal(back, tc.in) {
			t.Fatalf("%x: %x", tc.in, back)
		}
	}
}

func TestBinaryLongRun(t *testing.T) {
	in := bytes.Repeat([]byte{0x7f}, 300)
	comp := CompressBinary(in)
	if !bytes.Equal(comp, []byte{0xff, 255, 0x7f, 0xff, 45, 0x7f}) {
		t.Fatalf("%x", comp)
	}
	out, err := DecompressBinary(comp)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if !bytes.Equal(out, in) {
		t.Fatalf("%d bytes", len(out))
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	in := make([]byte, 10000)
	for i := range in {
		in[i] = byte(rng.Intn(4)) * 0x55
	}
	out, err := DecompressBinary(CompressBinary(in))
	if err != nil {
		t.Fatalf("%v", err)
	}
	if !bytes.Equal(out, in) {
		t.Fatalf("%d bytes", len(out))
	}
}

func TestBinaryTruncated(t *testing.T) {
	for _, in := range [][]byte{{0xff}, {0xff, 3}} {
		if _, err := DecompressBinary(in); err == nil {
			t.Fatalf("%x: expected error", in)
		}
	}
}
