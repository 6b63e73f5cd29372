// Package rle provides the run-length codecs shipped alongside the Huffman
// compressor: a decimal count+byte form suited to text, and a binary-safe
// form that marks runs with an escape byte.
package rle

import (
	"strconv"

	"github.com/pkg/errors"
)

// maxCount bounds the run count accepted by Decompress, so that a small
// malicious input cannot demand an enormous allocation.
const maxCount = 1 << 30

// Compress encodes each run of identical bytes as its decimal length followed
// by the byte. It is only reversible for inputs without decimal digits; use
// CompressBinary for arbitrary data.
func Compress(input []byte) []byte {
	if len(input) == 0 {
		return nil
	}
	var out []byte
	count := 1
	for i := 1; i <= len(input); i++ {
		if i < len(input) && input[i] == input[i-1] {
			count++
			continue
		}
		out = strconv.AppendInt(out, int64(count), 10)
		out = append(out, input[i-1])
		count = 1
	}
	return out
}

// Decompress reverses Compress. It fails on input that is not a sequence of
// decimal counts each followed by a single byte.
func Decompress(input []byte) ([]byte, error) {
	var out []byte
	count := 0
	digits := 0
	for _, b := range input {
		if b >= '0' && b <= '9' {
			count = count*10 + int(b-'0')
			if count > maxCount {
				return nil, errors.Errorf("run count exceeds %d", maxCount)
			}
			digits++
			continue
		}
		if digits == 0 {
			return nil, errors.Errorf("byte %#x with no preceding count", b)
		}
		for j := 0; j < count; j++ {
			out = append(out, b)
		}
		count, digits = 0, 0
	}
	if digits > 0 {
		return nil, errors.New("trailing count with no byte")
	}
	return out, nil
}
