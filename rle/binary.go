package rle

import "github.com/pkg/errors"

// Binary-safe form: runs of minRun or more identical bytes are encoded as
// escape, count, byte. Literal escape bytes are written as escape, 0x00.
// A count is one byte, so runs longer than maxRun split.
const (
	escape byte = 0xff
	minRun      = 4
	maxRun      = 255
)

// CompressBinary run-length encodes arbitrary binary data.
func CompressBinary(input []byte) []byte {
	var out []byte
	i := 0
	for i < len(input) {
		b := input[i]
		run := 1
		for i+run < len(input) && input[i+run] == b && run < maxRun {
			run++
		}
		if run >= minRun {
			out = append(out, escape, byte(run), b)
			i += run
			continue
		}
		for j := 0; j < run; j++ {
			if b == escape {
				out = append(out, escape, 0x00)
			} else {
				out = append(out, b)
			}
		}
		i += run
	}
	return out
}

// DecompressBinary reverses CompressBinary.
// It fails if the input ends in the middle of an escape sequence.
func DecompressBinary(input []byte) ([]byte, error) {
	var out []byte
	i := 0
	for i < len(input) {
		if input[i] != escape {
			out = append(out, input[i])
			i++
			continue
		}
		if i+1 >= len(input) {
			return nil, errors.New("input ends inside escape sequence")
		}
		count := input[i+1]
		if count == 0x00 {
			out = append(out, escape)
			i += 2
			continue
		}
		if i+2 >= len(input) {
			return nil, errors.New("input ends inside run")
		}
		b := input[i+2]
		for j := 0; j < int(count); j++ {
			out = append(out, b)
		}
		i += 3
	}
	return out, nil
}
