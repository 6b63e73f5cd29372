package huffzip

import (
	"io"

	"github.com/pkg/errors"
)

// bitWriter packs bits into bytes, most significant bit first.
// Write errors are stored and reported by finish.
type bitWriter struct {
	w   io.Writer
	acc uint8
	n   int
	err error
}

func newBitWriter(w io.Writer) *bitWriter {
	return &bitWriter{w: w}
}

func (bw *bitWriter) writeBit(bit uint64) {
	if bw.err != nil {
		return
	}
	bw.acc = bw.acc<<1 | uint8(bit&1)
	bw.n++
	if bw.n == 8 {
		bw.emit()
	}
}

// writeCode appends the code's bits, most significant first.
func (bw *bitWriter) writeCode(c code) {
	for i := c.length - 1; i >= 0; i-- {
		bw.writeBit(c.val >> uint(i))
	}
}

// finish emits any partial byte, left-shifted so the padding occupies the low bits.
// The padding carries no marker; readers recover it by tracking exact bit counts.
func (bw *bitWriter) finish() error {
	if bw.err == nil && bw.n > 0 {
		bw.acc <<= uint(8 - bw.n)
		bw.n = 8
		bw.emit()
	}
	return bw.err
}

func (bw *bitWriter) emit() {
	_, err := bw.w.Write([]byte{bw.acc})
	if err != nil {
		bw.err = errors.Wrap(err, "")
	}
	bw.acc = 0
	bw.n = 0
}

// bitReader unpacks bits from bytes, most significant bit first.
type bitReader struct {
	r   io.Reader
	acc uint8
	n   int
}

func newBitReader(r io.Reader) *bitReader {
	return &bitReader{r: r}
}

// readBit returns the next bit, or io.EOF once the underlying reader is exhausted.
func (br *bitReader) readBit() (uint8, error) {
	if br.n == 0 {
		var buf [1]byte
		if _, err := io.ReadFull(br.r, buf[:]); err != nil {
			return 0, err
		}
		br.acc = buf[0]
		br.n = 8
	}
	br.n--
	return br.acc >> uint(br.n) & 1, nil
}
