// Package huffzip implements a block-oriented lossless file compressor based on canonical Huffman coding.
// The input is split into fixed-size blocks, and each block is compressed independently:
// a self-describing header carries the block's code lengths, from which the decoder rebuilds the exact codes.
// Since blocks share no state, a compressed file is simply the concatenation of compressed blocks,
// and peak memory is bounded by a single block's working set no matter how large the file is.
//
// Below is an example of compressing a file and restoring it:
//    huffzip c report.txt report.txt.hz
//    huffzip d report.txt.hz report.txt
//    diff report.txt report.txt.hz
package huffzip

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("huffzip")

// DefaultBlockSize is the number of input bytes compressed into one block.
const DefaultBlockSize = 1 << 20

// maxBlockSize keeps a block's bit length representable in the 32-bit header field.
const maxBlockSize = 1 << 26

// ErrTruncated is returned by strict decompression when the compressed stream ends
// before the declared number of bits has been read.
var ErrTruncated = fmt.Errorf("truncated compressed stream")

// ErrCorrupt is returned when a block's code table or bitstream is inconsistent
// with the format, regardless of decompression mode.
var ErrCorrupt = fmt.Errorf("corrupt compressed stream")

// Compress reads r until EOF and writes its compressed form to w.
// The input is consumed in chunks of blockSize bytes, each compressed as one independent block.
// The final chunk may be shorter; a zero-length read emits no block.
func Compress(w io.Writer, r io.Reader, blockSize int) error {
	return compress(w, r, blockSize, nil)
}

func compress(w io.Writer, r io.Reader, blockSize int, progress func()) error {
	if blockSize <= 0 || blockSize > maxBlockSize {
		return errors.Errorf("block size %d out of range (0, %d]", blockSize, maxBlockSize)
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, blockSize)
	for {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			if eerr := encodeBlock(bw, buf[:n]); eerr != nil {
				return eerr
			}
			if progress != nil {
				progress()
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "")
		}
	}
	return errors.Wrap(bw.Flush(), "")
}

// Decompress reads compressed blocks from r until EOF and writes the reconstructed bytes to w.
// With strict true, a stream that ends before a block's declared bit count has been read
// fails with an error wrapping ErrTruncated.
// With strict false, decoding stops quietly at the point of truncation and whatever has been
// reconstructed so far is kept, matching the permissive behavior of early versions of this format.
func Decompress(w io.Writer, r io.Reader, strict bool) error {
	return decompress(w, r, strict, nil)
}

func decompress(w io.Writer, r io.Reader, strict bool, progress func()) error {
	bw := bufio.NewWriter(w)
	br := bufio.NewReader(r)
	for {
		block, err := decodeBlock(br, strict)
		if len(block) > 0 {
			if _, werr := bw.Write(block); werr != nil {
				return errors.Wrap(werr, "")
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if progress != nil {
			progress()
		}
	}
	return errors.Wrap(bw.Flush(), "")
}

// CompressFile compresses the file named src into a new file named dst,
// logging progress as blocks complete.
func CompressFile(dst, src string, blockSize int) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "")
	}
	defer in.Close()
	fi, err := in.Stat()
	if err != nil {
		return errors.Wrap(err, "")
	}
	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(err, "")
	}

	cr := &countingReader{r: in}
	cw := &countingWriter{w: out}
	total := fi.Size()
	if err := compress(cw, cr, blockSize, logPercent("compressing", cr, total)); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(err, "")
	}
	log.Infof("compressed %d bytes into %d bytes", cr.n, cw.n)
	return nil
}

// DecompressFile decompresses the file named src into a new file named dst,
// logging progress as blocks complete.
func DecompressFile(dst, src string, strict bool) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "")
	}
	defer in.Close()
	fi, err := in.Stat()
	if err != nil {
		return errors.Wrap(err, "")
	}
	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(err, "")
	}

	cr := &countingReader{r: in}
	cw := &countingWriter{w: out}
	total := fi.Size()
	if err := decompress(cw, cr, strict, logPercent("decompressing", cr, total)); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(err, "")
	}
	log.Infof("decompressed %d bytes into %d bytes", cr.n, cw.n)
	return nil
}

// logPercent reports how far into the input we are.
// The reader is consumed through internal buffering, so the percentage is
// accurate only to within one buffer; it is informational, not a correctness signal.
func logPercent(verb string, cr *countingReader, total int64) func() {
	return func() {
		if total <= 0 {
			return
		}
		pct := float64(cr.n) * 100 / float64(total)
		if pct > 100 {
			pct = 100
		}
		log.Debugf("%s: %.1f%%", verb, pct)
	}
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
