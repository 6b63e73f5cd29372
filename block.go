package huffzip

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Block layout on disk:
//   u32 little-endian bit count of the packed stream
//   u16 little-endian table entry count
//   entry count times (u8 symbol, u8 code length), in (length, symbol) order
//   ceil(bits/8) bytes of packed bits, final byte zero-padded low
// There is no outer framing; end of input is the only block-sequence terminator.

// encodeBlock compresses one block of bytes into w. block must be non-empty.
func encodeBlock(w io.Writer, block []byte) error {
	freq := countFrequencies(block)
	root := buildTree(&freq)
	codes := extractCodes(root)
	entries := tableFromCodes(&codes)
	canonical := assignCanonical(entries)

	var bits uint64
	for sym, f := range freq {
		bits += uint64(f) * uint64(canonical[sym].length)
	}

	header := make([]byte, 4+2+2*len(entries))
	binary.LittleEndian.PutUint32(header[0:], uint32(bits))
	binary.LittleEndian.PutUint16(header[4:], uint16(len(entries)))
	for i, e := range entries {
		header[6+2*i] = e.sym
		header[7+2*i] = e.length
	}
	if _, err := w.Write(header); err != nil {
		return errors.Wrap(err, "")
	}

	bw := newBitWriter(w)
	for _, b := range block {
		bw.writeCode(canonical[b])
	}
	return bw.finish()
}

// decodeBlock reads and decompresses one block from r.
// A clean end of the stream before any header byte is reported as io.EOF with no block.
// When the stream ends inside a block, strict mode fails with ErrTruncated as the cause;
// otherwise the bytes decoded so far are returned together with io.EOF.
func decodeBlock(r io.Reader, strict bool) ([]byte, error) {
	var header [6]byte
	if _, err := io.ReadFull(r, header[:4]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, shortBlock(err, strict)
	}
	bits := binary.LittleEndian.Uint32(header[:4])

	if _, err := io.ReadFull(r, header[4:6]); err != nil {
		return nil, shortBlock(err, strict)
	}
	count := int(binary.LittleEndian.Uint16(header[4:6]))
	raw := make([]byte, 2*count)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, shortBlock(err, strict)
	}

	entries := make([]tableEntry, count)
	for i := range entries {
		entries[i] = tableEntry{sym: raw[2*i], length: raw[2*i+1]}
	}
	// Entries are re-sorted inside assignCanonical, so a table stored out of
	// canonical order still reconstructs the same codes.
	for _, e := range entries {
		if e.length == 0 || e.length > 64 {
			return nil, errors.Wrapf(ErrCorrupt, "code length %d out of range", e.length)
		}
	}
	canonical := assignCanonical(entries)
	root := buildDecodeTree(entries, &canonical)

	out := make([]byte, 0, bits/8)
	br := newBitReader(r)
	n := root
	for i := uint32(0); i < bits; i++ {
		bit, err := br.readBit()
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				if strict {
					return nil, errors.Wrapf(ErrTruncated, "%d of %d bits", i, bits)
				}
				return out, io.EOF
			}
			return nil, errors.Wrap(err, "")
		}
		if bit == 1 {
			n = n.left
		} else {
			n = n.right
		}
		if n == nil {
			if strict {
				return nil, errors.Wrap(ErrCorrupt, "bit sequence matches no codeword")
			}
			return out, io.EOF
		}
		if n.left == nil && n.right == nil {
			out = append(out, n.sym)
			n = root
		}
	}
	return out, nil
}

// buildDecodeTree inserts each canonical codeword's bit path into a fresh binary
// trie, with the symbol at the terminal node. The bit convention matches
// extractCodes: a 1-bit descends left, a 0-bit right.
func buildDecodeTree(entries []tableEntry, canonical *[256]code) *node {
	root := new(node)
	for _, e := range entries {
		c := canonical[e.sym]
		n := root
		for i := c.length - 1; i >= 0; i-- {
			if c.val>>uint(i)&1 == 1 {
				if n.left == nil {
					n.left = new(node)
				}
				n = n.left
			} else {
				if n.right == nil {
					n.right = new(node)
				}
				n = n.right
			}
		}
		n.sym = e.sym
	}
	return root
}

// shortBlock classifies a stream that ended inside a block header or table.
func shortBlock(err error, strict bool) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		if strict {
			return errors.Wrap(ErrTruncated, "inside block header")
		}
		return io.EOF
	}
	return errors.Wrap(err, "")
}
