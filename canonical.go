package huffzip

import "sort"

// code is a Huffman codeword: the low length bits of val, most significant bit first.
type code struct {
	val    uint64
	length int
}

// tableEntry is one persisted code table entry.
// Only lengths travel in the file; canonical codes are fully determined by them.
type tableEntry struct {
	sym    byte
	length byte
}

// tableFromCodes collects a table entry for every symbol that has a code.
func tableFromCodes(codes *[256]code) []tableEntry {
	entries := make([]tableEntry, 0, 256)
	for sym, c := range codes {
		if c.length > 0 {
			entries = append(entries, tableEntry{sym: byte(sym), length: byte(c.length)})
		}
	}
	return entries
}

// assignCanonical derives the canonical code for each entry.
// Entries are sorted in place by (length, symbol); the first entry receives the
// all-zero code of its length, and each subsequent code is the previous value
// plus one, left-shifted by any increase in length.
// The result depends only on the set of (symbol, length) pairs, never on the
// order they are supplied in, so encoder and decoder derive identical codes.
func assignCanonical(entries []tableEntry) [256]code {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].length != entries[j].length {
			return entries[i].length < entries[j].length
		}
		return entries[i].sym < entries[j].sym
	})

	var codes [256]code
	var val uint64
	prev := 0
	for _, e := range entries {
		l := int(e.length)
		val <<= uint(l - prev)
		codes[e.sym] = code{val: val, length: l}
		val++
		prev = l
	}
	return codes
}
