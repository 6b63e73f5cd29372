package huffzip

import "testing"

func TestAssignCanonical(t *testing.T) {
	entries := []tableEntry{{sym: 'a', length: 2}, {sym: 'c', length: 1}, {sym: 'b', length: 2}}
	codes := assignCanonical(entries)

	// Sorted by (length, symbol): c gets the all-zero code, then a, then b.
	if codes['c'] != (code{val: 0, length: 1}) {
		t.Fatalf("%+v", codes['c'])
	}
	if codes['a'] != (code{val: 2, length: 2}) {
		t.Fatalf("%+v", codes['a'])
	}
	if codes['b'] != (code{val: 3, length: 2}) {
		t.Fatalf("%+v", codes['b'])
	}
}

// TestAssignCanonicalOrderIndependence checks that the canonical assignment is
// a pure function of the set of (symbol, length) pairs, however they arrive.
func TestAssignCanonicalOrderIndependence(t *testing.T) {
	perms := [][]tableEntry{
		{{'x', 3}, {'y', 3}, {'z', 2}, {'w', 1}},
		{{'w', 1}, {'z', 2}, {'y', 3}, {'x', 3}},
		{{'y', 3}, {'w', 1}, {'x', 3}, {'z', 2}},
	}
	want := assignCanonical(perms[0])
	for i, perm := range perms[1:] {
		got := assignCanonical(perm)
		if got != want {
			t.Fatalf("permutation %d produced different codes", i+1)
		}
	}
}

func TestTableFromCodes(t *testing.T) {
	var codes [256]code
	codes['q'] = code{val: 1, length: 1}
	codes[0x00] = code{val: 2, length: 2}

	entries := tableFromCodes(&codes)
	if len(entries) != 2 {
		t.Fatalf("%v", entries)
	}
	if entries[0] != (tableEntry{sym: 0x00, length: 2}) || entries[1] != (tableEntry{sym: 'q', length: 1}) {
		t.Fatalf("%v", entries)
	}
}
