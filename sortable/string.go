package sortable

import "facette.io/natsort"

// String orders strings lexicographically by byte value.
type String string

var _ Sortable[String] = (*String)(nil)

// Equals reports exact string equality.
func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

// LessThan reports whether s sorts before other byte by byte.
func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// NaturalString orders strings in natural order: runs of digits compare
// numerically, so "file2" sorts before "file10".
type NaturalString string

var _ Sortable[NaturalString] = (*NaturalString)(nil)

// Equals reports exact string equality.
func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

// LessThan reports whether s strictly precedes other in natural order.
//
// natsort.Compare is not strict: it holds for equal strings, and for both orders
// of strings whose digit runs only differ in leading zeros ("file02", "file2").
// Those ties fall back to byte order, which keeps LessThan irreflexive and
// antisymmetric.
func (s NaturalString) LessThan(other NaturalString) bool {
	if s == other {
		return false
	}

	before := natsort.Compare(string(s), string(other))
	after := natsort.Compare(string(other), string(s))

	if before == after {
		return string(s) < string(other)
	}

	return before
}
