// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, so they can be kept in a sortedarray.Sequence built
// with sortedarray.NewSortable.
//
// # Overview
//
// The Sortable interface extends [github.com/amp-labs/amp-sorted/compare.Comparable]
// with a LessThan method, giving a type both equality and a natural ordering.
// Ready-made implementations exist for [Int], [Int64], [Float64], [Byte], [String]
// and [NaturalString].
//
// Types that are already cmp.Ordered (int, float64, string, ...) do not need a
// wrapper: sortedarray.New orders them directly. Wrappers are for the cases where
// the natural ordering is not Go's built-in one, as with NaturalString, or where
// a domain type defines its own.
//
// # Usage
//
//	files := sortedarray.NewSortable([]sortable.NaturalString{"file10", "file2", "file1"})
//	// files holds file1, file2, file10
//
// # Creating Custom Sortable Types
//
//	type Version struct {
//	    Major, Minor int
//	}
//
//	func (v Version) Equals(other Version) bool {
//	    return v == other
//	}
//
//	func (v Version) LessThan(other Version) bool {
//	    if v.Major != other.Major {
//	        return v.Major < other.Major
//	    }
//	    return v.Minor < other.Minor
//	}
//
// Compare turns any Sortable into a three-way comparison. It consults LessThan
// first and Equals second; a pair that is neither sorts the first value after
// the second.
package sortable
