package sortable

// Int is a sortable wrapper type for the built-in int type.
//
// Example:
//
//	seq := sortedarray.NewSortable([]sortable.Int{5, 3, 7})
//	// seq holds 3, 5, 7
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// Int64 is a sortable wrapper type for the built-in int64 type.
type Int64 int64

// Compile-time check that Int64 implements Sortable[Int64].
var _ Sortable[Int64] = (*Int64)(nil)

// Equals returns true if this Int64 has the same value as the other Int64.
func (i Int64) Equals(other Int64) bool {
	return int64(i) == int64(other)
}

// LessThan returns true if this Int64 is numerically less than the other Int64.
func (i Int64) LessThan(other Int64) bool {
	return int64(i) < int64(other)
}

// Float64 is a sortable wrapper type for the built-in float64 type.
// NaN is neither less than nor equal to anything, including itself, so a
// sequence of Float64 values containing NaN has no meaningful order.
type Float64 float64

// Compile-time check that Float64 implements Sortable[Float64].
var _ Sortable[Float64] = (*Float64)(nil)

// Equals returns true if this Float64 has the same value as the other Float64.
func (f Float64) Equals(other Float64) bool {
	return float64(f) == float64(other)
}

// LessThan returns true if this Float64 is numerically less than the other Float64.
func (f Float64) LessThan(other Float64) bool {
	return float64(f) < float64(other)
}

// Byte is a sortable wrapper type for the built-in byte type.
type Byte byte

// Compile-time check that Byte implements Sortable[Byte].
var _ Sortable[Byte] = (*Byte)(nil)

// Equals returns true if this Byte has the same value as the other Byte.
func (b Byte) Equals(other Byte) bool {
	return byte(b) == byte(other)
}

// LessThan returns true if this Byte is numerically less than the other Byte.
func (b Byte) LessThan(other Byte) bool {
	return byte(b) < byte(other)
}
