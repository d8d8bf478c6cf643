package rop

// Code is the constraint for error tags. A domain declares its taxonomy as an
// integer type whose values are bit sets: base codes carry an ordinal,
// category markers a single bit, and composite codes OR both together.
//
// String must return the symbolic name of the tag; it is used as the key of
// validation-error maps and in rendered error text.
type Code interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
	String() string
}

// Unit is the value type of results that carry no value.
type Unit = struct{}

// HasFlag reports whether every bit of flag is set in c.
func HasFlag[C Code](c, flag C) bool {
	return c&flag == flag
}

func isUnit[T any]() bool {
	var zero T
	_, ok := any(zero).(Unit)
	return ok
}
