package resolve

//go:generate go tool stringer -type=ScalarKind -output=scalarkind_string.go

// ScalarKind is the closed set of target representations a declared scalar
// type resolves to. The classification is decided once, during resolution,
// and threaded through emission; it is never re-derived later.
type ScalarKind int

const (
	// KindText is the explicit fallback: text bases, unrecognized bases,
	// and collapsed list/union declarations all land here. Deliberately the
	// zero value.
	KindText ScalarKind = iota
	KindEnum
	KindInteger
	KindDecimal
	KindBoolean
	KindTimestamp
)

// IsValue reports whether the kind is a value scalar, i.e. one whose Go zero
// value is indistinguishable from an absent optional value. Text and enum
// kinds are not value scalars; their empty string already means "absent".
func (k ScalarKind) IsValue() bool {
	switch k {
	case KindInteger, KindDecimal, KindBoolean, KindTimestamp:
		return true
	default:
		return false
	}
}
