package gcode

import "strconv"

// AddressKind discriminates the value carried by an Address.
type AddressKind int

const (
	AddressInt AddressKind = iota
	AddressFloat
)

func (k AddressKind) String() string {
	if k == AddressInt {
		return "int"
	}
	return "float"
}

// Address is the numeric value attached to a word letter. It is either an
// integer or a float; the kind is fixed at construction.
type Address struct {
	kind AddressKind
	i    int
	f    float64
}

func IntAddress(v int) Address {
	return Address{kind: AddressInt, i: v}
}
func FloatAddress(v float64) Address {
	return Address{kind: AddressFloat, f: v}
}

func (a Address) Kind() AddressKind { return a.kind }

// Int returns the integer value. ok is false for a float address.
func (a Address) Int() (v int, ok bool) {
	if a.kind != AddressInt {
		return 0, false
	}
	return a.i, true
}

// Float returns the float value. ok is false for an integer address.
func (a Address) Float() (v float64, ok bool) {
	if a.kind != AddressFloat {
		return 0, false
	}
	return a.f, true
}

// String renders the value. Floats use the shortest non-exponent form so a
// rendered program re-lexes cleanly.
func (a Address) String() string {
	if a.kind == AddressInt {
		return strconv.Itoa(a.i)
	}
	return strconv.FormatFloat(a.f, 'f', -1, 64)
}

func (a Address) Equals(o Address) bool {
	return a == o
}
