package argen

import (
	"fmt"
	"strconv"
)

// Kind tells what kind of value an option takes. Flag options take no value
// at all; they are either present or absent on the command line.
type Kind int

const (
	// String is the kind of options and positional slots bound to raw text.
	String Kind = iota
	// Int is the kind of options converted with strconv.ParseInt in base 0,
	// so plain decimal, 0x... and 0... spellings are all accepted.
	Int
	// Flag is the kind of options which take no value.
	Flag
)

// String returns the name of the kind as used in schema declaration files.
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "int"
	case Flag:
		return "flag"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Origin tells where a bound value came from. Callers can distinguish "the
// user passed it", "it fell back to the declared default", and "it was never
// set and there is no default".
type Origin int

const (
	// Unset marks a value the user did not supply and which has no default.
	Unset Origin = iota
	// Defaulted marks a value bound from the declared default.
	Defaulted
	// Supplied marks a value the user supplied on the command line.
	Supplied
)

// String returns a short name for the origin.
func (o Origin) String() string {
	switch o {
	case Unset:
		return "unset"
	case Defaulted:
		return "default"
	case Supplied:
		return "supplied"
	}
	return fmt.Sprintf("Origin(%d)", int(o))
}

// Value is one bound option or positional value. The zero Value is an unset
// string value. Values are plain data and can be copied freely.
type Value struct {
	kind   Kind
	origin Origin
	text   string // original spelling, empty when unset
	num    int64  // converted number for Int values
	on     bool   // true for a flag which was given
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Origin returns where the value came from.
func (v Value) Origin() Origin { return v.origin }

// IsSet returns true iff the user supplied the value on the command line.
// It is false for defaults, so a default of 0 and a user-supplied 0 can be
// told apart.
func (v Value) IsSet() bool { return v.origin == Supplied }

// String returns the value as text: the original spelling for string and int
// values, "true" or "false" for flags, and "" when unset.
func (v Value) String() string {
	if v.kind == Flag {
		if v.on {
			return "true"
		}
		return "false"
	}
	return v.text
}

// Int returns the converted number of an Int value. It is 0 for unset values
// and for values of any other kind.
func (v Value) Int() int64 { return v.num }

// Bool returns true iff a flag value was given.
func (v Value) Bool() bool { return v.on }

// helpers

// supplied converts text to a value of kind k with origin Supplied.
func supplied(k Kind, text string) (Value, error) {
	return convert(k, text, Supplied)
}

// convert converts text to a value of kind k. The original spelling is kept
// so it can be reproduced by Bindings.Tokens.
func convert(k Kind, text string, origin Origin) (Value, error) {
	v := Value{kind: k, origin: origin, text: text}
	switch k {
	case String:
		// raw text
	case Int:
		n, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return Value{kind: k}, fmt.Errorf(`cannot convert "%s" to an integer`, text)
		}
		v.num = n
	case Flag:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return Value{kind: k}, fmt.Errorf(`cannot convert "%s" to a boolean`, text)
		}
		v.on = b
	}
	return v, nil
}
