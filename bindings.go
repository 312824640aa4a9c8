package argen

import "strings"

// Bindings is the fully resolved result of a successful parse. Every option
// of the schema is present, either user-supplied, defaulted, or explicitly
// unset; every fixed slot is present; the variadic capture preserves input
// order and may be empty. A Bindings value is constructed once per parse
// and never modified afterwards.
type Bindings struct {
	schema      *Schema
	options     map[string]Value
	positionals map[string]Value
	variadic    []string
}

// Option returns the bound value of the named option, or the zero Value
// when the schema defines no such option.
func (b *Bindings) Option(name string) Value {
	return b.options[name]
}

// IsSet returns true iff the user supplied the named option.
func (b *Bindings) IsSet(name string) bool {
	return b.options[name].IsSet()
}

// Positional returns the bound value of the named fixed slot, or the zero
// Value when the schema defines no such slot.
func (b *Bindings) Positional(name string) Value {
	return b.positionals[name]
}

// Variadic returns a copy of the tokens captured by the variadic slot, in
// their original relative order.
func (b *Bindings) Variadic() []string {
	return append([]string(nil), b.variadic...)
}

// Tokens re-serializes the bindings into a canonical argument vector:
// "--long=value" for every user-supplied value option, "--long" for every
// supplied flag, then the positional tokens in slot order followed by the
// variadic capture, guarded by "--" when any of them could be mistaken for
// an option. Defaulted and unset values are omitted, so parsing the result
// against the same schema reproduces the bindings.
func (b *Bindings) Tokens() []string {
	var out []string
	for _, o := range b.schema.options {
		v := b.options[o.name]
		if !v.IsSet() {
			continue
		}
		if o.kind == Flag {
			out = append(out, "--"+o.long)
			continue
		}
		out = append(out, "--"+o.long+"="+v.String())
	}

	var pos []string
	for _, p := range b.schema.positionals {
		v := b.positionals[p.name]
		if v.Origin() != Supplied {
			break // slots fill left to right, nothing supplied after this one
		}
		pos = append(pos, v.String())
	}
	pos = append(pos, b.variadic...)

	for _, tok := range pos {
		if strings.HasPrefix(tok, "-") && tok != "-" {
			out = append(out, "--")
			break
		}
	}
	return append(out, pos...)
}
