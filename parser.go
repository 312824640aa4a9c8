package argen

import (
	"fmt"
	"strings"
)

// Parse scans the argument vector (without the program name) against the
// schema and returns the bindings, ErrHelp when the built-in help option was
// seen, or exactly one *ParseError. The vector is scanned once, left to
// right; options and positional tokens may be freely interleaved and "--"
// forces every following token to be treated as positional, dashes and all.
// The schema is only read, never modified, so concurrent calls on one
// schema are safe. Parse panics if a required slot follows an optional one,
// which is a definition error, not bad input.
func (s *Schema) Parse(args []string) (*Bindings, error) {
	s.checkSlotOrder()

	b := &Bindings{
		schema:      s,
		options:     make(map[string]Value, len(s.options)),
		positionals: make(map[string]Value, len(s.positionals)),
	}

	var rest []string
	i := 0
	for i < len(args) {
		tok := args[i]
		i++

		switch {
		case tok == "--":
			rest = append(rest, args[i:]...)
			i = len(args)

		case len(tok) < 2 || tok[0] != '-':
			// positional candidate, including "" and the bare "-"
			rest = append(rest, tok)

		case tok[1] == '-':
			n, err := s.scanLong(b, tok, args, i)
			if err != nil {
				if unknownWholeToken(err, tok) && s.ignoreUnknown {
					rest = append(rest, tok)
					continue
				}
				return nil, err
			}
			i += n

		default:
			n, err := s.scanShort(b, tok, args, i)
			if err != nil {
				if unknownWholeToken(err, tok) && s.ignoreUnknown {
					rest = append(rest, tok)
					continue
				}
				return nil, err
			}
			i += n
		}
	}

	if err := s.bindOptions(b); err != nil {
		return nil, err
	}
	if err := s.distribute(b, rest); err != nil {
		return nil, err
	}
	return b, nil
}

// scanLong handles a token starting with "--". It returns how many extra
// tokens were consumed (0 or 1).
func (s *Schema) scanLong(b *Bindings, tok string, args []string, next int) (int, error) {
	name := tok[2:]
	value, hasValue := "", false
	if j := strings.IndexByte(name, '='); j >= 0 {
		name, value, hasValue = name[:j], name[j+1:], true
	}

	o, ok := s.byLong[name]
	if !ok {
		if name == "help" && !s.noHelp {
			return 0, ErrHelp
		}
		return 0, &ParseError{Kind: UnknownOption, Token: tok, Index: next - 1}
	}

	if o.kind == Flag {
		if hasValue {
			return 0, &ParseError{Kind: InvalidOptionValue, Option: o.name, Token: tok, Index: next - 1}
		}
		b.options[o.name] = Value{kind: Flag, origin: Supplied, on: true}
		return 0, nil
	}

	consumed := 0
	if !hasValue {
		if next >= len(args) {
			return 0, &ParseError{Kind: MissingOptionValue, Option: o.name, Token: tok, Index: next - 1}
		}
		value = args[next]
		consumed = 1
	}
	v, err := supplied(o.kind, value)
	if err != nil {
		return 0, &ParseError{Kind: InvalidOptionValue, Option: o.name, Token: value, Index: next - 1}
	}
	b.options[o.name] = v
	return consumed, nil
}

// scanShort handles a token starting with a single dash: a short option or
// a cluster of them. Every rune but the last must be a flag; the last may
// take its value from the attached remainder ("-b20", "-b=20") or from the
// next token. It returns how many extra tokens were consumed (0 or 1).
func (s *Schema) scanShort(b *Bindings, tok string, args []string, next int) (int, error) {
	runes := []rune(tok[1:])
	for k := 0; k < len(runes); k++ {
		r := runes[k]
		o, ok := s.byShort[r]
		if !ok {
			if r == 'h' && !s.noHelp {
				return 0, ErrHelp
			}
			// report the whole token only while nothing of it was used yet,
			// so that IgnoreUnknown can pass it through intact
			if k == 0 {
				return 0, &ParseError{Kind: UnknownOption, Token: tok, Index: next - 1}
			}
			return 0, &ParseError{Kind: UnknownOption, Token: "-" + string(r), Index: next - 1}
		}

		if o.kind == Flag {
			b.options[o.name] = Value{kind: Flag, origin: Supplied, on: true}
			continue
		}

		// value-taking short: the rest of the token is the value, if any
		value := strings.TrimPrefix(string(runes[k+1:]), "=")
		consumed := 0
		if value == "" {
			if next >= len(args) {
				return 0, &ParseError{Kind: MissingOptionValue, Option: o.name, Token: tok, Index: next - 1}
			}
			value = args[next]
			consumed = 1
		}
		v, err := supplied(o.kind, value)
		if err != nil {
			return 0, &ParseError{Kind: InvalidOptionValue, Option: o.name, Token: value, Index: next - 1}
		}
		b.options[o.name] = v
		return consumed, nil
	}
	return 0, nil
}

// helpers

// unknownWholeToken reports whether err is an UnknownOption naming exactly
// the token being scanned, the only case IgnoreUnknown may swallow.
func unknownWholeToken(err error, tok string) bool {
	pe, ok := err.(*ParseError)
	return ok && pe.Kind == UnknownOption && pe.Token == tok
}

// checkSlotOrder panics when a required slot follows an optional one. The
// parser could never fill such a schema deterministically.
func (s *Schema) checkSlotOrder() {
	optional := false
	for _, p := range s.positionals {
		if p.optional {
			optional = true
		} else if optional {
			panic(fmt.Errorf(`required slot "%s" cannot follow an optional slot`, p.name))
		}
	}
}
