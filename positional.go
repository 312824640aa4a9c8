package argen

// bindOptions completes the option bindings after the scan: every option
// the user did not supply binds its default, fails as missing, or binds an
// explicit unset value. Options are visited in declaration order, so the
// first violated definition is the one reported.
func (s *Schema) bindOptions(b *Bindings) error {
	for _, o := range s.options {
		if _, ok := b.options[o.name]; ok {
			continue
		}
		if o.def != nil {
			b.options[o.name] = *o.def
			continue
		}
		if o.required {
			return &ParseError{Kind: MissingRequiredOption, Option: o.name, Index: -1}
		}
		b.options[o.name] = Value{kind: o.kind, origin: Unset}
	}
	return nil
}

// distribute fills the positional slots, in declared order, from the tokens
// left over by the scan. Each fixed slot takes exactly one token; the
// variadic slot takes everything else, possibly nothing.
func (s *Schema) distribute(b *Bindings, rest []string) error {
	i := 0
	for _, p := range s.positionals {
		if i < len(rest) {
			b.positionals[p.name] = Value{kind: String, origin: Supplied, text: rest[i]}
			i++
			continue
		}
		if !p.optional {
			return &ParseError{Kind: MissingPositionalArgument, Slot: p.name, Index: -1}
		}
		if p.def != nil {
			b.positionals[p.name] = Value{kind: String, origin: Defaulted, text: *p.def}
		} else {
			b.positionals[p.name] = Value{kind: String, origin: Unset}
		}
	}

	if s.variadic != nil {
		b.variadic = append([]string(nil), rest[i:]...)
		return nil
	}
	if i < len(rest) && !s.allowExtra {
		return &ParseError{Kind: UnexpectedPositionalArgument, Token: rest[i], Index: -1}
	}
	return nil
}
