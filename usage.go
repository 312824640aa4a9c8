package argen

import (
	"fmt"
	"io"
	"strings"
)

// Usage renders the help text for the schema: a synopsis line followed by
// one entry per positional slot and per option, aliases folded into the
// option's entry and defaults shown after the help lines. The engine never
// calls this itself; hosts decide when and where the text goes (typically
// after ErrHelp or a ParseError). When prog is empty the schema's program
// name is used.
func Usage(w io.Writer, prog string, s *Schema) {
	if prog == "" {
		prog = s.prog
	}
	if prog == "" {
		prog = "program"
	}

	fmt.Fprintf(w, "usage: %s%s%s\n", prog, optionsMark(s), synopsis(s))

	for _, p := range s.positionals {
		fmt.Fprintf(w, "  %s\n", strings.ToUpper(p.name))
		for _, line := range p.doc {
			fmt.Fprintf(w, "        %s\n", line)
		}
		if p.def != nil {
			fmt.Fprintf(w, "        (default: %s)\n", *p.def)
		}
	}
	if v := s.variadic; v != nil {
		fmt.Fprintf(w, "  %s\n", strings.ToUpper(v.name))
		for _, line := range v.doc {
			fmt.Fprintf(w, "        %s\n", line)
		}
	}

	if !s.noHelp {
		fmt.Fprintf(w, "  -h  --help\n        print this usage and exit\n")
	}
	for _, o := range s.options {
		fmt.Fprintf(w, "  %s\n", optionLine(o))
		for _, line := range o.doc {
			fmt.Fprintf(w, "        %s\n", line)
		}
		if o.def != nil {
			fmt.Fprintf(w, "        (default: %s)\n", o.def.String())
		}
	}
}

// helpers

// optionsMark returns the " [options]" part of the synopsis, or "" for a
// schema without options and with help disabled.
func optionsMark(s *Schema) string {
	if len(s.options) == 0 && s.noHelp {
		return ""
	}
	return " [options]"
}

// synopsis lists the positional slots: NAME for required slots, [NAME] for
// optional ones, [NAME...] for the variadic capture.
func synopsis(s *Schema) string {
	var b strings.Builder
	for _, p := range s.positionals {
		name := strings.ToUpper(p.name)
		if p.optional {
			fmt.Fprintf(&b, " [%s]", name)
		} else {
			fmt.Fprintf(&b, " %s", name)
		}
	}
	if v := s.variadic; v != nil {
		fmt.Fprintf(&b, " [%s...]", strings.ToUpper(v.name))
	}
	return b.String()
}

// optionLine builds the flags row of an option entry, for example
//
//	-b  --block-size <num>  (aliased: --blocksize --bs)
func optionLine(o *OptionSpec) string {
	var b strings.Builder
	if o.short != 0 {
		fmt.Fprintf(&b, "-%c  ", o.short)
	} else {
		b.WriteString("    ")
	}
	fmt.Fprintf(&b, "--%s", o.long)
	switch o.kind {
	case Int:
		b.WriteString(" <num>")
	case String:
		b.WriteString(" <arg>")
	}
	if len(o.aliases) > 0 {
		b.WriteString("  (aliased:")
		for _, a := range o.aliases {
			fmt.Fprintf(&b, " --%s", a)
		}
		b.WriteString(")")
	}
	return b.String()
}
