package argen

import (
	"fmt"
	"reflect"
	"unicode"
)

// Schema is the immutable declaration of all options and positional slots a
// parser recognizes. It is built once with Option, Positional and Variadic
// and must not be modified after the first call to Parse. A Schema holds no
// per-parse state, so a single value can serve any number of concurrent
// Parse calls.
type Schema struct {
	prog        string
	options     []*OptionSpec
	positionals []*PositionalSpec
	variadic    *PositionalSpec
	byName      map[string]*OptionSpec
	byLong      map[string]*OptionSpec // long forms and aliases
	byShort     map[rune]*OptionSpec
	targets     map[interface{}]bool // duplicate detection

	ignoreUnknown bool
	allowExtra    bool
	noHelp        bool
}

// New returns an empty Schema.
func New() *Schema {
	return &Schema{
		byName:  make(map[string]*OptionSpec),
		byLong:  make(map[string]*OptionSpec),
		byShort: make(map[rune]*OptionSpec),
		targets: make(map[interface{}]bool),
	}
}

// Prog sets the program name used by the usage renderer and returns the
// schema for chaining.
func (s *Schema) Prog(name string) *Schema {
	s.prog = name
	return s
}

// ProgName returns the program name set with Prog, or "" when none was set.
func (s *Schema) ProgName() string { return s.prog }

// IgnoreUnknown makes the parser pass option-shaped tokens which match no
// defined option through to positional distribution instead of failing with
// UnknownOption.
func (s *Schema) IgnoreUnknown() *Schema {
	s.ignoreUnknown = true
	return s
}

// AllowExtra makes the parser silently drop positional tokens left over
// after all fixed slots are filled, instead of failing with
// UnexpectedPositionalArgument. Irrelevant when the schema has a variadic
// slot, which claims all leftovers anyway.
func (s *Schema) AllowExtra() *Schema {
	s.allowExtra = true
	return s
}

// NoHelp disables the built-in interception of -h and --help. The built-in
// is also disabled selectively for any form the schema claims itself.
func (s *Schema) NoHelp() *Schema {
	s.noHelp = true
	return s
}

// Option defines an option with a canonical name and returns its spec for
// chaining. The long form defaults to the name. The option takes a string
// value unless Int or Flag is called. This is designed so that a complete
// definition is a one-liner:
//
//	s.Option("block-size").Short('b').Aka("blocksize").Aka("bs").Int().Default(12)
//
// Like every definition method, Option panics when it detects an error: a
// duplicate name or long form, or a name containing a character other than a
// letter, a digit, a hyphen or an underscore. A definition error is a bug in
// the program, which cannot continue safely; errors originating from user
// input never panic.
func (s *Schema) Option(name string) *OptionSpec {
	if _, ok := s.byName[name]; ok {
		panic(fmt.Errorf(`option "%s" already defined`, name))
	}
	if err := validate(name); err != nil {
		panic(err)
	}
	o := &OptionSpec{schema: s, name: name, long: name, kind: String}
	s.claimLong(name, o)
	s.byName[name] = o
	s.options = append(s.options, o)
	return o
}

// Positional defines the next fixed positional slot and returns its spec
// for chaining. Slots are required unless marked Opt; a required slot can
// never follow an optional one, which Parse enforces. Panics if the name is
// invalid or already used or if a variadic slot was already defined.
func (s *Schema) Positional(name string) *PositionalSpec {
	p := s.defineSlot(name)
	s.positionals = append(s.positionals, p)
	return p
}

// Variadic defines the trailing slot capturing all remaining tokens, in
// order, possibly none. Panics if the name is invalid or already used or if
// a variadic slot was already defined. No further slot can be defined after
// it.
func (s *Schema) Variadic(name string) *PositionalSpec {
	p := s.defineSlot(name)
	p.variadic = true
	s.variadic = p
	return p
}

// Options returns the option specs in declaration order, for usage
// renderers and other introspection.
func (s *Schema) Options() []*OptionSpec {
	return append([]*OptionSpec(nil), s.options...)
}

// Positionals returns the fixed slot specs in declaration order.
func (s *Schema) Positionals() []*PositionalSpec {
	return append([]*PositionalSpec(nil), s.positionals...)
}

// VariadicSlot returns the variadic slot spec, or nil.
func (s *Schema) VariadicSlot() *PositionalSpec { return s.variadic }

// OptionSpec describes one option. It is created by Schema.Option; the
// chaining methods fill in the details. All of them panic on definition
// errors, as documented on Schema.Option.
type OptionSpec struct {
	schema   *Schema
	name     string
	short    rune // 0 when none
	long     string
	aliases  []string
	kind     Kind
	def      *Value
	required bool
	doc      []string
	target   interface{}
}

// Name returns the canonical name.
func (o *OptionSpec) Name() string { return o.name }

// ShortForm returns the short rune, or 0 when none is defined.
func (o *OptionSpec) ShortForm() rune { return o.short }

// LongForm returns the long form (the canonical name unless Long was used).
func (o *OptionSpec) LongForm() string { return o.long }

// Aliases returns the alias long forms in definition order.
func (o *OptionSpec) Aliases() []string {
	return append([]string(nil), o.aliases...)
}

// ValueKind returns the kind of value the option takes.
func (o *OptionSpec) ValueKind() Kind { return o.kind }

// DefaultValue returns the declared default and true, or a zero Value and
// false when there is none.
func (o *OptionSpec) DefaultValue() (Value, bool) {
	if o.def == nil {
		return Value{}, false
	}
	return *o.def, true
}

// IsRequired returns true iff the option was marked Required.
func (o *OptionSpec) IsRequired() bool { return o.required }

// Help returns the help lines set with Doc.
func (o *OptionSpec) Help() []string {
	return append([]string(nil), o.doc...)
}

// Short sets the single-character form. Panics if r is not a letter or a
// digit, or if another option already claims it.
func (o *OptionSpec) Short(r rune) *OptionSpec {
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		panic(fmt.Errorf(`'%c' cannot be used as the short form of option "%s"`, r, o.name))
	}
	if prev, ok := o.schema.byShort[r]; ok {
		panic(fmt.Errorf(`short form '%c' of option "%s" clashes with option "%s"`, r, o.name, prev.name))
	}
	if o.short != 0 {
		delete(o.schema.byShort, o.short)
	}
	o.short = r
	o.schema.byShort[r] = o
	return o
}

// Long replaces the default long form (the canonical name) with long.
// Panics on an invalid or already claimed long form.
func (o *OptionSpec) Long(long string) *OptionSpec {
	delete(o.schema.byLong, o.long)
	o.schema.claimLong(long, o)
	o.long = long
	return o
}

// Aka adds an alias long form. Panics on an invalid or already claimed
// alias.
func (o *OptionSpec) Aka(alias string) *OptionSpec {
	o.schema.claimLong(alias, o)
	o.aliases = append(o.aliases, alias)
	return o
}

// Int makes the option take an integer value, parsed in base 0 so decimal,
// hexadecimal and octal spellings are accepted. Panics if the option is a
// flag or if a default was already set (set the kind first).
func (o *OptionSpec) Int() *OptionSpec {
	if o.kind == Flag {
		panic(fmt.Errorf(`flag option "%s" cannot take a value`, o.name))
	}
	if o.def != nil {
		panic(fmt.Errorf(`option "%s": set the kind before the default`, o.name))
	}
	o.kind = Int
	return o
}

// Flag makes the option take no value; it is simply present or absent.
// Panics if a default was already set: flags have no defaults.
func (o *OptionSpec) Flag() *OptionSpec {
	if o.def != nil {
		panic(fmt.Errorf(`option "%s" has a default and cannot be a flag`, o.name))
	}
	o.kind = Flag
	return o
}

// Default declares the value bound when the user does not supply the
// option. The argument may be a string, which is converted like user input,
// or an int/int64 for Int options. Panics on a flag or required option, or
// when the value does not convert.
func (o *OptionSpec) Default(value interface{}) *OptionSpec {
	if o.kind == Flag {
		panic(fmt.Errorf(`flag option "%s" cannot have a default`, o.name))
	}
	if o.required {
		panic(fmt.Errorf(`required option "%s" cannot have a default`, o.name))
	}
	var text string
	switch t := value.(type) {
	case string:
		text = t
	case int:
		text = fmt.Sprint(t)
	case int64:
		text = fmt.Sprint(t)
	default:
		panic(fmt.Errorf(`default for option "%s" has unsupported type %v`, o.name, reflect.TypeOf(value)))
	}
	v, err := convert(o.kind, text, Defaulted)
	if err != nil {
		panic(fmt.Errorf(`invalid default for option "%s": %v`, o.name, err))
	}
	o.def = &v
	return o
}

// Required marks the option as mandatory. Panics if a default was set: a
// defaulted option can always be omitted.
func (o *OptionSpec) Required() *OptionSpec {
	if o.def != nil {
		panic(fmt.Errorf(`option "%s" has a default and cannot be required`, o.name))
	}
	o.required = true
	return o
}

// Doc sets lines of help text for the option.
func (o *OptionSpec) Doc(s ...string) *OptionSpec {
	o.doc = s
	return o
}

// Bind sets a pointer which Bindings.Apply fills with the bound value:
// *bool for flags, integer pointers for Int options, *string otherwise.
// Panics if target is not a pointer or is already bound elsewhere.
func (o *OptionSpec) Bind(target interface{}) *OptionSpec {
	o.schema.claimTarget(o.name, target)
	o.target = target
	return o
}

// PositionalSpec describes one positional slot. It is created by
// Schema.Positional or Schema.Variadic.
type PositionalSpec struct {
	schema   *Schema
	name     string
	optional bool
	variadic bool
	def      *string
	doc      []string
	target   interface{}
}

// Name returns the slot name.
func (p *PositionalSpec) Name() string { return p.name }

// IsOptional returns true iff the slot was marked Opt.
func (p *PositionalSpec) IsOptional() bool { return p.optional }

// IsVariadic returns true iff the slot captures all trailing tokens.
func (p *PositionalSpec) IsVariadic() bool { return p.variadic }

// DefaultValue returns the declared default and true, or "" and false.
func (p *PositionalSpec) DefaultValue() (string, bool) {
	if p.def == nil {
		return "", false
	}
	return *p.def, true
}

// Help returns the help lines set with Doc.
func (p *PositionalSpec) Help() []string {
	return append([]string(nil), p.doc...)
}

// Opt marks the slot as optional: when no token is left for it, the slot
// binds its default (or stays unset) instead of failing the parse. Panics
// on a variadic slot, which is optional by nature.
func (p *PositionalSpec) Opt() *PositionalSpec {
	if p.variadic {
		panic(fmt.Errorf(`variadic slot "%s" is optional by nature`, p.name))
	}
	p.optional = true
	return p
}

// Default declares the value an optional slot binds when no token is left
// for it. Panics on a variadic or required slot.
func (p *PositionalSpec) Default(value string) *PositionalSpec {
	if p.variadic {
		panic(fmt.Errorf(`variadic slot "%s" cannot have a default`, p.name))
	}
	if !p.optional {
		panic(fmt.Errorf(`required slot "%s" cannot have a default (mark it Opt first)`, p.name))
	}
	v := value
	p.def = &v
	return p
}

// Doc sets lines of help text for the slot.
func (p *PositionalSpec) Doc(s ...string) *PositionalSpec {
	p.doc = s
	return p
}

// Bind sets a pointer which Bindings.Apply fills with the bound value:
// *[]string for the variadic slot, *string (or any Scan-supported pointer)
// otherwise. Panics if target is not a pointer or is already bound
// elsewhere.
func (p *PositionalSpec) Bind(target interface{}) *PositionalSpec {
	p.schema.claimTarget(p.name, target)
	p.target = target
	return p
}

// helpers

// defineSlot checks a slot name, shared by Positional and Variadic.
func (s *Schema) defineSlot(name string) *PositionalSpec {
	if s.variadic != nil {
		panic(fmt.Errorf(`slot "%s" cannot follow variadic slot "%s"`, name, s.variadic.name))
	}
	for _, q := range s.positionals {
		if q.name == name {
			panic(fmt.Errorf(`slot "%s" already defined`, name))
		}
	}
	if err := validate(name); err != nil {
		panic(err)
	}
	return &PositionalSpec{schema: s, name: name}
}

// claimLong registers a long form or alias, enforcing uniqueness.
func (s *Schema) claimLong(long string, o *OptionSpec) {
	if err := validate(long); err != nil {
		panic(err)
	}
	if len(long) == 0 {
		panic(fmt.Errorf(`option "%s" cannot have an empty long form`, o.name))
	}
	if prev, ok := s.byLong[long]; ok {
		panic(fmt.Errorf(`"%s" clashes with a long form of option "%s"`, long, prev.name))
	}
	s.byLong[long] = o
}

// claimTarget enforces that no two definitions bind the same pointer.
func (s *Schema) claimTarget(name string, target interface{}) {
	if reflect.ValueOf(target).Kind() != reflect.Ptr {
		panic(fmt.Errorf(`target for "%s" is not a pointer`, name))
	}
	if s.targets[target] {
		panic(fmt.Errorf(`target for "%s" is already assigned`, name))
	}
	s.targets[target] = true
}

// validate verifies a name
func validate(name string) error {
	for _, r := range []rune(name) {
		if !valid(r) {
			return fmt.Errorf(`"%s" cannot be used as a name because it includes the character '%c'`, name, r)
		}
	}
	return nil
}

// valid returns true iff char is valid in an option or slot name.
// Valid characters are letters, digits, the hyphen and the underscore.
func valid(char rune) bool {
	return unicode.IsLetter(char) || unicode.IsDigit(char) || char == '-' || char == '_'
}
