/*

Package argen parses command-line argument vectors against a declared
schema. A schema describes a single flat command: named options with short
forms, long forms and aliases, which either take a value or stand alone as
flags, and a sequence of positional slots, fixed ones first and at most one
trailing variadic capture. Parsing an argument vector against a schema
produces a Bindings value holding every option and slot, or exactly one
structured error. The package never prints and never exits; what to do with
an error, the help outcome or the usage text is entirely the caller's
business, which keeps the engine testable without a live process.

A schema is declared once with chained one-liners and reused for any number
of parses:

	s := argen.New().Prog("example")
	s.Option("block-size").Short('b').Aka("blocksize").Aka("bs").Int().Default(12).
		Doc("set the block size, defaults to 12.")
	s.Option("fav-number").Int().Default(0xDEADBEEF).Doc("your favorite number")
	s.Option("quiet").Short('q').Flag().Doc("disable output")
	s.Option("name").Default("John Smith").Doc("your name")
	s.Positional("out_file").Doc("where we'll put some output")
	s.Positional("in_file").Opt().Doc("an input file for this example program")
	s.Variadic("words").Doc("word(s) of interest")

Parsing accepts the usual token shapes: -q, -b 20, -b20, -qb20, --quiet,
--block-size 20, --block-size=20, aliases like --bs=20, bare positional
tokens, and the literal separator -- after which every token is positional
no matter how it is spelled. Options and positional tokens may be freely
interleaved. -h and --help short-circuit everything else and yield the
ErrHelp sentinel, distinguishable from parse failures with errors.Is:

	b, err := s.Parse(os.Args[1:])
	switch {
	case errors.Is(err, argen.ErrHelp):
		argen.Usage(os.Stdout, os.Args[0], s)
		os.Exit(1)
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		argen.Usage(os.Stderr, os.Args[0], s)
		os.Exit(1)
	}

Every option appears in the result, so callers never test for presence,
only for origin: a value is user-supplied, defaulted, or unset. The three
states are distinguishable, so a default of 0 and an explicit 0 are not the
same thing:

	n := b.Option("block-size").Int()  // 20 for -b20, else 12
	if b.IsSet("quiet") { ... }       // only when the user said so

Hosts which prefer plain variables over lookups can bind targets in the
definition and apply the bindings once parsing succeeded:

	var blockSize int
	s.Option("block-size").Short('b').Int().Default(12).Bind(&blockSize)
	...
	b, err := s.Parse(args)
	...
	err = b.Apply()

Schemas can also be loaded from TOML, JSON or YAML declaration files (see
LoadSchema), and the cmd/argen tool evaluates argument vectors against such
files on behalf of shell scripts, in the spirit of getopt(1).

Definition errors panic, since a bad definition is a bug in the program;
errors originating from user input are returned, never panicked.

*/
package argen
