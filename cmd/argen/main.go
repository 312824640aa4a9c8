// Command argen evaluates command-line argument vectors against a schema
// declaration file, in the spirit of getopt(1): a shell script keeps its
// interface in a small TOML, JSON or YAML file and lets argen do the
// parsing, defaulting and validation.
//
//	argen check SCHEMA                     validate a schema file
//	argen usage SCHEMA [PROG]              render the usage text
//	argen eval [options] SCHEMA -- ARGS... parse ARGS, print bindings
//
// eval prints one NAME='VALUE' assignment per option and slot, ready for
// eval in a shell, or a JSON object with --json. Exit code is 0 on success
// and 1 on a help request or any error, with help text on stdout and
// errors on stderr.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/new-mentat/argen"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

var errColor = color.New(color.FgRed, color.Bold)

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printHelp(stderr)
		return 1
	}
	switch args[0] {
	case "check":
		return runCheck(args[1:], stdout, stderr)
	case "usage":
		return runUsage(args[1:], stdout, stderr)
	case "eval":
		return runEval(args[1:], stdout, stderr)
	case "help", "-h", "--help":
		printHelp(stdout)
		return 1
	}
	fail(stderr, fmt.Errorf(`unknown command "%s"`, args[0]))
	printHelp(stderr)
	return 1
}

func runCheck(args []string, stdout, stderr io.Writer) int {
	cs := argen.New().Prog("argen check")
	cs.Positional("schema").Doc("schema declaration file")

	b, code := parseOwn(cs, args, stdout, stderr)
	if b == nil {
		return code
	}
	path := b.Positional("schema").String()
	s, err := argen.LoadSchema(path)
	if err != nil {
		fail(stderr, err)
		return 1
	}
	slots := len(s.Positionals())
	if s.VariadicSlot() != nil {
		slots++
	}
	fmt.Fprintf(stdout, "%s: ok (%d options, %d slots)\n", path, len(s.Options()), slots)
	return 0
}

func runUsage(args []string, stdout, stderr io.Writer) int {
	us := argen.New().Prog("argen usage")
	us.Positional("schema").Doc("schema declaration file")
	us.Positional("prog").Opt().Doc("program name shown in the synopsis")

	b, code := parseOwn(us, args, stdout, stderr)
	if b == nil {
		return code
	}
	s, err := argen.LoadSchema(b.Positional("schema").String())
	if err != nil {
		fail(stderr, err)
		return 1
	}
	argen.Usage(stdout, b.Positional("prog").String(), s)
	return 0
}

func runEval(args []string, stdout, stderr io.Writer) int {
	es := argen.New().Prog("argen eval")
	es.Option("json").Short('j').Flag().Doc("emit a JSON object instead of shell assignments")
	es.Option("prog").Short('p').Doc("program name used in usage and error texts")
	es.Positional("schema").Doc("schema declaration file")
	es.Variadic("args").Doc("argument vector to evaluate (put it after --)")

	b, code := parseOwn(es, args, stdout, stderr)
	if b == nil {
		return code
	}
	s, err := argen.LoadSchema(b.Positional("schema").String())
	if err != nil {
		fail(stderr, err)
		return 1
	}
	prog := b.Option("prog").String()

	tb, err := s.Parse(b.Variadic())
	if errors.Is(err, argen.ErrHelp) {
		argen.Usage(stdout, prog, s)
		return 1
	}
	if err != nil {
		fail(stderr, err)
		argen.Usage(stderr, prog, s)
		return 1
	}

	if b.IsSet("json") {
		return emitJSON(stdout, stderr, s, tb)
	}
	emitShell(stdout, s, tb)
	return 0
}

// parseOwn parses one of argen's own verbs; a nil Bindings means the caller
// must return the accompanying exit code.
func parseOwn(s *argen.Schema, args []string, stdout, stderr io.Writer) (*argen.Bindings, int) {
	b, err := s.Parse(args)
	if errors.Is(err, argen.ErrHelp) {
		argen.Usage(stdout, "", s)
		return nil, 1
	}
	if err != nil {
		fail(stderr, err)
		argen.Usage(stderr, "", s)
		return nil, 1
	}
	return b, 0
}

// emitShell prints the bindings as shell assignments, arrays for the
// variadic capture:
//
//	BLOCK_SIZE='20'
//	QUIET='false'
//	OUT_FILE='out.txt'
//	WORDS=('foo' 'bar')
func emitShell(w io.Writer, s *argen.Schema, b *argen.Bindings) {
	for _, o := range s.Options() {
		fmt.Fprintf(w, "%s=%s\n", shellName(o.Name()), shellQuote(b.Option(o.Name()).String()))
	}
	for _, p := range s.Positionals() {
		fmt.Fprintf(w, "%s=%s\n", shellName(p.Name()), shellQuote(b.Positional(p.Name()).String()))
	}
	if v := s.VariadicSlot(); v != nil {
		quoted := make([]string, 0, len(b.Variadic()))
		for _, tok := range b.Variadic() {
			quoted = append(quoted, shellQuote(tok))
		}
		fmt.Fprintf(w, "%s=(%s)\n", shellName(v.Name()), strings.Join(quoted, " "))
	}
}

// emitJSON prints the bindings as one JSON object. Unset values come out
// as null, so scripts can tell them from empty or zero ones.
func emitJSON(w, stderr io.Writer, s *argen.Schema, b *argen.Bindings) int {
	options := make(map[string]interface{}, len(s.Options()))
	for _, o := range s.Options() {
		options[o.Name()] = jsonValue(o.ValueKind(), b.Option(o.Name()))
	}
	positionals := make(map[string]interface{}, len(s.Positionals()))
	for _, p := range s.Positionals() {
		positionals[p.Name()] = jsonValue(argen.String, b.Positional(p.Name()))
	}
	out := map[string]interface{}{
		"options":     options,
		"positionals": positionals,
	}
	if v := s.VariadicSlot(); v != nil {
		out[v.Name()] = b.Variadic()
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fail(stderr, err)
		return 1
	}
	fmt.Fprintf(w, "%s\n", data)
	return 0
}

func jsonValue(k argen.Kind, v argen.Value) interface{} {
	if v.Origin() == argen.Unset && k != argen.Flag {
		return nil
	}
	switch k {
	case argen.Int:
		return v.Int()
	case argen.Flag:
		return v.Bool()
	}
	return v.String()
}

// shellName maps an option or slot name to a shell variable name.
func shellName(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// shellQuote wraps s in single quotes, the only safe shell quoting.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func fail(w io.Writer, err error) {
	errColor.Fprintf(w, "argen: %v\n", err)
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `usage: argen COMMAND ...

  argen check SCHEMA                     validate a schema declaration file
  argen usage SCHEMA [PROG]              render the usage text of a schema
  argen eval [options] SCHEMA -- ARGS... parse ARGS against a schema

eval prints the resolved bindings as shell assignments (or JSON with
--json), one per option and positional slot. Schema files are TOML, JSON
or YAML; see the package documentation for the declaration layout.
`)
}
