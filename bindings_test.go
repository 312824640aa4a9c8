package argen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokensRoundTrip(t *testing.T) {
	s := exampleSchema()
	vectors := [][]string{
		{"-b", "20", "out.txt", "in.txt", "foo", "bar"},
		{"--bs=0x14", "-q", "out.txt"},
		{"out.txt"},
		{"--name", "Ada Lovelace", "--quiet", "out.txt", "in.txt"},
		{"out.txt", "--", "-dashed", "--also-dashed"},
	}
	for _, args := range vectors {
		want, err := s.Parse(args)
		if err != nil {
			t.Fatalf(`unexpected error for %v: "%s"`, args, err)
		}
		got, err := s.Parse(want.Tokens())
		if err != nil {
			t.Fatalf(`reparse of %v failed: "%s"`, want.Tokens(), err)
		}
		if d := cmp.Diff(snapshot(want), snapshot(got)); d != "" {
			t.Errorf("round trip of %v lost information (-want +got):\n%s", args, d)
		}
	}
}

func TestTokensCanonicalForm(t *testing.T) {
	s := exampleSchema()
	b, err := s.Parse([]string{"--bs", "20", "-q", "out.txt", "foo"})
	if err != nil {
		t.Fatalf(`unexpected error: "%s"`, err)
	}
	want := []string{"--block-size=20", "--quiet", "out.txt", "foo"}
	if d := cmp.Diff(want, b.Tokens()); d != "" {
		t.Errorf("canonical tokens mismatch (-want +got):\n%s", d)
	}
}

func TestTokensGuardDashedPositionals(t *testing.T) {
	s := exampleSchema()
	b, err := s.Parse([]string{"-q", "out.txt", "--", "-dashed"})
	if err != nil {
		t.Fatalf(`unexpected error: "%s"`, err)
	}
	want := []string{"--quiet", "--", "out.txt", "-dashed"}
	if d := cmp.Diff(want, b.Tokens()); d != "" {
		t.Errorf("guarded tokens mismatch (-want +got):\n%s", d)
	}
}

func TestApply(t *testing.T) {
	var (
		blockSize int
		quiet     bool
		outFile   string
		inFile    string
		words     []string
	)
	s := New()
	s.Option("block-size").Short('b').Int().Default(12).Bind(&blockSize)
	s.Option("quiet").Short('q').Flag().Bind(&quiet)
	s.Positional("out_file").Bind(&outFile)
	s.Positional("in_file").Opt().Bind(&inFile)
	s.Variadic("words").Bind(&words)

	b, err := s.Parse([]string{"-b", "20", "out.txt", "in.txt", "foo", "bar"})
	if err != nil {
		t.Fatalf(`unexpected error: "%s"`, err)
	}
	if err := b.Apply(); err != nil {
		t.Fatalf(`unexpected error: "%s"`, err)
	}
	if blockSize != 20 || !b.IsSet("block-size") {
		t.Errorf("block-size not applied: %d", blockSize)
	}
	if quiet {
		t.Error("quiet applied without being given")
	}
	if outFile != "out.txt" || inFile != "in.txt" {
		t.Errorf(`files not applied: "%s" "%s"`, outFile, inFile)
	}
	if d := cmp.Diff([]string{"foo", "bar"}, words); d != "" {
		t.Errorf("words mismatch (-want +got):\n%s", d)
	}
}

func TestApplyLeavesUnsetTargetsAlone(t *testing.T) {
	blockSize := -1
	inFile := "preset"
	s := New()
	s.Option("block-size").Int().Bind(&blockSize)
	s.Positional("in_file").Opt().Bind(&inFile)

	b, err := s.Parse(nil)
	if err != nil {
		t.Fatalf(`unexpected error: "%s"`, err)
	}
	if err := b.Apply(); err != nil {
		t.Fatalf(`unexpected error: "%s"`, err)
	}
	if blockSize != -1 || inFile != "preset" {
		t.Errorf(`unset values overwrote targets: %d "%s"`, blockSize, inFile)
	}
}

func TestApplyDefaults(t *testing.T) {
	blockSize := 0
	s := New()
	s.Option("block-size").Int().Default(12).Bind(&blockSize)
	b, err := s.Parse(nil)
	if err != nil {
		t.Fatalf(`unexpected error: "%s"`, err)
	}
	if err := b.Apply(); err != nil {
		t.Fatalf(`unexpected error: "%s"`, err)
	}
	if blockSize != 12 {
		t.Errorf("default not applied: %d", blockSize)
	}
}

func TestApplyRangeError(t *testing.T) {
	var tiny int8
	s := New()
	s.Option("n").Int().Bind(&tiny)
	b, err := s.Parse([]string{"--n", "4096"})
	if err != nil {
		t.Fatalf(`unexpected error: "%s"`, err)
	}
	if err := b.Apply(); err == nil {
		t.Error("expected error, got none")
	}
}

func TestScan(t *testing.T) {
	var n uint16
	if err := Scan("0xFFFF", &n); err != nil || n != 0xFFFF {
		t.Errorf("unexpected: %v %d", err, n)
	}
	if err := Scan("0x10000", &n); err == nil {
		t.Error("expected range error, got none")
	}
	var f float64
	if err := Scan("3.14", &f); err != nil || f != 3.14 {
		t.Errorf("unexpected: %v %f", err, f)
	}
	if err := Scan("x", 1); err == nil {
		t.Error("expected pointer error, got none")
	}
}
