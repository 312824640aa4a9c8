package argen

import (
	"bytes"
	"testing"
)

func TestUsageExample(t *testing.T) {
	var buf bytes.Buffer
	Usage(&buf, "", exampleSchema())
	expected := `usage: example [options] OUT_FILE [IN_FILE] [WORDS...]
  OUT_FILE
        where we'll put some output
  IN_FILE
        an input file for this example program
  WORDS
        word(s) of interest
  -h  --help
        print this usage and exit
  -b  --block-size <num>  (aliased: --blocksize --bs)
        set the block size, defaults to 12.
        (default: 12)
      --fav-number <num>
        your favorite number
        (default: 3735928559)
  -q  --quiet
        disable output
      --name <arg>
        your name
        (default: John Smith)
`
	if buf.String() != expected {
		t.Errorf("----- expected:\n%s----- got:\n%s", expected, buf.String())
	}
}

func TestUsageProgArgumentWins(t *testing.T) {
	var buf bytes.Buffer
	s := New()
	s.Positional("file")
	Usage(&buf, "mytool", s)
	expected := `usage: mytool [options] FILE
  FILE
  -h  --help
        print this usage and exit
`
	if buf.String() != expected {
		t.Errorf("----- expected:\n%s----- got:\n%s", expected, buf.String())
	}
}

func TestUsageNoHelpNoOptions(t *testing.T) {
	var buf bytes.Buffer
	s := New().NoHelp()
	s.Positional("in_file").Opt().Default("/dev/stdin").Doc("input, defaults to stdin")
	Usage(&buf, "", s)
	expected := `usage: program [IN_FILE]
  IN_FILE
        input, defaults to stdin
        (default: /dev/stdin)
`
	if buf.String() != expected {
		t.Errorf("----- expected:\n%s----- got:\n%s", expected, buf.String())
	}
}
