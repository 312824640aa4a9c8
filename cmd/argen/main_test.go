package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

const exampleTOML = `
program = "example"

[[option]]
name = "block-size"
type = "int"
short = "b"
aliases = ["blocksize", "bs"]
default = "12"

[[option]]
name = "fav-number"
type = "int"
default = "0xDEADBEEF"

[[option]]
name = "quiet"
type = "flag"
short = "q"

[[option]]
name = "name"
default = "John Smith"

[[positional]]
name = "out_file"

[[positional]]
name = "in_file"
optional = true

[variadic]
name = "words"
`

func writeSchema(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "example.toml")
	require.NoError(t, os.WriteFile(path, []byte(exampleTOML), 0o644))
	return path
}

func TestEvalShell(t *testing.T) {
	path := writeSchema(t)
	var stdout, stderr bytes.Buffer
	code := run([]string{"eval", path, "--", "-b", "20", "out.txt", "in.txt", "foo", "bar"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
	assert.Equal(t, `BLOCK_SIZE='20'
FAV_NUMBER='0xDEADBEEF'
QUIET='false'
NAME='John Smith'
OUT_FILE='out.txt'
IN_FILE='in.txt'
WORDS=('foo' 'bar')
`, stdout.String())
}

func TestEvalJSON(t *testing.T) {
	path := writeSchema(t)
	var stdout, stderr bytes.Buffer
	code := run([]string{"eval", "--json", path, "--", "out.txt"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	options := out["options"].(map[string]interface{})
	assert.EqualValues(t, 12, options["block-size"])
	assert.EqualValues(t, 0xDEADBEEF, options["fav-number"])
	assert.Equal(t, false, options["quiet"])
	positionals := out["positionals"].(map[string]interface{})
	assert.Equal(t, "out.txt", positionals["out_file"])
	assert.Nil(t, positionals["in_file"])
	assert.Empty(t, out["words"])
}

func TestEvalHelpOutcome(t *testing.T) {
	path := writeSchema(t)
	var stdout, stderr bytes.Buffer
	code := run([]string{"eval", path, "--", "--help"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "usage: example [options] OUT_FILE [IN_FILE] [WORDS...]")
	assert.Empty(t, stderr.String())
}

func TestEvalParseError(t *testing.T) {
	path := writeSchema(t)
	var stdout, stderr bytes.Buffer
	code := run([]string{"eval", path, "--"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), `missing argument "out_file"`)
	assert.Contains(t, stderr.String(), "usage: example")
}

func TestUsageCommand(t *testing.T) {
	path := writeSchema(t)
	var stdout, stderr bytes.Buffer
	code := run([]string{"usage", path, "mytool"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "usage: mytool [options] OUT_FILE [IN_FILE] [WORDS...]")
}

func TestCheckCommand(t *testing.T) {
	path := writeSchema(t)
	var stdout, stderr bytes.Buffer
	code := run([]string{"check", path}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "ok (4 options, 3 slots)")

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[[option]]\ntype = \"int\"\n"), 0o644))
	stdout.Reset()
	stderr.Reset()
	code = run([]string{"check", bad}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "invalid schema declaration")
}

func TestBadInvocations(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run(nil, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"frobnicate"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), `unknown command "frobnicate"`)
	stdout.Reset()
	assert.Equal(t, 1, run([]string{"--help"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "usage: argen COMMAND")
}
