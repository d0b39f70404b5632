package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravilang/ravilex/internal/config"
	"github.com/ravilang/ravilex/internal/intern"
	"github.com/ravilang/ravilex/internal/lexer"
)

// withConfig resets the option globals and captures output for one test.
//
func withConfig(t *testing.T) *bytes.Buffer {
	t.Helper()
	out := &bytes.Buffer{}
	config.Me = "ravilex"
	config.Out = out
	config.ErrOut = io.Discard
	config.DumpTokens = false
	config.EnableFnTrace = false
	config.OneBasedLines = false
	config.ArenaPageSize = intern.DefaultPageSize
	config.ArenaLastPageOnly = false
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return out
}

func TestParseArgs(t *testing.T) {
	withConfig(t)
	files, interactive, code := parseArgs([]string{"-d", "--one-based", "--page-size", "64", "--last-page", "a.ravi", "-"})
	require.Equal(t, 0, code)
	assert.False(t, interactive)
	assert.Equal(t, []string{"a.ravi", "-"}, files)
	assert.True(t, config.DumpTokens)
	assert.True(t, config.OneBasedLines)
	assert.Equal(t, 64, config.ArenaPageSize)
	assert.Equal(t, intern.Config{PageSize: 64, Policy: intern.LastPageOnly}, arenaConfig())
	assert.Equal(t, 1, firstLine())

	withConfig(t)
	_, interactive, code = parseArgs([]string{"-i", "-t"})
	require.Equal(t, 0, code)
	assert.True(t, interactive)
	assert.True(t, config.EnableFnTrace)
	assert.Equal(t, intern.Config{PageSize: intern.DefaultPageSize, Policy: intern.FirstFit}, arenaConfig())

	withConfig(t)
	_, _, code = parseArgs([]string{"--no-such-flag"})
	assert.Equal(t, 2, code)
	_, _, code = parseArgs([]string{"--help"})
	assert.Equal(t, 2, code)
	_, _, code = parseArgs([]string{"--page-size", "0"})
	assert.Equal(t, 2, code)
}

func TestFormatToken(t *testing.T) {
	s := lexer.Lex([]byte("local x = 0x10 + 2.5 .. 'hi\\n'"))
	var got []string
	for {
		tok, err := s.Advance()
		require.NoError(t, err)
		got = append(got, formatToken(s, tok))
		if tok.Is(lexer.TokEOS) {
			break
		}
	}
	assert.Equal(t, []string{
		"0\tlocal",
		"0\t<name>\t\"x\"",
		"0\t'='",
		"0\t<integer>\t16",
		"0\t'+'",
		"0\t<number>\t2.5",
		"0\t..",
		"0\t<string>\t\"hi\\n\"",
		"0\t<eof>",
	}, got)
}

func TestTokenizeFile(t *testing.T) {
	out := withConfig(t)
	strs := intern.New(arenaConfig())

	assert.Equal(t, 0, tokenizeFile("a.ravi", []byte("return x\n"), strs))
	assert.Equal(t, "0\treturn\n0\t<name>\t\"x\"\n1\t<eof>\n", out.String())

	out.Reset()
	config.OneBasedLines = true
	assert.Equal(t, 1, tokenizeFile("b.ravi", []byte("x [==\n"), strs))
	assert.Equal(t, "1\t<name>\t\"x\"\n", out.String())

	// Names are shared across files
	//
	ref, ok := strs.Find([]byte("x"))
	assert.True(t, ok)
	assert.Equal(t, "x", strs.String(ref))
}

func TestTokenizeFileDump(t *testing.T) {
	out := withConfig(t)
	config.DumpTokens = true
	strs := intern.New(arenaConfig())
	assert.Equal(t, 0, tokenizeFile("-", []byte("foo"), strs))
	dumpStats(strs)
	text := out.String()
	assert.Contains(t, text, `Kind: (string) (len=6) "<name>"`)
	assert.Contains(t, text, `Text: (string) (len=3) "foo"`)
	assert.Contains(t, text, "Strings: (int)")
}

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "x.ravi")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	src, err := readSource(file)
	require.NoError(t, err)
	assert.Equal(t, "x", string(src))

	_, err = readSource(filepath.Join(dir, "missing.ravi"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "<stdin>", displayName("-"))
	assert.Equal(t, "a.ravi", displayName("a.ravi"))
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("sub", "a.ravi"), displayName(filepath.Join(wd, "sub", "a.ravi")))
}

func TestProbeComplete(t *testing.T) {
	assert.True(t, probeComplete("local x = 1\n"))
	assert.True(t, probeComplete("x = 3x\n"))
	assert.False(t, probeComplete("s = [[first\n"))
	assert.False(t, probeComplete("--[==[ open\n"))
	assert.False(t, probeComplete("s = 'a\\\n"))
	assert.True(t, probeComplete("s = [[first\nsecond]]\n"))
}

func TestScanChunkCarriesLines(t *testing.T) {
	strs := intern.New(intern.Config{})
	toks, s, err := scanChunk("a\nb\n", strs, 0)
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, 2, s.Line())

	toks, s, err = scanChunk("c\n", strs, s.Line())
	require.NoError(t, err)
	assert.Equal(t, 2, toks[0].Line)
	assert.Equal(t, 3, s.Line())

	toks, _, err = scanChunk("d @nope\n", strs, 3)
	require.Error(t, err)
	require.Len(t, toks, 1)
	assert.True(t, strings.Contains(err.Error(), "unknown type annotation"))
}

func TestChunkEndLineAfterError(t *testing.T) {
	strs := intern.New(intern.Config{})
	chunk := "a @nope\nb\r\nc\n\rd\n"
	_, s, err := scanChunk(chunk, strs, 5)
	require.Error(t, err)
	assert.Equal(t, 5, s.Line())
	assert.Equal(t, 9, chunkEndLine(chunk, 5, s, err))

	toks, s, err := scanChunk("e\n", strs, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, toks[0].Line)
	assert.Equal(t, 10, chunkEndLine("e\n", 9, s, err))

	assert.Equal(t, 0, lineBreaks("x"))
	assert.Equal(t, 2, lineBreaks("\n\n"))
	assert.Equal(t, 3, lineBreaks("\r\n\r\r"))
}

func TestHistoryPath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "hist")
	t.Setenv(historyEnv, abs)
	assert.Equal(t, abs, historyPath())

	t.Setenv(historyEnv, "")
	t.Setenv("HOME", "/home/someone")
	assert.Equal(t, filepath.Join("/home/someone", config.HistoryFile), historyPath())
}

func TestVersionString(t *testing.T) {
	defer func(d, g string) { BuildDate, GitSummary = d, g }(BuildDate, GitSummary)
	BuildDate, GitSummary = "", ""
	assert.Equal(t, Version, versionString())
	GitSummary = "v0.3.0-2-gabc"
	BuildDate = "2024-01-01"
	assert.Equal(t, Version+" (build=v0.3.0-2-gabc date=2024-01-01)", versionString())
}
