package main

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/ravilang/ravilex/internal/config"
	"github.com/ravilang/ravilex/internal/intern"
	"github.com/ravilang/ravilex/internal/lexer"
	"github.com/ravilang/ravilex/internal/util"
)

const (
	promptMain = "> "
	promptCont = ">> "
)

// historyPath returns $RAVILEX_HISTORY, else config.HistoryFile under $HOME.
//
func historyPath() string {
	file := util.GetEnvOrDefault(historyEnv, config.HistoryFile)
	if filepath.IsAbs(file) {
		return file
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, file)
	}
	return file
}

// runREPL tokenizes input a chunk at a time.
// Line numbers carry on from one chunk to the next.
//
func runREPL(strs *intern.Interner) int {
	ln := liner.NewLiner()
	defer func() { _ = ln.Close() }()
	ln.SetCtrlCAborts(true)

	// Load history (best-effort)
	//
	histPath := historyPath()
	if f, err := os.Open(filepath.Clean(histPath)); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	line := firstLine()
	for {
		chunk, ok := readChunk(ln)
		if !ok {
			break
		}
		if len(strings.TrimSpace(chunk)) == 0 {
			continue
		}
		ln.AppendHistory(strings.TrimSuffix(chunk, "\n"))
		toks, s, err := scanChunk(chunk, strs, line)
		if s == nil {
			log.Printf("ERROR: %v", err)
			return 2
		}
		for _, tok := range toks {
			printToken(config.Out, s, tok)
		}
		if err != nil {
			log.Printf("ERROR: %v", err)
		}
		line = chunkEndLine(chunk, line, s, err)
	}
	_, _ = io.WriteString(config.Out, "\n")

	// Persist history (best-effort)
	//
	if f, err := os.Create(filepath.Clean(histPath)); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return 0
}

// readChunk reads lines until they scan without running out of input
// inside a long string, long comment or quoted string.
// Returns false on EOF (Ctrl+D).
//
func readChunk(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		text, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C abandons the current chunk
			//
			return "", true
		}
		b.WriteString(text)
		b.WriteByte('\n')
		chunk := b.String()
		if probeComplete(chunk) {
			return chunk, true
		}
	}
}

// probeComplete scans chunk with a throwaway interner.
//
func probeComplete(chunk string) bool {
	s := lexer.Lex([]byte(chunk))
	for {
		tok, err := s.Advance()
		if err != nil {
			return !lexer.IsIncomplete(err)
		}
		if tok.Is(lexer.TokEOS) {
			return true
		}
	}
}

// scanChunk collects the tokens of chunk, up to and including end-of-stream or the first error.
//
func scanChunk(chunk string, strs *intern.Interner, from int) ([]lexer.Token, *lexer.Scanner, error) {
	s, err := lexer.NewScanner([]byte(chunk), lexer.Options{Strings: strs, FirstLine: from})
	if err != nil {
		return nil, nil, err
	}
	var toks []lexer.Token
	for {
		tok, err := s.Advance()
		if err != nil {
			return toks, s, err
		}
		toks = append(toks, tok)
		if tok.Is(lexer.TokEOS) {
			return toks, s, nil
		}
	}
}

// chunkEndLine is the line number the chunk after chunk starts on.
//
func chunkEndLine(chunk string, from int, s *lexer.Scanner, err error) int {
	// After an error the scanner has stopped short of the chunk's end
	//
	if err != nil {
		return from + lineBreaks(chunk)
	}
	return s.Line()
}

// lineBreaks counts the line breaks in chunk, where "\r\n" and "\n\r" count once.
//
func lineBreaks(chunk string) int {
	n := 0
	for i := 0; i < len(chunk); i++ {
		c := chunk[i]
		if c != '\n' && c != '\r' {
			continue
		}
		if i+1 < len(chunk) && (chunk[i+1] == '\n' || chunk[i+1] == '\r') && chunk[i+1] != c {
			i++
		}
		n++
	}
	return n
}
