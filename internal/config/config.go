package config

import (
	"io"
	"log"
	"reflect"
	"runtime"
)

// Me stores the name we consider the binary to be running as.
//
var Me string

// ErrOut is where logs and errors are sent to (generally stderr).
//
var ErrOut io.Writer

// Out is where tokens and dumps are written (generally stdout).
//
var Out io.Writer

// EnableFnTrace shows lexer fn call/stack
//
var EnableFnTrace = false

// DumpTokens dumps each token (and the interner stats) instead of the one-line listing.
//
var DumpTokens = false

// OneBasedLines reports line numbers starting from 1 instead of 0.
//
var OneBasedLines = false

// ArenaPageSize is the page capacity handed to the string interner.
// A literal longer than one page cannot be interned.
//
var ArenaPageSize = 1024

// ArenaLastPageOnly switches the arena from first-fit to last-page-only allocation.
//
var ArenaLastPageOnly = false

// HistoryFile is the interactive-mode history file, relative to $HOME unless absolute.
//
var HistoryFile = ".ravilex_history"

// TraceFn logs lexer transitions
//
func TraceFn(msg string, i interface{}) {
	if EnableFnTrace {
		fnName := runtime.FuncForPC(reflect.ValueOf(i).Pointer()).Name()
		log.Println(msg, ":", fnName)
	}
}
