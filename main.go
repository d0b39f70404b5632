package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ravilang/ravilex/internal/config"
	"github.com/ravilang/ravilex/internal/intern"
	"github.com/ravilang/ravilex/internal/lexer"
	"github.com/ravilang/ravilex/internal/util"
)

const (
	historyEnv = "RAVILEX_HISTORY"
	stdinName  = "-"
)

var (
	hidePanic = true // Hide full trace on panics
)

// showUsageHint prints a terse usage string.
//
func showUsageHint() {
	_, _ = fmt.Fprintf(config.ErrOut, "see '%s --help' for more information\n", config.Me)
}

// showHelp
//
//goland:noinspection GoUnhandledErrorResult // fmt.*
func showHelp() {
	pad := strings.Repeat(" ", len(config.Me)-1)
	fmt.Fprintf(config.ErrOut, "Usage:\n")
	fmt.Fprintf(config.ErrOut, "       %s [option ...] [file ...]\n", config.Me)
	fmt.Fprintf(config.ErrOut, "       %s (print the tokens of each file, '-' or none for stdin)\n", pad)
	fmt.Fprintf(config.ErrOut, "  or   %s -i\n", config.Me)
	fmt.Fprintf(config.ErrOut, "       %s (tokenize lines interactively)\n", pad)
	fmt.Fprintf(config.ErrOut, "  or   %s version\n", config.Me)
	fmt.Fprintf(config.ErrOut, "       %s (show version)\n", pad)

	fmt.Fprintln(config.ErrOut, "Options:")
	fmt.Fprintln(config.ErrOut, "  -i, --interactive")
	fmt.Fprintf(config.ErrOut, "        Read lines from a prompt (history in '${%s:-~/%s}')\n", historyEnv, config.HistoryFile)
	fmt.Fprintln(config.ErrOut, "  -d, --dump")
	fmt.Fprintln(config.ErrOut, "        Dump each token in full, then the string arena usage")
	fmt.Fprintln(config.ErrOut, "  -t, --trace")
	fmt.Fprintln(config.ErrOut, "        Trace lexer state transitions")
	fmt.Fprintln(config.ErrOut, "  -1, --one-based")
	fmt.Fprintln(config.ErrOut, "        Number lines from 1")
	fmt.Fprintln(config.ErrOut, "  --page-size <bytes>")
	fmt.Fprintf(config.ErrOut, "        String arena page size, which caps literal length (default=%d)\n", intern.DefaultPageSize)
	fmt.Fprintln(config.ErrOut, "  --last-page")
	fmt.Fprintln(config.ErrOut, "        Only allocate strings from the last arena page")
	fmt.Fprintln(config.ErrOut, "Note:")
	fmt.Fprintln(config.ErrOut, "  Options accept '-' | '--'")
	fmt.Fprintln(config.ErrOut, "  Values can be given as:")
	fmt.Fprintln(config.ErrOut, "        -o value | -o=value")
	fmt.Fprintln(config.ErrOut, "  Flags (booleans) can be given as:")
	fmt.Fprintln(config.ErrOut, "        -f | -f=true | -f=false")
	fmt.Fprintln(config.ErrOut, "  Short options cannot be combined")
}

// showVersion
//
func showVersion() {
	_, _ = fmt.Fprintln(config.Out, "ravilex", versionString())
}

// main
//
func main() {
	// NOTE: Instead of os.Exit, set exitCode then return
	//
	exitCode := 0
	// First defer in = last defer out
	//
	defer func() {
		// os.Exit aborts program immediately, so delay as long as possible
		//
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	}()

	config.ErrOut = os.Stderr
	config.Out = os.Stdout
	config.Me = path.Base(os.Args[0])
	// Configure logging
	//
	log.SetFlags(0)
	log.SetPrefix(config.Me + ": ")
	// Capture panics as log messages
	//
	//goland:noinspection GoBoolExpressions
	if hidePanic {
		defer func() {
			if r := recover(); r != nil {
				// ~= log.Fatal
				log.Print(r)
				exitCode = 1
			}
		}()
	}
	if len(os.Args) > 1 && strings.EqualFold(os.Args[1], "version") {
		showVersion()
		return // Exit early
	}
	var (
		files       []string
		interactive bool
	)
	if files, interactive, exitCode = parseArgs(os.Args[1:]); exitCode != 0 {
		return
	}
	// One interner for every input, so names are shared across files
	//
	strs := intern.New(arenaConfig())
	if interactive {
		exitCode = runREPL(strs)
		return
	}
	if len(files) == 0 {
		files = []string{stdinName}
	}
	for _, file := range files {
		src, err := readSource(file)
		if err != nil {
			log.Printf("ERROR: %s", err)
			exitCode = 2
			return
		}
		if code := tokenizeFile(file, src, strs); code > exitCode {
			exitCode = code
		}
	}
	if config.DumpTokens {
		dumpStats(strs)
	}
}

// parseArgs applies command-line options to config and returns the remaining file arguments.
//
func parseArgs(args []string) (files []string, interactive bool, exitCode int) {
	flags := flag.NewFlagSet(config.Me, flag.ContinueOnError)
	flags.SetOutput(config.ErrOut)

	var showHelpFlag bool
	flags.BoolVar(&showHelpFlag, "help", false, "")
	flags.BoolVar(&showHelpFlag, "h", false, "")
	flags.BoolVar(&interactive, "interactive", false, "")
	flags.BoolVar(&interactive, "i", false, "")
	flags.BoolVar(&config.DumpTokens, "dump", config.DumpTokens, "")
	flags.BoolVar(&config.DumpTokens, "d", config.DumpTokens, "")
	flags.BoolVar(&config.EnableFnTrace, "trace", config.EnableFnTrace, "")
	flags.BoolVar(&config.EnableFnTrace, "t", config.EnableFnTrace, "")
	flags.BoolVar(&config.OneBasedLines, "one-based", config.OneBasedLines, "")
	flags.BoolVar(&config.OneBasedLines, "1", config.OneBasedLines, "")
	flags.IntVar(&config.ArenaPageSize, "page-size", config.ArenaPageSize, "")
	flags.BoolVar(&config.ArenaLastPageOnly, "last-page", config.ArenaLastPageOnly, "")
	// Invoked if error parsing args - sets exit code 2
	//
	flags.Usage = func() {
		showUsageHint()
		exitCode = 2
	}
	if err := flags.Parse(args); err != nil || exitCode != 0 {
		return nil, false, 2
	}
	// Help?
	//
	if showHelpFlag {
		showHelp()
		return nil, false, 2
	}
	if config.ArenaPageSize < 1 {
		log.Printf("ERROR: page size must be positive: %d", config.ArenaPageSize)
		showUsageHint()
		return nil, false, 2
	}
	return flags.Args(), interactive, 0
}

// arenaConfig builds the interner configuration from config.
//
func arenaConfig() intern.Config {
	cfg := intern.Config{PageSize: config.ArenaPageSize, Policy: intern.FirstFit}
	if config.ArenaLastPageOnly {
		cfg.Policy = intern.LastPageOnly
	}
	return cfg
}

// firstLine is the number given to the first line of each input.
//
func firstLine() int {
	if config.OneBasedLines {
		return 1
	}
	return 0
}

// readSource returns the contents of file, or of stdin for "-".
//
func readSource(file string) ([]byte, error) {
	if file == stdinName {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return src, nil
	}
	src, exists, err := util.ReadFileIfExists(file)
	if err != nil {
		// If path error, hide the operation (stat, open, etc)
		//
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("%s: %w", pathErr.Path, pathErr.Err)
		}
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%s: file not found", file)
	}
	return src, nil
}

// tokenizeFile prints every token of src.
// Returns 1 if scanning stopped on an error, 2 if the scanner could not be set up.
//
func tokenizeFile(name string, src []byte, strs *intern.Interner) int {
	s, err := lexer.NewScanner(src, lexer.Options{Strings: strs, FirstLine: firstLine()})
	if err != nil {
		log.Printf("ERROR: %s: %v", displayName(name), err)
		return 2
	}
	for {
		tok, err := s.Advance()
		if err != nil {
			log.Printf("ERROR: %s: %v", displayName(name), err)
			return 1
		}
		printToken(config.Out, s, tok)
		if tok.Is(lexer.TokEOS) {
			return 0
		}
	}
}

// displayName shows stdin as "<stdin>" and absolute paths under the
// working directory relative to it.
//
func displayName(name string) string {
	if name == stdinName {
		return "<stdin>"
	}
	if filepath.IsAbs(name) {
		if wd, err := os.Getwd(); err == nil {
			return util.TryMakeRelative(wd, name)
		}
	}
	return name
}
