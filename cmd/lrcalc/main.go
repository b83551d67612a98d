// Command lrcalc evaluates its arguments as a left-to-right expression and
// prints the tokens it read along with the result:
//
//	$ lrcalc 2 + 3 '*' 4
//	2 + 3 * 4 = 20
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/zephyrtronium/lrcalc"
	"github.com/zephyrtronium/lrcalc/internal/logs"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		verb, logfile string
		journal       bool
		level         slog.Level
	)
	fs := flag.NewFlagSet("lrcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&verb, "fmt", "", "result formatting verb, e.g. %.3f (default plain decimal)")
	fs.TextVar(&level, "log-level", slog.LevelWarn, "minimum level of logs to write")
	fs.StringVar(&logfile, "log-file", "", "also append JSON logs to this file")
	fs.BoolVar(&journal, "journal", false, "also send logs to the systemd journal")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	// The diagnostic for a failed evaluation is logged at error level, so it
	// must never be filtered.
	level = min(level, slog.LevelError)

	log, closelog, err := logs.New(logs.Options{
		Level:   level,
		Writer:  stderr,
		File:    logfile,
		Journal: journal,
	})
	if err != nil {
		fmt.Fprintln(stderr, "opening log file:", err)
		return 1
	}
	defer closelog()

	src := strings.Join(expression(fs, args), " ")
	log.Debug("evaluating", "input", src)
	r, err := lrcalc.EvalString(src)
	if err != nil {
		log.Error("evaluation failed", "input", src, "err", err)
		return 1
	}
	tokens, err := lrcalc.TokenizeString(src)
	if err != nil {
		// EvalString already tokenized the same input.
		panic("lrcalc: tokenizing after evaluation: " + err.Error())
	}
	log.Debug("evaluated", "tokens", len(tokens), "result", r)

	res := lrcalc.FormatResult(r)
	if verb != "" {
		res = fmt.Sprintf(verb, r)
	}
	fmt.Fprintf(stdout, "%s = %s\n", lrcalc.Render(tokens), res)
	return 0
}

// expression returns the arguments that form the expression after fs has
// parsed args. If a "--" argument ended flag parsing, it is part of the
// expression rather than a terminator.
func expression(fs *flag.FlagSet, args []string) []string {
	rest := fs.Args()
	k := len(args) - len(rest)
	if k == 0 || args[k-1] != "--" {
		return rest
	}
	if k >= 2 && takesValue(fs, args[k-2]) {
		// "--" was the value of the preceding flag.
		return rest
	}
	return args[k-1:]
}

// takesValue reports whether arg is a flag of fs whose value is the next
// argument.
func takesValue(fs *flag.FlagSet, arg string) bool {
	name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	if name == arg || strings.Contains(name, "=") {
		return false
	}
	f := fs.Lookup(name)
	if f == nil {
		return false
	}
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return false
	}
	return true
}
