// Command bigcalc evaluates arithmetic expressions over arbitrary-precision
// integers or exact rational numbers.
//
// Usage:
//
//	bigcalc [-mode int|rat] [-e expr] [file ...]
//
// Expressions are read from -e, from the files given as arguments or,
// if neither is present, line by line from the standard input.
// One result is printed per expression.
//
// Settings can also be given in the environment or in a .env file:
//
//	BIGCALC_MODE       int or rat, default int
//	BIGCALC_LOG_LEVEL  debug, info, warn or error, default info
//	BIGCALC_PROMPT     prompt printed before each line of standard input
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns its exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	name := filepath.Base(os.Args[0])
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		flagExpr = flags.String("e", "", "Evaluate expression and exit")
		flagMode = flags.String("mode", "", "Arithmetic, int or rat (overrides BIGCALC_MODE)")
		flagEnv  = flags.String("env", ".env", "Load environment from file, if it exists")
		flagV    = flags.Bool("v", false, "Print version info and exit")
	)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [OPTION] [file [...]]\n", name)
		fmt.Fprintln(stderr, "Options:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *flagV {
		fmt.Fprintf(stdout, "bigcalc %s\n", version)
		return 0
	}

	cfg, err := readConfig(*flagEnv)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 1
	}
	if *flagMode != "" {
		cfg.Mode = *flagMode
	}

	log, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 1
	}
	defer log.Sync()

	calc, err := newCalculator(cfg.Mode, log)
	if err != nil {
		log.Error("creating calculator", zap.Error(err))
		return 1
	}
	log.Debug("starting", zap.String("mode", cfg.Mode), zap.Int("files", flags.NArg()))

	var failures int
	switch {
	case *flagExpr != "":
		failures, err = calc.run("-e", strings.NewReader(*flagExpr), stdout, "")
	case flags.NArg() > 0:
		failures, err = evalFiles(calc, flags.Args(), stdout)
	default:
		failures, err = calc.run("stdin", stdin, stdout, cfg.Prompt)
	}
	if err != nil {
		log.Error("reading input", zap.Error(err))
		return 1
	}
	if failures > 0 {
		return 1
	}
	return 0
}

func evalFiles(calc *calculator, names []string, w io.Writer) (failures int, err error) {
	for _, name := range names {
		n, err := evalFile(calc, name, w)
		failures += n
		if err != nil {
			return failures, err
		}
	}
	return failures, nil
}

func evalFile(calc *calculator, name string, w io.Writer) (int, error) {
	file, err := os.Open(name)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	return calc.run(name, file, w, "")
}
