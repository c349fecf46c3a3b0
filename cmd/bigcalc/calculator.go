package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/govalues/bignum"
	"go.uber.org/zap"
)

const (
	modeInt = "int"
	modeRat = "rat"
)

// maxLineSize is the longest expression the calculator reads from a stream.
const maxLineSize = 1 << 20

type calculator struct {
	eval func(string) (fmt.Stringer, error)
	log  *zap.Logger
}

func newCalculator(mode string, log *zap.Logger) (*calculator, error) {
	c := &calculator{log: log}
	switch mode {
	case modeInt:
		c.eval = func(expr string) (fmt.Stringer, error) {
			return bignum.Eval(expr)
		}
	case modeRat:
		c.eval = func(expr string) (fmt.Stringer, error) {
			return bignum.EvalRat(expr)
		}
	default:
		return nil, fmt.Errorf("unknown mode %q, expected %q or %q", mode, modeInt, modeRat)
	}
	return c, nil
}

// run evaluates every line of r and writes one result per line to w.
// Blank lines and lines starting with '#' are skipped.
// A line that fails to evaluate is logged and counted in failures,
// and evaluation continues with the next line.
// If prompt is not empty, it is written to w before each line is read.
func (c *calculator) run(name string, r io.Reader, w io.Writer, prompt string) (failures int, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	for line := 1; ; line++ {
		if prompt != "" {
			fmt.Fprint(w, prompt)
		}
		if !sc.Scan() {
			break
		}
		expr := strings.TrimSpace(sc.Text())
		if expr == "" || strings.HasPrefix(expr, "#") {
			continue
		}
		x, err := c.eval(expr)
		if err != nil {
			c.log.Error("evaluation failed",
				zap.String("source", name),
				zap.Int("line", line),
				zap.String("expr", expr),
				zap.Error(err),
			)
			failures++
			continue
		}
		c.log.Debug("evaluated",
			zap.String("source", name),
			zap.Int("line", line),
			zap.Stringer("result", x),
		)
		fmt.Fprintln(w, x)
	}
	if err := sc.Err(); err != nil {
		return failures, fmt.Errorf("reading %v: %w", name, err)
	}
	return failures, nil
}
