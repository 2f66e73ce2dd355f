// Command weigh converts, adds and compares weights from the command line.
//
// Usage:
//
//	weigh [-round n] convert <weight> <unit>
//	weigh [-round n] sum [-unit u] <weight>...
//	weigh cmp <weight> <weight>
//	weigh [-round n] json <weight>
//
// Weights are written as a number and an optional unit, such as "3.5 lb".
// Errors are logged to stderr and the command exits with status 1.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/govalues/weight"
	"github.com/govalues/weight/internal/logging"
)

var errUsage = errors.New("usage: weigh [-round n] convert|sum|cmp|json args...")

func main() {
	logging.Setup(os.Stderr)
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("weigh failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("weigh", flag.ContinueOnError)
	fs.SetOutput(stderr)
	round := fs.Int("round", -1, "round printed weights to `n` digits after the decimal point")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return errUsage
	}
	p := printer{out: stdout, round: *round}
	cmd, rest := rest[0], rest[1:]
	slog.Debug("running command", "cmd", cmd, "args", rest)
	switch cmd {
	case "convert":
		return convert(p, rest)
	case "sum":
		return sum(p, rest, stderr)
	case "cmp":
		return compare(p, rest)
	case "json":
		return marshal(p, rest)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

type printer struct {
	out   io.Writer
	round int
}

func (p printer) weight(w weight.Weight) weight.Weight {
	if p.round >= 0 {
		return w.Round(p.round)
	}
	return w
}

func (p printer) println(a any) error {
	_, err := fmt.Fprintln(p.out, a)
	return err
}

func convert(p printer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("convert takes a weight and a unit: %w", errUsage)
	}
	w, err := weight.ParseWeight(args[0])
	if err != nil {
		return err
	}
	u, err := weight.ParseUnit(args[1])
	if err != nil {
		return err
	}
	v, err := w.To(u)
	if err != nil {
		return err
	}
	slog.Debug("converted", "from", w.String(), "to", v.String())
	return p.println(p.weight(v))
}

func sum(p printer, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("sum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	unit := fs.String("unit", "", "express the total in unit `u`")
	if err := fs.Parse(args); err != nil {
		return err
	}
	args = fs.Args()
	if len(args) == 0 {
		return fmt.Errorf("sum takes at least one weight: %w", errUsage)
	}
	var total weight.Weight
	for i, s := range args {
		w, err := weight.ParseWeight(s)
		if err != nil {
			return fmt.Errorf("parsing %s weight: %w", humanize.Ordinal(i+1), err)
		}
		if i == 0 {
			total = w
			continue
		}
		total, err = total.Add(w)
		if err != nil {
			return err
		}
	}
	if *unit != "" {
		u, err := weight.ParseUnit(*unit)
		if err != nil {
			return err
		}
		total, err = total.To(u)
		if err != nil {
			return err
		}
	}
	slog.Debug("summed", "count", len(args), "total", total.String())
	return p.println(p.weight(total))
}

func compare(p printer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("cmp takes two weights: %w", errUsage)
	}
	a, err := weight.ParseWeight(args[0])
	if err != nil {
		return err
	}
	b, err := weight.ParseWeight(args[1])
	if err != nil {
		return err
	}
	c, err := a.Cmp(b)
	if err != nil {
		return err
	}
	return p.println(c)
}

func marshal(p printer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("json takes one weight: %w", errUsage)
	}
	w, err := weight.ParseWeight(args[0])
	if err != nil {
		return err
	}
	data, err := json.Marshal(p.weight(w))
	if err != nil {
		return err
	}
	return p.println(string(data))
}
