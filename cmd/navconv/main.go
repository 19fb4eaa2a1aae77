// Command navconv runs a single navconv conversion on the values given on the
// command line and prints the result as space separated components.
//
// Usage:
//
//	navconv [-origin lat,lon,alt] [-heading deg] [-precision n] <op> v1 v2 v3
//
// Logging goes to stderr and is configured with LOG_LEVEL (debug, info, warn,
// error) and LOG_FORMAT (text, json).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/knei-knurow/navconv"
)

var (
	errUnknownOp = errors.New("unknown operation")
	errArgCount  = errors.New("wrong number of arguments")
)

// options carries the flag values an operation may need.
type options struct {
	origin  navconv.Geodetic
	heading float64
}

type operation func(in [3]float64, opts options) []float64

var operations = map[string]operation{
	"geodetic-to-ecef": func(in [3]float64, _ options) []float64 {
		return navconv.GeodeticToEcef(in[0], in[1], in[2]).Slice()
	},
	"ecef-to-geodetic": func(in [3]float64, _ options) []float64 {
		return navconv.EcefToGeodetic(in[0], in[1], in[2]).Slice()
	},
	"ecef-to-enu": func(in [3]float64, o options) []float64 {
		return navconv.EcefToEnu(in[0], in[1], in[2], o.origin.Lat(), o.origin.Lon(), o.origin.Alt()).Slice()
	},
	"enu-to-ecef": func(in [3]float64, o options) []float64 {
		return navconv.EnuToEcef(in[0], in[1], in[2], o.origin.Lat(), o.origin.Lon(), o.origin.Alt()).Slice()
	},
	"geodetic-to-enu": func(in [3]float64, o options) []float64 {
		return navconv.GeodeticToEnu(in[0], in[1], in[2], o.origin.Lat(), o.origin.Lon(), o.origin.Alt()).Slice()
	},
	"enu-to-geodetic": func(in [3]float64, o options) []float64 {
		return navconv.EnuToGeodetic(in[0], in[1], in[2], o.origin.Lat(), o.origin.Lon(), o.origin.Alt()).Slice()
	},
	"enu-to-lrf": func(in [3]float64, o options) []float64 {
		return navconv.EnuToLrf(in[0], in[1], in[2], o.heading).Slice()
	},
	"lrf-to-enu": func(in [3]float64, o options) []float64 {
		return navconv.LrfToEnu(in[0], in[1], in[2], o.heading).Slice()
	},
	"hpr-to-quaternion": func(in [3]float64, _ options) []float64 {
		return navconv.HPRToQuaternion(in[0], in[1], in[2]).Slice()
	},
}

func main() {
	logger := newLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stderr)

	if err := run(os.Args[1:], os.Stdout, os.Stderr, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Error("navconv failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("navconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	origin := fs.String("origin", "0,0,0", "tangent plane origin as lat,lon,alt (degrees, degrees, metres)")
	heading := fs.Float64("heading", 0, "LRF reference heading, degrees clockwise from north")
	precision := fs.Int("precision", 6, "digits printed after the decimal point")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: navconv [flags] <op> v1 v2 v3\n\nops: %s\n\nflags:\n", strings.Join(operationNames(), ", "))
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("%w: missing operation", errArgCount)
	}

	name := rest[0]
	op, ok := operations[name]
	if !ok {
		return fmt.Errorf("%w %q", errUnknownOp, name)
	}

	if len(rest[1:]) != 3 {
		return fmt.Errorf("%w: %s takes 3 values, got %d", errArgCount, name, len(rest[1:]))
	}
	in, err := parseTriple(rest[1:])
	if err != nil {
		return fmt.Errorf("parse %s input: %w", name, err)
	}

	o, err := parseTriple(strings.Split(*origin, ","))
	if err != nil {
		return fmt.Errorf("parse -origin: %w", err)
	}
	opts := options{
		origin:  navconv.NewGeodetic(o[0], o[1], o[2]),
		heading: *heading,
	}

	out := op(in, opts)
	logger.Debug("converted", "op", name, "in", in[:], "out", out, "origin", opts.origin.String(), "heading", opts.heading)

	fields := make([]string, len(out))
	for i, v := range out {
		fields[i] = strconv.FormatFloat(v, 'f', *precision, 64)
	}
	_, err = fmt.Fprintln(stdout, strings.Join(fields, " "))
	return err
}

func parseTriple(s []string) ([3]float64, error) {
	var t [3]float64
	if len(s) != 3 {
		return t, fmt.Errorf("%w: want 3 values, got %d", errArgCount, len(s))
	}
	for i, v := range s {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return t, err
		}
		t[i] = f
	}
	return t, nil
}

func operationNames() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// newLogger builds a slog logger writing to w. level is one of debug, info,
// warn or error (default info); format is text or json (default text).
func newLogger(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
