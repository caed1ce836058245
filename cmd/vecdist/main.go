// Command vecdist prints the distance between two vectors.
//
// Usage:
//
//	vecdist [-metric name] <v1> <v2>
//	vecdist -list
//
// Vectors are comma-separated numbers, e.g. vecdist -metric m 0,0 3,4.
// Without -metric the metric comes from VECDIST_METRIC (or a .env file) and
// falls back to euclidean. -metric takes precedence, even over an invalid
// VECDIST_METRIC.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/viant/vecmetric/internal/config"
	"github.com/viant/vecmetric/internal/logging"
	"github.com/viant/vecmetric/metric"
	"github.com/viant/vecmetric/vector"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	fs := flag.NewFlagSet("vecdist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var m metric.Metric
	fs.TextVar(&m, "metric", metric.Euclidean, "distance metric: euclidean|manhattan|cosinesim (or e|m|c); overrides "+config.Prefix+"_METRIC")
	list := fs.Bool("list", false, "list metric names and exit")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if !flagSet(fs, "metric") {
		if m, err = cfg.DistanceMetric(); err != nil {
			logger.Error("invalid metric", "error", err)
			return exitUsage
		}
	}

	if *list {
		for _, item := range metric.All() {
			fmt.Fprintln(stdout, item.Name())
		}
		return exitOK
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, "usage: vecdist [-metric name] <v1> <v2>")
		return exitUsage
	}

	v1, err := parseVector(fs.Arg(0))
	if err != nil {
		logger.Error("invalid vector", "arg", 1, "error", err)
		return exitUsage
	}
	v2, err := parseVector(fs.Arg(1))
	if err != nil {
		logger.Error("invalid vector", "arg", 2, "error", err)
		return exitUsage
	}

	d, err := metric.Compute(m, v1, v2)
	if err != nil {
		logComputeError(logger, m, err)
		return exitError
	}
	logger.Debug("distance computed", "metric", m.Name(), "dimensions", v1.Len(), "value", d)
	fmt.Fprintln(stdout, strconv.FormatFloat(float64(d), 'g', -1, 32))
	return exitOK
}

func flagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func logComputeError(logger *slog.Logger, m metric.Metric, err error) {
	var dm *vector.DimensionMismatchError
	if errors.As(err, &dm) {
		logger.Error("cannot compute distance", "metric", m.Name(), "expected", dm.Expected, "found", dm.Found, "error", err)
		return
	}
	logger.Error("cannot compute distance", "metric", m.Name(), "error", err)
}

// parseVector parses a comma-separated list of float32 values. An empty
// string is the zero-length vector.
func parseVector(s string) (vector.Vector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return vector.Vector{}, nil
	}
	fields := strings.Split(s, ",")
	v := make(vector.Vector, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		v[i] = float32(x)
	}
	return v, nil
}
