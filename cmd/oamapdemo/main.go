// Command oamapdemo runs the worked examples of the oamap package and
// prints their results.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/homier/oamap"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errUnknownExample = errors.New("unknown example")

func main() {
	var (
		names           []string
		verbose         bool
		referenceGrowth bool
	)

	pflag.StringSliceVarP(&names, "example", "e", nil, "Examples to run (default: all)")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "Log table statistics after every example")
	pflag.BoolVar(&referenceGrowth, "reference-growth", false,
		"Grow only once the load factor already exceeds 0.5 before a put")
	pflag.Parse()

	logger, err := newLogger(verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(os.Stdout, logger, names, referenceGrowth); err != nil {
		logger.Error("Demo failed.", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return cfg.Build()
}

func selectExamples(names []string) ([]example, error) {
	if len(names) == 0 {
		return examples, nil
	}

	selected := make([]example, 0, len(names))
	for _, name := range names {
		found := false
		for _, ex := range examples {
			if ex.name == name {
				selected = append(selected, ex)
				found = true
				break
			}
		}

		if !found {
			return nil, errors.Wrapf(errUnknownExample, "%q", name)
		}
	}

	return selected, nil
}

func run(w io.Writer, logger *zap.Logger, names []string, referenceGrowth bool) error {
	selected, err := selectExamples(names)
	if err != nil {
		return errors.Wrap(err, "failed to select examples")
	}

	growth := oamap.GrowBeforeOverflow
	if referenceGrowth {
		growth = oamap.GrowWhenOverloaded
	}

	for _, ex := range selected {
		var tables []*oamap.Map[any]
		newMap := func(capacity int, hash oamap.HashFunc) *oamap.Map[any] {
			m := oamap.New(capacity,
				oamap.WithHashFunc[any](hash),
				oamap.WithGrowthPolicy[any](growth),
			)
			tables = append(tables, m)

			return m
		}

		logger.Debug("Running example.", zap.String("example", ex.name))

		ew := &errWriter{w: w}
		fmt.Fprintf(ew, "\n%s\n", ex.name)
		ex.run(ew, newMap)
		if ew.err != nil {
			return errors.Wrapf(ew.err, "failed to write output of example %q", ex.name)
		}

		for _, m := range tables {
			stats := m.Stats()
			logger.Debug("Example finished.",
				zap.String("example", ex.name),
				zap.Int("size", stats.Size),
				zap.Int("capacity", stats.Capacity),
				zap.Int("tombstones", stats.Tombstones),
				zap.Float64("load_factor", stats.LoadFactor))
		}
	}

	return nil
}
