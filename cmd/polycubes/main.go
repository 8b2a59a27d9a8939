// Command polycubes enumerates free polycubes generation by generation,
// printing |P(n)| and the wall-clock cost of each generation transition —
// the Go counterpart of the original Rust enumerator's main loop.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/polycube/engine"
)

func main() {
	var maxGeneration = pflag.IntP("max-generation", "n", 0,
		"Stop after reaching this generation (0 runs until interrupted).")
	var workers = pflag.IntP("workers", "w", 1,
		"Worker goroutines per generation step (1 runs single-threaded).")
	var quiet = pflag.BoolP("quiet", "q", false,
		"Suppress per-generation shape rendering, printing only counts.")
	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - free polycube enumerator (OEIS A000162)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()
	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	logger := newLogger()

	if *workers < 0 {
		fmt.Fprintf(os.Stderr, "workers must be >= 0, got %d\n", *workers)
		os.Exit(1)
	}
	if *maxGeneration < 0 {
		fmt.Fprintf(os.Stderr, "max-generation must be >= 0, got %d\n", *maxGeneration)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := engine.New()
	fmt.Printf("%d: %d\n", e.Generation(), e.Count())
	logger.Debug("seeded generation", "generation", e.Generation(), "count", e.Count())

	for {
		select {
		case <-ctx.Done():
			logger.Info("interrupted, stopping", "generation", e.Generation())
			return
		default:
		}

		if *maxGeneration != 0 && e.Generation() >= *maxGeneration {
			return
		}

		start := time.Now()
		var count int
		if *workers > 1 {
			count = e.StepParallel(*workers)
		} else {
			count = e.Step()
		}
		duration := time.Since(start)

		fmt.Printf("%d: %d, nano: %d | human: %d.%03d seconds\n",
			e.Generation(), count, duration.Nanoseconds(),
			int(duration.Seconds()), duration.Milliseconds()%1000)

		if !*quiet {
			for _, s := range e.Shapes() {
				logger.Debug("shape", "generation", e.Generation(), "render", s.String())
			}
		}
	}
}

// newLogger returns a charmbracelet/log logger whose level is controlled by
// POLYCUBES_LOG_LEVEL (one of debug, info, warn, error; defaults to info).
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})

	level, err := log.ParseLevel(os.Getenv("POLYCUBES_LOG_LEVEL"))
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
