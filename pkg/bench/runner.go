// Package bench times codec operations in a tight loop and reports per-iteration
// latency and throughput.
package bench

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/appnet-org/protobench/pkg/logging"
)

// ErrInvalidIterations is returned when a run is asked for a non-positive
// iteration count or a negative warmup.
var ErrInvalidIterations = errors.New("bench: invalid iteration count")

// Func performs iterations repetitions of one operation and returns the total
// number of bytes processed.
type Func func(iterations int) (int64, error)

// Benchmark is one named entry of a suite.
type Benchmark struct {
	Name       string
	Func       Func
	Warmup     int
	Iterations int
}

// Result of a single timed run.
type Result struct {
	Name       string
	Iterations int
	Elapsed    time.Duration
	Bytes      int64
}

// NsPerOp is the average wall-clock time of one iteration, truncated to whole nanoseconds.
func (r Result) NsPerOp() int64 {
	if r.Iterations <= 0 {
		return 0
	}
	return r.Elapsed.Nanoseconds() / int64(r.Iterations)
}

// AvgNanos is the exact average wall-clock time of one iteration in nanoseconds.
func (r Result) AvgNanos() float64 {
	if r.Iterations <= 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Iterations)
}

// ThroughputMBps is bytes per second in MiB. Zero when no time was measured.
func (r Result) ThroughputMBps() float64 {
	ns := r.Elapsed.Nanoseconds()
	if ns <= 0 {
		return 0
	}
	return float64(r.Bytes) * 1000 * 1000 * 1000 / 1024 / 1024 / float64(ns)
}

// Run warms fn up with warmup iterations, then times one call with iterations
// and writes the report to w.
func Run(w io.Writer, name string, fn Func, warmup, iterations int) (Result, error) {
	if warmup < 0 || iterations <= 0 {
		return Result{}, fmt.Errorf("%w: warmup=%d iterations=%d", ErrInvalidIterations, warmup, iterations)
	}

	// Keep garbage from earlier runs out of this measurement.
	runtime.GC()

	fmt.Fprintf(w, "Benchmark: %s\n", name)
	if _, err := fn(warmup); err != nil {
		return Result{}, fmt.Errorf("%s warmup: %w", name, err)
	}

	start := time.Now()
	processed, err := fn(iterations)
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", name, err)
	}

	res := Result{
		Name:       name,
		Iterations: iterations,
		Elapsed:    elapsed,
		Bytes:      processed,
	}

	fmt.Fprintf(w, "Iterations: %d\n", res.Iterations)
	fmt.Fprintf(w, "Time(ns): %d\n", res.NsPerOp())
	fmt.Fprintf(w, "Throughput: %sMB/s\n", strconv.FormatFloat(res.ThroughputMBps(), 'f', -1, 64))
	fmt.Fprintln(w)

	logging.Debug("Benchmark finished",
		zap.String("name", name),
		zap.Int("iterations", iterations),
		zap.Duration("elapsed", elapsed),
		zap.Int64("bytes", processed))

	return res, nil
}

// RunSuite runs each benchmark in order and stops at the first failure.
func RunSuite(w io.Writer, suite []Benchmark) ([]Result, error) {
	results := make([]Result, 0, len(suite))
	for _, b := range suite {
		res, err := Run(w, b.Name, b.Func, b.Warmup, b.Iterations)
		if err != nil {
			logging.Error("Benchmark failed",
				zap.String("name", b.Name),
				zap.Int("completed", len(results)),
				zap.Error(err))
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
