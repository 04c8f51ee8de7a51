package bench

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRun_ReportsTotalBytes(t *testing.T) {
	var out bytes.Buffer
	op := func(iterations int) (int64, error) {
		var total int64
		for i := 0; i < iterations; i++ {
			total += 7
		}
		return total, nil
	}

	res, err := Run(&out, "x", op, 0, 1000)
	require.NoError(t, err)
	require.Equal(t, "x", res.Name)
	require.Equal(t, 1000, res.Iterations)
	require.Equal(t, int64(7000), res.Bytes)
	require.Greater(t, res.Elapsed, time.Duration(0))
	require.Greater(t, res.AvgNanos(), 0.0)
	require.InDelta(t, float64(res.Elapsed.Nanoseconds())/1000, res.AvgNanos(), 1e-9)
	require.Greater(t, res.ThroughputMBps(), 0.0)

	lines := strings.Split(out.String(), "\n")
	require.Equal(t, "Benchmark: x", lines[0])
	require.Equal(t, "Iterations: 1000", lines[1])
	require.True(t, strings.HasPrefix(lines[2], "Time(ns): "))
	require.True(t, strings.HasPrefix(lines[3], "Throughput: "))
	require.True(t, strings.HasSuffix(lines[3], "MB/s"))
	require.Equal(t, "", lines[4])
}

func TestRun_WarmupBeforeTimedRun(t *testing.T) {
	var calls []int
	op := func(iterations int) (int64, error) {
		calls = append(calls, iterations)
		return 0, nil
	}

	_, err := Run(&bytes.Buffer{}, "order", op, 10, 100)
	require.NoError(t, err)
	require.Equal(t, []int{10, 100}, calls)
}

func TestRun_InvalidIterations(t *testing.T) {
	op := func(int) (int64, error) { return 0, nil }

	_, err := Run(&bytes.Buffer{}, "zero", op, 0, 0)
	require.ErrorIs(t, err, ErrInvalidIterations)

	_, err = Run(&bytes.Buffer{}, "negative warmup", op, -1, 10)
	require.ErrorIs(t, err, ErrInvalidIterations)
}

func TestRun_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := Run(&bytes.Buffer{}, "fails", func(int) (int64, error) { return 0, boom }, 1, 1)
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "fails")
}

func TestResult_Throughput(t *testing.T) {
	res := Result{Iterations: 4, Elapsed: time.Second, Bytes: 2 * 1024 * 1024}
	require.Equal(t, int64(250_000_000), res.NsPerOp())
	require.Equal(t, 250_000_000.0, res.AvgNanos())

	// Sub-nanosecond averages truncate in NsPerOp but not in AvgNanos.
	fast := Result{Iterations: 1000, Elapsed: 279 * time.Nanosecond, Bytes: 7000}
	require.Equal(t, int64(0), fast.NsPerOp())
	require.InDelta(t, 0.279, fast.AvgNanos(), 1e-12)
	require.InDelta(t, 2.0, res.ThroughputMBps(), 1e-9)

	require.Equal(t, 0.0, Result{Iterations: 1, Bytes: 10}.ThroughputMBps())
}

func TestRunSuite_StopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	ran := 0
	ok := func(n int) (int64, error) { ran++; return int64(n), nil }

	suite := []Benchmark{
		{Name: "a", Func: ok, Warmup: 0, Iterations: 5},
		{Name: "b", Func: func(int) (int64, error) { return 0, boom }, Warmup: 0, Iterations: 5},
		{Name: "c", Func: ok, Warmup: 0, Iterations: 5},
	}

	results, err := RunSuite(&bytes.Buffer{}, suite)
	require.ErrorIs(t, err, boom)
	require.Len(t, results, 1)
	require.Equal(t, int64(5), results[0].Bytes)
	require.Equal(t, 2, ran)
}
