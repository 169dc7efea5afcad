// Package stats tracks running statistics over a population's members,
// ported from cbarrick-evo's single Stats accumulator (online mean/variance
// via Welford's algorithm, with a Merge for parallel reduction) into a
// pluggable Tracker registry so a population can accumulate several
// independent statistics (population size, raw/scaled fitness, deviation,
// per-operation timing) instead of one fixed fitness-only accumulator.
package stats

import (
	"fmt"
	"math"
)

// Value is a running statistics accumulator: maximum, minimum, mean, and
// variance of a stream of float64 observations, computed online via
// Welford's algorithm exactly as cbarrick-evo's Stats type does.
type Value struct {
	max, min float64
	mean     float64
	sumsq    float64
	len      float64
}

// Insert folds x into the accumulator and returns the updated value.
func (s Value) Insert(x float64) Value {
	if s.len == 0 {
		s.max = math.Inf(-1)
		s.min = math.Inf(+1)
	}

	delta := x - s.mean
	newlen := s.len + 1

	s.max = math.Max(s.max, x)
	s.min = math.Min(s.min, x)
	s.mean += delta / newlen
	s.sumsq += delta * delta * (s.len / newlen)
	s.len = newlen

	return s
}

// Merge combines two independently-accumulated Values into one, used to
// reduce per-branch statistics at a barrier without re-scanning every
// observation.
func (s Value) Merge(t Value) Value {
	if s.len == 0 {
		return t
	}
	if t.len == 0 {
		return s
	}

	delta := t.mean - s.mean
	newlen := t.len + s.len

	s.max = math.Max(s.max, t.max)
	s.min = math.Min(s.min, t.min)
	s.mean += delta * (t.len / newlen)
	s.sumsq += t.sumsq
	s.sumsq += delta * delta * (t.len * s.len / newlen)
	s.len = newlen

	return s
}

// Max returns the maximum observed value.
func (s Value) Max() float64 { return s.max }

// Min returns the minimum observed value.
func (s Value) Min() float64 { return s.min }

// Range returns Max - Min.
func (s Value) Range() float64 { return s.max - s.min }

// Mean returns the running average.
func (s Value) Mean() float64 { return s.mean }

// Variance returns the population variance of the observed values.
func (s Value) Variance() float64 { return s.sumsq / s.len }

// StdDeviation returns the population standard deviation.
func (s Value) StdDeviation() float64 { return math.Sqrt(s.sumsq / s.len) }

// Len returns the number of observations folded in.
func (s Value) Len() int { return int(s.len) }

func (s Value) String() string {
	return fmt.Sprintf("n=%d max=%f min=%f mean=%f sd=%f",
		s.Len(), s.Max(), s.Min(), s.Mean(), s.StdDeviation())
}
