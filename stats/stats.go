// Package stats keeps running statistics over game results.
package stats

import "math"

const Epsilon = 1e-6

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Running accumulates samples one at a time, using Welford's algorithm for
// the variance.
type Running struct {
	n        int
	mean     float64
	m2       float64
	min, max float64
}

func (r *Running) Push(val float64) {
	r.n++
	if r.n == 1 {
		r.mean, r.m2 = val, 0
		r.min, r.max = val, val
		return
	}
	delta := val - r.mean
	r.mean += delta / float64(r.n)
	r.m2 += delta * (val - r.mean)
	r.min = math.Min(r.min, val)
	r.max = math.Max(r.max, val)
}

func (r *Running) Count() int { return r.n }
func (r *Running) Min() float64 { return r.min }
func (r *Running) Max() float64 { return r.max }

func (r *Running) Mean() float64 {
	if r.n == 0 {
		return 0
	}
	return r.mean
}

// Variance is the sample variance.
func (r *Running) Variance() float64 {
	if r.n <= 1 {
		return 0
	}
	return r.m2 / float64(r.n-1)
}

func (r *Running) Stdev() float64 {
	return math.Sqrt(r.Variance())
}

func (r *Running) StandardError() float64 {
	if r.n == 0 {
		return 0
	}
	return math.Sqrt(r.Variance() / float64(r.n))
}
