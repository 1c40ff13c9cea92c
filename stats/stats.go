// Package stats fits parametric distributions to morphometric feature data and
// compares samples of feature values.
package stats

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrUnknownTest is returned when a [Test] isn't one of the defined tests.
	ErrUnknownTest = errors.New("stats: unknown statistical test")
	// ErrLengthMismatch is returned by paired tests when the samples have
	// different lengths.
	ErrLengthMismatch = errors.New("stats: paired samples have different lengths")
)

// Distribution is a parametric family that data can be fitted to.
type Distribution int

const (
	Normal Distribution = iota
	Exponential
	Uniform
)

func (d Distribution) String() string {
	switch d {
	case Normal:
		return "norm"
	case Exponential:
		return "expon"
	case Uniform:
		return "uniform"
	default:
		return fmt.Sprintf("Distribution(%d)", int(d))
	}
}

// FitResults describes a distribution fitted to data.
type FitResults struct {
	// Params are the location and scale of the fitted distribution. For
	// Normal these are μ and σ, for Exponential and Uniform they are the
	// minimum of the data and the width of the distribution's support or its
	// mean above the minimum.
	Params [2]float64
	// Errs are the statistic and p-value of a one-sample Kolmogorov-Smirnov
	// test of the data against the fitted distribution.
	Errs [2]float64
	Type Distribution
}

// Fit fits dist to data by maximum likelihood. It panics if data is empty or
// dist is unknown.
func Fit(data []float64, dist Distribution) FitResults {
	if len(data) == 0 {
		panic("stats: no data to fit")
	}
	var params [2]float64
	switch dist {
	case Normal:
		params[0], params[1] = stat.PopMeanStdDev(data, nil)
	case Exponential:
		lo := floats.Min(data)
		params[0], params[1] = lo, stat.Mean(data, nil)-lo
	case Uniform:
		lo := floats.Min(data)
		params[0], params[1] = lo, floats.Max(data)-lo
	default:
		panic(fmt.Sprintf("stats: unknown distribution %v", dist))
	}
	fr := FitResults{Params: params, Type: dist}
	d := ksOneSample(data, fr.cdf())
	fr.Errs = [2]float64{d, kolmogorovQ(ksLambda(math.Sqrt(float64(len(data))), d))}
	return fr
}

func (fr FitResults) cdf() func(float64) float64 {
	loc, scale := fr.Params[0], fr.Params[1]
	switch fr.Type {
	case Normal:
		return distuv.Normal{Mu: loc, Sigma: scale}.CDF
	case Exponential:
		e := distuv.Exponential{Rate: 1 / scale}
		return func(x float64) float64 { return e.CDF(x - loc) }
	case Uniform:
		return distuv.Uniform{Min: loc, Max: loc + scale}.CDF
	default:
		panic(fmt.Sprintf("stats: unknown distribution %v", fr.Type))
	}
}

// OptimalDistribution fits each of the candidate distributions to data and
// returns the fit with the smallest Kolmogorov-Smirnov statistic. Without
// candidates, Normal, Exponential and Uniform are tried.
func OptimalDistribution(data []float64, candidates ...Distribution) FitResults {
	if len(candidates) == 0 {
		candidates = []Distribution{Normal, Exponential, Uniform}
	}
	best := Fit(data, candidates[0])
	for _, c := range candidates[1:] {
		if fr := Fit(data, c); fr.Errs[0] < best.Errs[0] {
			best = fr
		}
	}
	return best
}

// Map returns the fit as a flat map suitable for serialization. The optional
// bounds are a minimum and a maximum which are recorded as "min" and "max" for
// Normal and Exponential fits. Uniform fits always report their own support.
func (fr FitResults) Map(bounds ...float64) map[string]any {
	m := make(map[string]any)
	switch fr.Type {
	case Normal:
		m["type"] = "normal"
		m["mu"] = fr.Params[0]
		m["sigma"] = fr.Params[1]
	case Exponential:
		m["type"] = "exponential"
		m["lambda"] = 1 / fr.Params[1]
	case Uniform:
		m["type"] = "uniform"
		m["min"] = fr.Params[0]
		m["max"] = fr.Params[0] + fr.Params[1]
		return m
	default:
		panic(fmt.Sprintf("stats: unknown distribution %v", fr.Type))
	}
	if len(bounds) > 0 {
		m["min"] = bounds[0]
	}
	if len(bounds) > 1 {
		m["max"] = bounds[1]
	}
	return m
}

// Test is a statistical test comparing two samples.
type Test int

const (
	// KS is the two-sample Kolmogorov-Smirnov test.
	KS Test = iota
	// Wilcoxon is the Wilcoxon signed-rank test of paired samples.
	Wilcoxon
	// TTest is Student's t-test for the means of two independent samples.
	TTest
)

// TestName returns the conventional name of test.
func TestName(test Test) (string, error) {
	switch test {
	case KS:
		return "ks_2samp", nil
	case Wilcoxon:
		return "wilcoxon", nil
	case TTest:
		return "ttest_ind", nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownTest, int(test))
	}
}

// Comparison is the outcome of comparing two samples.
type Comparison struct {
	Statistic float64
	PValue    float64
}

// CompareTwo compares the samples a and b using test.
func CompareTwo(a, b []float64, test Test) (Comparison, error) {
	switch test {
	case KS:
		return ksTwoSample(a, b), nil
	case Wilcoxon:
		return wilcoxon(a, b)
	case TTest:
		return ttestInd(a, b), nil
	default:
		return Comparison{}, fmt.Errorf("%w: %d", ErrUnknownTest, int(test))
	}
}

// Summary holds scalar statistics of a sample.
type Summary struct {
	Mean float64
	Max  float64
	Min  float64
	// Std is the population standard deviation.
	Std float64
}

// ScalarStats summarizes data, which must not be empty.
func ScalarStats(data []float64) Summary {
	mean, std := stat.PopMeanStdDev(data, nil)
	return Summary{
		Mean: mean,
		Max:  floats.Max(data),
		Min:  floats.Min(data),
		Std:  std,
	}
}

// TotalScore compares each pair of samples with test and returns the p-norm
// of the resulting statistics.
func TotalScore(pairs [][2][]float64, p float64, test Test) (float64, error) {
	scores := make([]float64, len(pairs))
	for i, pair := range pairs {
		c, err := CompareTwo(pair[0], pair[1], test)
		if err != nil {
			return 0, fmt.Errorf("pair %d: %w", i, err)
		}
		scores[i] = c.Statistic
	}
	return floats.Norm(scores, p), nil
}

func sorted(x []float64) []float64 {
	x = slices.Clone(x)
	slices.Sort(x)
	return x
}

// ksOneSample returns the largest distance between the empirical distribution
// of data and cdf.
func ksOneSample(data []float64, cdf func(float64) float64) float64 {
	x := sorted(data)
	n := float64(len(x))
	var d float64
	for i, v := range x {
		f := cdf(v)
		d = max(d, f-float64(i)/n, float64(i+1)/n-f)
	}
	return d
}

func ksTwoSample(a, b []float64) Comparison {
	d := stat.KolmogorovSmirnov(sorted(a), nil, sorted(b), nil)
	n, m := float64(len(a)), float64(len(b))
	return Comparison{
		Statistic: d,
		PValue:    kolmogorovQ(ksLambda(math.Sqrt(n*m/(n+m)), d)),
	}
}

// ksLambda applies Stephens' small sample correction for an effective sample
// size en.
func ksLambda(en, d float64) float64 {
	return (en + 0.12 + 0.11/en) * d
}

// kolmogorovQ is the complementary CDF of the Kolmogorov distribution,
//
//	Q(λ) = 2 Σ (-1)^(j-1) exp(-2 j² λ²)
func kolmogorovQ(lambda float64) float64 {
	const (
		eps1 = 1e-6
		eps2 = 1e-16
	)
	a2 := -2 * lambda * lambda
	fac := 2.0
	var sum, prev float64
	for j := 1; j <= 100; j++ {
		term := fac * math.Exp(a2*float64(j*j))
		sum += term
		if math.Abs(term) <= eps1*prev || math.Abs(term) <= eps2*sum {
			return min(max(sum, 0), 1)
		}
		fac = -fac
		prev = math.Abs(term)
	}
	// The series only fails to converge for λ near zero.
	return 1
}

// wilcoxon runs a two-sided signed-rank test on the differences a[i]-b[i].
// Zero differences are discarded. The statistic is the smaller of the
// positive and negative rank sums and the p-value uses the normal
// approximation with a correction for ties.
func wilcoxon(a, b []float64) (Comparison, error) {
	if len(a) != len(b) {
		return Comparison{}, ErrLengthMismatch
	}
	d := make([]float64, 0, len(a))
	for i := range a {
		if v := a[i] - b[i]; v != 0 {
			d = append(d, v)
		}
	}
	if len(d) == 0 {
		return Comparison{Statistic: math.NaN(), PValue: math.NaN()}, nil
	}
	abs := make([]float64, len(d))
	for i, v := range d {
		abs[i] = math.Abs(v)
	}
	ranks, ties := rank(abs)
	var plus, minus float64
	for i, v := range d {
		if v > 0 {
			plus += ranks[i]
		} else {
			minus += ranks[i]
		}
	}
	t := min(plus, minus)

	n := float64(len(d))
	mean := n * (n + 1) / 4
	se := n * (n + 1) * (2*n + 1)
	for _, c := range ties {
		c := float64(c)
		se -= 0.5 * c * (c*c - 1)
	}
	se = math.Sqrt(se / 24)
	z := (t - mean) / se
	return Comparison{
		Statistic: t,
		PValue:    2 * distuv.UnitNormal.Survival(math.Abs(z)),
	}, nil
}

// rank returns the 1-based ranks of x, assigning tied values their average
// rank, along with the size of every group of ties.
func rank(x []float64) (ranks []float64, ties []int) {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(i, j int) int {
		switch {
		case x[i] < x[j]:
			return -1
		case x[i] > x[j]:
			return 1
		default:
			return 0
		}
	})
	ranks = make([]float64, len(x))
	for i := 0; i < len(idx); {
		j := i + 1
		for j < len(idx) && x[idx[j]] == x[idx[i]] {
			j++
		}
		// Positions i..j-1 share the ranks i+1..j.
		r := float64(i+j+1) / 2
		for _, k := range idx[i:j] {
			ranks[k] = r
		}
		if j-i > 1 {
			ties = append(ties, j-i)
		}
		i = j
	}
	return ranks, ties
}

// ttestInd runs a two-sided t-test for the means of independent samples with
// equal variances.
func ttestInd(a, b []float64) Comparison {
	m1, v1 := stat.MeanVariance(a, nil)
	m2, v2 := stat.MeanVariance(b, nil)
	n1, n2 := float64(len(a)), float64(len(b))
	df := n1 + n2 - 2
	pooled := ((n1-1)*v1 + (n2-1)*v2) / df
	t := (m1 - m2) / math.Sqrt(pooled*(1/n1+1/n2))
	switch {
	case math.IsNaN(t):
		return Comparison{Statistic: t, PValue: math.NaN()}
	case math.IsInf(t, 0):
		return Comparison{Statistic: t, PValue: 0}
	}
	st := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return Comparison{Statistic: t, PValue: 2 * st.CDF(-math.Abs(t))}
}
