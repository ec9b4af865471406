package structure

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// eps guards normalizers against division by zero.
const eps = 2.220446049250313e-16

// Normalization selects how the two cluster entropies are averaged when
// normalizing mutual information.
type Normalization int

const (
	// Arithmetic averages the entropies: (H1 + H2) / 2.
	Arithmetic Normalization = iota
	// Geometric takes sqrt(H1 * H2).
	Geometric
	// Max takes the larger entropy.
	Max
	// Min takes the smaller entropy.
	Min
)

var normalizationNames = [...]string{"arithmetic", "geometric", "max", "min"}

// String returns the lower-case name accepted by ParseNormalization.
func (n Normalization) String() string {
	if n < 0 || int(n) >= len(normalizationNames) {
		return fmt.Sprintf("Normalization(%d)", int(n))
	}
	return normalizationNames[n]
}

// ParseNormalization parses a normalization name such as "arithmetic".
func ParseNormalization(s string) (Normalization, error) {
	for i, name := range normalizationNames {
		if strings.EqualFold(s, name) {
			return Normalization(i), nil
		}
	}
	return 0, fmt.Errorf("unknown normalization %q", s)
}

func (n Normalization) mean(a, b float64) float64 {
	switch n {
	case Geometric:
		return math.Sqrt(a * b)
	case Max:
		return math.Max(a, b)
	case Min:
		return math.Min(a, b)
	default:
		return (a + b) / 2
	}
}

// entropyBits returns the Shannon entropy, in bits, of the distribution
// proportional to weights.
func entropyBits(weights []float64) float64 {
	total := floats.Sum(weights)
	if total <= 0 {
		return 0
	}
	p := make([]float64, len(weights))
	floats.ScaleTo(p, 1/total, weights)
	return stat.Entropy(p) / math.Ln2
}

// mutualInfo returns the mutual information, in bits, of a contingency
// table of counts with the given marginals.
func mutualInfo(table mat.Matrix, rows, cols []float64) float64 {
	n := floats.Sum(rows)
	if n == 0 {
		return 0
	}
	var mi float64
	for i, a := range rows {
		for j, b := range cols {
			nij := table.At(i, j)
			if nij == 0 {
				continue
			}
			mi += nij / n * math.Log2(n*nij/(a*b))
		}
	}
	return math.Max(mi, 0)
}

// expectedMutualInfo returns the expected mutual information, in bits, of
// two random clusterings with the given cluster sizes, under the
// hypergeometric model of Vinh, Epps and Bailey (2009).
func expectedMutualInfo(rows, cols []float64, n int) float64 {
	if n == 0 {
		return 0
	}
	N := float64(n)
	lgN := lgamma(N + 1)

	var emi float64
	for _, a := range rows {
		for _, b := range cols {
			lo := math.Max(1, a+b-N)
			hi := math.Min(a, b)
			base := lgamma(a+1) + lgamma(b+1) + lgamma(N-a+1) + lgamma(N-b+1) - lgN
			for nij := lo; nij <= hi; nij++ {
				logP := base - lgamma(nij+1) - lgamma(a-nij+1) - lgamma(b-nij+1) - lgamma(N-a-b+nij+1)
				emi += nij / N * math.Log(N*nij/(a*b)) * math.Exp(logP)
			}
		}
	}
	return emi / math.Ln2
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
