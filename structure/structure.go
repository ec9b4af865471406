// Package structure scores labeled segmentations as frame clusterings,
// following the MIREX structural segmentation protocol:
//
//   - Pairwise: precision, recall and F-measure of frame-pair co-membership.
//   - ARI: adjusted Rand index.
//   - MutualInformation: mutual information, adjusted and normalized variants.
//   - NCE: normalized conditional entropy (over- and under-segmentation).
//
// Every metric validates its input, samples both segmentations on a common
// frame grid (frameSize seconds, rounded down), and compares the resulting
// cluster assignments. Cluster ids are local to each side, so only
// co-membership matters, never the label text.
//
// Entropies and mutual information are measured in bits.
package structure

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/hendriks73/mir-eval/util"
)

func prepare(refIntervals []util.Interval, refLabels []string, estIntervals []util.Interval, estLabels []string, frameSize float64) (clustering, error) {
	if err := Validate(refIntervals, refLabels, estIntervals, estLabels); err != nil {
		return clustering{}, err
	}
	if err := util.CheckParameter("frame size", frameSize); err != nil {
		return clustering{}, err
	}
	return newClustering(refIntervals, refLabels, estIntervals, estLabels, frameSize), nil
}

// Pairwise computes precision, recall and F-measure for the task of deciding
// whether two frames belong to the same cluster. Each unordered pair of
// distinct frames is counted once.
//
// The pair scan is quadratic in the number of frames; with the default 0.1s
// frames a ten minute track has 6000 frames, or 18 million pairs.
// Two all-singleton clusterings score 1; otherwise a side without any
// same-cluster pair yields a ratio of 0.
func Pairwise(refIntervals []util.Interval, refLabels []string, estIntervals []util.Interval, estLabels []string, frameSize, beta float64) (precision, recall, fMeasure float64, err error) {
	c, err := prepare(refIntervals, refLabels, estIntervals, estLabels, frameSize)
	if err != nil {
		return 0, 0, 0, err
	}
	if err := util.CheckParameter("beta", beta); err != nil {
		return 0, 0, 0, err
	}

	var refPairs, estPairs, agree int
	n := c.frames()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sameRef := c.ref[i] == c.ref[j]
			sameEst := c.est[i] == c.est[j]
			if sameRef {
				refPairs++
			}
			if sameEst {
				estPairs++
			}
			if sameRef && sameEst {
				agree++
			}
		}
	}

	// No same-cluster pair on either side: both clusterings are all
	// singletons, hence identical.
	if n > 0 && refPairs == 0 && estPairs == 0 {
		return 1, 1, 1, nil
	}
	if estPairs > 0 {
		precision = float64(agree) / float64(estPairs)
	}
	if refPairs > 0 {
		recall = float64(agree) / float64(refPairs)
	}
	return precision, recall, util.FMeasure(precision, recall, beta), nil
}

// ARI computes the adjusted Rand index between the frame clusterings.
// It is 1 for identical clusterings, near 0 for independent ones, and can be
// negative. Two single-cluster (or two all-singleton) clusterings score 1.
func ARI(refIntervals []util.Interval, refLabels []string, estIntervals []util.Interval, estLabels []string, frameSize float64) (float64, error) {
	c, err := prepare(refIntervals, refLabels, estIntervals, estLabels, frameSize)
	if err != nil {
		return 0, err
	}
	return adjustedRandIndex(c), nil
}

func adjustedRandIndex(c clustering) float64 {
	n := c.frames()
	if c.nRef == c.nEst && (c.nRef <= 1 || c.nRef == n) {
		return 1.0
	}

	table := c.contingency()
	rows, cols := marginals(table)

	var sumComb float64
	r, k := table.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < k; j++ {
			sumComb += comb2(table.At(i, j))
		}
	}
	var sumCombRef, sumCombEst float64
	for _, a := range rows {
		sumCombRef += comb2(a)
	}
	for _, b := range cols {
		sumCombEst += comb2(b)
	}

	expected := sumCombRef * sumCombEst / comb2(float64(n))
	maxIndex := (sumCombRef + sumCombEst) / 2
	den := maxIndex - expected
	if den == 0 {
		return 1.0
	}
	return (sumComb - expected) / den
}

// comb2 is n choose 2.
func comb2(n float64) float64 {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// MutualInformation computes the mutual information between the frame
// clusterings (in bits), its chance-adjusted variant, and its normalized
// variant. Normalization uses the arithmetic mean of the two entropies.
func MutualInformation(refIntervals []util.Interval, refLabels []string, estIntervals []util.Interval, estLabels []string, frameSize float64) (mi, ami, nmi float64, err error) {
	return MutualInformationWithNorm(refIntervals, refLabels, estIntervals, estLabels, frameSize, Arithmetic)
}

// MutualInformationWithNorm is MutualInformation with a chosen mean for the
// AMI and NMI normalizers.
func MutualInformationWithNorm(refIntervals []util.Interval, refLabels []string, estIntervals []util.Interval, estLabels []string, frameSize float64, norm Normalization) (mi, ami, nmi float64, err error) {
	c, err := prepare(refIntervals, refLabels, estIntervals, estLabels, frameSize)
	if err != nil {
		return 0, 0, 0, err
	}
	mi, ami, nmi = mutualInformation(c, norm)
	return mi, ami, nmi, nil
}

func mutualInformation(c clustering, norm Normalization) (mi, ami, nmi float64) {
	// Neither side splits the data: the clusterings agree trivially.
	if c.nRef == c.nEst && c.nRef <= 1 {
		return 0, 1, 1
	}

	table := c.contingency()
	rows, cols := marginals(table)
	mi = mutualInfo(table, rows, cols)
	// Identical all-singleton clusterings: MI equals both entropies and
	// the expected MI, so AMI would be 0/0.
	if c.nRef == c.nEst && c.nRef == c.frames() {
		return mi, 1, 1
	}

	hRef := entropyBits(rows)
	hEst := entropyBits(cols)
	normalizer := norm.mean(hRef, hEst)

	if mi == 0 {
		nmi = 0
	} else {
		nmi = mi / math.Max(normalizer, eps)
	}

	emi := expectedMutualInfo(rows, cols, c.frames())
	den := normalizer - emi
	if den < 0 {
		den = math.Min(den, -eps)
	} else {
		den = math.Max(den, eps)
	}
	ami = (mi - emi) / den
	return mi, ami, nmi
}

// NCE computes the normalized conditional entropy scores of Lukashevich
// (2008):
//
//	S_over  = 1 - H(est | ref) / log2(n_est)
//	S_under = 1 - H(ref | est) / log2(n_ref)
//
// and their F-measure. S_over is NaN when the estimate has a single
// cluster, S_under when the reference has; a NaN score makes S_F NaN.
func NCE(refIntervals []util.Interval, refLabels []string, estIntervals []util.Interval, estLabels []string, frameSize, beta float64) (sOver, sUnder, sF float64, err error) {
	c, err := prepare(refIntervals, refLabels, estIntervals, estLabels, frameSize)
	if err != nil {
		return 0, 0, 0, err
	}
	if err := util.CheckParameter("beta", beta); err != nil {
		return 0, 0, 0, err
	}
	sOver, sUnder = conditionalEntropyScores(c)
	return sOver, sUnder, util.FMeasure(sOver, sUnder, beta), nil
}

func conditionalEntropyScores(c clustering) (sOver, sUnder float64) {
	sOver, sUnder = math.NaN(), math.NaN()
	if c.frames() == 0 {
		return sOver, sUnder
	}

	joint := c.contingency()
	joint.Scale(1/float64(c.frames()), joint)
	pRef, pEst := marginals(joint)

	// Column j of the ref x est table is the reference distribution inside
	// estimated cluster j, so its entropy is H(ref | est = j).
	var refGivenEst float64
	for j, p := range pEst {
		refGivenEst += p * entropyBits(mat.Col(nil, j, joint))
	}
	var estGivenRef float64
	for i, p := range pRef {
		estGivenRef += p * entropyBits(mat.Row(nil, i, joint))
	}

	if c.nRef > 1 {
		sUnder = 1 - refGivenEst/math.Log2(float64(c.nRef))
	}
	if c.nEst > 1 {
		sOver = 1 - estGivenRef/math.Log2(float64(c.nEst))
	}
	return sOver, sUnder
}
