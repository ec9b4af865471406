package structure

import (
	"gonum.org/v1/gonum/mat"

	"github.com/hendriks73/mir-eval/util"
)

// FrameLabels samples a labeled segmentation every frameSize seconds and
// maps the sampled labels to dense cluster ids. idToLabel[id] is the label
// of cluster id.
//
// Segments are rounded down to whole frames: a trailing partial frame is
// not sampled. Frames in a gap between intervals carry util.FillLabel.
func FrameLabels(intervals []util.Interval, labels []string, frameSize float64) (ids []int, idToLabel []string) {
	_, sampled := util.IntervalsToSamples(intervals, labels, frameSize, util.FillLabel)
	return util.IndexLabels(sampled)
}

// clustering is a pair of frame-aligned cluster assignments.
type clustering struct {
	ref, est   []int
	nRef, nEst int
}

func newClustering(refIntervals []util.Interval, refLabels []string, estIntervals []util.Interval, estLabels []string, frameSize float64) clustering {
	ref, _ := FrameLabels(refIntervals, refLabels, frameSize)
	est, _ := FrameLabels(estIntervals, estLabels, frameSize)

	// End times agree only within tolerance, so flooring can leave the two
	// sides one frame apart. Compare the common prefix, re-indexed so that
	// ids stay dense; first-seen order keeps the prefix ids unchanged.
	n := min(len(ref), len(est))
	ref, refClusters := util.IndexLabels(ref[:n])
	est, estClusters := util.IndexLabels(est[:n])

	return clustering{
		ref:  ref,
		est:  est,
		nRef: len(refClusters),
		nEst: len(estClusters),
	}
}

func (c clustering) frames() int {
	return len(c.ref)
}

// contingency returns the nRef x nEst table of joint frame counts.
// It must not be called on an empty clustering.
func (c clustering) contingency() *mat.Dense {
	table := mat.NewDense(c.nRef, c.nEst, nil)
	for k := range c.ref {
		i, j := c.ref[k], c.est[k]
		table.Set(i, j, table.At(i, j)+1)
	}
	return table
}

// marginals returns the row sums and column sums of m.
func marginals(m mat.Matrix) (rows, cols []float64) {
	r, c := m.Dims()
	rows = make([]float64, r)
	cols = make([]float64, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			rows[i] += v
			cols[j] += v
		}
	}
	return rows, cols
}
