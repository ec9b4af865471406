// Package mireval scores an estimated segmentation of a track against a
// reference segmentation, following the MIREX structural segmentation
// evaluation protocol.
//
// The metrics live in two independent packages:
//   - boundary: boundary detection hit rate and median boundary deviation.
//   - structure: frame clustering agreement (pairwise, ARI, mutual
//     information, normalized conditional entropy).
//
// This package wraps both behind an Evaluator that computes every metric
// for a track, or for a batch of tracks in parallel.
//
// # Quick Start
//
//	ev, err := mireval.New(mireval.WithWindow(3), mireval.WithTrim(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	scores, err := ev.Evaluate(ctx, mireval.Track{
//	    ID:        "track01",
//	    Reference: structure.Annotation{Intervals: refIntervals, Labels: refLabels},
//	    Estimate:  structure.Annotation{Intervals: estIntervals, Labels: estLabels},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	f, _ := scores.Get("detection.f_measure")
//	fmt.Printf("F@3s: %.3f\n", f)
//
// # Undefined Scores
//
// Malformed input (negative times, misaligned tracks, label count
// mismatches) is reported as an error matching one of the sentinel errors.
// Input that is valid but degenerate is not an error: boundary detection
// with no boundaries scores 0, and deviation or conditional entropy scores
// that are undefined are NaN.
//
// # Thread Safety
//
// Evaluator is immutable after New and safe for concurrent use. Metric
// functions keep no state between calls.
package mireval
