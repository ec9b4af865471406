package util

// Match pairs a reference event index with an estimated event index.
type Match struct {
	Ref int
	Est int
}

// MatchEvents returns a maximum-cardinality matching between two ascending
// event sequences such that every pair is at most window apart and each
// event is used at most once.
//
// Each event's admissible partners form a contiguous run of the other
// sequence, and the runs advance monotonically, so pairing the earliest
// compatible events while sweeping both sequences is optimal.
func MatchEvents(ref, est []float64, window float64) []Match {
	var matches []Match
	i, j := 0, 0
	for i < len(ref) && j < len(est) {
		d := est[j] - ref[i]
		switch {
		case d < -window:
			// est[j] is too early for ref[i] and every later reference.
			j++
		case d > window:
			// ref[i] is too early for est[j] and every later estimate.
			i++
		default:
			matches = append(matches, Match{Ref: i, Est: j})
			i++
			j++
		}
	}
	return matches
}
