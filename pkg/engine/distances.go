package engine

import "math"

// DistanceVector holds one tentative shortest distance per node. Every
// rank mutates its own copy during a relaxation phase; the group-wide
// elementwise minimum is the authoritative value after each merge.
// Merging is commutative, associative and monotone non-increasing, so the
// merged vector is identical on every rank regardless of ordering.
type DistanceVector []float64

// NewDistanceVector starts every node at +Inf except the source at 0.
func NewDistanceVector(n, source int) DistanceVector {
	d := make(DistanceVector, n)
	for i := range d {
		d[i] = math.Inf(1)
	}
	if source >= 0 && source < n {
		d[source] = 0
	}
	return d
}

// Merge lowers each entry to the minimum of the two vectors.
func (d DistanceVector) Merge(other DistanceVector) {
	for i, v := range other {
		if v < d[i] {
			d[i] = v
		}
	}
}

func (d DistanceVector) Clone() DistanceVector {
	return append(DistanceVector(nil), d...)
}

// Unreachable reports whether a merged distance still means "no path".
func Unreachable(v float64) bool {
	return math.IsInf(v, 1)
}
