package segstore

// PairIntersection names a pair of segments and the Result of intersecting
// them.
type PairIntersection struct {
	A, B   SegmentId
	Result Result
}

// BruteForceIntersections computes every pairwise intersection in st by
// brute force, O(n^2). It exists as a reference oracle for differential
// testing against the sweep engine, grounded on
// github.com/mikenye/geom2d/linesegment.FindIntersectionsSlow, which plays
// the identical role for the teacher library's own sweep implementation.
func BruteForceIntersections(st *Store) []PairIntersection {
	var out []PairIntersection
	n := st.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := SegmentId(i), SegmentId(j)
			res := Intersect(st.Get(a), st.Get(b))
			if res.Kind == None {
				continue
			}
			out = append(out, PairIntersection{A: a, B: b, Result: res})
		}
	}
	return out
}
