package motif

// Distance returns the span in bp covered by a primer1 occurrence starting at
// d1 and a primer2 occurrence starting at d2, whichever comes first.
func Distance(d1, d2, len1, len2 int) int {
	if d1 > d2 {
		return d1 + len1 - d2
	}
	return d2 + len2 - d1
}

// Distances pairs primer1 and primer2 start offsets by occurrence order and
// returns the span of each pair. When the lists differ in length the
// unpaired tail of the longer list is ignored.
func Distances(p1, p2 []int, len1, len2 int) []int {
	n := len(p1)
	if len(p2) < n {
		n = len(p2)
	}
	if n == 0 {
		return nil
	}
	ans := make([]int, n)
	for i := 0; i < n; i++ {
		ans[i] = Distance(p1[i], p2[i], len1, len2)
	}
	return ans
}
