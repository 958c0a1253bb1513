package generate

// nextPartition returns the partition of sum(p) following p in ascending
// order, or false if p is the last one ([n]). Parts are nondecreasing and the
// first partition of n is n ones. The step follows Algorithm 3.1 of Kelleher
// and O'Sullivan, "Generating all partitions: a comparison of two encodings".
func nextPartition(p []int) ([]int, bool) {
	if len(p) <= 1 {
		return nil, false
	}
	n := 0
	for _, x := range p {
		n += x
	}
	q := make([]int, n)
	copy(q, p)
	k := len(p) - 1
	y := q[k] - 1
	k--
	x := q[k] + 1
	for x <= y {
		q[k] = x
		y -= x
		k++
	}
	q[k] = x + y
	return q[:k+1], true
}
