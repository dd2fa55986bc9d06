package carousel

// VisibleIndices returns the inclusive index range within radius of current,
// clipped to [0, count-1]. The result is ordered and includes current itself.
func VisibleIndices(current, radius, count int) []int {
	if count <= 0 || radius < 0 {
		return nil
	}
	lo := current - radius
	if lo < 0 {
		lo = 0
	}
	hi := current + radius
	if hi > count-1 {
		hi = count - 1
	}
	if lo > hi {
		return nil
	}

	indices := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		indices = append(indices, i)
	}
	return indices
}

// NeighborIndices returns VisibleIndices minus current: the slots that are
// pre-rendered off-screen on each side.
func NeighborIndices(current, radius, count int) []int {
	visible := VisibleIndices(current, radius, count)
	neighbors := make([]int, 0, len(visible))
	for _, i := range visible {
		if i != current {
			neighbors = append(neighbors, i)
		}
	}
	return neighbors
}
