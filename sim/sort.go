package sim

// CompareTimeslots orders two 16-bit timeslots, honoring wraparound.
// minTime marks the timeslot considered logically earliest: slots at or above
// minTime precede slots below it (those have wrapped past zero). Returns a
// negative value if t1 sorts before t2, zero if equal, positive otherwise.
func CompareTimeslots(t1, t2, minTime uint16) int {
	if t1 == t2 {
		return 0
	}
	if (t1 >= minTime) == (t2 >= minTime) {
		// Both on the same side of the wrap boundary.
		return int(t1) - int(t2)
	}
	// Exactly one has wrapped; the one at or above minTime is earlier.
	if t1 > t2 {
		return -1
	}
	return 1
}

// SortByTimeslot reorders records in place into non-decreasing timeslot order
// under CompareTimeslots with the given minTime. Ties are left in arbitrary
// order (the sort is not stable). Inputs of length < 2 are a no-op.
//
// The worst case is quadratic, as for any single-pivot partition-exchange
// sort, which is acceptable here: inputs come from a randomized generator,
// never an adversary.
func SortByTimeslot(records []Request, minTime uint16) {
	if len(records) < 2 {
		return
	}
	quicksortRequests(records, minTime)
}

// quicksortRequests partitions around the first element and recurses on
// partitions of size >= 2. len(records) must be >= 2.
func quicksortRequests(records []Request, minTime uint16) {
	pivot := records[0].Timeslot

	low := 1
	high := len(records) - 1
	for low < high {
		for CompareTimeslots(records[low].Timeslot, pivot, minTime) <= 0 && low < high {
			low++
		}
		for CompareTimeslots(records[high].Timeslot, pivot, minTime) >= 0 && low < high {
			high--
		}
		records[low], records[high] = records[high], records[low]
	}

	// Swap the pivot into its final position.
	loc := high
	if low == high && CompareTimeslots(records[low].Timeslot, pivot, minTime) > 0 {
		loc = high - 1
	}
	records[0], records[loc] = records[loc], records[0]

	if loc >= 2 {
		quicksortRequests(records[:loc], minTime)
	}
	if len(records)-loc-1 >= 2 {
		quicksortRequests(records[loc+1:], minTime)
	}
}
