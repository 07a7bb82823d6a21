package sim

// Request is one synthesized unit of demand between two endpoints of the
// simulated fabric. Records are created in bulk by the traffic synthesizer,
// reordered in place by SortByTimeslot, and then read (never mutated) by the
// Driver as it advances its cursor through the sequence.
type Request struct {
	// Source and Dest are endpoint identifiers in [0, numNodes).
	// Dest is never equal to Source.
	Source uint16
	Dest   uint16
	// Backlog is the cumulative outstanding demand from Source to Dest at the
	// time this record was created, in discrete timeslot units. Within one
	// generation run it is non-decreasing per (Source, Dest) pair. Wider than
	// 16 bits so long runs cannot silently wrap.
	Backlog uint32
	// Timeslot is the arrival time on the wrapping 16-bit timeslot clock.
	Timeslot uint16
}
