package sim

// The admission Oracle is the scheduler under benchmark. The harness owns the
// batching, the double-buffered queue discipline, and the reset of per-batch
// collections, but never looks inside the Oracle's data structures. The
// Oracle is treated as infallible for well-formed inputs; any failure inside
// it is its own to surface.

// ArrivalBin collects the demands that arrived within one scheduling batch.
// The Driver resets it at the start of every batch.
type ArrivalBin interface {
	Reset()
}

// Queue is one of the two double-buffered backlog queues threaded through
// consecutive batches. The Driver resets the output queue before each batch;
// everything else about its structure belongs to the Oracle.
type Queue interface {
	Reset()
}

// State is the Oracle's persistent scheduler status for one experiment
// configuration. Opaque to the harness.
type State interface{}

// AdmittedSlot receives the traffic admitted for a single timeslot of a
// batch. Slots are reused across batches: the Driver resets all BatchSize of
// them before each Oracle call and reads Size immediately after.
type AdmittedSlot interface {
	Reset()
	Size() int
}

// Oracle is the operational contract of an admission-control scheduler.
type Oracle interface {
	// NewState creates persistent scheduler status for numNodes endpoints.
	NewState(numNodes int) State
	// NewQueue creates one backlog queue instance.
	NewQueue() Queue
	// NewArrivalBin creates a collection for newly arrived demands.
	NewArrivalBin() ArrivalBin
	// NewAdmittedSlot creates one per-timeslot admitted-traffic slot.
	NewAdmittedSlot() AdmittedSlot

	// RequestTimeslots records one newly arrived demand. backlog is the
	// cumulative demand from src to dst, not a delta.
	RequestTimeslots(bin ArrivalBin, st State, src, dst uint16, backlog uint32)

	// GetAdmissibleTraffic runs one scheduling batch: it consumes prior-round
	// backlog from in plus the batch's new arrivals from bin, fills admitted
	// (one slot per timeslot in the batch), and builds next-round backlog
	// into out. in and out are distinct queue instances.
	GetAdmissibleTraffic(in, out Queue, bin ArrivalBin, admitted []AdmittedSlot, st State)
}
