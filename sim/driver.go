package sim

const (
	// BatchShift converts a timeslot into its batch index.
	BatchShift = 4
	// BatchSize is the number of timeslots scheduled per batch.
	BatchSize = 1 << BatchShift
	// WraparoundPeriod is the modulus of the 16-bit timeslot clock.
	// Generation durations must stay below it or timeslot ordering becomes
	// ambiguous.
	WraparoundPeriod = 1 << 16
)

// Driver feeds sorted request records into timeslot-aligned scheduling rounds
// and tallies admitted traffic. One Driver serves one experiment
// configuration: its scheduler state, queues, and per-batch collections
// persist across Run calls, which is what lets a warm-up range and a measured
// range execute as two back-to-back invocations sharing state.
type Driver struct {
	oracle   Oracle
	state    State
	queueA   Queue
	queueB   Queue
	arrivals ArrivalBin
	admitted []AdmittedSlot
}

// NewDriver creates a Driver with fresh scheduler state for numNodes
// endpoints.
func NewDriver(oracle Oracle, numNodes int) *Driver {
	d := &Driver{
		oracle:   oracle,
		state:    oracle.NewState(numNodes),
		queueA:   oracle.NewQueue(),
		queueB:   oracle.NewQueue(),
		arrivals: oracle.NewArrivalBin(),
		admitted: make([]AdmittedSlot, BatchSize),
	}
	for i := range d.admitted {
		d.admitted[i] = d.oracle.NewAdmittedSlot()
	}
	return d
}

// Run processes the scheduling batches covering [startTime, endTime),
// consuming records from cursor onward. records must already be sorted by
// SortByTimeslot. It returns the total admitted count across all batches and
// the index of the first unconsumed record, so a subsequent call can resume
// exactly where this one stopped.
func (d *Driver) Run(records []Request, startTime, endTime uint32, cursor int) (uint64, int) {
	var numAdmitted uint64
	for b := startTime >> BatchShift; b < endTime>>BatchShift; b++ {
		// Collect all arrivals belonging to this batch.
		d.arrivals.Reset()
		wrapped := uint16(b % (WraparoundPeriod >> BatchShift))
		for cursor < len(records) && records[cursor].Timeslot>>BatchShift == wrapped {
			r := records[cursor]
			d.oracle.RequestTimeslots(d.arrivals, d.state, r.Source, r.Dest, r.Backlog)
			cursor++
		}

		// Even batches read from A and write to B; odd batches the reverse.
		// The parity of the absolute batch index keeps the roles consistent
		// across resumed calls.
		in, out := d.queueA, d.queueB
		if b%2 == 1 {
			in, out = d.queueB, d.queueA
		}

		for _, slot := range d.admitted {
			slot.Reset()
		}
		// The output queue last held state two batches ago; clear it before
		// the Oracle builds next-round backlog into it.
		out.Reset()

		d.oracle.GetAdmissibleTraffic(in, out, d.arrivals, d.admitted, d.state)

		for _, slot := range d.admitted {
			numAdmitted += uint64(slot.Size())
		}
	}
	return numAdmitted, cursor
}
