package sim

// GreedyOracle is a reference admission scheduler so the harness runs end to
// end without an external scheduler. Per timeslot it admits at most one
// transmission per source and one per destination, draining flows in the
// order their backlog was first seen. It makes no fairness or optimality
// claims; only contract conformance matters here.
type GreedyOracle struct{}

var _ Oracle = GreedyOracle{}

// flowKey identifies a (source, destination) pair.
type flowKey struct {
	src, dst uint16
}

// greedyState carries per-flow cumulative-demand watermarks across batches,
// plus per-timeslot scratch space reused every round.
type greedyState struct {
	numNodes   int
	lastDemand map[flowKey]uint32
	srcBusy    []bool
	dstBusy    []bool
}

// backlogEdge is one flow's outstanding demand, in timeslot units.
type backlogEdge struct {
	src, dst uint16
	backlog  uint32
}

// edgeQueue backs both the double-buffered backlog queues and the new-arrival
// bin: an order-preserving list of flow backlogs.
type edgeQueue struct {
	edges []backlogEdge
}

func (q *edgeQueue) Reset() {
	q.edges = q.edges[:0]
}

// AdmittedEdge records one admitted (source, destination) transmission.
type AdmittedEdge struct {
	Src, Dst uint16
}

// admittedTraffic is the per-timeslot admitted result slot.
type admittedTraffic struct {
	edges []AdmittedEdge
}

func (a *admittedTraffic) Reset() {
	a.edges = a.edges[:0]
}

func (a *admittedTraffic) Size() int {
	return len(a.edges)
}

func (GreedyOracle) NewState(numNodes int) State {
	return &greedyState{
		numNodes:   numNodes,
		lastDemand: make(map[flowKey]uint32),
		srcBusy:    make([]bool, numNodes),
		dstBusy:    make([]bool, numNodes),
	}
}

func (GreedyOracle) NewQueue() Queue {
	return &edgeQueue{}
}

func (GreedyOracle) NewArrivalBin() ArrivalBin {
	return &edgeQueue{}
}

func (GreedyOracle) NewAdmittedSlot() AdmittedSlot {
	return &admittedTraffic{}
}

// RequestTimeslots converts a cumulative demand into a backlog delta against
// the flow's last-seen demand and appends it to the bin. Demands at or below
// the watermark are stale duplicates and are dropped.
func (GreedyOracle) RequestTimeslots(bin ArrivalBin, st State, src, dst uint16, backlog uint32) {
	gs := st.(*greedyState)
	q := bin.(*edgeQueue)

	key := flowKey{src: src, dst: dst}
	last := gs.lastDemand[key]
	if backlog <= last {
		return
	}
	gs.lastDemand[key] = backlog
	q.edges = append(q.edges, backlogEdge{src: src, dst: dst, backlog: backlog - last})
}

// GetAdmissibleTraffic schedules one batch: carried-over backlog plus new
// arrivals are coalesced per flow, each of the batch's timeslots is filled
// greedily under the one-per-source, one-per-destination constraint, and
// residual backlog is written to the output queue.
func (GreedyOracle) GetAdmissibleTraffic(in, out Queue, bin ArrivalBin, admitted []AdmittedSlot, st State) {
	gs := st.(*greedyState)
	qin := in.(*edgeQueue)
	qout := out.(*edgeQueue)
	arrivals := bin.(*edgeQueue)

	// Coalesce per flow, preserving the order flows were first seen so
	// earlier backlog keeps scheduling priority.
	pending := make([]backlogEdge, 0, len(qin.edges)+len(arrivals.edges))
	index := make(map[flowKey]int, len(qin.edges)+len(arrivals.edges))
	addEdges := func(edges []backlogEdge) {
		for _, e := range edges {
			key := flowKey{src: e.src, dst: e.dst}
			if i, ok := index[key]; ok {
				pending[i].backlog += e.backlog
				continue
			}
			index[key] = len(pending)
			pending = append(pending, e)
		}
	}
	addEdges(qin.edges)
	addEdges(arrivals.edges)

	for t := range admitted {
		slot := admitted[t].(*admittedTraffic)
		for i := range gs.srcBusy {
			gs.srcBusy[i] = false
			gs.dstBusy[i] = false
		}
		for i := range pending {
			e := &pending[i]
			if e.backlog == 0 || gs.srcBusy[e.src] || gs.dstBusy[e.dst] {
				continue
			}
			gs.srcBusy[e.src] = true
			gs.dstBusy[e.dst] = true
			e.backlog--
			slot.edges = append(slot.edges, AdmittedEdge{Src: e.src, Dst: e.dst})
		}
	}

	for _, e := range pending {
		if e.backlog > 0 {
			qout.edges = append(qout.edges, e)
		}
	}
}
