// Package traffic synthesizes randomized demand between fabric endpoints:
// per-source Poisson request streams with exponentially distributed
// inter-arrival times and request sizes.
package traffic

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/admission-sim/admission-sim/sim"
)

// ErrCapacityExceeded reports that a generation run produced more records
// than the duration*numNodes buffer bound. The bound assumes at most one
// request per node per timeslot, which is probabilistic, not hard; exceeding
// it is reported as an error rather than written out of bounds.
var ErrCapacityExceeded = errors.New("traffic: generated requests exceed buffer capacity")

// Config parameterizes one generation run.
type Config struct {
	// NumNodes is the endpoint count; at least 2, since no node sends to
	// itself.
	NumNodes int
	// Duration is the generation horizon in timeslots. Must stay below
	// sim.WraparoundPeriod or timeslot ordering becomes ambiguous.
	Duration uint32
	// Fraction is the target network utilization in (0, 1].
	Fraction float64
	// Mean is both the mean request size and the mean inter-arrival gap,
	// in timeslots.
	Mean float64
}

// Validate checks generation preconditions.
func (c Config) Validate() error {
	if c.NumNodes < 2 {
		return fmt.Errorf("traffic: need at least 2 nodes, got %d", c.NumNodes)
	}
	if c.Duration == 0 || c.Duration >= sim.WraparoundPeriod {
		return fmt.Errorf("traffic: duration must be in [1, %d), got %d", sim.WraparoundPeriod, c.Duration)
	}
	if c.Fraction <= 0 || c.Fraction > 1 {
		return fmt.Errorf("traffic: fraction must be in (0, 1], got %g", c.Fraction)
	}
	if c.Mean <= 0 {
		return fmt.Errorf("traffic: mean must be > 0, got %g", c.Mean)
	}
	return nil
}

// Generate synthesizes one request stream per source node: arrivals follow a
// Poisson process with the configured mean gap, destinations are uniform over
// the other nodes, and each request carries the flow's cumulative backlog,
// grown by an exponentially sized demand scaled to the target utilization.
// The initial arrival offset uses mean/fraction, which stretches or
// compresses the first gap to hit the target utilization.
//
// The returned records are sorted by timeslot (minTime 0). Deterministic
// given the same config and rng state.
func Generate(cfg Config, rng *rand.Rand) ([]sim.Request, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Request sizes and inter-arrival gaps share the same mean.
	gap, err := NewExponentialSampler(cfg.Mean)
	if err != nil {
		return nil, err
	}
	demand := gap
	initialGap, err := NewExponentialSampler(cfg.Mean / cfg.Fraction)
	if err != nil {
		return nil, err
	}

	// Sized for at most one request per node per timeslot.
	capacity := int(cfg.Duration) * cfg.NumNodes
	records := make([]sim.Request, 0, capacity)

	for src := 0; src < cfg.NumNodes; src++ {
		// Per-destination cumulative backlog, scoped to this source's pass.
		cumulative := make([]uint32, cfg.NumNodes)

		current := initialGap.Sample(rng)
		for current < float64(cfg.Duration) {
			// Uniform destination excluding self: draw from the other
			// numNodes-1 indices and shift those at or above src up by one.
			dst := rng.Intn(cfg.NumNodes - 1)
			if dst >= src {
				dst++
			}
			cumulative[dst] += uint32(math.Round(demand.Sample(rng) * cfg.Fraction))

			if len(records) == capacity {
				return nil, fmt.Errorf("%w: capacity %d reached at source %d", ErrCapacityExceeded, capacity, src)
			}
			records = append(records, sim.Request{
				Source:   uint16(src),
				Dest:     uint16(dst),
				Backlog:  cumulative[dst],
				Timeslot: uint16(current),
			})

			current += gap.Sample(rng)
		}
	}

	sim.SortByTimeslot(records, 0)
	return records, nil
}
