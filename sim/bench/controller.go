// Package bench orchestrates benchmark sweeps: for each (target utilization,
// node count) configuration it synthesizes traffic, runs an untimed warm-up
// range to populate steady-state backlog, then runs the measured range under
// wall-clock timing.
package bench

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/admission-sim/admission-sim/sim"
	"github.com/admission-sim/admission-sim/sim/report"
	"github.com/admission-sim/admission-sim/sim/traffic"
)

// Controller drives a matrix of experiment configurations against one Oracle.
// Each configuration re-initializes all mutable state, so configuration order
// has no effect on results.
type Controller struct {
	Oracle sim.Oracle
	Key    sim.SimulationKey

	// Fractions and NodeCounts span the sweep matrix.
	Fractions  []float64
	NodeCounts []int

	// Duration is the generation horizon in timeslots; WarmUp is the untimed
	// prefix of it. Mean is the mean request size and inter-arrival gap.
	Duration uint32
	WarmUp   uint32
	Mean     float64
}

// Validate checks sweep preconditions before any configuration runs.
func (c *Controller) Validate() error {
	if c.Oracle == nil {
		return fmt.Errorf("bench: no oracle configured")
	}
	if len(c.Fractions) == 0 || len(c.NodeCounts) == 0 {
		return fmt.Errorf("bench: empty sweep matrix (%d fractions, %d node counts)",
			len(c.Fractions), len(c.NodeCounts))
	}
	if c.Duration >= sim.WraparoundPeriod {
		return fmt.Errorf("bench: duration %d must stay below %d", c.Duration, sim.WraparoundPeriod)
	}
	if c.WarmUp >= c.Duration {
		return fmt.Errorf("bench: warm-up %d must be shorter than duration %d", c.WarmUp, c.Duration)
	}
	return nil
}

// Run executes the full sweep and returns one record per configuration.
// On error the records completed so far are returned alongside it.
func (c *Controller) Run() ([]report.Record, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	rng := sim.NewPartitionedRNG(c.Key)
	records := make([]report.Record, 0, len(c.Fractions)*len(c.NodeCounts))
	for _, fraction := range c.Fractions {
		for _, numNodes := range c.NodeCounts {
			rec, err := c.runOne(fraction, numNodes, rng.ForSubsystem(sim.TrafficSubsystem(fraction, numNodes)))
			if err != nil {
				return records, fmt.Errorf("bench: fraction %g, %d nodes: %w", fraction, numNodes, err)
			}
			records = append(records, rec)
		}
	}
	return records, nil
}

// runOne executes a single configuration: synthesize, warm up, measure.
func (c *Controller) runOne(fraction float64, numNodes int, rng *rand.Rand) (report.Record, error) {
	requests, err := traffic.Generate(traffic.Config{
		NumNodes: numNodes,
		Duration: c.Duration,
		Fraction: fraction,
		Mean:     c.Mean,
	}, rng)
	if err != nil {
		return report.Record{}, err
	}
	logrus.Debugf("generated %d requests for fraction=%g nodes=%d", len(requests), fraction, numNodes)

	driver := sim.NewDriver(c.Oracle, numNodes)

	// Warm-up range: populates pending backlog, excluded from timing.
	_, cursor := driver.Run(requests, 0, c.WarmUp, 0)

	start := time.Now()
	admitted, _ := driver.Run(requests, c.WarmUp, c.Duration, cursor)
	elapsed := time.Since(start)

	measured := c.Duration - c.WarmUp
	rec := report.Record{
		Fraction:          fraction,
		NumNodes:          numNodes,
		Generated:         len(requests),
		Admitted:          admitted,
		Utilization:       float64(admitted) / (float64(measured) * float64(numNodes)),
		MicrosPerTimeslot: float64(elapsed.Microseconds()) / float64(measured),
	}
	logrus.Infof("fraction=%g nodes=%d admitted=%d utilization=%.3f time/slot=%.3fus",
		fraction, numNodes, admitted, rec.Utilization, rec.MicrosPerTimeslot)
	return rec, nil
}
