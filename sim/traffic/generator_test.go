package traffic

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admission-sim/admission-sim/sim"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{NumNodes: 16, Duration: 1000, Fraction: 0.5, Mean: 10}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"one node", func(c *Config) { c.NumNodes = 1 }},
		{"zero duration", func(c *Config) { c.Duration = 0 }},
		{"duration at wraparound", func(c *Config) { c.Duration = sim.WraparoundPeriod }},
		{"zero fraction", func(c *Config) { c.Fraction = 0 }},
		{"fraction above one", func(c *Config) { c.Fraction = 1.5 }},
		{"negative mean", func(c *Config) { c.Mean = -10 }},
		{"zero mean", func(c *Config) { c.Mean = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestGenerate_RejectsInvalidConfig(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := Generate(Config{NumNodes: 0, Duration: 100, Fraction: 0.5, Mean: 10}, rng)
	assert.Error(t, err)
}

func TestGenerate_CountBoundAndDestinationExclusion(t *testing.T) {
	cfg := Config{NumNodes: 64, Duration: 2000, Fraction: 0.9, Mean: 10}
	rng := rand.New(rand.NewSource(42))

	records, err := Generate(cfg, rng)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(records), 10000, "need a large sample for the exclusion check")
	assert.LessOrEqual(t, len(records), int(cfg.Duration)*cfg.NumNodes)

	for _, r := range records {
		require.NotEqual(t, r.Source, r.Dest, "self-loop generated")
		require.Less(t, int(r.Source), cfg.NumNodes)
		require.Less(t, int(r.Dest), cfg.NumNodes)
		require.Less(t, uint32(r.Timeslot), cfg.Duration)
	}
}

func TestGenerate_SortedByTimeslot(t *testing.T) {
	cfg := Config{NumNodes: 16, Duration: 500, Fraction: 0.5, Mean: 10}
	rng := rand.New(rand.NewSource(7))

	records, err := Generate(cfg, rng)
	require.NoError(t, err)
	require.NotEmpty(t, records)

	for i := 0; i+1 < len(records); i++ {
		require.LessOrEqual(t,
			sim.CompareTimeslots(records[i].Timeslot, records[i+1].Timeslot, 0), 0,
			"records %d and %d out of order", i, i+1)
	}
}

func TestGenerate_BacklogMonotonicPerFlow(t *testing.T) {
	cfg := Config{NumNodes: 8, Duration: 2000, Fraction: 0.8, Mean: 5}
	rng := rand.New(rand.NewSource(11))

	records, err := Generate(cfg, rng)
	require.NoError(t, err)

	// Backlog is non-decreasing per flow in emission order. The sort is by
	// timeslot only and unstable, so equal-timeslot records of a flow may
	// swap; compare only across strictly increasing timeslots.
	type flow struct{ src, dst uint16 }
	type watermark struct {
		ts  uint16
		max uint32
		cur uint32 // max backlog seen at ts
	}
	marks := make(map[flow]*watermark)
	for _, r := range records {
		f := flow{r.Source, r.Dest}
		m, ok := marks[f]
		if !ok {
			marks[f] = &watermark{ts: r.Timeslot, cur: r.Backlog}
			continue
		}
		if r.Timeslot > m.ts {
			if m.cur > m.max {
				m.max = m.cur
			}
			m.ts = r.Timeslot
			m.cur = r.Backlog
		} else if r.Backlog > m.cur {
			m.cur = r.Backlog
		}
		require.GreaterOrEqual(t, r.Backlog, m.max,
			"flow %d->%d backlog decreased across timeslots", f.src, f.dst)
	}
}

func TestGenerate_DeterministicBySeed(t *testing.T) {
	cfg := Config{NumNodes: 16, Duration: 1000, Fraction: 0.5, Mean: 10}

	r1, err := Generate(cfg, rand.New(rand.NewSource(123)))
	require.NoError(t, err)
	r2, err := Generate(cfg, rand.New(rand.NewSource(123)))
	require.NoError(t, err)

	require.Equal(t, len(r1), len(r2))
	// Ties in the unstable sort land identically for identical inputs.
	assert.Equal(t, r1, r2)

	r3, err := Generate(cfg, rand.New(rand.NewSource(124)))
	require.NoError(t, err)
	assert.NotEqual(t, r1, r3, "different seeds should generate different traffic")
}

func TestGenerate_AccumulatorsResetPerSource(t *testing.T) {
	// A flow's first record must carry exactly its first demand increment:
	// backlog never leaks across source passes.
	cfg := Config{NumNodes: 4, Duration: 4000, Fraction: 0.9, Mean: 10}
	rng := rand.New(rand.NewSource(5))

	records, err := Generate(cfg, rng)
	require.NoError(t, err)

	// Reconstruct per-flow totals; a leak would make totals depend on other
	// sources' flows toward the same destination, which monotonic growth
	// from zero rules out.
	type flow struct{ src, dst uint16 }
	first := make(map[flow]uint32)
	for _, r := range records {
		f := flow{r.Source, r.Dest}
		if _, ok := first[f]; !ok {
			first[f] = r.Backlog
		}
	}
	for f, b := range first {
		// A single exponential increment with mean 9 exceeds 200 with
		// probability e^-22; a carried-over accumulator from another source
		// would be hundreds of increments deep.
		assert.Less(t, b, uint32(200), "flow %d->%d first backlog %d suggests accumulator leak", f.src, f.dst, b)
	}
}

func TestGenerate_CapacityOverflowReported(t *testing.T) {
	// A tiny mean floods the buffer: with mean 0.001 each node emits far more
	// than one request per timeslot, so the duration*numNodes bound must trip
	// and be reported, not written past.
	cfg := Config{NumNodes: 2, Duration: 10, Fraction: 1, Mean: 0.001}
	rng := rand.New(rand.NewSource(3))

	_, err := Generate(cfg, rng)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCapacityExceeded), "got %v", err)
}
