package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// SimulationKey uniquely identifies a reproducible benchmark run.
// Two runs with the same SimulationKey and identical configuration MUST
// produce bit-for-bit identical traffic and admission results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// TrafficSubsystem returns the RNG subsystem name for traffic synthesis under
// one experiment configuration. Each (fraction, nodes) pair gets its own
// stream so that sweep order cannot perturb what a configuration generates.
func TrafficSubsystem(fraction float64, numNodes int) string {
	return fmt.Sprintf("traffic_f%g_n%d", fraction, numNodes)
}

// PartitionedRNG hands out deterministically seeded random sources, one per
// named subsystem, so draws in one subsystem never shift another's sequence.
//
// Each subsystem's seed is the master seed XOR fnv1a64(subsystemName).
//
// Thread-safety: NOT thread-safe. The harness is single-threaded.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same name always returns the same *rand.Rand instance
// (cached). Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(int64(p.key) ^ fnv1a64(name)))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
