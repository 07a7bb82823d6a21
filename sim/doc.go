// Package sim provides the core of the admission-scheduler benchmarking
// harness: the request record model, the wraparound-aware timeslot sort, the
// batched simulation driver, and the Oracle contract that the scheduler under
// benchmark implements.
//
// # Reading Guide
//
// Start with these three files to understand the harness kernel:
//   - request.go: the synthesized demand record and its lifecycle
//   - driver.go: batching, double-buffered queue discipline, and tallying
//   - oracle.go: the operational contract of the scheduler under benchmark
//
// # Architecture
//
// The sim package defines the data model and interfaces; the moving parts
// live in sub-packages:
//   - sim/traffic/: Poisson traffic synthesis and exponential variates
//   - sim/bench/: the experiment controller (sweep, warm-up, timing)
//   - sim/report/: result records, CSV emission, and sweep summaries
//
// oracle_greedy.go carries a reference Oracle so the harness runs end to end
// without an external scheduler.
//
// The whole system is single-threaded and synchronous: no goroutines, no
// locking, no cancellation. Determinism comes from PartitionedRNG (rng.go),
// which derives an isolated random stream per subsystem from one master seed.
package sim
