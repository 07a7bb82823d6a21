// Package report holds the result records of benchmark sweeps and their
// CSV/summary emission. It has no dependency on sim/ — records are pure data.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Record captures the outcome of one experiment configuration.
type Record struct {
	// Fraction is the target network utilization of the configuration.
	Fraction float64
	// NumNodes is the endpoint count of the configuration.
	NumNodes int
	// Generated is the total number of synthesized request records.
	Generated int
	// Admitted is the total admitted count over the measured range.
	Admitted uint64
	// Utilization is the achieved utilization over the measured range:
	// admitted / (measured timeslots * nodes).
	Utilization float64
	// MicrosPerTimeslot is the measured wall-clock computation cost,
	// in microseconds per admitted timeslot.
	MicrosPerTimeslot float64
}

// csvHeader matches the column order written by WriteCSV.
var csvHeader = []string{
	"target_utilization", "nodes", "generated", "admitted", "utilization", "time_per_timeslot_us",
}

// WriteCSV writes records as CSV with a header row, one row per
// configuration.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			fmt.Sprintf("%g", r.Fraction),
			fmt.Sprintf("%d", r.NumNodes),
			fmt.Sprintf("%d", r.Generated),
			fmt.Sprintf("%d", r.Admitted),
			fmt.Sprintf("%.6f", r.Utilization),
			fmt.Sprintf("%.6f", r.MicrosPerTimeslot),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
