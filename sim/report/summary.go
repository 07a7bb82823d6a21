package report

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates statistics across a sweep's records.
type Summary struct {
	Configurations int

	MeanMicrosPerTimeslot   float64
	StdDevMicrosPerTimeslot float64
	MaxMicrosPerTimeslot    float64

	MeanUtilization float64
	MinUtilization  float64
	MaxUtilization  float64
}

// Summarize computes aggregate statistics over records.
// Safe for empty input (returns zero-value fields).
func Summarize(records []Record) *Summary {
	s := &Summary{Configurations: len(records)}
	if len(records) == 0 {
		return s
	}

	micros := make([]float64, len(records))
	utils := make([]float64, len(records))
	for i, r := range records {
		micros[i] = r.MicrosPerTimeslot
		utils[i] = r.Utilization
	}

	s.MeanMicrosPerTimeslot = stat.Mean(micros, nil)
	if len(micros) > 1 {
		s.StdDevMicrosPerTimeslot = stat.StdDev(micros, nil)
	}
	s.MaxMicrosPerTimeslot = floats.Max(micros)

	s.MeanUtilization = stat.Mean(utils, nil)
	s.MinUtilization = floats.Min(utils)
	s.MaxUtilization = floats.Max(utils)

	return s
}

// Print writes a human-readable summary block.
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Sweep Summary ===")
	fmt.Fprintf(w, "Configurations        : %d\n", s.Configurations)
	if s.Configurations == 0 {
		return
	}
	fmt.Fprintf(w, "Time per timeslot (us): mean %.3f, stddev %.3f, max %.3f\n",
		s.MeanMicrosPerTimeslot, s.StdDevMicrosPerTimeslot, s.MaxMicrosPerTimeslot)
	fmt.Fprintf(w, "Achieved utilization  : mean %.3f, min %.3f, max %.3f\n",
		s.MeanUtilization, s.MinUtilization, s.MaxUtilization)
}
