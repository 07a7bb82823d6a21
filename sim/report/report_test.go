package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleRecords = []Record{
	{Fraction: 0.5, NumNodes: 64, Generated: 6000, Admitted: 2800, Utilization: 0.475, MicrosPerTimeslot: 1.25},
	{Fraction: 0.9, NumNodes: 16, Generated: 5400, Admitted: 1300, Utilization: 0.85, MicrosPerTimeslot: 0.75},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRecords))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "target_utilization,nodes,generated,admitted,utilization,time_per_timeslot_us", lines[0])
	assert.Equal(t, "0.5,64,6000,2800,0.475000,1.250000", lines[1])
	assert.Equal(t, "0.9,16,5400,1300,0.850000,0.750000", lines[2])
}

func TestWriteCSV_EmptyWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "target_utilization,nodes,generated,admitted,utilization,time_per_timeslot_us\n", buf.String())
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleRecords)
	assert.Equal(t, 2, s.Configurations)
	assert.InDelta(t, 1.0, s.MeanMicrosPerTimeslot, 1e-9)
	assert.InDelta(t, 1.25, s.MaxMicrosPerTimeslot, 1e-9)
	assert.InDelta(t, 0.6625, s.MeanUtilization, 1e-9)
	assert.InDelta(t, 0.475, s.MinUtilization, 1e-9)
	assert.InDelta(t, 0.85, s.MaxUtilization, 1e-9)
	assert.Greater(t, s.StdDevMicrosPerTimeslot, 0.0)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Configurations)
	assert.Zero(t, s.MeanMicrosPerTimeslot)
}

func TestSummarize_SingleRecordHasZeroStdDev(t *testing.T) {
	s := Summarize(sampleRecords[:1])
	assert.Equal(t, 1, s.Configurations)
	assert.Zero(t, s.StdDevMicrosPerTimeslot)
}

func TestSummary_Print(t *testing.T) {
	var buf bytes.Buffer
	Summarize(sampleRecords).Print(&buf)
	out := buf.String()
	assert.Contains(t, out, "Sweep Summary")
	assert.Contains(t, out, "Configurations        : 2")
	assert.Contains(t, out, "Time per timeslot")
}
