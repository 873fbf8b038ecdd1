package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"fcfs-simulator/internal/responses"
)

func TestPrintSchedule(t *testing.T) {
	t.Parallel()

	response := responses.ScheduleResponse{
		QuantumBudget:         100,
		SubmittedCount:        3,
		CompletedCount:        3,
		TotalTime:             9,
		AverageWaitingTime:    7.0 / 3,
		AverageResponseTime:   7.0 / 3,
		AverageTurnAroundTime: 16.0 / 3,
		CpuThroughput:         0.03,
		Details: []responses.ProcessResponse{
			{ProcessId: 1, ArrivalTime: 0, ExpectedRunTime: 5, FinishedTime: 5, TurnAroundTime: 5},
			{ProcessId: 2, ArrivalTime: 2, ExpectedRunTime: 3, FinishedTime: 8, TurnAroundTime: 6, WaitingTime: 3, ResponseTime: 3},
			{ProcessId: 3, ArrivalTime: 4, ExpectedRunTime: 1, FinishedTime: 9, TurnAroundTime: 5, WaitingTime: 4, ResponseTime: 4},
		},
		TimeChart: [][]int{{1, 2}, {3}},
	}
	out := &bytes.Buffer{}

	PrintSchedule(out, "First-come, first-serve", response)

	text := out.String()
	require.Contains(t, text, "First-come, first-serve")
	require.Contains(t, text, "Schedule table")
	require.Contains(t, text, "2.33")
	require.Contains(t, text, "Time chart\n1 2\n3\n")
	require.Contains(t, text, "Completed: 3/3\tClock: 9/100\tIdle: 0")
	require.Contains(t, text, "Throughput: 0.03")
}
