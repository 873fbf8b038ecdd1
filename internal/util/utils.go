package util

import "fcfs-simulator/internal/core"

func CalculateTotals(processes []*core.Process) (waitingTimeSum, responseTimeSum, turnAroundTimeSum int) {
	for _, proccess := range processes {
		waitingTimeSum += proccess.WaitingTime
		responseTimeSum += proccess.ResponseTime
		turnAroundTimeSum += proccess.TurnAroundTime
	}
	return
}

// CalculateAverage divides the totals by processCount, which is the number of
// submitted processes rather than the number that ran. A process that never
// ran contributes nothing to the sums but still counts.
func CalculateAverage(processes []*core.Process, processCount int) (averageWaitingTime, averageResponseTime, averageTimeAroundTime float64) {
	if processCount <= 0 {
		return
	}
	waitingTimeSum, responseTimeSum, turnAroundTimeSum := CalculateTotals(processes)

	count := float64(processCount)
	averageWaitingTime = float64(waitingTimeSum) / count
	averageResponseTime = float64(responseTimeSum) / count
	averageTimeAroundTime = float64(turnAroundTimeSum) / count
	return
}

// Chunk groups process ids into rows of at most size entries.
func Chunk(processes []*core.Process, size int) [][]int {
	if size <= 0 {
		size = len(processes)
	}
	chunks := make([][]int, 0, len(processes)/max(size, 1)+1)
	for start := 0; start < len(processes); start += size {
		end := min(start+size, len(processes))
		row := make([]int, 0, end-start)
		for _, p := range processes[start:end] {
			row = append(row, p.ProcessId)
		}
		chunks = append(chunks, row)
	}
	return chunks
}
