package schedulers

import (
	"fcfs-simulator/internal/core"
	"fcfs-simulator/internal/responses"
	"fcfs-simulator/internal/util"
)

// generateResponse aggregates the processed records. Averages are taken over
// every submitted process, so work cut off by the budget pulls them down.
func generateResponse(processCount int, processed []*core.Process, quantumBudget int, chunkSize int, metric core.CpuMetric) responses.ScheduleResponse {
	waitingTimeSum, responseTimeSum, turnAroundTimeSum := util.CalculateTotals(processed)
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(processed, processCount)

	var utilization float64
	if metric.TotalTime > 0 {
		utilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
	}
	var throughput float64
	if quantumBudget > 0 {
		throughput = float64(len(processed)) / float64(quantumBudget)
	}

	details := make([]responses.ProcessResponse, 0, len(processed))
	for _, process := range processed {
		details = append(details, generateProcessDetails(process))
	}

	return responses.ScheduleResponse{
		QuantumBudget:         quantumBudget,
		SubmittedCount:        processCount,
		CompletedCount:        len(processed),
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		TotalWaitingTime:      waitingTimeSum,
		TotalResponseTime:     responseTimeSum,
		TotalTurnAroundTime:   turnAroundTimeSum,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		Details:               details,
		TimeChart:             util.Chunk(processed, chunkSize),
	}
}

func generateProcessDetails(process *core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:       process.ProcessId,
		ArrivalTime:     process.ArrivalTime,
		ExpectedRunTime: process.ExpectedRunTime,
		FinishedTime:    process.FinishedTime,
		ResponseTime:    process.ResponseTime,
		TurnAroundTime:  process.TurnAroundTime,
		WaitingTime:     process.WaitingTime,
		Summary:         process.String(),
	}
}
