package schedulers

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"fcfs-simulator/config"
	"fcfs-simulator/internal/core"
	"fcfs-simulator/internal/requests"
	"fcfs-simulator/internal/responses"
)

var (
	ErrEmptyProcessList     = errors.New("process list is empty")
	ErrUnsortedArrivals     = errors.New("processes are not ordered by arrival time")
	ErrInvalidQuantumBudget = errors.New("quantum budget must be positive")
)

// RunFirstComeFirstServe dispatches processes in input order until the input
// is exhausted or the next process can no longer finish inside the quantum
// budget. A process is only dispatched when it can finish by the budget; one
// that would run past it is not started, even if the clock is still inside
// the window. The input must already be sorted by arrival time. Records that
// were not reached are left untouched and are not part of the returned slice.
func RunFirstComeFirstServe(processes []*core.Process, quantumBudget int) ([]*core.Process, int, core.CpuMetric, error) {
	if err := validate(processes, quantumBudget); err != nil {
		return nil, 0, core.CpuMetric{}, err
	}

	cpu := core.NewCpu()
	processed := make([]*core.Process, 0, len(processes))
	for _, proccess := range processes {
		if !cpu.Fits(proccess, quantumBudget) {
			slog.Info("quantum budget exhausted",
				"budget", quantumBudget,
				"clock", cpu.Clock(),
				"completed", len(processed),
				"remaining", len(processes)-len(processed))
			break
		}
		cpu.Dispatch(proccess)
		processed = append(processed, proccess)
	}

	return processed, cpu.Clock(), cpu.Metric(), nil
}

func validate(processes []*core.Process, quantumBudget int) error {
	if len(processes) == 0 {
		return ErrEmptyProcessList
	}
	if quantumBudget < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantumBudget, quantumBudget)
	}
	for i, p := range processes {
		if err := p.Validate(); err != nil {
			return err
		}
		if i > 0 && p.ArrivalTime < processes[i-1].ArrivalTime {
			return fmt.Errorf("%w: pid %d arrives at %d after pid %d at %d",
				ErrUnsortedArrivals, p.ProcessId, p.ArrivalTime, processes[i-1].ProcessId, processes[i-1].ArrivalTime)
		}
	}
	return nil
}

// ScheduleFirstComeFirstServe runs a request end to end and builds the report.
// The request budget wins over the configured one when set.
func ScheduleFirstComeFirstServe(request requests.ScheduleRequests, cfg *config.SchedulerConfig) (responses.ScheduleResponse, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	quantumBudget := cfg.QuantumBudget
	if request.QuantumBudget != 0 {
		quantumBudget = request.QuantumBudget
	}
	if quantumBudget <= 0 {
		return responses.ScheduleResponse{}, fmt.Errorf("%w: got %d", ErrInvalidQuantumBudget, quantumBudget)
	}

	processes := processesFromJobs(request.Jobs)
	slog.Debug("running fcfs algorithm", "jobs", len(processes), "budget", quantumBudget)

	processed, finalClock, metric, err := RunFirstComeFirstServe(processes, quantumBudget)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	response := generateResponse(len(processes), processed, quantumBudget, cfg.ChunkSize, metric)
	slog.Debug("fcfs finished", "clock", finalClock, "completed", response.CompletedCount, "submitted", response.SubmittedCount)
	return response, nil
}

// processesFromJobs builds fresh records ordered by arrival time. Jobs that
// arrive together keep their submission order.
func processesFromJobs(jobs []requests.Job) []*core.Process {
	sorted := make([]requests.Job, len(jobs))
	copy(sorted, jobs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ArrivalTime < sorted[j].ArrivalTime
	})

	processes := make([]*core.Process, 0, len(sorted))
	for _, job := range sorted {
		processes = append(processes, core.NewProcess(job.ProcessId, job.ArrivalTime, job.ExpectedRunTime))
	}
	return processes
}
