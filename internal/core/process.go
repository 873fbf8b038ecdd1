package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArrivalTime = errors.New("arrival time must not be negative")
	ErrInvalidRunTime     = errors.New("expected run time must be positive")
)

// Process is a single process record. ArrivalTime and ExpectedRunTime are
// fixed at creation, the remaining fields are written once by the cpu when
// the process is dispatched.
type Process struct {
	ProcessId       int
	ArrivalTime     int
	ExpectedRunTime int

	FinishedTime   int
	TurnAroundTime int
	WaitingTime    int
	ResponseTime   int
	Completed      bool
}

func NewProcess(processId, arrivalTime, expectedRunTime int) *Process {
	return &Process{
		ProcessId:       processId,
		ArrivalTime:     arrivalTime,
		ExpectedRunTime: expectedRunTime,
	}
}

func (p *Process) Validate() error {
	if p.ArrivalTime < 0 {
		return fmt.Errorf("%w: pid %d has arrival time %d", ErrInvalidArrivalTime, p.ProcessId, p.ArrivalTime)
	}
	if p.ExpectedRunTime <= 0 {
		return fmt.Errorf("%w: pid %d has run time %d", ErrInvalidRunTime, p.ProcessId, p.ExpectedRunTime)
	}
	return nil
}

// String returns the one-line summary shown in the report listing.
func (p *Process) String() string {
	return fmt.Sprintf("pid: %d arrival: %d run: %d finished: %d turnaround: %d waiting: %d response: %d",
		p.ProcessId, p.ArrivalTime, p.ExpectedRunTime, p.FinishedTime, p.TurnAroundTime, p.WaitingTime, p.ResponseTime)
}
