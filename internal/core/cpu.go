package core

import "log/slog"

// CpuMetric is measured in simulated time units.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu owns the simulated clock of a single run. A zero Cpu starts at time 0.
type Cpu struct {
	clock  int
	metric CpuMetric
}

func NewCpu() *Cpu {
	return &Cpu{}
}

func (c *Cpu) Clock() int {
	return c.clock
}

// dispatchTime is when p would get the cpu: now, or its arrival if the cpu
// has to idle until then.
func (c *Cpu) dispatchTime(p *Process) int {
	if p.ArrivalTime > c.clock {
		return p.ArrivalTime
	}
	return c.clock
}

// Fits reports whether p would run to completion inside the budget. The
// comparison is done by subtraction so large arrival or run times cannot wrap.
func (c *Cpu) Fits(p *Process, quantumBudget int) bool {
	start := c.dispatchTime(p)
	return start <= quantumBudget && p.ExpectedRunTime <= quantumBudget-start
}

// Dispatch runs p to completion and fills in its derived timing fields.
func (c *Cpu) Dispatch(p *Process) {
	start := c.dispatchTime(p)
	if idle := start - c.clock; idle > 0 {
		slog.Debug("cpu idle until arrival", "pid", p.ProcessId, "from", c.clock, "to", start)
		c.metric.IdleTime += idle
	}

	p.FinishedTime = start + p.ExpectedRunTime
	p.TurnAroundTime = p.FinishedTime - p.ArrivalTime
	p.WaitingTime = p.TurnAroundTime - p.ExpectedRunTime
	p.ResponseTime = p.WaitingTime
	p.Completed = true

	c.metric.UtilizationTime += p.ExpectedRunTime
	c.clock = p.FinishedTime
	c.metric.TotalTime = c.clock
	slog.Debug("process completed", "pid", p.ProcessId, "dispatched", start, "finished", p.FinishedTime)
}

func (c *Cpu) Metric() CpuMetric {
	return c.metric
}
