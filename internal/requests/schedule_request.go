package requests

type Job struct {
	ProcessId       int `json:"process_id"`
	ArrivalTime     int `json:"arrival_time"`
	ExpectedRunTime int `json:"expected_run_time"`
}

// ScheduleRequests carries the jobs to simulate. QuantumBudget overrides the
// configured budget when non-zero.
type ScheduleRequests struct {
	Jobs          []Job `json:"jobs"`
	QuantumBudget int   `json:"quantum_budget,omitempty"`
}
