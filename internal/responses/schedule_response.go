package responses

type ProcessResponse struct {
	ProcessId       int    `json:"process_id"`
	ArrivalTime     int    `json:"arrival_time"`
	ExpectedRunTime int    `json:"expected_run_time"`
	FinishedTime    int    `json:"finished_time"`
	ResponseTime    int    `json:"response_time"`
	TurnAroundTime  int    `json:"turn_around_time"`
	WaitingTime     int    `json:"waiting_time"`
	Summary         string `json:"summary"`
}
type ScheduleResponse struct {
	QuantumBudget         int               `json:"quantum_budget"`
	SubmittedCount        int               `json:"submitted_count"`
	CompletedCount        int               `json:"completed_count"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	TotalWaitingTime      int               `json:"total_waiting_time"`
	TotalResponseTime     int               `json:"total_response_time"`
	TotalTurnAroundTime   int               `json:"total_turn_around_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	TimeChart             [][]int           `json:"time_chart"`
}
