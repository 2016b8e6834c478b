package responses

import "cpusim/internal/core"

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	Priority       int `json:"priority"`
	BurstTime      int `json:"burst_time"`
	CompletionTime int `json:"completion_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	SwitchCost            int               `json:"switch_cost"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	SwitchTime            int               `json:"switch_time"`
	ContextSwitches       int               `json:"context_switches"`
	SwitchOverhead        float64           `json:"switch_overhead"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Timeline              []core.Segment    `json:"timeline"`
	Details               []ProcessResponse `json:"details"`
}
