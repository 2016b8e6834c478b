package requests

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest is returned when a request can not be simulated.
	ErrInvalidRequest = errors.New("invalid schedule request")
	// ErrMalformedInput is returned when a workload source can not be parsed.
	ErrMalformedInput = errors.New("malformed workload input")
)

type Job struct {
	ProcessId   int `json:"process_id" yaml:"process_id"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	Priority    int `json:"priority" yaml:"priority"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
}

// ScheduleRequests is one simulation input: the process batch plus the
// parameters shared by every algorithm. A nil TimeQuantum or SwitchCost
// means "use the configured default".
type ScheduleRequests struct {
	TimeQuantum *int  `json:"time_quantum,omitempty" yaml:"quantum"`
	SwitchCost  *int  `json:"switch_cost,omitempty" yaml:"switch_cost"`
	Jobs        []Job `json:"jobs" yaml:"jobs"`
}

// WithDefaults fills unset parameters and returns the request for chaining.
func (r *ScheduleRequests) WithDefaults(timeQuantum, switchCost int) *ScheduleRequests {
	if r.TimeQuantum == nil {
		r.TimeQuantum = &timeQuantum
	}
	if r.SwitchCost == nil {
		r.SwitchCost = &switchCost
	}
	return r
}

func (r *ScheduleRequests) Quantum() int {
	if r.TimeQuantum == nil {
		return 0
	}
	return *r.TimeQuantum
}

func (r *ScheduleRequests) Switch() int {
	if r.SwitchCost == nil {
		return 0
	}
	return *r.SwitchCost
}

// Validate checks the job batch and the switch cost. The quantum is only
// checked by ValidateQuantum since priority scheduling ignores it.
func (r *ScheduleRequests) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidRequest)
	}
	if r.Switch() < 0 {
		return fmt.Errorf("%w: switch cost %d is negative", ErrInvalidRequest, r.Switch())
	}
	seen := make(map[int]struct{}, len(r.Jobs))
	for _, job := range r.Jobs {
		if _, ok := seen[job.ProcessId]; ok {
			return fmt.Errorf("%w: duplicate process id %d", ErrInvalidRequest, job.ProcessId)
		}
		seen[job.ProcessId] = struct{}{}
		if job.ArrivalTime < 0 {
			return fmt.Errorf("%w: pid %d has negative arrival time %d", ErrInvalidRequest, job.ProcessId, job.ArrivalTime)
		}
		if job.BurstTime <= 0 {
			return fmt.Errorf("%w: pid %d needs a positive burst time, got %d", ErrInvalidRequest, job.ProcessId, job.BurstTime)
		}
	}
	return nil
}

func (r *ScheduleRequests) ValidateQuantum() error {
	if r.Quantum() <= 0 {
		return fmt.Errorf("%w: time quantum must be positive, got %d", ErrInvalidRequest, r.Quantum())
	}
	return nil
}
