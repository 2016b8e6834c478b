package core

import (
	"fmt"

	"cpusim/internal/requests"
)

// Process is the per-run state of one job. The Job itself is never mutated;
// every scheduler run builds its own Process values with NewProcesses.
type Process struct {
	Job            requests.Job
	RemainingTime  int
	CompletionTime int
	// Admitted records that the process has ever entered the ready set during
	// this run, which is not the same as being ready right now.
	Admitted  bool
	completed bool
}

func NewProcess(job requests.Job) *Process {
	return &Process{
		Job:           job,
		RemainingTime: job.BurstTime,
	}
}

// NewProcesses returns fresh process state for jobs, in input order.
func NewProcesses(jobs []requests.Job) []*Process {
	processes := make([]*Process, 0, len(jobs))
	for _, job := range jobs {
		processes = append(processes, NewProcess(job))
	}
	return processes
}

func (p *Process) ID() int { return p.Job.ProcessId }

// Label is the timeline label for ticks executed by p.
func (p *Process) Label() string {
	return fmt.Sprintf("P%d", p.Job.ProcessId)
}

func (p *Process) Finished() bool { return p.RemainingTime == 0 }

func (p *Process) Completed() bool { return p.completed }

// RunTick consumes one tick of CPU time.
func (p *Process) RunTick() {
	if p.RemainingTime <= 0 {
		panic(fmt.Sprintf("RunTick: pid %d has no remaining time", p.ID()))
	}
	p.RemainingTime--
}

// Complete stamps the completion time. It may be called once, after the last
// tick has run.
func (p *Process) Complete(now int) {
	switch {
	case p.completed:
		panic(fmt.Sprintf("Complete: pid %d already completed at %d", p.ID(), p.CompletionTime))
	case p.RemainingTime != 0:
		panic(fmt.Sprintf("Complete: pid %d still needs %d ticks", p.ID(), p.RemainingTime))
	case now < p.Job.ArrivalTime:
		panic(fmt.Sprintf("Complete: pid %d completion %d precedes arrival %d", p.ID(), now, p.Job.ArrivalTime))
	}
	p.CompletionTime = now
	p.completed = true
}

func (p *Process) TurnaroundTime() int {
	return p.CompletionTime - p.Job.ArrivalTime
}

// WaitingTime is the time spent admitted but not executing.
func (p *Process) WaitingTime() int {
	return p.TurnaroundTime() - p.Job.BurstTime
}

// AllFinished reports whether no process needs more CPU time.
func AllFinished(processes []*Process) bool {
	for _, p := range processes {
		if !p.Finished() {
			return false
		}
	}
	return true
}
