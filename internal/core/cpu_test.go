package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpusim/internal/requests"
)

func TestCpu_FirstDispatchIsFree(t *testing.T) {
	// GIVEN a cpu with switch cost 3 and one process at t=0
	processes := NewProcesses([]requests.Job{{ProcessId: 1, BurstTime: 2}})
	var ready []*Process
	cpu := NewCpu(processes, 3, func(p *Process) { ready = append(ready, p) })
	require.Len(t, ready, 1, "arrivals at t=0 are admitted on construction")

	// WHEN the process is dispatched and run to completion
	cpu.Dispatch(processes[0])
	cpu.Execute(processes[0])
	cpu.Execute(processes[0])

	// THEN no switch was paid
	assert.Equal(t, []string{"P1", "P1"}, cpu.Timeline().Labels())
	m := cpu.Metric()
	assert.Equal(t, 0, m.ContextSwitches)
	assert.Equal(t, 2, m.TotalTime)
	assert.Equal(t, 2, m.UtilizationTime)
	assert.Equal(t, 2, processes[0].CompletionTime)
}

func TestCpu_LaterDispatchPaysSwitchAndAdmitsDuringIt(t *testing.T) {
	// GIVEN P1 at t=0 and P2 arriving at t=2, switch cost 2
	processes := NewProcesses([]requests.Job{
		{ProcessId: 1, BurstTime: 1},
		{ProcessId: 2, ArrivalTime: 2, BurstTime: 1},
	})
	admittedAt := map[int]int{}
	var cpu *Cpu
	cpu = NewCpu(processes, 2, func(p *Process) {
		now := 0
		if cpu != nil {
			now = cpu.Now()
		}
		admittedAt[p.ID()] = now
	})

	// WHEN P1 runs and then P2 is dispatched
	cpu.Dispatch(processes[0])
	cpu.Execute(processes[0])
	cpu.Dispatch(processes[1])

	// THEN one switch event of two ticks is recorded, and P2 arrived mid-switch
	assert.Equal(t, []string{"P1", SchedulerLabel, SchedulerLabel}, cpu.Timeline().Labels())
	m := cpu.Metric()
	assert.Equal(t, 1, m.ContextSwitches)
	assert.Equal(t, 2, m.SwitchTime)
	assert.Equal(t, 2, admittedAt[2])
}

func TestCpu_ZeroSwitchCostCountsEventWithoutTicks(t *testing.T) {
	processes := NewProcesses([]requests.Job{{ProcessId: 1, BurstTime: 2}})
	cpu := NewCpu(processes, 0, nil)

	cpu.Dispatch(processes[0])
	cpu.Execute(processes[0])
	cpu.Dispatch(processes[0])
	cpu.Execute(processes[0])

	m := cpu.Metric()
	assert.Equal(t, 1, m.ContextSwitches)
	assert.Equal(t, 0, m.SwitchTime)
	assert.Equal(t, 2, m.TotalTime)
}

func TestCpu_IdleForgetsRunningProcess(t *testing.T) {
	processes := NewProcesses([]requests.Job{{ProcessId: 1, BurstTime: 2}})
	cpu := NewCpu(processes, 1, nil)
	cpu.Dispatch(processes[0])
	cpu.Execute(processes[0])
	require.Same(t, processes[0], cpu.Running())

	cpu.Idle()

	assert.Nil(t, cpu.Running())
	assert.Equal(t, 1, cpu.Metric().IdleTime)
	assert.Equal(t, []string{"P1", IdleLabel}, cpu.Timeline().Labels())
}

func TestCpu_ExecuteWithoutDispatchPanics(t *testing.T) {
	processes := NewProcesses([]requests.Job{{ProcessId: 1, BurstTime: 1}})
	cpu := NewCpu(processes, 1, nil)
	assert.Panics(t, func() { cpu.Execute(processes[0]) })
}
