package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpusim/internal/requests"
)

func ids(processes []*Process) []int {
	out := make([]int, 0, len(processes))
	for _, p := range processes {
		out = append(out, p.ID())
	}
	return out
}

func TestArrivalQueue_SameTick_AdmitsInIdentifierOrder(t *testing.T) {
	// GIVEN processes listed out of identifier order, all arriving at 0
	processes := NewProcesses([]requests.Job{
		{ProcessId: 3, BurstTime: 1},
		{ProcessId: 1, BurstTime: 1},
		{ProcessId: 2, BurstTime: 1},
	})
	q := NewArrivalQueue(processes)

	// WHEN admission runs at t=0
	admitted := q.Admit(0)

	// THEN they come out by increasing identifier and are flagged
	assert.Equal(t, []int{1, 2, 3}, ids(admitted))
	for _, p := range processes {
		assert.True(t, p.Admitted)
	}
	assert.Equal(t, 0, q.Len())
}

func TestArrivalQueue_AdmitsEachProcessOnce(t *testing.T) {
	// GIVEN processes arriving at 0, 2 and 5
	processes := NewProcesses([]requests.Job{
		{ProcessId: 1, ArrivalTime: 5, BurstTime: 1},
		{ProcessId: 2, ArrivalTime: 0, BurstTime: 1},
		{ProcessId: 3, ArrivalTime: 2, BurstTime: 1},
	})
	q := NewArrivalQueue(processes)

	// WHEN admission runs on every tick
	var order []int
	for now := 0; now <= 7; now++ {
		admitted := q.Admit(now)
		for _, p := range admitted {
			require.LessOrEqual(t, p.Job.ArrivalTime, now, "pid %d admitted before arrival", p.ID())
		}
		order = append(order, ids(admitted)...)
	}

	// THEN every process is admitted exactly once, in arrival order
	assert.Equal(t, []int{2, 3, 1}, order)
}

func TestArrivalQueue_NothingBeforeArrival(t *testing.T) {
	q := NewArrivalQueue(NewProcesses([]requests.Job{{ProcessId: 1, ArrivalTime: 3, BurstTime: 1}}))
	assert.Empty(t, q.Admit(0))
	assert.Empty(t, q.Admit(2))
	assert.Equal(t, []int{1}, ids(q.Admit(3)))
}

func TestArrivalQueue_LateAdmissionCatchesUp(t *testing.T) {
	// GIVEN two processes whose arrivals were both passed before admission ran
	q := NewArrivalQueue(NewProcesses([]requests.Job{
		{ProcessId: 7, ArrivalTime: 2, BurstTime: 1},
		{ProcessId: 4, ArrivalTime: 1, BurstTime: 1},
	}))

	// THEN both are admitted, earliest arrival first
	assert.Equal(t, []int{4, 7}, ids(q.Admit(4)))
}
