package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpusim/internal/core"
	"cpusim/internal/requests"
	"cpusim/internal/responses"
)

func newRequest(quantum, switchCost int, jobs ...requests.Job) *requests.ScheduleRequests {
	return &requests.ScheduleRequests{TimeQuantum: &quantum, SwitchCost: &switchCost, Jobs: jobs}
}

func job(id, arrival, priority, burst int) requests.Job {
	return requests.Job{ProcessId: id, ArrivalTime: arrival, Priority: priority, BurstTime: burst}
}

func seg(start, end int, label string) core.Segment {
	return core.Segment{Start: start, End: end, Label: label}
}

func completionTimes(response responses.ScheduleResponse) map[int]int {
	out := make(map[int]int, len(response.Details))
	for _, d := range response.Details {
		out[d.ProcessId] = d.CompletionTime
	}
	return out
}

// assertRunInvariants checks the properties every finished run must have.
func assertRunInvariants(t *testing.T, request *requests.ScheduleRequests, response responses.ScheduleResponse) {
	t.Helper()
	require.Len(t, response.Details, len(request.Jobs))

	labels := core.Expand(response.Timeline)
	assert.Len(t, labels, response.TotalTime, "timeline must cover every tick")

	idle, switching, executing := 0, 0, 0
	for _, l := range labels {
		switch l {
		case core.IdleLabel:
			idle++
		case core.SchedulerLabel:
			switching++
		default:
			executing++
		}
	}
	assert.Equal(t, response.IdleTime, idle)
	assert.Equal(t, response.SwitchTime, switching)
	assert.Equal(t, response.TotalTime, idle+switching+executing)
	assert.Equal(t, core.Compress(labels), response.Timeline, "timeline must be maximally compressed")

	burstSum := 0
	for i, d := range response.Details {
		j := request.Jobs[i]
		assert.Equal(t, j.ProcessId, d.ProcessId)
		assert.GreaterOrEqual(t, d.CompletionTime, j.ArrivalTime+j.BurstTime, "pid %d", d.ProcessId)
		assert.Equal(t, d.CompletionTime-j.ArrivalTime, d.TurnAroundTime)
		burstSum += j.BurstTime
	}
	assert.Equal(t, burstSum, executing)

	assert.GreaterOrEqual(t, response.SwitchOverhead, 0.0)
	assert.LessOrEqual(t, response.SwitchOverhead, 1.0)
	if request.Switch() == 0 {
		assert.Zero(t, response.SwitchOverhead)
	}
	assert.Equal(t, request.Switch()*response.ContextSwitches, response.SwitchTime)
}
