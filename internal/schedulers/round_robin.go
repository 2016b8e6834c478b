package schedulers

import (
	"cpusim/internal/core"
	"cpusim/internal/requests"
	"cpusim/internal/responses"

	log "github.com/sirupsen/logrus"
)

const RoundRobinName = "Round Robin"

// processQueue is the FIFO ready queue of the round robin scheduler.
type processQueue struct {
	queue []*core.Process
}

func (q *processQueue) AddToEnd(p *core.Process) {
	q.queue = append(q.queue, p)
}

func (q *processQueue) RemoveFromTop() (*core.Process, bool) {
	if len(q.queue) == 0 {
		return nil, false
	}
	p := q.queue[0]
	q.queue[0] = nil
	q.queue = q.queue[1:]
	return p, true
}

func ScheduleRoundRobin(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	if err := request.Validate(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	if err := request.ValidateQuantum(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	timeQuantum, switchCost := request.Quantum(), request.Switch()
	log.Infof("running roundRobin algorithm with timeQuantum = %d, switchCost = %d", timeQuantum, switchCost)

	processes := core.NewProcesses(request.Jobs)
	readyQueue := &processQueue{}
	cpu := core.NewCpu(processes, switchCost, readyQueue.AddToEnd)

	for !core.AllFinished(processes) {
		process, ok := readyQueue.RemoveFromTop()
		if !ok {
			cpu.Idle()
			continue
		}

		cpu.Dispatch(process)
		burst := min(timeQuantum, process.RemainingTime)
		log.Debugf("t=%d pid: %d runs for %d ticks", cpu.Now(), process.ID(), burst)
		for i := 0; i < burst; i++ {
			cpu.Execute(process)
		}

		if !process.Finished() {
			readyQueue.AddToEnd(process)
		}
	}

	response := generateResponse(RoundRobinName, processes, cpu)
	response.TimeQuantum = timeQuantum
	response.SwitchCost = switchCost
	log.Debugf("response is: %+v", response)
	return response, nil
}
