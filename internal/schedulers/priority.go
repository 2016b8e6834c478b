package schedulers

import (
	"cpusim/internal/core"
	"cpusim/internal/requests"
	"cpusim/internal/responses"

	log "github.com/sirupsen/logrus"
)

const PriorityName = "Priority"

// SchedulePriority runs preemptive priority scheduling. The best process is
// elected again on every tick, so a more urgent arrival preempts within one
// tick.
func SchedulePriority(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	if err := request.Validate(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	switchCost := request.Switch()
	log.Infof("running priority algorithm with switchCost = %d", switchCost)

	processes := core.NewProcesses(request.Jobs)
	var admitted []*core.Process
	cpu := core.NewCpu(processes, switchCost, func(p *core.Process) {
		admitted = append(admitted, p)
	})

	for !core.AllFinished(processes) {
		process := highestPriority(admitted)
		if process == nil {
			cpu.Idle()
			continue
		}
		if process != cpu.Running() {
			log.Debugf("t=%d pid: %d selected (priority %d)", cpu.Now(), process.ID(), process.Job.Priority)
			cpu.Dispatch(process)
		}
		cpu.Execute(process)
	}

	response := generateResponse(PriorityName, processes, cpu)
	response.SwitchCost = switchCost
	log.Debugf("response is: %+v", response)
	return response, nil
}

// highestPriority picks the unfinished process with the smallest priority
// value, breaking ties by smallest identifier.
func highestPriority(processes []*core.Process) *core.Process {
	var best *core.Process
	for _, p := range processes {
		if p.Finished() {
			continue
		}
		if best == nil ||
			p.Job.Priority < best.Job.Priority ||
			(p.Job.Priority == best.Job.Priority && p.ID() < best.ID()) {
			best = p
		}
	}
	return best
}
