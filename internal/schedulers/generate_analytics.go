package schedulers

import (
	"cpusim/internal/core"
	"cpusim/internal/responses"
	"cpusim/internal/util"

	log "github.com/sirupsen/logrus"
)

func generateResponse(algorithm string, processes []*core.Process, cpu *core.Cpu) responses.ScheduleResponse {
	metric := cpu.Metric()

	details := make([]responses.ProcessResponse, 0, len(processes))
	for _, process := range processes {
		details = append(details, generateProcessDetails(process))
	}
	averageWaitingTime, averageTurnAroundTime := util.CalculateAverage(details)

	var response = responses.ScheduleResponse{
		Algorithm:             algorithm,
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		SwitchTime:            metric.SwitchTime,
		ContextSwitches:       metric.ContextSwitches,
		SwitchOverhead:        util.Ratio(metric.SwitchTime, metric.TotalTime),
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuUtilization:        util.Ratio(metric.UtilizationTime, metric.TotalTime),
		CpuThroughput:         util.Ratio(len(processes), metric.TotalTime),
		Timeline:              cpu.Timeline().Compress(),
		Details:               details,
	}
	return response
}

func generateProcessDetails(process *core.Process) responses.ProcessResponse {
	log.Debugf("pid: %d completed at %d, turnaround %d", process.ID(), process.CompletionTime, process.TurnaroundTime())
	return responses.ProcessResponse{
		ProcessId:      process.ID(),
		ArrivalTime:    process.Job.ArrivalTime,
		Priority:       process.Job.Priority,
		BurstTime:      process.Job.BurstTime,
		CompletionTime: process.CompletionTime,
		TurnAroundTime: process.TurnaroundTime(),
		WaitingTime:    process.WaitingTime(),
	}
}
