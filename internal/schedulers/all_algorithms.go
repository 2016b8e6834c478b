package schedulers

import (
	"fmt"

	"cpusim/internal/requests"
	"cpusim/internal/responses"
)

// Algorithm runs one scheduling discipline over a request.
type Algorithm func(request *requests.ScheduleRequests) (responses.ScheduleResponse, error)

// Algorithms lists the disciplines in report order.
var Algorithms = []struct {
	Name string
	Run  Algorithm
}{
	{RoundRobinName, ScheduleRoundRobin},
	{PriorityName, SchedulePriority},
}

// ScheduleAllAlgorithms runs every discipline, one after the other, each on
// its own copy of the process state.
func ScheduleAllAlgorithms(request *requests.ScheduleRequests) ([]responses.ScheduleResponse, error) {
	results := make([]responses.ScheduleResponse, 0, len(Algorithms))
	for _, algorithm := range Algorithms {
		response, err := algorithm.Run(request)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algorithm.Name, err)
		}
		results = append(results, response)
	}
	return results, nil
}
