package util

import "cpusim/internal/responses"

// CalculateAverage returns the mean waiting and turnaround times. Both are 0
// for an empty batch.
func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageTurnAroundTime float64) {
	if len(proccessDetails) == 0 {
		return 0, 0
	}
	var waitingTimeSum float64
	var turnAroundTimeSum float64

	for _, proccess := range proccessDetails {
		waitingTimeSum += float64(proccess.WaitingTime)
		turnAroundTimeSum += float64(proccess.TurnAroundTime)
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = waitingTimeSum / proccessCount
	averageTurnAroundTime = turnAroundTimeSum / proccessCount
	return
}

// Ratio divides part by whole, returning 0 when whole is 0.
func Ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}
