package core

import "container/heap"

// arrivalHeap orders pending processes by arrival time, then identifier.
type arrivalHeap []*Process

func (h arrivalHeap) Len() int { return len(h) }

func (h arrivalHeap) Less(i, j int) bool {
	if h[i].Job.ArrivalTime != h[j].Job.ArrivalTime {
		return h[i].Job.ArrivalTime < h[j].Job.ArrivalTime
	}
	return h[i].ID() < h[j].ID()
}

func (h arrivalHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *arrivalHeap) Push(x any) { *h = append(*h, x.(*Process)) }

func (h *arrivalHeap) Pop() any {
	old := *h
	n := len(old)
	p := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return p
}

// ArrivalQueue holds the processes that have not been admitted yet.
type ArrivalQueue struct {
	pending arrivalHeap
}

// NewArrivalQueue queues every process of the run that is not yet admitted.
func NewArrivalQueue(processes []*Process) *ArrivalQueue {
	q := &ArrivalQueue{pending: make(arrivalHeap, 0, len(processes))}
	for _, p := range processes {
		if !p.Admitted {
			q.pending = append(q.pending, p)
		}
	}
	heap.Init(&q.pending)
	return q
}

// Admit marks and returns every pending process whose arrival time is at or
// before now. Processes arriving on the same tick come out in identifier order.
func (q *ArrivalQueue) Admit(now int) []*Process {
	var admitted []*Process
	for q.pending.Len() > 0 && q.pending[0].Job.ArrivalTime <= now {
		p := heap.Pop(&q.pending).(*Process)
		p.Admitted = true
		admitted = append(admitted, p)
	}
	return admitted
}

// Len returns the number of processes still waiting to arrive.
func (q *ArrivalQueue) Len() int {
	return q.pending.Len()
}
