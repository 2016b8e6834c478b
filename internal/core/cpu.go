package core

import (
	log "github.com/sirupsen/logrus"
)

// CpuMetric holds the tick counters of one run. All values are in ticks.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
	SwitchTime      int
	ContextSwitches int
}

// Cpu is the simulated single processor. It owns the clock, the timeline and
// the arrival queue of one run; schedulers decide what it does each tick.
type Cpu struct {
	clock      int
	switchCost int
	timeline   Timeline
	arrivals   *ArrivalQueue
	onAdmit    func(*Process)
	metric     CpuMetric

	// started turns true on the first dispatch; only later dispatches pay
	// the switch cost.
	started bool
	running *Process
}

// NewCpu prepares a run over processes and admits everything that arrives at
// tick 0. onAdmit receives admitted processes in admission order.
func NewCpu(processes []*Process, switchCost int, onAdmit func(*Process)) *Cpu {
	c := &Cpu{
		switchCost: switchCost,
		arrivals:   NewArrivalQueue(processes),
		onAdmit:    onAdmit,
	}
	c.admit()
	return c
}

func (c *Cpu) Now() int { return c.clock }

// Running returns the process that executed on the previous tick, or nil
// after an idle tick or before the first dispatch.
func (c *Cpu) Running() *Process { return c.running }

func (c *Cpu) Timeline() *Timeline { return &c.timeline }

func (c *Cpu) Metric() CpuMetric {
	m := c.metric
	m.TotalTime = c.clock
	return m
}

// Idle records one tick with nothing to run.
func (c *Cpu) Idle() {
	c.running = nil
	c.metric.IdleTime++
	c.tick(IdleLabel)
}

// Dispatch hands the processor to p. Every dispatch but the first of the run
// is one context switch costing switchCost ticks.
func (c *Cpu) Dispatch(p *Process) {
	if c.started {
		log.Debugf("t=%d pid: %d context switch (%d ticks)", c.clock, p.ID(), c.switchCost)
		c.metric.ContextSwitches++
		for i := 0; i < c.switchCost; i++ {
			c.metric.SwitchTime++
			c.tick(SchedulerLabel)
		}
	}
	c.started = true
	c.running = p
}

// Execute runs p for one tick and stamps its completion when it finishes.
func (c *Cpu) Execute(p *Process) {
	if c.running != p {
		panic("Execute: process was not dispatched")
	}
	p.RunTick()
	c.metric.UtilizationTime++
	c.tick(p.Label())
	if p.Finished() {
		p.Complete(c.clock)
		log.Debugf("t=%d pid: %d completed", c.clock, p.ID())
	}
}

func (c *Cpu) tick(label string) {
	c.timeline.Record(label)
	c.clock++
	c.admit()
}

func (c *Cpu) admit() {
	for _, p := range c.arrivals.Admit(c.clock) {
		log.Debugf("t=%d pid: %d admitted", c.clock, p.ID())
		if c.onAdmit != nil {
			c.onAdmit(p)
		}
	}
}
