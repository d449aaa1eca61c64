package sequencer

import (
	"math/rand"
	"time"
)

// RandomTrigger fires an independent Bernoulli draw per tick. Probability 0
// never fires, probability 1 always fires.
type RandomTrigger struct {
	rng *rand.Rand
	p   float64
}

func NewRandomTrigger(probability float64) *RandomTrigger {
	return &RandomTrigger{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		p:   probability,
	}
}

func (g *RandomTrigger) Tick() Trigger {
	return triggerFromBool(g.rng.Float64() < g.p)
}

// ClockDivider forwards only every factor-th tick to its inner module. The
// inner module advances on 1-indexed calls 1, factor+1, 2*factor+1, ...; all
// intervening calls return Off without touching the inner module's state.
type ClockDivider struct {
	factor  int
	counter int
	input   TriggerModule
}

func NewClockDivider(input TriggerModule, factor int) *ClockDivider {
	return &ClockDivider{factor: factor, input: input}
}

func (d *ClockDivider) Tick() Trigger {
	trigger := TriggerOff
	if d.counter%d.factor == 0 {
		d.counter = 0
		trigger = d.input.Tick()
	}
	d.counter++
	return trigger
}
