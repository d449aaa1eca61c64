package sequencer

import (
	"math/rand"
	"time"

	"go-genseq/pitch"
)

// RandomPitch draws uniformly from [min, max) in step space. When min == max
// it always returns min, avoiding a degenerate empty range.
type RandomPitch struct {
	rng      *rand.Rand
	min, max pitch.Step
}

func NewRandomPitch(min, max pitch.LetterOctave) *RandomPitch {
	return &RandomPitch{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		min: min.Step(),
		max: max.Step(),
	}
}

func (g *RandomPitch) Tick() pitch.LetterOctave {
	if g.min == g.max {
		return g.min.LetterOctave()
	}
	s := g.min + pitch.Step(g.rng.Float64())*(g.max-g.min)
	return s.LetterOctave()
}

// RampPitch rises linearly from min to max over cycleLength ticks, inclusive
// of both endpoints, then wraps back to min.
type RampPitch struct {
	cycleLength int
	min, max    pitch.Step
	counter     int
}

func NewRampPitch(cycleLength int, min, max pitch.LetterOctave) *RampPitch {
	return &RampPitch{
		cycleLength: cycleLength,
		min:         min.Step(),
		max:         max.Step(),
	}
}

func (g *RampPitch) Tick() pitch.LetterOctave {
	var slope pitch.Step
	if g.cycleLength > 1 {
		slope = (g.max - g.min) / pitch.Step(g.cycleLength-1)
	}
	p := (g.min + slope*pitch.Step(g.counter)).LetterOctave()
	if g.counter == g.cycleLength-1 {
		g.counter = 0
	} else {
		g.counter++
	}
	return p
}

// SquarePitch alternates between min and max. The counter increments before
// evaluation: min while the 1-indexed counter is <= cycleLength/2, max
// otherwise, resetting exactly when the counter reaches cycleLength. Odd
// lengths spend the extra tick on max (length 3: min, max, max).
type SquarePitch struct {
	cycleLength int
	min, max    pitch.Step
	counter     int
}

func NewSquarePitch(cycleLength int, min, max pitch.LetterOctave) *SquarePitch {
	return &SquarePitch{
		cycleLength: cycleLength,
		min:         min.Step(),
		max:         max.Step(),
	}
}

func (g *SquarePitch) Tick() pitch.LetterOctave {
	g.counter++
	if g.counter <= g.cycleLength/2 {
		return g.min.LetterOctave()
	}
	if g.counter == g.cycleLength {
		g.counter = 0
	}
	return g.max.LetterOctave()
}
