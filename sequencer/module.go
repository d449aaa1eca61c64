package sequencer

import (
	"fmt"

	"go-genseq/pitch"
)

// Trigger is a binary gate event.
type Trigger uint8

const (
	TriggerOff Trigger = iota
	TriggerOn
)

func triggerFromBool(b bool) Trigger {
	if b {
		return TriggerOn
	}
	return TriggerOff
}

// PitchModule produces one pitch per clock tick. Tick advances internal
// state, so it must be called exactly once per tick even when the result is
// discarded.
type PitchModule interface {
	Tick() pitch.LetterOctave
}

// TriggerModule produces one gate per clock tick.
type TriggerModule interface {
	Tick() Trigger
}

// GenType identifies a pitch generator kind.
type GenType string

const (
	GenRamp   GenType = "Ramp"
	GenSquare GenType = "Square"
	GenRandom GenType = "Random"
)

// GenTypes lists the generator kinds in display order.
var GenTypes = []GenType{GenRamp, GenSquare, GenRandom}

// ParseGenType reads a generator kind from its name.
func ParseGenType(s string) (GenType, error) {
	switch GenType(s) {
	case GenRamp, GenSquare, GenRandom:
		return GenType(s), nil
	}
	return "", fmt.Errorf("unknown generator type %q", s)
}
