package sequencer

import (
	"fmt"

	"go-genseq/pitch"
)

// Config is an immutable snapshot of the desired generator graphs and tempo.
// The control surface creates a fresh one on every change; the builders
// consume it exactly once to construct new graphs.
type Config struct {
	MelodyMinPitch    pitch.LetterOctave
	MelodyMaxPitch    pitch.LetterOctave
	MelodyGen         GenType
	MelodyCycleLength int

	TranspositionMinPitch    pitch.LetterOctave
	TranspositionMaxPitch    pitch.LetterOctave
	TranspositionGen         GenType
	TranspositionCycleLength int

	TriggerProbability float64
	ClockDividerFactor int
	QuantizerScale     pitch.Scale
	BPM                float64
}

// Validate rejects malformed snapshots so an invalid graph never reaches the
// runtime.
func (c Config) Validate() error {
	if c.MelodyCycleLength < 1 {
		return fmt.Errorf("melody cycle length must be >= 1, got %d", c.MelodyCycleLength)
	}
	if c.TranspositionCycleLength < 1 {
		return fmt.Errorf("transposition cycle length must be >= 1, got %d", c.TranspositionCycleLength)
	}
	if c.MelodyMinPitch.Step() > c.MelodyMaxPitch.Step() {
		return fmt.Errorf("melody pitch range inverted: %s > %s", c.MelodyMinPitch, c.MelodyMaxPitch)
	}
	if c.TranspositionMinPitch.Step() > c.TranspositionMaxPitch.Step() {
		return fmt.Errorf("transposition pitch range inverted: %s > %s", c.TranspositionMinPitch, c.TranspositionMaxPitch)
	}
	if c.TriggerProbability < 0 || c.TriggerProbability > 1 {
		return fmt.Errorf("trigger probability must be in [0,1], got %v", c.TriggerProbability)
	}
	if c.ClockDividerFactor < 1 {
		return fmt.Errorf("clock divider factor must be >= 1, got %d", c.ClockDividerFactor)
	}
	if len(c.QuantizerScale) == 0 {
		return fmt.Errorf("quantizer scale must not be empty")
	}
	if c.BPM <= 0 {
		return fmt.Errorf("bpm must be positive, got %v", c.BPM)
	}
	if _, err := ParseGenType(string(c.MelodyGen)); err != nil {
		return fmt.Errorf("melody generator: %w", err)
	}
	if _, err := ParseGenType(string(c.TranspositionGen)); err != nil {
		return fmt.Errorf("transposition generator: %w", err)
	}
	return nil
}

// BuildPitchModule constructs the pitch graph
// Quantizer(Adder(melody, transposition), scale) from a snapshot.
func BuildPitchModule(c Config) (PitchModule, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	melody := buildGenerator(c.MelodyGen, c.MelodyCycleLength, c.MelodyMinPitch, c.MelodyMaxPitch)
	transposition := buildGenerator(c.TranspositionGen, c.TranspositionCycleLength, c.TranspositionMinPitch, c.TranspositionMaxPitch)
	return NewQuantizer(NewAdder(melody, transposition), c.QuantizerScale), nil
}

// BuildTriggerModule constructs the trigger graph
// ClockDivider(RandomTrigger(p), factor) from a snapshot.
func BuildTriggerModule(c Config) (TriggerModule, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return NewClockDivider(NewRandomTrigger(c.TriggerProbability), c.ClockDividerFactor), nil
}

func buildGenerator(kind GenType, cycleLength int, min, max pitch.LetterOctave) PitchModule {
	switch kind {
	case GenRandom:
		return NewRandomPitch(min, max)
	case GenSquare:
		return NewSquarePitch(cycleLength, min, max)
	default:
		return NewRampPitch(cycleLength, min, max)
	}
}
