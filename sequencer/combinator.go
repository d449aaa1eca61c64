package sequencer

import "go-genseq/pitch"

// Adder sums two pitch modules, typically a melody and a transposition
// signal. It ticks the right operand before the left; both operands carry
// internal counters, so the order is observable and must not change.
type Adder struct {
	left, right PitchModule
}

func NewAdder(left, right PitchModule) *Adder {
	return &Adder{left: left, right: right}
}

func (a *Adder) Tick() pitch.LetterOctave {
	r := a.right.Tick()
	l := a.left.Tick()
	return l.Add(r)
}

// Quantizer snaps the wrapped module's output onto a scale. Letters already
// on the scale pass through unchanged; letters between scale entries snap up
// to the next entry at the same octave; letters above the highest entry wrap
// to the lowest entry one octave higher. Output is always a scale member.
type Quantizer struct {
	input PitchModule
	scale pitch.Scale // ascending
}

func NewQuantizer(input PitchModule, scale pitch.Scale) *Quantizer {
	return &Quantizer{input: input, scale: scale.Sorted()}
}

func (q *Quantizer) Tick() pitch.LetterOctave {
	unquantized := q.input.Tick()
	for _, l := range q.scale {
		if l == unquantized.Letter {
			return unquantized
		}
		if l > unquantized.Letter {
			return pitch.LetterOctave{Letter: l, Octave: unquantized.Octave}
		}
	}
	return pitch.LetterOctave{Letter: q.scale[0], Octave: unquantized.Octave + 1}
}
