package sequencer

import (
	"testing"

	"go-genseq/pitch"
)

func lo(l pitch.Letter, oct int) pitch.LetterOctave {
	return pitch.LetterOctave{Letter: l, Octave: oct}
}

func collect(g PitchModule, n int) []pitch.LetterOctave {
	out := make([]pitch.LetterOctave, n)
	for i := range out {
		out[i] = g.Tick()
	}
	return out
}

func TestSquareSymmetricalWhenLengthIsEven(t *testing.T) {
	min := lo(pitch.C, 1)
	max := lo(pitch.C, 2)
	g := NewSquarePitch(4, min, max)

	want := []pitch.LetterOctave{min, min, max, max, min, min, max, max}
	got := collect(g, 8)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tick %d: got %s, want %s (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestSquareAsymmetricalWhenLengthIsOdd(t *testing.T) {
	min := lo(pitch.C, 1)
	max := lo(pitch.C, 2)
	g := NewSquarePitch(3, min, max)

	want := []pitch.LetterOctave{min, max, max, min, max, max}
	got := collect(g, 6)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tick %d: got %s, want %s (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestRampSteppedOutputIncludesMinAndMax(t *testing.T) {
	g := NewRampPitch(4, lo(pitch.C, 1), lo(pitch.C, 2))

	want := []pitch.LetterOctave{
		lo(pitch.C, 1),
		lo(pitch.E, 1),
		lo(pitch.GSharp, 1),
		lo(pitch.C, 2),
		lo(pitch.C, 1),
		lo(pitch.E, 1),
		lo(pitch.GSharp, 1),
		lo(pitch.C, 2),
	}
	got := collect(g, 8)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tick %d: got %s, want %s (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestRampEndpoints(t *testing.T) {
	min := lo(pitch.C, 1)
	max := lo(pitch.C, 3)
	for length := 2; length <= 8; length++ {
		g := NewRampPitch(length, min, max)
		seq := collect(g, 2*length)
		if seq[0] != min {
			t.Errorf("length %d: tick 0 = %s, want %s", length, seq[0], min)
		}
		if seq[length-1] != max {
			t.Errorf("length %d: tick %d = %s, want %s", length, length-1, seq[length-1], max)
		}
		if seq[length] != min {
			t.Errorf("length %d: tick %d = %s, want %s", length, length, seq[length], min)
		}
	}
}

func TestRampConstantWhenLengthIsOne(t *testing.T) {
	min := lo(pitch.D, 2)
	g := NewRampPitch(1, min, lo(pitch.D, 4))
	for i, p := range collect(g, 5) {
		if p != min {
			t.Fatalf("tick %d: got %s, want constant %s", i, p, min)
		}
	}
}

func TestRandomPitchStaysWithinRange(t *testing.T) {
	min := lo(pitch.C, 1)
	max := lo(pitch.C, 2)
	g := NewRandomPitch(min, max)
	// Draws come from [min, max); rounding to the nearest semitone can
	// land on max itself but never beyond.
	for i := 0; i < 200; i++ {
		p := g.Tick()
		if p.Step() < min.Step() || p.Step() > max.Step() {
			t.Fatalf("tick %d: %s (step %v) outside [%v, %v]", i, p, p.Step(), min.Step(), max.Step())
		}
	}
}

func TestRandomPitchConstantWhenRangeIsEmpty(t *testing.T) {
	min := lo(pitch.G, 3)
	g := NewRandomPitch(min, min)
	for i := 0; i < 20; i++ {
		if p := g.Tick(); p != min {
			t.Fatalf("tick %d: got %s, want constant %s", i, p, min)
		}
	}
}
