package pitch

import "testing"

func TestStepToLetterOctave(t *testing.T) {
	tests := []struct {
		step Step
		want LetterOctave
	}{
		{0, LetterOctave{C, 0}},
		{12, LetterOctave{C, 1}},
		{16, LetterOctave{E, 1}},
		{20, LetterOctave{GSharp, 1}},
		{24, LetterOctave{C, 2}},
		{35, LetterOctave{B, 2}},
		{16.2, LetterOctave{E, 1}},
		{23.9, LetterOctave{C, 2}}, // nearest semitone
		{-1, LetterOctave{B, -1}},
	}
	for _, tt := range tests {
		if got := tt.step.LetterOctave(); got != tt.want {
			t.Errorf("Step(%v).LetterOctave() = %s, want %s", tt.step, got, tt.want)
		}
	}
}

func TestLetterOctaveStepRoundTrip(t *testing.T) {
	for oct := -1; oct <= 8; oct++ {
		for l := C; l <= B; l++ {
			lo := LetterOctave{l, oct}
			if got := lo.Step().LetterOctave(); got != lo {
				t.Fatalf("%s round-tripped to %s", lo, got)
			}
		}
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		a, b, want LetterOctave
	}{
		{LetterOctave{C, 1}, LetterOctave{C, 1}, LetterOctave{C, 2}},
		{LetterOctave{E, 3}, LetterOctave{C, 0}, LetterOctave{E, 3}},
		{LetterOctave{A, 2}, LetterOctave{FSharp, 0}, LetterOctave{DSharp, 3}},
	}
	for _, tt := range tests {
		if got := tt.a.Add(tt.b); got != tt.want {
			t.Errorf("%s + %s = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		lo   LetterOctave
		want string
	}{
		{LetterOctave{C, 4}, "C4"},
		{LetterOctave{CSharp, 4}, "C#4"},
		{LetterOctave{ASharp, 0}, "A#0"},
		{LetterOctave{B, -1}, "B-1"},
	}
	for _, tt := range tests {
		if got := tt.lo.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.lo, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want LetterOctave
	}{
		{"C4", LetterOctave{C, 4}},
		{"C#4", LetterOctave{CSharp, 4}},
		{"F#3", LetterOctave{FSharp, 3}},
		{"A#-1", LetterOctave{ASharp, -1}},
		{"G0", LetterOctave{G, 0}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "H2", "C", "C#", "4C", "Cx4"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q): expected error", bad)
		}
	}
}
