package pitch

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Letter is one of the 12 pitch classes, ordered from C.
type Letter int

const (
	C Letter = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

var letterNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func (l Letter) String() string {
	if l < 0 || int(l) >= len(letterNames) {
		return fmt.Sprintf("Letter(%d)", int(l))
	}
	return letterNames[l]
}

// Step is a continuous pitch value where 1.0 is one semitone and integer
// steps land on semitones. Step 12 is C1, step 24 is C2, and so on.
type Step float64

// LetterOctave converts the step to a discrete pitch: letter = step mod 12,
// octave = step div 12. Fractional steps round to the nearest semitone so
// that accumulated float error never shifts an exact endpoint off its note.
func (s Step) LetterOctave() LetterOctave {
	n := int(math.Floor(float64(s) + 0.5))
	oct := n / 12
	if n < 0 && n%12 != 0 {
		oct--
	}
	return LetterOctave{Letter(n - oct*12), oct}
}

// LetterOctave is a discrete pitch: a letter class plus an octave.
type LetterOctave struct {
	Letter Letter
	Octave int
}

// Step returns the pitch in linear step space.
func (lo LetterOctave) Step() Step {
	return Step(lo.Octave*12 + int(lo.Letter))
}

// Add sums two pitches in step space. Adding a transposition of C1 (step 12)
// shifts a pitch up one octave.
func (lo LetterOctave) Add(other LetterOctave) LetterOctave {
	return (lo.Step() + other.Step()).LetterOctave()
}

func (lo LetterOctave) String() string {
	return fmt.Sprintf("%s%d", lo.Letter, lo.Octave)
}

// Parse reads a pitch in note-name form, e.g. "C4", "F#3" or "A#-1".
func Parse(s string) (LetterOctave, error) {
	for l := len(letterNames) - 1; l >= 0; l-- {
		if strings.HasPrefix(s, letterNames[l]) {
			oct, err := strconv.Atoi(s[len(letterNames[l]):])
			if err != nil {
				return LetterOctave{}, fmt.Errorf("invalid pitch %q: bad octave", s)
			}
			return LetterOctave{Letter(l), oct}, nil
		}
	}
	return LetterOctave{}, fmt.Errorf("invalid pitch %q", s)
}
