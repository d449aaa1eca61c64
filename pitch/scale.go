package pitch

import "sort"

// Scale is a non-empty set of permitted pitch letters used for quantization.
type Scale []Letter

// Process-wide scale tables, read-only after init.
var (
	Chromatic       = Scale{C, CSharp, D, DSharp, E, F, FSharp, G, GSharp, A, ASharp, B}
	Major           = Scale{C, D, E, F, G, A, B}
	Minor           = Scale{C, D, DSharp, F, G, GSharp, ASharp}
	MajorPentatonic = Scale{C, D, E, G, A}
	MinorPentatonic = Scale{C, DSharp, F, G, ASharp}
)

// ScaleNames lists the named scales in display order.
var ScaleNames = []string{"Chromatic", "Major", "Minor", "Major Pentatonic", "Minor Pentatonic"}

var scalesByName = map[string]Scale{
	"Chromatic":        Chromatic,
	"Major":            Major,
	"Minor":            Minor,
	"Major Pentatonic": MajorPentatonic,
	"Minor Pentatonic": MinorPentatonic,
}

// ScaleByName looks up a named scale table.
func ScaleByName(name string) (Scale, bool) {
	s, ok := scalesByName[name]
	return s, ok
}

// Sorted returns a copy of the scale with letters in ascending order.
func (s Scale) Sorted() Scale {
	out := make(Scale, len(s))
	copy(out, s)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Contains reports whether the letter is a member of the scale.
func (s Scale) Contains(l Letter) bool {
	for _, m := range s {
		if m == l {
			return true
		}
	}
	return false
}
