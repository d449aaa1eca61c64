package pitch

import "testing"

func TestScaleTablesNonEmptyAndDistinct(t *testing.T) {
	for _, name := range ScaleNames {
		s, ok := ScaleByName(name)
		if !ok {
			t.Fatalf("scale %q missing", name)
		}
		if len(s) == 0 {
			t.Fatalf("scale %q is empty", name)
		}
		seen := map[Letter]bool{}
		for _, l := range s {
			if seen[l] {
				t.Errorf("scale %q repeats %s", name, l)
			}
			seen[l] = true
		}
	}
}

func TestSortedReturnsAscendingCopy(t *testing.T) {
	s := Scale{G, C, E}
	sorted := s.Sorted()

	want := Scale{C, E, G}
	for i := range want {
		if sorted[i] != want[i] {
			t.Fatalf("Sorted() = %v, want %v", sorted, want)
		}
	}
	if s[0] != G {
		t.Fatal("Sorted() must not mutate the receiver")
	}
}

func TestContains(t *testing.T) {
	if !Major.Contains(E) {
		t.Error("E should be on the major scale")
	}
	if Major.Contains(CSharp) {
		t.Error("C# should not be on the major scale")
	}
}

func TestScaleByNameUnknown(t *testing.T) {
	if _, ok := ScaleByName("Klingon"); ok {
		t.Error("expected lookup miss")
	}
}
