package tui

import "testing"

func TestSnapUpRoundsToNextGridStep(t *testing.T) {
	tests := []struct {
		v, want int
	}{
		{0, 16},
		{1, 16},
		{16, 16},
		{17, 32},
		{48, 48},
		{80, 80},
		{-10, 16},
	}
	for _, tt := range tests {
		if got := snapUp(tt.v, cycleGrid); got != tt.want {
			t.Errorf("snapUp(%d, 16) = %d, want %d", tt.v, got, tt.want)
		}
	}
}
