package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	gomidi "gitlab.com/gomidi/midi/v2"

	"go-genseq/config"
	"go-genseq/debug"
	"go-genseq/midi"
	"go-genseq/pitch"
	"go-genseq/sequencer"
	"go-genseq/tui"
)

func main() {
	if os.Getenv("GENSEQ_DEBUG") != "" {
		debug.Enable()
		defer debug.Disable()
	}

	// Load persisted defaults
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	seqCfg, err := cfg.SequencerConfig()
	if err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		os.Exit(1)
	}

	// Connect to the first available MIDI output port
	out, err := midi.OpenFirst()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer gomidi.CloseDriver()

	const playing = true
	seq, err := sequencer.New(seqCfg, playing, out)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer seq.Close()

	scaleIdx := 0
	for i, name := range pitch.ScaleNames {
		if name == cfg.QuantizerScale {
			scaleIdx = i
		}
	}

	// Create and run TUI
	m := tui.NewModel(seq, seqCfg, scaleIdx, playing)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
