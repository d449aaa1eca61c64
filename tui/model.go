package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-genseq/pitch"
	"go-genseq/sequencer"
)

// Parameter rows in display order.
const (
	paramMelodyGen = iota
	paramMelodyMin
	paramMelodyMax
	paramMelodyCycle
	paramTransGen
	paramTransMin
	paramTransMax
	paramTransCycle
	paramScale
	paramProbability
	paramDivider
	paramCount
)

var paramNames = [paramCount]string{
	"Melody generator",
	"Melody min pitch",
	"Melody max pitch",
	"Melody cycle length",
	"Transposition generator",
	"Transposition min pitch",
	"Transposition max pitch",
	"Transposition cycle length",
	"Quantizer scale",
	"Trigger probability",
	"Clock divider",
}

// Cycle lengths snap to this grid.
const cycleGrid = 16

const maxDividerFactor = 24

// snapUp rounds v up to the next multiple of grid (minimum one grid step).
func snapUp(v, grid int) int {
	if v < 1 {
		v = 1
	}
	return ((v + grid - 1) / grid) * grid
}

type Model struct {
	Seq *sequencer.Sequencer

	cfg      sequencer.Config
	scaleIdx int
	playing  bool
	cursor   int
	errMsg   string
	quitting bool
}

// NewModel creates the control surface around a running sequencer and its
// initial configuration snapshot.
func NewModel(seq *sequencer.Sequencer, cfg sequencer.Config, scaleIdx int, playing bool) Model {
	return Model{
		Seq:      seq,
		cfg:      cfg,
		scaleIdx: scaleIdx,
		playing:  playing,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			m.Seq.Stop()
			return m, tea.Quit

		case " ", "space":
			if m.playing {
				m.playing = false
				m.Seq.Stop()
			} else {
				m.playing = true
				m.Seq.Start()
			}

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < paramCount-1 {
				m.cursor++
			}

		case "left", "h":
			m = m.adjust(-1)

		case "right", "l":
			m = m.adjust(1)

		case "r":
			// Rebuild both graphs from the current snapshot
			m.errMsg = ""
			m.Seq.UpdatePitchGenerator(m.cfg)
			m.Seq.UpdateTriggerGenerator(m.cfg)
		}
	}

	return m, nil
}

// adjust edits the selected parameter and forwards a fresh snapshot to the
// sequencer. Snapshots the builder rejects leave the old one in place.
func (m Model) adjust(delta int) Model {
	cfg := m.cfg
	scaleIdx := m.scaleIdx
	pitchParam := true

	switch m.cursor {
	case paramMelodyGen:
		cfg.MelodyGen = cycleGenType(cfg.MelodyGen, delta)
	case paramMelodyMin:
		cfg.MelodyMinPitch = (cfg.MelodyMinPitch.Step() + pitch.Step(delta)).LetterOctave()
	case paramMelodyMax:
		cfg.MelodyMaxPitch = (cfg.MelodyMaxPitch.Step() + pitch.Step(delta)).LetterOctave()
	case paramMelodyCycle:
		cfg.MelodyCycleLength = snapUp(cfg.MelodyCycleLength+delta*cycleGrid, cycleGrid)
	case paramTransGen:
		cfg.TranspositionGen = cycleGenType(cfg.TranspositionGen, delta)
	case paramTransMin:
		cfg.TranspositionMinPitch = (cfg.TranspositionMinPitch.Step() + pitch.Step(delta)).LetterOctave()
	case paramTransMax:
		cfg.TranspositionMaxPitch = (cfg.TranspositionMaxPitch.Step() + pitch.Step(delta)).LetterOctave()
	case paramTransCycle:
		cfg.TranspositionCycleLength = snapUp(cfg.TranspositionCycleLength+delta*cycleGrid, cycleGrid)
	case paramScale:
		scaleIdx = (scaleIdx + delta + len(pitch.ScaleNames)) % len(pitch.ScaleNames)
		cfg.QuantizerScale, _ = pitch.ScaleByName(pitch.ScaleNames[scaleIdx])
	case paramProbability:
		cfg.TriggerProbability = clampProbability(cfg.TriggerProbability + float64(delta)*0.05)
		pitchParam = false
	case paramDivider:
		cfg.ClockDividerFactor = clampInt(cfg.ClockDividerFactor+delta, 1, maxDividerFactor)
		pitchParam = false
	}

	m.errMsg = ""
	var err error
	if pitchParam {
		err = m.Seq.UpdatePitchGenerator(cfg)
	} else {
		err = m.Seq.UpdateTriggerGenerator(cfg)
	}
	if err != nil {
		m.errMsg = err.Error()
		return m
	}
	m.cfg = cfg
	m.scaleIdx = scaleIdx
	return m
}

func cycleGenType(cur sequencer.GenType, delta int) sequencer.GenType {
	for i, g := range sequencer.GenTypes {
		if g == cur {
			n := len(sequencer.GenTypes)
			return sequencer.GenTypes[(i+delta+n)%n]
		}
	}
	return sequencer.GenTypes[0]
}

func clampProbability(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m Model) value(param int) string {
	switch param {
	case paramMelodyGen:
		return string(m.cfg.MelodyGen)
	case paramMelodyMin:
		return m.cfg.MelodyMinPitch.String()
	case paramMelodyMax:
		return m.cfg.MelodyMaxPitch.String()
	case paramMelodyCycle:
		return fmt.Sprintf("%d", m.cfg.MelodyCycleLength)
	case paramTransGen:
		return string(m.cfg.TranspositionGen)
	case paramTransMin:
		return m.cfg.TranspositionMinPitch.String()
	case paramTransMax:
		return m.cfg.TranspositionMaxPitch.String()
	case paramTransCycle:
		return fmt.Sprintf("%d", m.cfg.TranspositionCycleLength)
	case paramScale:
		return pitch.ScaleNames[m.scaleIdx]
	case paramProbability:
		return fmt.Sprintf("%.0f%%", m.cfg.TriggerProbability*100)
	case paramDivider:
		return fmt.Sprintf("%d", m.cfg.ClockDividerFactor)
	}
	return ""
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	playState := "STOPPED"
	if m.playing {
		playState = "PLAYING"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("go-genseq  %s  %.0f BPM", playState, m.cfg.BPM)))
	b.WriteString("\n\n")

	for i := 0; i < paramCount; i++ {
		row := fmt.Sprintf("  %-28s %s", paramNames[i], m.value(i))
		if i == m.cursor {
			row = selectedStyle.Render("> " + row[2:])
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render("! " + m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("space play/stop · arrows adjust · r rebuild · q quit"))
	b.WriteString("\n")

	return b.String()
}
