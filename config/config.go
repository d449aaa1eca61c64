package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go-genseq/pitch"
	"go-genseq/sequencer"
)

// Config is the persisted startup configuration. Pitches are stored as note
// names ("C3") and the scale by name so the file stays hand-editable.
type Config struct {
	MelodyMinPitch    string `json:"melodyMinPitch"`
	MelodyMaxPitch    string `json:"melodyMaxPitch"`
	MelodyGenerator   string `json:"melodyGenerator"`
	MelodyCycleLength int    `json:"melodyCycleLength"`

	TranspositionMinPitch    string `json:"transpositionMinPitch"`
	TranspositionMaxPitch    string `json:"transpositionMaxPitch"`
	TranspositionGenerator   string `json:"transpositionGenerator"`
	TranspositionCycleLength int    `json:"transpositionCycleLength"`

	TriggerProbability float64 `json:"triggerProbability"`
	ClockDividerFactor int     `json:"clockDividerFactor"`
	QuantizerScale     string  `json:"quantizerScale"`
	BPM                float64 `json:"bpm"`
}

// DefaultConfig returns a config with sensible defaults: a two-octave ramp
// melody transposed by a one-octave square, quantized to C major.
func DefaultConfig() *Config {
	return &Config{
		MelodyMinPitch:           "C3",
		MelodyMaxPitch:           "C5",
		MelodyGenerator:          string(sequencer.GenRamp),
		MelodyCycleLength:        64,
		TranspositionMinPitch:    "C0",
		TranspositionMaxPitch:    "C1",
		TranspositionGenerator:   string(sequencer.GenSquare),
		TranspositionCycleLength: 128,
		TriggerProbability:       1.0,
		ClockDividerFactor:       16,
		QuantizerScale:           "Major",
		BPM:                      120,
	}
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-genseq"), nil
}

// ConfigPath returns the full path to config.json.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SequencerConfig converts the persisted form into a sequencer snapshot,
// resolving note names, generator kinds and the scale table.
func (c *Config) SequencerConfig() (sequencer.Config, error) {
	var out sequencer.Config
	var err error

	if out.MelodyMinPitch, err = pitch.Parse(c.MelodyMinPitch); err != nil {
		return out, fmt.Errorf("melody min pitch: %w", err)
	}
	if out.MelodyMaxPitch, err = pitch.Parse(c.MelodyMaxPitch); err != nil {
		return out, fmt.Errorf("melody max pitch: %w", err)
	}
	if out.MelodyGen, err = sequencer.ParseGenType(c.MelodyGenerator); err != nil {
		return out, err
	}
	out.MelodyCycleLength = c.MelodyCycleLength

	if out.TranspositionMinPitch, err = pitch.Parse(c.TranspositionMinPitch); err != nil {
		return out, fmt.Errorf("transposition min pitch: %w", err)
	}
	if out.TranspositionMaxPitch, err = pitch.Parse(c.TranspositionMaxPitch); err != nil {
		return out, fmt.Errorf("transposition max pitch: %w", err)
	}
	if out.TranspositionGen, err = sequencer.ParseGenType(c.TranspositionGenerator); err != nil {
		return out, err
	}
	out.TranspositionCycleLength = c.TranspositionCycleLength

	out.TriggerProbability = c.TriggerProbability
	out.ClockDividerFactor = c.ClockDividerFactor

	scale, ok := pitch.ScaleByName(c.QuantizerScale)
	if !ok {
		return out, fmt.Errorf("unknown scale %q", c.QuantizerScale)
	}
	out.QuantizerScale = scale
	out.BPM = c.BPM

	if err := out.Validate(); err != nil {
		return out, err
	}
	return out, nil
}
