package sequencer

import (
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"

	"go-genseq/debug"
	"go-genseq/midi"
	"go-genseq/pitch"
)

// TicksPerQuarterNote is the standard MIDI clock resolution.
const TicksPerQuarterNote = 24

const (
	noteVelocity uint8 = 0x64
	midiChannel  uint8 = 0

	// How long a note sounds before the deferred note-off.
	noteHold = 5 * time.Millisecond
)

type commandKind int

const (
	cmdStart commandKind = iota
	cmdStop
	cmdSetPitch
	cmdSetTrigger
)

// command is consumed exactly once by the runtime goroutine, in send order.
// Ownership of a replacement graph transfers fully on send.
type command struct {
	kind    commandKind
	pitch   PitchModule
	trigger TriggerModule
}

// Sequencer owns the live generator graphs and the MIDI connection. Graph
// state is touched only by the runtime goroutine, so it carries no locks;
// the command queue is the single cross-goroutine channel.
type Sequencer struct {
	out  midi.Output
	hold time.Duration

	queueMu sync.Mutex
	queue   []command

	// Runtime-goroutine state.
	pitchGen   PitchModule
	triggerGen TriggerModule
	playing    bool

	period    time.Duration
	done      chan struct{}
	closeOnce sync.Once
}

// New builds the initial graphs from the configuration and starts the clock
// at 60000/bpm/24 ms per tick. Tempo changes require a new Sequencer. The
// sequencer takes ownership of out and closes it on Close.
func New(cfg Config, playing bool, out midi.Output) (*Sequencer, error) {
	pitchGen, err := BuildPitchModule(cfg)
	if err != nil {
		return nil, err
	}
	triggerGen, err := BuildTriggerModule(cfg)
	if err != nil {
		return nil, err
	}

	s := &Sequencer{
		out:        out,
		hold:       noteHold,
		pitchGen:   pitchGen,
		triggerGen: triggerGen,
		playing:    playing,
		period:     time.Duration(60_000.0 / cfg.BPM / TicksPerQuarterNote * float64(time.Millisecond)),
		done:       make(chan struct{}),
	}
	go s.run()
	return s, nil
}

// Start begins playback at the next tick. Idempotent.
func (s *Sequencer) Start() {
	debug.Log("seq", "start")
	s.enqueue(command{kind: cmdStart})
}

// Stop halts playback at the next tick. While stopped no generator advances
// and nothing is emitted. Idempotent.
func (s *Sequencer) Stop() {
	debug.Log("seq", "stop")
	s.enqueue(command{kind: cmdStop})
}

// UpdatePitchGenerator builds a replacement pitch graph from the snapshot
// and hands it to the runtime. Invalid snapshots are reported to the caller
// and never reach the runtime. Applied regardless of play state, so a later
// Start always reflects the most recent configuration.
func (s *Sequencer) UpdatePitchGenerator(cfg Config) error {
	pitchGen, err := BuildPitchModule(cfg)
	if err != nil {
		return err
	}
	s.enqueue(command{kind: cmdSetPitch, pitch: pitchGen})
	return nil
}

// UpdateTriggerGenerator is the trigger-graph counterpart of
// UpdatePitchGenerator.
func (s *Sequencer) UpdateTriggerGenerator(cfg Config) error {
	triggerGen, err := BuildTriggerModule(cfg)
	if err != nil {
		return err
	}
	s.enqueue(command{kind: cmdSetTrigger, trigger: triggerGen})
	return nil
}

// enqueue never blocks and never drops: the queue is unbounded and drained
// by the runtime at the start of every tick.
func (s *Sequencer) enqueue(cmd command) {
	s.queueMu.Lock()
	s.queue = append(s.queue, cmd)
	s.queueMu.Unlock()
}

func (s *Sequencer) drain() []command {
	s.queueMu.Lock()
	cmds := s.queue
	s.queue = nil
	s.queueMu.Unlock()
	return cmds
}

func (s *Sequencer) run() {
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick runs once per clock period on the runtime goroutine; ticks never
// overlap.
func (s *Sequencer) tick() {
	for _, cmd := range s.drain() {
		switch cmd.kind {
		case cmdStart:
			s.playing = true
		case cmdStop:
			s.playing = false
		case cmdSetPitch:
			s.pitchGen = cmd.pitch
		case cmdSetTrigger:
			s.triggerGen = cmd.trigger
		}
	}

	if !s.playing {
		return
	}

	p := s.pitchGen.Tick()
	if s.triggerGen.Tick() != TriggerOn {
		return
	}

	note := noteNumber(p)
	debug.Log("play", "note %s (%d)", p, note)
	if err := s.out.Send(gomidi.NoteOn(midiChannel, note, noteVelocity)); err != nil {
		// One dropped note must not halt the clock.
		debug.Log("midi", "note on %d failed: %v", note, err)
		return
	}
	// Deferred note-off keeps the tick cadence free of sleeps.
	time.AfterFunc(s.hold, func() {
		if err := s.out.Send(gomidi.NoteOffVelocity(midiChannel, note, noteVelocity)); err != nil {
			debug.Log("midi", "note off %d failed: %v", note, err)
		}
	})
}

// noteNumber truncates the pitch's step value into the 0..127 MIDI range.
func noteNumber(p pitch.LetterOctave) uint8 {
	step := int(p.Step())
	if step < 0 {
		step = 0
	}
	if step > 127 {
		step = 127
	}
	return uint8(step)
}

// Close tears down the clock goroutine and the MIDI connection. A closed
// sequencer ignores further commands; that is shutdown, not an error.
func (s *Sequencer) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.out.Close()
	})
	return err
}
