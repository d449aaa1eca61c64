package sequencer

import (
	"fmt"
	"sync"

	"go-genseq/pitch"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// Test doubles shared across the package tests.

type constPitch struct {
	p pitch.LetterOctave
}

func (c *constPitch) Tick() pitch.LetterOctave { return c.p }

type countingPitch struct {
	n int
	p pitch.LetterOctave
}

func (c *countingPitch) Tick() pitch.LetterOctave {
	c.n++
	return c.p
}

type loggingPitch struct {
	name string
	log  *[]string
	p    pitch.LetterOctave
}

func (l *loggingPitch) Tick() pitch.LetterOctave {
	*l.log = append(*l.log, l.name)
	return l.p
}

type constTrigger struct {
	t Trigger
}

func (c *constTrigger) Tick() Trigger { return c.t }

type countingTrigger struct {
	n int
	t Trigger
}

func (c *countingTrigger) Tick() Trigger {
	c.n++
	return c.t
}

// fakeOutput records every wire message it is asked to send.
type fakeOutput struct {
	mu     sync.Mutex
	sent   [][]byte
	fail   bool
	closed bool
}

func (f *fakeOutput) Send(msg gomidi.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return fmt.Errorf("send failed")
	}
	raw := make([]byte, len(msg))
	copy(raw, msg)
	f.sent = append(f.sent, raw)
	return nil
}

func (f *fakeOutput) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeOutput) messages() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, len(f.sent))
	copy(out, f.sent)
	return out
}
