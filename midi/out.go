package midi

import (
	"fmt"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver
)

// Output is the sink contract the sequencer depends on: accept raw wire
// events, release the port on close. The concrete transport stays behind
// this interface.
type Output interface {
	Send(msg gomidi.Message) error
	Close() error
}

type portOutput struct {
	port drivers.Out
	send func(gomidi.Message) error
}

func (o *portOutput) Send(msg gomidi.Message) error { return o.send(msg) }
func (o *portOutput) Close() error                  { return o.port.Close() }
func (o *portOutput) String() string                { return o.port.String() }

// Port enumeration runs with a timeout (CoreMIDI can hang).
const scanTimeout = 3 * time.Second

// OutPorts enumerates the available MIDI output ports.
func OutPorts() ([]drivers.Out, error) {
	ch := make(chan []drivers.Out, 1)
	go func() {
		ch <- gomidi.GetOutPorts()
	}()
	select {
	case ports := <-ch:
		return ports, nil
	case <-time.After(scanTimeout):
		return nil, fmt.Errorf("midi port scan timed out after %v", scanTimeout)
	}
}

// OpenFirst connects to the first enumerated output port. Having no port at
// all is fatal for the caller: there is no retry and no fallback port.
func OpenFirst() (Output, error) {
	ports, err := OutPorts()
	if err != nil {
		return nil, err
	}
	if len(ports) == 0 {
		return nil, fmt.Errorf("no midi output ports available")
	}
	port := ports[0]
	send, err := gomidi.SendTo(port)
	if err != nil {
		return nil, fmt.Errorf("open midi output %q: %w", port.String(), err)
	}
	return &portOutput{port: port, send: send}, nil
}
