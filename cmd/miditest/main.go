package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

func main() {
	defer midi.CloseDriver()

	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "note":
		playNote()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("MIDI Test Scripts")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list         - List all MIDI ports")
	fmt.Println("  note [num]   - Send a test note to the first output port (default 60)")
}

func listPorts() {
	fmt.Println("(waiting up to 3 seconds...)")

	type result struct {
		ins  []drivers.In
		outs []drivers.Out
	}
	ch := make(chan result, 1)
	go func() {
		ins := midi.GetInPorts()
		outs := midi.GetOutPorts()
		ch <- result{ins: ins, outs: outs}
	}()

	select {
	case r := <-ch:
		fmt.Println("=== MIDI Input Ports ===")
		for i, p := range r.ins {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
		fmt.Println("\n=== MIDI Output Ports ===")
		for i, p := range r.outs {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
	case <-time.After(3 * time.Second):
		fmt.Println("\nTIMEOUT! CoreMIDI is hung.")
		fmt.Println("Fix: sudo killall coreaudiod midiserver")
	}
}

func playNote() {
	note := uint8(60)
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil || n < 0 || n > 127 {
			fmt.Println("note must be 0-127")
			return
		}
		note = uint8(n)
	}

	outs := midi.GetOutPorts()
	if len(outs) == 0 {
		fmt.Println("No MIDI output ports found")
		return
	}

	port := outs[0]
	fmt.Printf("Sending note %d to %s\n", note, port.String())

	send, err := midi.SendTo(port)
	if err != nil {
		fmt.Printf("Error opening port: %v\n", err)
		return
	}

	if err := send(midi.NoteOn(0, note, 0x64)); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	time.Sleep(200 * time.Millisecond)
	if err := send(midi.NoteOffVelocity(0, note, 0x64)); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println("Done!")
}
