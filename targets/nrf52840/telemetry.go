//go:build nrf52840

package main

import (
	"machine"

	"nrftimer/core"
	"nrftimer/protocol"
	"nrftimer/timer"
)

var (
	output  protocol.ScratchOutput
	nextSeq uint8 = protocol.SeqDest
	sent    uint32
	failed  uint32
)

// send frames m into the output buffer. flush writes it out.
func send(m protocol.Message) {
	if err := protocol.SendMessage(&output, nextSeq, m); err != nil {
		failed++
		return
	}
	nextSeq = protocol.NextSeq(nextSeq)
	sent++
	if output.CurPosition() > protocol.ScratchMax-protocol.FrameMax {
		flush()
	}
}

func flush() {
	if output.CurPosition() == 0 {
		return
	}
	if _, err := machine.Serial.Write(output.Result()); err != nil {
		failed++
	}
	output.Reset()
}

// sendSnapshot reports one TIMER
func sendSnapshot(index uint8, d timer.Dump) {
	snap := protocol.NewSnapshot(index, core.GetTime(), d)
	send(&snap)
}

// InitDebug forwards core debug output to the host as LogLine frames
func InitDebug() {
	core.SetDebugWriter(func(s string) {
		send(&protocol.LogLine{Text: s})
	})
	core.SetDebugEnabled(Debug)
	core.SetTraceEnabled(TraceRegisters)
	core.InitAsyncDebug()
}
