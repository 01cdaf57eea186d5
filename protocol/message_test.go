package protocol

import (
	"errors"
	"strings"
	"testing"

	"nrftimer/sim"
	"nrftimer/timer"
)

func TestSnapshotFromTimer(t *testing.T) {
	hw := sim.NewExtended()
	tm := timer.EnableInterrupt5(timer.NewExtended(hw).IntoCounter())
	timer.CompareAgainst5(tm, 0xFFFFFFFF)
	timer.CompareAgainst0(tm, 7)
	run := timer.Start(tm)

	snap := NewSnapshot(3, 123456, run.Dump())

	var out ScratchOutput
	if err := SendMessage(&out, 2, &snap); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	d := NewDecoder()
	d.Write(out.Result())
	f, ok := d.Next()
	if !ok {
		t.Fatal("No frame decoded")
	}
	msg, err := Decode(f.Payload)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got, ok := msg.(*Snapshot)
	if !ok {
		t.Fatalf("Expected *Snapshot, got %T", msg)
	}
	if *got != snap {
		t.Errorf("Snapshot mismatch:\n got  %+v\n want %+v", *got, snap)
	}
	if got.Mode != timer.ModeCounter || !got.Running || got.Width != 32 || got.Channels != 6 {
		t.Errorf("Unexpected snapshot fields: %+v", *got)
	}
	if got.Interrupts != 1<<5 || got.Compare[5] != 0xFFFFFFFF || got.Compare[0] != 7 {
		t.Errorf("Channel fields lost: %+v", *got)
	}
	if got.Frequency() != 0 {
		t.Errorf("Counter reported frequency %d", got.Frequency())
	}
}

func TestSnapshotFrequency(t *testing.T) {
	s := Snapshot{Mode: timer.ModeTimer, Prescaler: 4}
	if f := s.Frequency(); f != 1000000 {
		t.Errorf("Expected 1 MHz, got %d", f)
	}
}

func TestLogLineTruncated(t *testing.T) {
	line := &LogLine{Text: strings.Repeat("x", 200)}

	var out ScratchOutput
	if err := SendMessage(&out, 0, line); err != nil {
		t.Fatalf("Long log line was not truncated: %v", err)
	}
	if n := out.CurPosition(); n != FrameMax {
		t.Errorf("Expected a full frame, got %d bytes", n)
	}

	msg, err := Decode(out.Result()[FrameHeaderSize : FrameMax-FrameTrailerSize])
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := msg.(*LogLine).Text; got != strings.Repeat("x", 57) {
		t.Errorf("Unexpected text of length %d", len(got))
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode([]byte{0x09}); !errors.Is(err, ErrUnknownMessage) {
		t.Errorf("Expected ErrUnknownMessage, got %v", err)
	}
	if _, err := Decode([]byte{MsgSnapshot, 0, 0}); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("Expected ErrBufferTooSmall for a short snapshot, got %v", err)
	}
	if _, err := Decode([]byte{MsgSnapshot, 0, 0, 0, 0, 0, 0, 0, 0, 7}); err == nil {
		t.Error("Expected an error for 7 channels")
	}
	if _, err := Decode(nil); err == nil {
		t.Error("Expected an error for an empty payload")
	}
}
