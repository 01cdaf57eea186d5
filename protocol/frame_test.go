package protocol

import (
	"bytes"
	"testing"
)

func TestCRC16CheckValue(t *testing.T) {
	if crc := CRC16([]byte("123456789")); crc != 0x6F91 {
		t.Errorf("CRC16 check value: got %04X, want 6F91", crc)
	}
	if crc := CRC16(nil); crc != 0xFFFF {
		t.Errorf("CRC16 of nothing: got %04X, want FFFF", crc)
	}
}

func encode(t *testing.T, seq uint8, payload []byte) []byte {
	t.Helper()
	var out ScratchOutput
	err := EncodeFrame(&out, seq, func(o OutputBuffer) { o.Output(payload) })
	if err != nil {
		t.Fatalf("EncodeFrame: %v", err)
	}
	return append([]byte(nil), out.Result()...)
}

func TestEncodeFrameLayout(t *testing.T) {
	frame := encode(t, 3, []byte{0xAA, 0xBB})

	if len(frame) != 7 {
		t.Fatalf("Expected 7 bytes, got %d", len(frame))
	}
	if frame[FramePositionLen] != 7 {
		t.Errorf("Length byte %d", frame[FramePositionLen])
	}
	if frame[FramePositionSeq] != SeqDest|3 {
		t.Errorf("Sequence byte %#x", frame[FramePositionSeq])
	}
	crc := CRC16(frame[:4])
	if frame[4] != uint8(crc>>8) || frame[5] != uint8(crc) {
		t.Errorf("CRC bytes %02X%02X, want %04X", frame[4], frame[5], crc)
	}
	if frame[6] != FrameSync {
		t.Errorf("Trailer %#x", frame[6])
	}
}

func TestEncodeFrameTooLong(t *testing.T) {
	var out ScratchOutput
	err := EncodeFrame(&out, 0, func(o OutputBuffer) { o.Output(make([]byte, FrameMax)) })
	if err != ErrFrameTooLong {
		t.Errorf("Expected ErrFrameTooLong, got %v", err)
	}
	if out.CurPosition() != 0 {
		t.Errorf("Oversized frame wrote %d bytes", out.CurPosition())
	}

	err = EncodeFrame(&out, 0, func(o OutputBuffer) { o.Output(make([]byte, FrameMax-FrameMin)) })
	if err != nil {
		t.Errorf("Frame of exactly FrameMax bytes: %v", err)
	}
}

func TestDecoderSplitInput(t *testing.T) {
	stream := append(encode(t, 0, []byte{1, 2, 3}), encode(t, 1, []byte{4})...)
	d := NewDecoder()

	for i, b := range stream {
		d.Write([]byte{b})
		f, ok := d.Next()
		switch i {
		case 7:
			if !ok || !bytes.Equal(f.Payload, []byte{1, 2, 3}) {
				t.Fatalf("First frame: %v %v", ok, f)
			}
		case len(stream) - 1:
			if !ok || !bytes.Equal(f.Payload, []byte{4}) || f.Seq != SeqDest|1 {
				t.Fatalf("Second frame: %v %v", ok, f)
			}
		default:
			if ok {
				t.Fatalf("Frame returned early at byte %d", i)
			}
		}
	}
	if d.Dropped != 0 || d.Missed != 0 {
		t.Errorf("Clean stream: dropped %d, missed %d", d.Dropped, d.Missed)
	}
}

func TestDecoderResync(t *testing.T) {
	good := encode(t, 0, []byte{9})
	bad := encode(t, 1, []byte{8})
	bad[2] ^= 0xFF

	d := NewDecoder()
	d.Write([]byte{0x01, 0x02})
	d.Write(bad)
	d.Write(good)

	f, ok := d.Next()
	if !ok || !bytes.Equal(f.Payload, []byte{9}) {
		t.Fatalf("Expected the good frame after garbage, got %v %v", ok, f)
	}
	if _, ok := d.Next(); ok {
		t.Error("Unexpected extra frame")
	}
	if d.Dropped == 0 {
		t.Error("Expected dropped bytes to be counted")
	}
}

func TestDecoderCountsMissed(t *testing.T) {
	d := NewDecoder()
	d.Write(encode(t, 0, []byte{1}))
	d.Write(encode(t, 4, []byte{2}))

	for range 2 {
		if _, ok := d.Next(); !ok {
			t.Fatal("Expected a frame")
		}
	}
	if d.Missed != 3 {
		t.Errorf("Expected 3 missed frames, got %d", d.Missed)
	}
}

func TestDecoderFull(t *testing.T) {
	d := NewDecoder()
	n, err := d.Write(make([]byte, 8*ScratchMax))
	if err != ErrDecoderFull {
		t.Errorf("Expected ErrDecoderFull, got %v", err)
	}
	if n != 4*ScratchMax-1 {
		t.Errorf("Expected %d bytes taken, got %d", 4*ScratchMax-1, n)
	}
}
