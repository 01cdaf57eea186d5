package protocol

import (
	"bytes"
	"testing"
)

func TestScratchOutput(t *testing.T) {
	var s ScratchOutput
	s.Output([]byte{1, 2, 3})
	s.Output([]byte{4, 5})
	if s.CurPosition() != 5 {
		t.Fatalf("Expected position 5, got %d", s.CurPosition())
	}

	s.Update(0, 99)
	s.Update(7, 42)
	if got := s.Result(); !bytes.Equal(got, []byte{99, 2, 3, 4, 5}) {
		t.Errorf("Update: got %v", got)
	}
	if got := s.DataSince(2); !bytes.Equal(got, []byte{3, 4, 5}) {
		t.Errorf("DataSince(2): got %v", got)
	}
	if s.DataSince(9) != nil {
		t.Error("DataSince past the end should be nil")
	}

	s.Truncate(1)
	if got := s.Result(); !bytes.Equal(got, []byte{99}) {
		t.Errorf("Truncate(1): got %v", got)
	}
	s.Reset()
	if s.CurPosition() != 0 {
		t.Errorf("Reset left position %d", s.CurPosition())
	}
}

func TestScratchOutputDropsOverflow(t *testing.T) {
	s := NewScratchOutput()
	s.Output(make([]byte, ScratchMax-1))
	s.Output([]byte{1, 2, 3})
	if s.CurPosition() != ScratchMax {
		t.Errorf("Expected position %d, got %d", ScratchMax, s.CurPosition())
	}
}

func TestFifoBuffer(t *testing.T) {
	fifo := NewFifoBuffer(10)
	if !fifo.IsEmpty() || fifo.Available() != 0 {
		t.Fatal("New FIFO should be empty")
	}

	if n := fifo.Write([]byte{1, 2, 3, 4, 5}); n != 5 {
		t.Errorf("Wrote %d of 5 bytes", n)
	}

	out := make([]byte, 3)
	if n := fifo.Read(out); n != 3 || !bytes.Equal(out, []byte{1, 2, 3}) {
		t.Errorf("Read %d bytes: %v", n, out)
	}
	if fifo.Available() != 2 {
		t.Errorf("Expected 2 available, got %d", fifo.Available())
	}

	fifo.Pop(1)
	if got := fifo.Data(); !bytes.Equal(got, []byte{5}) {
		t.Errorf("After Pop(1): %v", got)
	}

	// One slot stays free
	fifo.Reset()
	if n := fifo.Write(make([]byte, 12)); n != 9 {
		t.Errorf("Size 10 FIFO took %d bytes", n)
	}
}

func TestFifoBufferWrapAround(t *testing.T) {
	fifo := NewFifoBuffer(5)
	fifo.Write([]byte{1, 2, 3, 4})
	fifo.Read(make([]byte, 2))

	if n := fifo.Write([]byte{5, 6}); n != 2 {
		t.Errorf("Wrote %d of 2 bytes", n)
	}

	out := make([]byte, 4)
	if n := fifo.Read(out); n != 4 || !bytes.Equal(out, []byte{3, 4, 5, 6}) {
		t.Errorf("Wrapped read %d bytes: %v", n, out)
	}
}

func TestFifoBufferDataWrapped(t *testing.T) {
	fifo := NewFifoBuffer(4)
	fifo.Write([]byte{1, 2, 3})
	fifo.Pop(2)
	fifo.Write([]byte{4, 5})

	if got := fifo.Data(); !bytes.Equal(got, []byte{3, 4, 5}) {
		t.Errorf("Expected [3 4 5], got %v", got)
	}
	if fifo.Free() != 0 {
		t.Errorf("Expected full FIFO, %d free", fifo.Free())
	}
	fifo.Pop(10)
	if !fifo.IsEmpty() {
		t.Error("Pop past the end should empty the FIFO")
	}
}
