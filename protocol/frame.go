package protocol

// Frame is one checked unit read off the wire
type Frame struct {
	Seq     uint8
	Payload []byte
}

// EncodeFrame writes [len][seq][payload][crc hi][crc lo][sync] to output
// with the payload produced by body. Nothing is written when the result
// would exceed FrameMax.
func EncodeFrame(output OutputBuffer, seq uint8, body func(OutputBuffer)) error {
	var scratch ScratchOutput
	scratch.Output([]byte{0, seq&SeqMask | SeqDest})
	if body != nil {
		body(&scratch)
	}
	n := scratch.CurPosition() + FrameTrailerSize
	if n > FrameMax {
		return ErrFrameTooLong
	}
	scratch.Update(FramePositionLen, uint8(n))
	crc := CRC16(scratch.Result())
	scratch.Output([]byte{uint8(crc >> 8), uint8(crc), FrameSync})
	output.Output(scratch.Result())
	return nil
}

// Decoder splits a byte stream into frames. After a malformed frame it
// discards input up to the next sync byte.
type Decoder struct {
	in      *FifoBuffer
	synced  bool
	seq     uint8
	started bool

	// Dropped counts bytes discarded while resynchronizing
	Dropped int
	// Missed counts frames skipped according to the sequence numbers
	Missed int
}

func NewDecoder() *Decoder {
	return &Decoder{in: NewFifoBuffer(4 * ScratchMax), synced: true}
}

// Write buffers p. When the buffer fills, the count of bytes taken is
// returned with ErrDecoderFull; call Next to drain it and write the rest.
func (d *Decoder) Write(p []byte) (int, error) {
	n := d.in.Write(p)
	if n < len(p) {
		return n, ErrDecoderFull
	}
	return n, nil
}

// Next returns the next complete frame. It reports false when more input
// is needed.
func (d *Decoder) Next() (Frame, bool) {
	data := d.in.Data()
	consumed := 0
	defer func() { d.in.Pop(consumed) }()

	for consumed < len(data) {
		buf := data[consumed:]
		if !d.synced {
			i := 0
			for i < len(buf) && buf[i] != FrameSync {
				i++
			}
			if i == len(buf) {
				d.Dropped += i
				consumed += i
				return Frame{}, false
			}
			d.Dropped += i
			consumed += i + 1
			d.synced = true
			continue
		}
		if buf[0] == FrameSync {
			consumed++
			continue
		}
		if len(buf) < FrameMin {
			return Frame{}, false
		}
		n := int(buf[FramePositionLen])
		seq := buf[FramePositionSeq]
		if n < FrameMin || n > FrameMax || seq&^SeqMask != SeqDest {
			d.synced = false
			continue
		}
		if len(buf) < n {
			return Frame{}, false
		}
		crc := uint16(buf[n-FrameTrailerCRC])<<8 | uint16(buf[n-FrameTrailerCRC+1])
		if buf[n-FrameTrailerSync] != FrameSync || crc != CRC16(buf[:n-FrameTrailerSize]) {
			d.synced = false
			continue
		}
		consumed += n
		if d.started && seq != NextSeq(d.seq) {
			d.Missed += int((seq - NextSeq(d.seq)) & SeqMask)
		}
		d.seq, d.started = seq, true
		payload := append([]byte(nil), buf[FrameHeaderSize:n-FrameTrailerSize]...)
		return Frame{Seq: seq, Payload: payload}, true
	}
	return Frame{}, false
}

// Reset drops buffered input and sequence tracking
func (d *Decoder) Reset() {
	d.in.Reset()
	d.synced = true
	d.started = false
}
