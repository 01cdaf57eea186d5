package protocol

import (
	"fmt"

	"nrftimer/regs"
	"nrftimer/timer"
)

// Message ids
const (
	MsgSnapshot uint8 = 1
	MsgLogLine  uint8 = 2
)

// Message is a payload carried in one frame
type Message interface {
	ID() uint8
	Encode(output OutputBuffer)
}

// Snapshot reports the state of one TIMER instance
type Snapshot struct {
	Timer      uint8  // instance index, TIMER0 is 0
	Time       uint32 // system clock ticks when the snapshot was taken
	Mode       timer.ModeKind
	Prescaler  uint8
	Width      uint8
	Running    bool
	Interrupts uint8
	Pending    uint8
	Channels   uint8
	Compare    [regs.MaxChannels]uint32
}

// NewSnapshot builds a Snapshot from a timer dump
func NewSnapshot(index uint8, now uint32, d timer.Dump) Snapshot {
	return Snapshot{
		Timer:      index,
		Time:       now,
		Mode:       d.State.Mode,
		Prescaler:  d.State.Prescaler,
		Width:      d.State.Width,
		Running:    d.State.Running,
		Interrupts: d.State.Interrupts,
		Pending:    d.Pending,
		Channels:   uint8(d.State.Channels),
		Compare:    d.Compare,
	}
}

func (s *Snapshot) ID() uint8 { return MsgSnapshot }

// Encode writes the id followed by every field. Only the first Channels
// compare values are sent.
func (s *Snapshot) Encode(output OutputBuffer) {
	var flags uint32
	if s.Running {
		flags = 1
	}
	for _, v := range []uint32{
		uint32(MsgSnapshot), uint32(s.Timer), s.Time, uint32(s.Mode),
		uint32(s.Prescaler), uint32(s.Width), flags,
		uint32(s.Interrupts), uint32(s.Pending), uint32(s.Channels),
	} {
		EncodeVLQUint(output, v)
	}
	for n := 0; n < int(s.Channels) && n < regs.MaxChannels; n++ {
		EncodeVLQUint(output, s.Compare[n])
	}
}

func decodeSnapshot(data *[]byte) (*Snapshot, error) {
	var f [9]uint32
	for i := range f {
		v, err := DecodeVLQUint(data)
		if err != nil {
			return nil, fmt.Errorf("snapshot field %d: %w", i, err)
		}
		f[i] = v
	}
	if f[8] > regs.MaxChannels {
		return nil, fmt.Errorf("snapshot: %d channels", f[8])
	}
	s := &Snapshot{
		Timer:      uint8(f[0]),
		Time:       f[1],
		Mode:       timer.ModeKind(f[2]),
		Prescaler:  uint8(f[3]),
		Width:      uint8(f[4]),
		Running:    f[5]&1 != 0,
		Interrupts: uint8(f[6]),
		Pending:    uint8(f[7]),
		Channels:   uint8(f[8]),
	}
	for n := 0; n < int(s.Channels); n++ {
		v, err := DecodeVLQUint(data)
		if err != nil {
			return nil, fmt.Errorf("snapshot CC[%d]: %w", n, err)
		}
		s.Compare[n] = v
	}
	return s, nil
}

// Frequency returns the counting frequency in Hz, 0 for a counter
func (s *Snapshot) Frequency() uint32 {
	if s.Mode != timer.ModeTimer {
		return 0
	}
	return regs.BaseClock >> s.Prescaler
}

// LogLine carries one line of firmware debug output
type LogLine struct {
	Text string
}

func (l *LogLine) ID() uint8 { return MsgLogLine }

// Encode writes the text, cut short so the frame stays within FrameMax
func (l *LogLine) Encode(output OutputBuffer) {
	const room = FrameMax - FrameMin - 2
	text := l.Text
	if len(text) > room {
		text = text[:room]
	}
	EncodeVLQUint(output, uint32(MsgLogLine))
	EncodeVLQString(output, text)
}

// Decode parses one frame payload
func Decode(payload []byte) (Message, error) {
	id, err := DecodeVLQUint(&payload)
	if err != nil {
		return nil, err
	}
	switch uint8(id) {
	case MsgSnapshot:
		s, err := decodeSnapshot(&payload)
		if err != nil {
			return nil, err
		}
		return s, nil
	case MsgLogLine:
		text, err := DecodeVLQString(&payload)
		if err != nil {
			return nil, fmt.Errorf("log line: %w", err)
		}
		return &LogLine{Text: text}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownMessage, id)
}

// SendMessage frames m with sequence seq
func SendMessage(output OutputBuffer, seq uint8, m Message) error {
	return EncodeFrame(output, seq, m.Encode)
}
