package monitor

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"nrftimer/protocol"
	"nrftimer/timer"
)

var (
	recEncMode cbor.EncMode
	recDecMode cbor.DecMode
)

func init() {
	var err error
	recEncMode, err = cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
		Time:        cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("recording encoder mode: %v", err))
	}
	recDecMode, err = cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyQuiet,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("recording decoder mode: %v", err))
	}
}

// Record is one snapshot as stored in a recording
type Record struct {
	Session    string    `cbor:"1,keyasint"`
	Received   time.Time `cbor:"2,keyasint"`
	Timer      uint8     `cbor:"3,keyasint"`
	Ticks      uint32    `cbor:"4,keyasint"`
	Mode       string    `cbor:"5,keyasint"`
	Prescaler  uint8     `cbor:"6,keyasint,omitempty"`
	Width      uint8     `cbor:"7,keyasint"`
	Running    bool      `cbor:"8,keyasint"`
	Interrupts uint8     `cbor:"9,keyasint"`
	Pending    uint8     `cbor:"10,keyasint"`
	Compare    []uint32  `cbor:"11,keyasint"`
}

// NewRecord converts a decoded snapshot
func NewRecord(session string, received time.Time, s protocol.Snapshot) Record {
	n := min(int(s.Channels), len(s.Compare))
	return Record{
		Session:    session,
		Received:   received,
		Timer:      s.Timer,
		Ticks:      s.Time,
		Mode:       s.Mode.String(),
		Prescaler:  s.Prescaler,
		Width:      s.Width,
		Running:    s.Running,
		Interrupts: s.Interrupts,
		Pending:    s.Pending,
		Compare:    append([]uint32(nil), s.Compare[:n]...),
	}
}

// Snapshot converts r back to the wire form
func (r Record) Snapshot() protocol.Snapshot {
	s := protocol.Snapshot{
		Timer:      r.Timer,
		Time:       r.Ticks,
		Mode:       timer.ModeTimer,
		Prescaler:  r.Prescaler,
		Width:      r.Width,
		Running:    r.Running,
		Interrupts: r.Interrupts,
		Pending:    r.Pending,
		Channels:   uint8(len(r.Compare)),
	}
	if r.Mode == timer.ModeCounter.String() {
		s.Mode = timer.ModeCounter
	}
	copy(s.Compare[:], r.Compare)
	return s
}

// Recorder appends snapshots to a CBOR sequence. Every record carries the
// session id so recordings can be concatenated.
type Recorder struct {
	mu      sync.Mutex
	enc     *cbor.Encoder
	session string
	count   int
	now     func() time.Time
}

func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{
		enc:     recEncMode.NewEncoder(w),
		session: uuid.New().String(),
		now:     time.Now,
	}
}

// Session returns the id stamped on every record
func (r *Recorder) Session() string {
	return r.session
}

// Write stores s, received now
func (r *Recorder) Write(s protocol.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enc.Encode(NewRecord(r.session, r.now(), s)); err != nil {
		return fmt.Errorf("record snapshot: %w", err)
	}
	r.count++
	return nil
}

// Count returns the number of records written
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// ReadRecords decodes a recording until EOF
func ReadRecords(rd io.Reader) ([]Record, error) {
	dec := recDecMode.NewDecoder(rd)
	var out []Record
	for {
		var rec Record
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("record %d: %w", len(out), err)
		}
		if _, err := uuid.Parse(rec.Session); err != nil {
			return out, fmt.Errorf("record %d: session: %w", len(out), err)
		}
		out = append(out, rec)
	}
}
