// Package monitor reads timer telemetry from the firmware, delivers
// decoded snapshots and optionally records them
package monitor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"nrftimer/protocol"
)

// idleBackoff is how long a following monitor waits after an empty read
var idleBackoff = 10 * time.Millisecond

// Options configure a Monitor
type Options struct {
	// Follow keeps reading after io.EOF. Serial ports with a read timeout
	// report EOF when no byte arrived in time.
	Follow bool

	// Buffer is the capacity of the snapshot channel
	Buffer int

	// Recorder, when set, receives every snapshot
	Recorder *Recorder
}

// Stats counts what the monitor has seen
type Stats struct {
	Frames      int
	Snapshots   int
	LogLines    int
	BadMessages int
	Dropped     int // bytes discarded while resynchronizing
	Missed      int // frames lost according to sequence numbers
}

// Monitor turns a byte stream into snapshots
type Monitor struct {
	r    io.Reader
	opts Options
	dec  *protocol.Decoder
	out  chan protocol.Snapshot
	log  *slog.Logger
	fw   *slog.Logger

	mu    sync.Mutex
	stats Stats
}

func New(r io.Reader, opts Options) *Monitor {
	return &Monitor{
		r:    r,
		opts: opts,
		dec:  protocol.NewDecoder(),
		out:  make(chan protocol.Snapshot, max(opts.Buffer, 0)),
		log:  Logger(ComponentDecoder),
		fw:   Logger(ComponentFirmware),
	}
}

// Snapshots is closed when Run returns
func (m *Monitor) Snapshots() <-chan protocol.Snapshot {
	return m.out
}

func (m *Monitor) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

type chunk struct {
	data []byte
	err  error
}

// Run reads until the stream ends, a read fails or ctx is done. A clean
// end of stream returns nil.
func (m *Monitor) Run(ctx context.Context) error {
	defer close(m.out)

	chunks := make(chan chunk)
	done := make(chan struct{})
	defer close(done)
	go m.readLoop(chunks, done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c := <-chunks:
			if err := m.feed(ctx, c.data); err != nil {
				return err
			}
			if c.err == nil {
				continue
			}
			if errors.Is(c.err, io.EOF) {
				return nil
			}
			return c.err
		}
	}
}

func (m *Monitor) readLoop(chunks chan<- chunk, done <-chan struct{}) {
	for {
		buf := make([]byte, 256)
		n, err := m.r.Read(buf)
		if errors.Is(err, io.EOF) && m.opts.Follow {
			err = nil
		}
		if n == 0 && err == nil {
			select {
			case <-done:
				return
			case <-time.After(idleBackoff):
				continue
			}
		}
		select {
		case chunks <- chunk{data: buf[:n], err: err}:
		case <-done:
			return
		}
		if err != nil {
			return
		}
	}
}

func (m *Monitor) feed(ctx context.Context, data []byte) error {
	for len(data) > 0 {
		n, _ := m.dec.Write(data)
		data = data[n:]
		for {
			f, ok := m.dec.Next()
			if !ok {
				break
			}
			if err := m.handle(ctx, f); err != nil {
				return err
			}
		}
	}
	m.mu.Lock()
	m.stats.Dropped = m.dec.Dropped
	m.stats.Missed = m.dec.Missed
	m.mu.Unlock()
	return nil
}

func (m *Monitor) handle(ctx context.Context, f protocol.Frame) error {
	msg, err := protocol.Decode(f.Payload)

	m.mu.Lock()
	m.stats.Frames++
	if err != nil {
		m.stats.BadMessages++
	}
	m.mu.Unlock()

	if err != nil {
		m.log.Warn("undecodable frame", "seq", f.Seq, "len", len(f.Payload), "err", err)
		return nil
	}

	switch msg := msg.(type) {
	case *protocol.LogLine:
		m.mu.Lock()
		m.stats.LogLines++
		m.mu.Unlock()
		m.fw.Info(msg.Text)
	case *protocol.Snapshot:
		m.mu.Lock()
		m.stats.Snapshots++
		m.mu.Unlock()
		if rec := m.opts.Recorder; rec != nil {
			if err := rec.Write(*msg); err != nil {
				return err
			}
		}
		select {
		case m.out <- *msg:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
