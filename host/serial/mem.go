package serial

import (
	"bytes"
	"io"
	"sync"
)

// MemPort is a Port backed by memory. Reads drain what was queued with
// Feed and return io.EOF once it is empty.
type MemPort struct {
	mu     sync.Mutex
	rx     bytes.Buffer
	tx     bytes.Buffer
	closed bool
}

func NewMemPort() *MemPort {
	return &MemPort{}
}

// Feed queues data to be read
func (p *MemPort) Feed(data []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rx.Write(data)
}

func (p *MemPort) Read(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0, io.ErrClosedPipe
	}
	return p.rx.Read(b)
}

func (p *MemPort) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0, io.ErrClosedPipe
	}
	return p.tx.Write(b)
}

// Written returns everything written to the port so far
func (p *MemPort) Written() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return bytes.Clone(p.tx.Bytes())
}

func (p *MemPort) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

func (p *MemPort) Flush() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rx.Reset()
	return nil
}
