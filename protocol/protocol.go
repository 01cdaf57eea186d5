// Package protocol implements the telemetry framing used between the timer
// firmware and the host monitor
package protocol

import "errors"

// Frame layout constants
const (
	FrameHeaderSize  = 2
	FrameTrailerSize = 3
	FrameMin         = FrameHeaderSize + FrameTrailerSize
	FrameMax         = 64
	FramePositionLen = 0
	FramePositionSeq = 1
	FrameTrailerCRC  = 3
	FrameTrailerSync = 1
	FrameSync        = 0x7E

	// The high nibble of the sequence byte is fixed so a decoder can tell
	// a header from noise
	SeqDest = 0x10
	SeqMask = 0x0F

	// ScratchMax bounds one batch of encoded frames
	ScratchMax = 512
)

var (
	ErrFrameTooLong   = errors.New("payload does not fit in a frame")
	ErrBufferTooSmall = errors.New("buffer too small")
	ErrInvalidVLQ     = errors.New("invalid VLQ encoding")
	ErrUnknownMessage = errors.New("unknown message id")
	ErrDecoderFull    = errors.New("decoder buffer full")
)

// NextSeq returns the sequence byte that follows seq
func NextSeq(seq uint8) uint8 {
	return ((seq + 1) & SeqMask) | SeqDest
}
