package flv

import "encoding/binary"

type decoderState int

const (
	stateAwaitPrevTagSize decoderState = iota
	stateAwaitTag
)

// Decoder is the incremental frame decoder for the tag stream that
// follows the file header. It holds only the alternation state; the
// pending-byte buffer belongs to the caller, which appends arriving
// bytes and advances past what Decode reports consumed.
//
// The decoder is strictly pull-based and synchronous: waiting for more
// bytes is the caller's job, signalled by the (0, nil, nil) return.
type Decoder struct {
	state decoderState
}

// NewDecoder returns a decoder positioned before the first
// previous-tag-size field, i.e. immediately after the file header.
func NewDecoder() *Decoder {
	return &Decoder{state: stateAwaitPrevTagSize}
}

// Decode attempts to extract one record from the front of buf.
//
// It returns the number of bytes consumed and the record. When buf does
// not yet hold a complete record it returns (0, nil, nil) without
// consuming anything or changing state; the caller appends more bytes
// and retries. A non-nil error is fatal for the whole stream.
//
// Record payloads alias buf and are only valid until the caller reuses
// the underlying bytes.
func (d *Decoder) Decode(buf []byte) (int, Record, error) {
	switch d.state {
	case stateAwaitPrevTagSize:
		if len(buf) < PrevTagSizeSize {
			return 0, nil, nil
		}
		d.state = stateAwaitTag
		return PrevTagSizeSize, PrevTagSize(binary.BigEndian.Uint32(buf)), nil

	default: // stateAwaitTag
		if len(buf) < TagHeaderSize {
			return 0, nil, nil
		}
		// The header is re-derived on every attempt rather than cached
		// across insufficient-data returns; it is 11 bytes of shifts.
		header, err := parseTagHeader(buf)
		if err != nil {
			return 0, nil, err
		}
		total := TagHeaderSize + int(header.DataSize)
		if len(buf) < total {
			return 0, nil, nil
		}
		body, err := parseTagBody(header.Type, buf[TagHeaderSize:total])
		if err != nil {
			return 0, nil, err
		}
		d.state = stateAwaitPrevTagSize
		return total, Tag{Header: header, Body: body}, nil
	}
}
