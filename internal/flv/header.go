package flv

import (
	"encoding/binary"
	"fmt"
)

// FileHeader is the fixed 9-byte header at the start of every FLV stream.
// TypeFlags is kept raw; bit 2 signals audio and bit 0 signals video.
type FileHeader struct {
	Version    byte
	TypeFlags  byte
	DataOffset uint32
}

// HasAudio reports whether the type flags declare audio tags present.
func (h FileHeader) HasAudio() bool { return h.TypeFlags&0x04 != 0 }

// HasVideo reports whether the type flags declare video tags present.
func (h FileHeader) HasVideo() bool { return h.TypeFlags&0x01 != 0 }

// ParseFileHeader decodes the file header from the first bytes of the
// stream. It consumes exactly FileHeaderSize bytes; the caller advances
// past them on success. A short buffer fails with ErrTruncatedHeader and
// a wrong signature with ErrMalformedSignature, both fatal.
func ParseFileHeader(buf []byte) (FileHeader, error) {
	if len(buf) < FileHeaderSize {
		return FileHeader{}, fmt.Errorf("%w: got %d of %d bytes", ErrTruncatedHeader, len(buf), FileHeaderSize)
	}
	if string(buf[:3]) != Signature {
		return FileHeader{}, fmt.Errorf("%w: % x", ErrMalformedSignature, buf[:3])
	}
	return FileHeader{
		Version:    buf[3],
		TypeFlags:  buf[4],
		DataOffset: binary.BigEndian.Uint32(buf[5:9]),
	}, nil
}
