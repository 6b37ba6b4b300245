package flv

import "encoding/binary"

// Write-side helpers for building test streams. Same wire layout the
// decoder consumes: 11-byte tag header (type, u24 size, u24 timestamp,
// timestamp extension, zero stream id) followed by the body.

func appendFileHeader(dst []byte, version, typeFlags byte, dataOffset uint32) []byte {
	dst = append(dst, 'F', 'L', 'V', version, typeFlags)
	return binary.BigEndian.AppendUint32(dst, dataOffset)
}

func appendPrevTagSize(dst []byte, size uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, size)
}

func appendTag(dst []byte, tagType byte, timestamp int32, body []byte) []byte {
	size := uint32(len(body))
	ts := uint32(timestamp)
	dst = append(dst, tagType)
	dst = append(dst, byte(size>>16), byte(size>>8), byte(size))
	dst = append(dst, byte(ts>>16), byte(ts>>8), byte(ts))
	dst = append(dst, byte(ts>>24)) // timestamp extension
	dst = append(dst, 0, 0, 0)      // stream id
	return append(dst, body...)
}

// sampleStream is a four-tag stream exercising every body kind:
// audio (AAC stereo), video (AVC key frame), script, and a reserved
// tag type.
func sampleStream() []byte {
	var b []byte
	b = appendPrevTagSize(b, 0)
	b = appendTag(b, tagByteAudio, 0, []byte{0xAF, 0x01, 0xDE, 0xAD})
	b = appendPrevTagSize(b, 15)
	b = appendTag(b, tagByteVideo, 40, []byte{0x17, 0x00, 0xBE, 0xEF, 0x00})
	b = appendPrevTagSize(b, 16)
	b = appendTag(b, tagByteScript, 0, []byte{0x02, 0x00, 0x01, 'x'})
	b = appendPrevTagSize(b, 15)
	b = appendTag(b, 5, 80, []byte{0x01, 0x02})
	return b
}
