package flv

import "fmt"

// TagHeader is the fixed 11-byte header in front of every tag body.
//
// Wire layout (big-endian throughout):
//
//	tagType:u8  dataSize:u24  timestamp:u24  timestampExt:u8  streamId:u24
//
// DataSize is the 24-bit field zero-extended to 32 bits. Timestamp is a
// signed 32-bit value: the extension byte forms bits 31-24 and the 24-bit
// field forms bits 23-0, milliseconds relative to the first tag (which is
// defined to be 0). StreamId must be zero and is not retained.
type TagHeader struct {
	Type      TagType
	DataSize  uint32
	Timestamp int32
}

// Record is one decoded unit of the tag stream: either a PrevTagSize
// marker or a complete Tag. The two strictly alternate, starting with
// PrevTagSize.
type Record interface {
	isRecord()
}

// PrevTagSize is the 4-byte marker preceding each tag. The value is the
// total size of the tag before it (0 in front of the first tag). It is
// reported as decoded; it is not cross-checked against the actual size
// of the preceding tag.
type PrevTagSize uint32

func (PrevTagSize) isRecord() {}

// Tag is a complete media tag: header plus type-dispatched body.
type Tag struct {
	Header TagHeader
	Body   TagBody
}

func (Tag) isRecord() {}

// TagBody is the type-dispatched payload of a tag. Payload slices alias
// the decode buffer; a caller that retains one past the next decode call
// must copy it.
type TagBody interface {
	isTagBody()
}

// AudioBody is an audio tag body. Payload excludes the header byte.
type AudioBody struct {
	Header  AudioTagHeader
	Payload []byte
}

// VideoBody is a video tag body. Payload excludes the header byte.
type VideoBody struct {
	Header  VideoTagHeader
	Payload []byte
}

// ScriptBody is an opaque script tag body (AMF metadata, not parsed here).
type ScriptBody struct {
	Payload []byte
}

// ReservedBody is the body of a tag with an unrecognized type byte.
type ReservedBody struct {
	Payload []byte
}

func (AudioBody) isTagBody()    {}
func (VideoBody) isTagBody()    {}
func (ScriptBody) isTagBody()   {}
func (ReservedBody) isTagBody() {}

// parseTagHeader decodes the 11-byte tag header at the front of buf.
// The caller guarantees len(buf) >= TagHeaderSize.
func parseTagHeader(buf []byte) (TagHeader, error) {
	if buf[8] != 0 || buf[9] != 0 || buf[10] != 0 {
		return TagHeader{}, fmt.Errorf("%w: nonzero stream id %02x%02x%02x", ErrInvalidTagHeader, buf[8], buf[9], buf[10])
	}
	dataSize := uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
	timestamp := int32(uint32(buf[7])<<24 | uint32(buf[4])<<16 | uint32(buf[5])<<8 | uint32(buf[6]))
	return TagHeader{
		Type:      classifyTagType(buf[0]),
		DataSize:  dataSize,
		Timestamp: timestamp,
	}, nil
}

// parseTagBody dispatches body parsing by tag type. data is exactly the
// DataSize bytes declared by the header.
func parseTagBody(t TagType, data []byte) (TagBody, error) {
	switch t.Kind {
	case TagKindAudio:
		if len(data) == 0 {
			return nil, fmt.Errorf("%w: empty audio tag body", ErrInvalidTagHeader)
		}
		h, err := ParseAudioTagHeader(data[0])
		if err != nil {
			return nil, err
		}
		return AudioBody{Header: h, Payload: data[1:]}, nil
	case TagKindVideo:
		if len(data) == 0 {
			return nil, fmt.Errorf("%w: empty video tag body", ErrInvalidTagHeader)
		}
		h, err := ParseVideoTagHeader(data[0])
		if err != nil {
			return nil, err
		}
		return VideoBody{Header: h, Payload: data[1:]}, nil
	case TagKindScript:
		return ScriptBody{Payload: data}, nil
	default:
		return ReservedBody{Payload: data}, nil
	}
}
