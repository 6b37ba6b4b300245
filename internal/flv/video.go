package flv

import "fmt"

// FrameType is the 4-bit frame classification field of a video tag
// header byte. Valid values are 1 through 5.
type FrameType byte

const (
	FrameTypeKey       FrameType = 1
	FrameTypeInter     FrameType = 2
	FrameTypeDispInter FrameType = 3
	FrameTypeGenerated FrameType = 4
	FrameTypeVideoInfo FrameType = 5
)

func (f FrameType) String() string {
	switch f {
	case FrameTypeKey:
		return "KeyFrame"
	case FrameTypeInter:
		return "InterFrame"
	case FrameTypeDispInter:
		return "DisposableInterFrame"
	case FrameTypeGenerated:
		return "GeneratedKeyFrame"
	case FrameTypeVideoInfo:
		return "VideoInfoOrCommandFrame"
	default:
		return fmt.Sprintf("FrameType(%d)", byte(f))
	}
}

// CodecID is the 4-bit codec field of a video tag header byte. Valid
// values are 1 through 7.
type CodecID byte

const (
	CodecJPEG         CodecID = 1
	CodecSorensonH263 CodecID = 2
	CodecScreenVideo  CodecID = 3
	CodecOn2VP6       CodecID = 4
	CodecOn2VP6Alpha  CodecID = 5
	CodecScreenVideo2 CodecID = 6
	CodecAVC          CodecID = 7
)

func (c CodecID) String() string {
	switch c {
	case CodecJPEG:
		return "JPEG"
	case CodecSorensonH263:
		return "Sorenson H.263"
	case CodecScreenVideo:
		return "Screen Video"
	case CodecOn2VP6:
		return "On2 VP6"
	case CodecOn2VP6Alpha:
		return "On2 VP6 with alpha"
	case CodecScreenVideo2:
		return "Screen Video v2"
	case CodecAVC:
		return "AVC"
	default:
		return fmt.Sprintf("CodecID(%d)", byte(c))
	}
}

// VideoTagHeader is the first byte of a video tag body, split into its
// two packed fields.
type VideoTagHeader struct {
	FrameType FrameType
	CodecID   CodecID
}

func parseFrameType(b byte) (FrameType, error) {
	v := (b & 0xF0) >> 4
	if v < 1 || v > 5 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFrameType, v)
	}
	return FrameType(v), nil
}

func parseCodecID(b byte) (CodecID, error) {
	v := b & 0x0F
	if v < 1 || v > 7 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCodecID, v)
	}
	return CodecID(v), nil
}

// ParseVideoTagHeader decodes the video tag header byte, failing with
// the first invalid field.
func ParseVideoTagHeader(b byte) (VideoTagHeader, error) {
	frameType, err := parseFrameType(b)
	if err != nil {
		return VideoTagHeader{}, err
	}
	codecID, err := parseCodecID(b)
	if err != nil {
		return VideoTagHeader{}, err
	}
	return VideoTagHeader{FrameType: frameType, CodecID: codecID}, nil
}
