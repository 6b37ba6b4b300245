// Package flv implements an incremental decoder for the FLV container
// format: a fixed file header followed by an alternating sequence of
// previous-tag-size markers and media tags.
package flv

import "fmt"

// FLV file signature, the first three bytes of every stream.
const Signature = "FLV"

// Fixed structure sizes, in bytes.
const (
	FileHeaderSize  = 9
	TagHeaderSize   = 11
	PrevTagSizeSize = 4
)

// TagKind classifies a tag by its discriminant byte: 8 audio, 9 video,
// 18 script, anything else reserved.
type TagKind int

const (
	TagKindAudio TagKind = iota
	TagKindVideo
	TagKindScript
	TagKindReserved
)

// Tag type discriminant bytes defined by the container format.
const (
	tagByteAudio  = 8
	tagByteVideo  = 9
	tagByteScript = 18
)

// TagType is the classified tag type. Raw keeps the discriminant byte so
// that unrecognized (reserved) values stay diagnosable instead of being
// collapsed into a single opaque bucket.
type TagType struct {
	Kind TagKind
	Raw  byte
}

func classifyTagType(b byte) TagType {
	switch b {
	case tagByteAudio:
		return TagType{Kind: TagKindAudio, Raw: b}
	case tagByteVideo:
		return TagType{Kind: TagKindVideo, Raw: b}
	case tagByteScript:
		return TagType{Kind: TagKindScript, Raw: b}
	default:
		return TagType{Kind: TagKindReserved, Raw: b}
	}
}

func (t TagType) String() string {
	switch t.Kind {
	case TagKindAudio:
		return "Audio"
	case TagKindVideo:
		return "Video"
	case TagKindScript:
		return "Script"
	default:
		return fmt.Sprintf("Reserved(%d)", t.Raw)
	}
}
