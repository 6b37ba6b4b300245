package inspect

import "github.com/gengteng/flv-dump/internal/flv"

// Frame kinds sent to the client, one JSON text frame per decoded unit.
const (
	frameFileHeader  = "file_header"
	framePrevTagSize = "prev_tag_size"
	frameTag         = "tag"
	frameEOF         = "eof"
	frameError       = "error"
)

// frame is one JSON message sent over the inspection socket.
type frame struct {
	Kind string `json:"kind"`

	FileHeader  *fileHeaderFrame `json:"file_header,omitempty"`
	PrevTagSize *uint32          `json:"prev_tag_size,omitempty"`
	Tag         *tagFrame        `json:"tag,omitempty"`
	Error       string           `json:"error,omitempty"`
}

type fileHeaderFrame struct {
	Version    byte   `json:"version"`
	TypeFlags  byte   `json:"type_flags"`
	HasAudio   bool   `json:"has_audio"`
	HasVideo   bool   `json:"has_video"`
	DataOffset uint32 `json:"data_offset"`
}

type tagFrame struct {
	TagType    string      `json:"tag_type"`
	DataSize   uint32      `json:"data_size"`
	Timestamp  int32       `json:"timestamp"`
	PayloadLen int         `json:"payload_len"`
	Audio      *audioFrame `json:"audio,omitempty"`
	Video      *videoFrame `json:"video,omitempty"`
}

type audioFrame struct {
	SoundFormat string `json:"sound_format"`
	SoundRate   string `json:"sound_rate"`
	SoundSize   string `json:"sound_size"`
	SoundType   string `json:"sound_type"`
}

type videoFrame struct {
	FrameType string `json:"frame_type"`
	CodecID   string `json:"codec_id"`
}

func newFileHeaderFrame(h flv.FileHeader) frame {
	return frame{
		Kind: frameFileHeader,
		FileHeader: &fileHeaderFrame{
			Version:    h.Version,
			TypeFlags:  h.TypeFlags,
			HasAudio:   h.HasAudio(),
			HasVideo:   h.HasVideo(),
			DataOffset: h.DataOffset,
		},
	}
}

func newRecordFrame(rec flv.Record) frame {
	switch r := rec.(type) {
	case flv.PrevTagSize:
		size := uint32(r)
		return frame{Kind: framePrevTagSize, PrevTagSize: &size}
	case flv.Tag:
		tf := &tagFrame{
			TagType:   r.Header.Type.String(),
			DataSize:  r.Header.DataSize,
			Timestamp: r.Header.Timestamp,
		}
		switch body := r.Body.(type) {
		case flv.AudioBody:
			tf.PayloadLen = len(body.Payload)
			tf.Audio = &audioFrame{
				SoundFormat: body.Header.Format.String(),
				SoundRate:   body.Header.Rate.String(),
				SoundSize:   body.Header.Size.String(),
				SoundType:   body.Header.Type.String(),
			}
		case flv.VideoBody:
			tf.PayloadLen = len(body.Payload)
			tf.Video = &videoFrame{
				FrameType: body.Header.FrameType.String(),
				CodecID:   body.Header.CodecID.String(),
			}
		case flv.ScriptBody:
			tf.PayloadLen = len(body.Payload)
		case flv.ReservedBody:
			tf.PayloadLen = len(body.Payload)
		}
		return frame{Kind: frameTag, Tag: tf}
	default:
		return frame{Kind: frameError, Error: "unknown record type"}
	}
}
