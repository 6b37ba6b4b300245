// Package dump renders decoded FLV structures as text, one field per
// line, for the command-line tool.
package dump

import (
	"fmt"
	"io"

	"github.com/gengteng/flv-dump/internal/flv"
)

const separator = "====================================="

// Dumper writes a textual rendering of a record sequence. It numbers
// previous-tag-size markers and tags independently, the way the stream
// alternates them.
type Dumper struct {
	w            io.Writer
	previewBytes int

	prevTagSizeIndex int
	tagIndex         int
}

// New returns a Dumper writing to w. previewBytes caps how many payload
// bytes are shown per tag; zero or negative shows only payload lengths.
func New(w io.Writer, previewBytes int) *Dumper {
	return &Dumper{w: w, previewBytes: previewBytes, tagIndex: 1}
}

// WriteFileInfo prints the opening banner: file name, size, and the
// parsed file header fields.
func (d *Dumper) WriteFileInfo(path string, size int64, h flv.FileHeader) error {
	_, err := fmt.Fprintf(d.w, "%s\nFile: %s\nFileSize: %d\nVersion: %d\nType: %d\nDataOffset: %d\n",
		separator, path, size, h.Version, h.TypeFlags, h.DataOffset)
	return err
}

// WriteRecord prints one record.
func (d *Dumper) WriteRecord(rec flv.Record) error {
	switch r := rec.(type) {
	case flv.PrevTagSize:
		_, err := fmt.Fprintf(d.w, "%s\nPreviousTagSize%d: %d\n", separator, d.prevTagSizeIndex, uint32(r))
		d.prevTagSizeIndex++
		return err
	case flv.Tag:
		err := d.writeTag(r)
		d.tagIndex++
		return err
	default:
		return fmt.Errorf("dump: unknown record type %T", rec)
	}
}

func (d *Dumper) writeTag(tag flv.Tag) error {
	h := tag.Header
	if _, err := fmt.Fprintf(d.w, "%s\nTagIndex: %d\nTagType: %s\nDataSize: %d\nTimestamp: %d\n",
		separator, d.tagIndex, h.Type, h.DataSize, h.Timestamp); err != nil {
		return err
	}

	switch body := tag.Body.(type) {
	case flv.AudioBody:
		if _, err := fmt.Fprintf(d.w, "SoundFormat: %s\nSoundRate: %s\nSoundSize: %s\nSoundType: %s\n",
			body.Header.Format, body.Header.Rate, body.Header.Size, body.Header.Type); err != nil {
			return err
		}
		return d.writePayload("Data", body.Payload)
	case flv.VideoBody:
		if _, err := fmt.Fprintf(d.w, "FrameType: %s\nCodecId: %s\n",
			body.Header.FrameType, body.Header.CodecID); err != nil {
			return err
		}
		return d.writePayload("Data", body.Payload)
	case flv.ScriptBody:
		return d.writePayload("RawScriptData", body.Payload)
	case flv.ReservedBody:
		return d.writePayload("Data", body.Payload)
	default:
		return fmt.Errorf("dump: unknown tag body type %T", tag.Body)
	}
}

// writePayload prints a bounded hex preview of a payload span.
func (d *Dumper) writePayload(label string, payload []byte) error {
	if d.previewBytes <= 0 {
		_, err := fmt.Fprintf(d.w, "%s: %d bytes\n", label, len(payload))
		return err
	}
	if len(payload) <= d.previewBytes {
		_, err := fmt.Fprintf(d.w, "%s: [% x]\n", label, payload)
		return err
	}
	_, err := fmt.Fprintf(d.w, "%s: [% x ...] (%d bytes)\n", label, payload[:d.previewBytes], len(payload))
	return err
}

// Close prints the closing separator.
func (d *Dumper) Close() error {
	_, err := fmt.Fprintln(d.w, separator)
	return err
}
