package dump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gengteng/flv-dump/internal/flv"
)

func TestDumpFileInfo(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf, 16)

	h := flv.FileHeader{Version: 1, TypeFlags: 0x05, DataOffset: 9}
	if err := d.WriteFileInfo("test.flv", 1234, h); err != nil {
		t.Fatalf("WriteFileInfo: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"File: test.flv", "FileSize: 1234", "Version: 1", "Type: 5", "DataOffset: 9"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDumpPrevTagSizeNumbering(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf, 0)

	for _, size := range []uint32{0, 15, 411} {
		if err := d.WriteRecord(flv.PrevTagSize(size)); err != nil {
			t.Fatalf("WriteRecord: %v", err)
		}
	}

	out := buf.String()
	for _, want := range []string{"PreviousTagSize0: 0", "PreviousTagSize1: 15", "PreviousTagSize2: 411"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDumpAudioTag(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf, 16)

	header, err := flv.ParseAudioTagHeader(0xAF)
	if err != nil {
		t.Fatal(err)
	}
	tag := flv.Tag{
		Header: flv.TagHeader{DataSize: 3, Timestamp: 40},
		Body:   flv.AudioBody{Header: header, Payload: []byte{0xDE, 0xAD}},
	}
	tag.Header.Type = flv.TagType{Kind: flv.TagKindAudio, Raw: 8}

	if err := d.WriteRecord(tag); err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"TagIndex: 1", "TagType: Audio", "DataSize: 3", "Timestamp: 40",
		"SoundFormat: AAC", "SoundRate: 44kHz", "SoundSize: 16-bit", "SoundType: Stereo",
		"Data: [de ad]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDumpPayloadTruncation(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf, 2)

	tag := flv.Tag{
		Header: flv.TagHeader{DataSize: 5},
		Body:   flv.ScriptBody{Payload: []byte{1, 2, 3, 4, 5}},
	}
	tag.Header.Type = flv.TagType{Kind: flv.TagKindScript, Raw: 18}

	if err := d.WriteRecord(tag); err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "RawScriptData: [01 02 ...] (5 bytes)") {
		t.Errorf("payload not truncated to preview length:\n%s", out)
	}
}
