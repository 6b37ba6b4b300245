package flv

import (
	"errors"
	"testing"
)

func TestParseFileHeader(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    FileHeader
		wantErr error
	}{
		{
			name: "typical header",
			data: []byte{'F', 'L', 'V', 1, 0x05, 0x00, 0x00, 0x00, 0x09},
			want: FileHeader{Version: 1, TypeFlags: 0x05, DataOffset: 9},
		},
		{
			name: "nonstandard data offset",
			data: []byte{'F', 'L', 'V', 3, 0x01, 0x00, 0x00, 0x01, 0x2C},
			want: FileHeader{Version: 3, TypeFlags: 0x01, DataOffset: 300},
		},
		{
			name:    "wrong signature",
			data:    []byte{'F', 'L', 'X', 1, 0x05, 0x00, 0x00, 0x00, 0x09},
			wantErr: ErrMalformedSignature,
		},
		{
			name:    "empty input",
			data:    nil,
			wantErr: ErrTruncatedHeader,
		},
		{
			name:    "short input",
			data:    []byte{'F', 'L', 'V', 1},
			wantErr: ErrTruncatedHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFileHeader(tt.data)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseFileHeader error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFileHeader: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFileHeader = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFileHeaderFlags(t *testing.T) {
	h := FileHeader{TypeFlags: 0x05}
	if !h.HasAudio() || !h.HasVideo() {
		t.Errorf("flags 0x05: HasAudio=%v HasVideo=%v, want true/true", h.HasAudio(), h.HasVideo())
	}
	h = FileHeader{TypeFlags: 0x04}
	if !h.HasAudio() || h.HasVideo() {
		t.Errorf("flags 0x04: HasAudio=%v HasVideo=%v, want true/false", h.HasAudio(), h.HasVideo())
	}
}
