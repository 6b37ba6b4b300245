package flv

import (
	"errors"
	"strings"
	"testing"
)

func TestParseAudioTagHeader(t *testing.T) {
	tests := []struct {
		name    string
		b       byte
		want    AudioTagHeader
		wantErr error
	}{
		{
			name: "AAC 44kHz 16-bit stereo",
			b:    0xAF,
			want: AudioTagHeader{SoundFormatAAC, SoundRate44kHz, SoundSize16Bit, SoundTypeStereo},
		},
		{
			name: "MP3 22kHz 8-bit mono",
			b:    0x28,
			want: AudioTagHeader{SoundFormatMP3, SoundRate22kHz, SoundSize8Bit, SoundTypeMono},
		},
		{
			name: "Speex 11kHz 16-bit mono",
			b:    0xB6,
			want: AudioTagHeader{SoundFormatSpeex, SoundRate11kHz, SoundSize16Bit, SoundTypeMono},
		},
		{
			name: "device-specific 5.5kHz",
			b:    0xF0,
			want: AudioTagHeader{SoundFormatDeviceSpecific, SoundRate5500Hz, SoundSize8Bit, SoundTypeMono},
		},
		{
			name:    "undefined format 12",
			b:       0xC0,
			wantErr: ErrInvalidSoundFormat,
		},
		{
			name:    "undefined format 13",
			b:       0xDF,
			wantErr: ErrInvalidSoundFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAudioTagHeader(tt.b)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseAudioTagHeader(%#02x) error = %v, want %v", tt.b, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAudioTagHeader(%#02x): %v", tt.b, err)
			}
			if got != tt.want {
				t.Errorf("ParseAudioTagHeader(%#02x) = %+v, want %+v", tt.b, got, tt.want)
			}
		})
	}
}

func TestInvalidSoundFormatCarriesValue(t *testing.T) {
	_, err := ParseAudioTagHeader(0xC0)
	if err == nil {
		t.Fatal("expected error for format 12")
	}
	if !strings.Contains(err.Error(), "12") {
		t.Errorf("error %q does not name the offending value 12", err)
	}
}

func TestSoundFormatCoversDefinedValues(t *testing.T) {
	for v := byte(0); v <= 15; v++ {
		format, err := parseSoundFormat(v << 4)
		if v == 12 || v == 13 {
			if !errors.Is(err, ErrInvalidSoundFormat) {
				t.Errorf("format %d: error = %v, want ErrInvalidSoundFormat", v, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("format %d: unexpected error %v", v, err)
			continue
		}
		if format != SoundFormat(v) {
			t.Errorf("format %d decoded as %d", v, format)
		}
		if strings.HasPrefix(format.String(), "SoundFormat(") {
			t.Errorf("format %d has no name", v)
		}
	}
}

func TestSoundRateExhaustive(t *testing.T) {
	wantNames := []string{"5.5kHz", "11kHz", "22kHz", "44kHz"}
	for v := byte(0); v < 4; v++ {
		rate := parseSoundRate(v << 2)
		if rate != SoundRate(v) {
			t.Errorf("rate bits %d decoded as %d", v, rate)
		}
		if rate.String() != wantNames[v] {
			t.Errorf("rate %d = %q, want %q", v, rate.String(), wantNames[v])
		}
	}
}
