package flv

import "fmt"

// SoundFormat is the 4-bit codec field of an audio tag header byte.
type SoundFormat byte

const (
	SoundFormatLinearPCMPlatform SoundFormat = 0
	SoundFormatADPCM             SoundFormat = 1
	SoundFormatMP3               SoundFormat = 2
	SoundFormatLinearPCMLittle   SoundFormat = 3
	SoundFormatNellymoser16kHz   SoundFormat = 4
	SoundFormatNellymoser8kHz    SoundFormat = 5
	SoundFormatNellymoser        SoundFormat = 6
	SoundFormatG711ALaw          SoundFormat = 7
	SoundFormatG711MuLaw         SoundFormat = 8
	SoundFormatReserved          SoundFormat = 9
	SoundFormatAAC               SoundFormat = 10
	SoundFormatSpeex             SoundFormat = 11
	SoundFormatMP38kHz           SoundFormat = 14
	SoundFormatDeviceSpecific    SoundFormat = 15
)

var soundFormatNames = map[SoundFormat]string{
	SoundFormatLinearPCMPlatform: "Linear PCM (platform endian)",
	SoundFormatADPCM:             "ADPCM",
	SoundFormatMP3:               "MP3",
	SoundFormatLinearPCMLittle:   "Linear PCM (little endian)",
	SoundFormatNellymoser16kHz:   "Nellymoser 16kHz mono",
	SoundFormatNellymoser8kHz:    "Nellymoser 8kHz mono",
	SoundFormatNellymoser:        "Nellymoser",
	SoundFormatG711ALaw:          "G.711 A-law",
	SoundFormatG711MuLaw:         "G.711 mu-law",
	SoundFormatReserved:          "Reserved",
	SoundFormatAAC:               "AAC",
	SoundFormatSpeex:             "Speex",
	SoundFormatMP38kHz:           "MP3 8kHz",
	SoundFormatDeviceSpecific:    "Device-specific",
}

func (f SoundFormat) String() string {
	if name, ok := soundFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("SoundFormat(%d)", byte(f))
}

// SoundRate is the 2-bit sample rate field.
type SoundRate byte

const (
	SoundRate5500Hz SoundRate = iota
	SoundRate11kHz
	SoundRate22kHz
	SoundRate44kHz
)

func (r SoundRate) String() string {
	switch r {
	case SoundRate5500Hz:
		return "5.5kHz"
	case SoundRate11kHz:
		return "11kHz"
	case SoundRate22kHz:
		return "22kHz"
	default:
		return "44kHz"
	}
}

// SoundSize is the 1-bit sample width field.
type SoundSize byte

const (
	SoundSize8Bit SoundSize = iota
	SoundSize16Bit
)

func (s SoundSize) String() string {
	if s == SoundSize8Bit {
		return "8-bit"
	}
	return "16-bit"
}

// SoundType is the 1-bit channel layout field.
type SoundType byte

const (
	SoundTypeMono SoundType = iota
	SoundTypeStereo
)

func (t SoundType) String() string {
	if t == SoundTypeMono {
		return "Mono"
	}
	return "Stereo"
}

// AudioTagHeader is the first byte of an audio tag body, split into its
// four packed fields.
type AudioTagHeader struct {
	Format SoundFormat
	Rate   SoundRate
	Size   SoundSize
	Type   SoundType
}

// Each field is extracted and validated on its own so the valid-value
// set of one never hides problems in another.

func parseSoundFormat(b byte) (SoundFormat, error) {
	v := (b & 0xF0) >> 4
	if v == 12 || v == 13 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSoundFormat, v)
	}
	return SoundFormat(v), nil
}

// parseSoundRate cannot fail: all four 2-bit values are defined.
func parseSoundRate(b byte) SoundRate {
	return SoundRate((b & 0x0C) >> 2)
}

func parseSoundSize(b byte) SoundSize {
	return SoundSize((b & 0x02) >> 1)
}

func parseSoundType(b byte) SoundType {
	return SoundType(b & 0x01)
}

// ParseAudioTagHeader decodes the audio tag header byte. It fails with
// the first invalid field; the whole tag is fatal when that happens.
func ParseAudioTagHeader(b byte) (AudioTagHeader, error) {
	format, err := parseSoundFormat(b)
	if err != nil {
		return AudioTagHeader{}, err
	}
	return AudioTagHeader{
		Format: format,
		Rate:   parseSoundRate(b),
		Size:   parseSoundSize(b),
		Type:   parseSoundType(b),
	}, nil
}
