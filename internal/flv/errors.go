package flv

import "errors"

// Fatal decode errors. All of them terminate the stream; there is no
// resynchronization after a structural failure. Callers match with
// errors.Is; the wrapped message carries the offending raw value.
var (
	// ErrMalformedSignature means the stream does not start with "FLV".
	ErrMalformedSignature = errors.New("flv: malformed signature")

	// ErrTruncatedHeader means the stream ended before the 9-byte file
	// header was complete.
	ErrTruncatedHeader = errors.New("flv: truncated file header")

	// ErrInvalidTagHeader means the reserved stream-id bytes of a tag
	// header were nonzero, or a tag body was too short to hold its
	// mandatory header byte.
	ErrInvalidTagHeader = errors.New("flv: invalid tag header")

	// ErrTruncatedTag means the byte source ended while a tag (or a
	// previous-tag-size field) was still incomplete.
	ErrTruncatedTag = errors.New("flv: stream ended mid-record")

	// ErrInvalidSoundFormat means the 4-bit sound format field held one
	// of the undefined values 12 or 13.
	ErrInvalidSoundFormat = errors.New("flv: invalid sound format")

	// ErrInvalidFrameType means the 4-bit video frame type field was
	// outside 1..5.
	ErrInvalidFrameType = errors.New("flv: invalid video frame type")

	// ErrInvalidCodecID means the 4-bit video codec id field was
	// outside 1..7.
	ErrInvalidCodecID = errors.New("flv: invalid video codec id")
)
