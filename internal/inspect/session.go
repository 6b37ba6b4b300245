package inspect

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gorilla/websocket"

	"github.com/gengteng/flv-dump/internal/flv"
	"github.com/gengteng/flv-dump/internal/metrics"
)

// Conn defines the WebSocket operations the session needs.
// This allows for easier testing and abstraction.
type Conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// session decodes one client's FLV byte stream. The client sends raw
// stream bytes as binary frames in whatever chunking it likes; the
// session buffers them, runs the incremental decoder, and answers with
// one JSON text frame per decoded file header or record. An empty
// binary frame marks end of stream.
type session struct {
	conn    Conn
	dec     *flv.Decoder
	metrics *metrics.Metrics
	log     *slog.Logger

	buf        []byte
	headerDone bool
}

func newSession(conn Conn, m *metrics.Metrics, log *slog.Logger) *session {
	return &session{
		conn:    conn,
		dec:     flv.NewDecoder(),
		metrics: m,
		log:     log,
	}
}

// run processes binary frames until end of stream, a fatal decode
// error, or client disconnect. Fatal errors are reported to the client
// as an error frame before the connection closes.
func (s *session) run() error {
	for {
		messageType, data, err := s.conn.ReadMessage()
		if err != nil {
			// Client gone. Pending bytes mean the stream was cut mid-record.
			if len(s.buf) > 0 {
				s.log.Warn("session closed mid-record", "pending_bytes", len(s.buf))
			}
			return err
		}
		if messageType != websocket.BinaryMessage {
			continue
		}
		if len(data) == 0 {
			return s.finish()
		}

		s.buf = append(s.buf, data...)
		if err := s.drain(); err != nil {
			s.metrics.DecodeErrors.Inc()
			s.writeFrame(frame{Kind: frameError, Error: err.Error()})
			return err
		}
	}
}

// drain emits every complete record currently buffered.
func (s *session) drain() error {
	if !s.headerDone {
		if len(s.buf) < flv.FileHeaderSize {
			return nil
		}
		header, err := flv.ParseFileHeader(s.buf)
		if err != nil {
			return err
		}
		s.buf = s.buf[flv.FileHeaderSize:]
		s.headerDone = true
		s.metrics.BytesConsumed.Add(flv.FileHeaderSize)
		if err := s.writeFrame(newFileHeaderFrame(header)); err != nil {
			return err
		}
	}

	for {
		n, rec, err := s.dec.Decode(s.buf)
		if err != nil {
			return err
		}
		if rec == nil {
			return nil
		}
		s.buf = s.buf[n:]
		s.metrics.BytesConsumed.Add(float64(n))
		s.metrics.RecordsDecoded.WithLabelValues(recordKind(rec)).Inc()
		if err := s.writeFrame(newRecordFrame(rec)); err != nil {
			return err
		}
	}
}

// finish handles the client's end-of-stream marker.
func (s *session) finish() error {
	if !s.headerDone {
		err := fmt.Errorf("%w: stream ended before file header", flv.ErrTruncatedHeader)
		s.writeFrame(frame{Kind: frameError, Error: err.Error()})
		return err
	}
	if len(s.buf) > 0 {
		err := fmt.Errorf("%w: %d pending bytes", flv.ErrTruncatedTag, len(s.buf))
		s.metrics.DecodeErrors.Inc()
		s.writeFrame(frame{Kind: frameError, Error: err.Error()})
		return err
	}
	return s.writeFrame(frame{Kind: frameEOF})
}

func (s *session) writeFrame(f frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

func recordKind(rec flv.Record) string {
	switch r := rec.(type) {
	case flv.PrevTagSize:
		return metrics.KindPrevTagSize
	case flv.Tag:
		switch r.Header.Type.Kind {
		case flv.TagKindAudio:
			return metrics.KindAudio
		case flv.TagKindVideo:
			return metrics.KindVideo
		case flv.TagKindScript:
			return metrics.KindScript
		default:
			return metrics.KindReserved
		}
	default:
		return "unknown"
	}
}
