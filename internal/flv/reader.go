package flv

import (
	"fmt"
	"io"
	"os"
)

const defaultChunkSize = 32 * 1024

// Reader drives a Decoder over an io.Reader byte source. It owns the
// pending-byte buffer: on insufficient data it reads another chunk from
// the source and retries, so Next blocks only inside the source's Read.
type Reader struct {
	src        io.Reader
	dec        *Decoder
	buf        []byte
	scratch    []byte
	headerDone bool
}

// NewReader returns a Reader decoding from src with the default chunk
// size.
func NewReader(src io.Reader) *Reader {
	return NewReaderSize(src, defaultChunkSize)
}

// NewReaderSize is NewReader with an explicit per-read chunk size.
func NewReaderSize(src io.Reader, chunkSize int) *Reader {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	return &Reader{
		src:     src,
		dec:     NewDecoder(),
		scratch: make([]byte, chunkSize),
	}
}

// ReadFileHeader reads and parses the 9-byte file header. It must be
// called once, before the first Next.
func (r *Reader) ReadFileHeader() (FileHeader, error) {
	if r.headerDone {
		return FileHeader{}, fmt.Errorf("flv: file header already read")
	}
	for len(r.buf) < FileHeaderSize {
		if err := r.fill(); err != nil {
			if err == io.EOF {
				return FileHeader{}, fmt.Errorf("%w: got %d of %d bytes", ErrTruncatedHeader, len(r.buf), FileHeaderSize)
			}
			return FileHeader{}, err
		}
	}
	header, err := ParseFileHeader(r.buf)
	if err != nil {
		return FileHeader{}, err
	}
	r.buf = r.buf[FileHeaderSize:]
	r.headerDone = true
	return header, nil
}

// Next returns the next record in stream order. It returns io.EOF when
// the source is exhausted exactly on a record boundary and
// ErrTruncatedTag when bytes of an incomplete record remain.
func (r *Reader) Next() (Record, error) {
	if !r.headerDone {
		return nil, fmt.Errorf("flv: Next called before ReadFileHeader")
	}
	for {
		n, rec, err := r.dec.Decode(r.buf)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			r.buf = r.buf[n:]
			return rec, nil
		}
		if err := r.fill(); err != nil {
			if err == io.EOF {
				if len(r.buf) == 0 {
					return nil, io.EOF
				}
				return nil, fmt.Errorf("%w: %d pending bytes", ErrTruncatedTag, len(r.buf))
			}
			return nil, err
		}
	}
}

// fill appends one source read to the pending buffer. A read that
// returns bytes is a success even if it also reports an error; the
// error will surface again on the next empty read.
func (r *Reader) fill() error {
	n, err := r.src.Read(r.scratch)
	if n > 0 {
		r.buf = append(r.buf, r.scratch[:n]...)
		return nil
	}
	if err == nil {
		err = io.ErrNoProgress
	}
	return err
}

// File is an open FLV file: its parsed header plus a Reader positioned
// at the first previous-tag-size field.
type File struct {
	*Reader
	Header FileHeader
	Size   int64

	f *os.File
}

// Open opens path, parses the file header, and returns the file ready
// for Next calls.
func Open(path string) (*File, error) {
	return OpenSize(path, defaultChunkSize)
}

// OpenSize is Open with an explicit per-read chunk size.
func OpenSize(path string, chunkSize int) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	r := NewReaderSize(f, chunkSize)
	header, err := r.ReadFileHeader()
	if err != nil {
		f.Close()
		return nil, err
	}
	return &File{
		Reader: r,
		Header: header,
		Size:   info.Size(),
		f:      f,
	}, nil
}

// Close closes the underlying file.
func (f *File) Close() error {
	return f.f.Close()
}
