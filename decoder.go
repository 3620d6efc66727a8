package ilda

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

var (
	ErrBadMagic          = errors.New("invalid ILDA header: missing 'ILDA' signature")
	ErrUnsupportedFormat = errors.New("unsupported ILDA format code")
	ErrTruncatedRecord   = errors.New("truncated ILDA record data")
)

// StopReason describes why decoding ended
type StopReason uint8

const (
	// StopNone means decoding has not ended yet
	StopNone StopReason = iota
	// StopEndOfStream is the normal end - fewer than 32 bytes were left for a header
	StopEndOfStream
	// StopBadMagic means a header did not start with "ILDA"
	StopBadMagic
	// StopUnsupportedFormat means a header carried a format code other than 0, 1, 2, 4 or 5
	StopUnsupportedFormat
	// StopTruncatedRecord means the stream ended inside a section's records
	StopTruncatedRecord
	// StopFrameLimit means ParseOptions.MaxFrames frames were decoded
	StopFrameLimit
	// StopReadError means the underlying reader failed
	StopReadError
)

func (s StopReason) String() string {
	switch s {
	case StopNone:
		return "none"
	case StopEndOfStream:
		return "end of stream"
	case StopBadMagic:
		return "bad magic"
	case StopUnsupportedFormat:
		return "unsupported format"
	case StopTruncatedRecord:
		return "truncated record"
	case StopFrameLimit:
		return "frame limit"
	case StopReadError:
		return "read error"
	}
	return fmt.Sprintf("StopReason(%d)", uint8(s))
}

// Clean reports whether the reason is a normal, non-corrupt ending
func (s StopReason) Clean() bool {
	return s == StopEndOfStream || s == StopFrameLimit
}

// Err returns the sentinel error for reasons that indicate corrupt input (nil otherwise)
func (s StopReason) Err() error {
	switch s {
	case StopBadMagic:
		return ErrBadMagic
	case StopUnsupportedFormat:
		return ErrUnsupportedFormat
	case StopTruncatedRecord:
		return ErrTruncatedRecord
	}
	return nil
}

// Section is one header together with its decoded points
//
// palette sections and sections read with ParseHeadersOnly have no points
type Section struct {
	Header Header
	Points []Point
	// Offset is the byte offset of the header within the stream
	Offset int64
	// Truncated is set when the stream ended inside the section's records
	Truncated bool
}

// Frame converts the section to a Frame
//
// ok is false for palette sections and sections without points
func (s Section) Frame() (f Frame, ok bool) {
	if s.Header.Format == FormatPalette || len(s.Points) == 0 {
		return Frame{}, false
	}
	return Frame{
		Name:    s.Header.Name,
		Company: s.Header.Company,
		Points:  s.Points,
		Format:  s.Header.Format,
		Number:  s.Header.FrameNumber,
		Total:   s.Header.TotalFrames,
	}, true
}

// Decoder reads ILDA sections from a stream one at a time
//
// a Decoder is not safe for concurrent use
type Decoder struct {
	r           *countingReader
	logger      zerolog.Logger
	headersOnly bool
	reason      StopReason
	stopOffset  int64
	err         error
}

// NewDecoder creates a Decoder reading from r
//
// if options is nil, defaults are used
func NewDecoder(r io.Reader, options *ParseOptions) *Decoder {
	if options == nil {
		options = &ParseOptions{}
	}
	return &Decoder{
		r:           &countingReader{r: r},
		logger:      options.logger(),
		headersOnly: options.Mode == ParseHeadersOnly,
	}
}

// Next returns the next non-empty frame
//
// palette and empty sections are passed over. ok is false once decoding has stopped - see Reason
func (d *Decoder) Next() (f Frame, ok bool) {
	for {
		s, more := d.NextSection()
		if !more {
			return Frame{}, false
		}
		if f, ok = s.Frame(); ok {
			return f, true
		}
	}
}

// NextSection returns the next section, whatever its format or point count
//
// a truncated section is still returned (with the points that were complete), after which decoding stops
func (d *Decoder) NextSection() (Section, bool) {
	if d.reason != StopNone {
		return Section{}, false
	}
	start := d.r.n
	hdr, err := readHeader(d.r)
	if err != nil {
		switch {
		case errors.Is(err, errEndOfStream):
			d.stop(StopEndOfStream, start, nil)
		case errors.Is(err, ErrBadMagic):
			d.stop(StopBadMagic, start, nil)
		default:
			d.stop(StopReadError, start, fmt.Errorf("failed to read header at 0x%X: %w", start, err))
		}
		return Section{}, false
	}
	if !hdr.Format.Supported() {
		d.logger.Debug().Int64("offset", start).Uint8("format", uint8(hdr.Format)).Msg("unsupported format code")
		d.stop(StopUnsupportedFormat, start, nil)
		return Section{}, false
	}
	d.logger.Debug().
		Int64("offset", start).
		Stringer("format", hdr.Format).
		Str("name", hdr.Name).
		Uint16("records", hdr.RecordCount).
		Uint16("frame", hdr.FrameNumber).
		Msg("section")
	result := Section{Header: hdr, Offset: start}
	count, size := int(hdr.RecordCount), hdr.Format.recordSize()
	if hdr.Format == FormatPalette || d.headersOnly {
		_, result.Truncated, err = skipRecords(d.r, count, size)
	} else {
		result.Points, _, result.Truncated, err = readRecords(d.r, count, size, recordDecoders[hdr.Format])
	}
	if err != nil {
		d.stop(StopReadError, start, fmt.Errorf("failed to read %s records at 0x%X: %w", hdr.Format, start, err))
		return Section{}, false
	}
	if result.Truncated {
		d.stop(StopTruncatedRecord, start, nil)
	}
	return result, true
}

// Reason returns why decoding stopped (StopNone while still decoding)
func (d *Decoder) Reason() StopReason {
	return d.reason
}

// Err returns the underlying reader failure, if any
//
// corrupt input is not an error here - see Reason
func (d *Decoder) Err() error {
	return d.err
}

// Offset returns the number of bytes consumed from the stream so far
func (d *Decoder) Offset() int64 {
	return d.r.n
}

// StopOffset returns the byte offset of the header at which decoding stopped
func (d *Decoder) StopOffset() int64 {
	return d.stopOffset
}

func (d *Decoder) stop(reason StopReason, offset int64, err error) {
	d.reason, d.stopOffset, d.err = reason, offset, err
	var ev *zerolog.Event
	if reason.Clean() {
		ev = d.logger.Debug()
	} else {
		ev = d.logger.Warn()
	}
	ev.Stringer("reason", reason).Int64("offset", offset).Int64("consumed", d.r.n).Err(err).Msg("decoding stopped")
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
