package ilda

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

type ParseMode uint8

const (
	ParseFull ParseMode = iota
	ParseHeadersOnly
)

// ParseOptions represents the parsing options passed to Parse
type ParseOptions struct {
	// Mode determines how much of the stream is decoded
	//
	// the default is ParseFull - headers and points
	//
	// ParseHeadersOnly skips over point records, useful for just listing section metadata
	Mode ParseMode
	// Strict determines whether corrupt input (bad magic, unsupported format code,
	// truncated records) causes Parse to return an error
	//
	// the frames decoded before the problem are returned either way
	Strict bool
	// MaxFrames stops parsing once this many frames have been decoded (0 means no limit)
	MaxFrames int
	// Logger receives debug level section details and the stop reason
	//
	// nil disables logging
	Logger *zerolog.Logger
}

func (o *ParseOptions) logger() zerolog.Logger {
	if o == nil || o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}

// Result represents the outcome of Parse
type Result struct {
	// Frames is the decoded, non-empty frames in stream order
	Frames []Frame
	// Headers is every section header read, including palette and empty sections
	Headers []Header
	// Reason is why parsing stopped
	Reason StopReason
	// StopOffset is the byte offset of the header at which parsing stopped
	StopOffset int64
	// BytesRead is the total number of bytes consumed
	BytesRead int64
}

// Err returns an error describing corrupt input, or nil if parsing ended cleanly
func (r *Result) Err() error {
	if err := r.Reason.Err(); err != nil {
		return fmt.Errorf("%w (section at 0x%X)", err, r.StopOffset)
	}
	return nil
}

// Parse decodes an ILDA stream from the supplied reader with the supplied ParseOptions
//
// if the ParseOptions supplied is nil, default (full, lenient) options are used
//
// corrupt input ends parsing early without an error unless ParseOptions.Strict is set -
// Result.Reason tells why parsing stopped. An error is always returned if the reader itself fails
func Parse(r io.Reader, options *ParseOptions) (*Result, error) {
	if options == nil {
		options = &ParseOptions{
			Mode: ParseFull,
		}
	}
	d := NewDecoder(r, options)
	result := &Result{
		Frames:  make([]Frame, 0),
		Headers: make([]Header, 0),
	}
	for {
		s, ok := d.NextSection()
		if !ok {
			break
		}
		result.Headers = append(result.Headers, s.Header)
		if f, ok := s.Frame(); ok {
			result.Frames = append(result.Frames, f)
			if options.MaxFrames > 0 && len(result.Frames) >= options.MaxFrames && d.Reason() == StopNone {
				d.stop(StopFrameLimit, d.Offset(), nil)
				break
			}
		}
	}
	result.Reason = d.Reason()
	result.StopOffset = d.StopOffset()
	result.BytesRead = d.Offset()
	if err := d.Err(); err != nil {
		return result, err
	}
	if options.Strict {
		if err := result.Err(); err != nil {
			return result, err
		}
	}
	return result, nil
}

// ParseFrames is a convenience for Parse with default options, returning just the frames
//
// frames decoded before any corrupt input are returned, only a reader failure yields an error
func ParseFrames(r io.Reader) ([]Frame, error) {
	result, err := Parse(r, nil)
	if result == nil {
		return nil, err
	}
	return result.Frames, err
}
