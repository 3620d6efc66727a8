package ilda

import (
	"encoding/binary"
	"errors"
	"io"
	"strings"
)

const (
	headerSize = 32
	magic      = "ILDA"
)

// Header represents a parsed ILDA section header (32 bytes)
type Header struct {
	Format      FormatCode
	Name        string
	Company     string
	RecordCount uint16
	FrameNumber uint16
	TotalFrames uint16
	Projector   uint8
}

var errEndOfStream = errors.New("end of stream")

// readHeader reads the next section header
//
// errEndOfStream is returned when fewer than 32 bytes remain, ErrBadMagic when
// the block does not start with "ILDA"
func readHeader(r io.Reader) (Header, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, errEndOfStream
		}
		return Header{}, err
	}
	return parseHeader(buf)
}

func parseHeader(buf [headerSize]byte) (Header, error) {
	if string(buf[0:4]) != magic {
		return Header{}, ErrBadMagic
	}
	return Header{
		Format:      FormatCode(buf[7]),
		Name:        stringed(buf[8:16]),
		Company:     stringed(buf[16:24]),
		RecordCount: binary.BigEndian.Uint16(buf[24:26]),
		FrameNumber: binary.BigEndian.Uint16(buf[26:28]),
		TotalFrames: binary.BigEndian.Uint16(buf[28:30]),
		Projector:   buf[30],
	}, nil
}

// stringed decodes a fixed width, NUL padded ASCII field
//
// bytes outside 7-bit ASCII are dropped
func stringed(data []byte) string {
	clean := make([]byte, 0, len(data))
	for _, b := range data {
		if b < 0x80 {
			clean = append(clean, b)
		}
	}
	s := strings.Trim(string(clean), "\x00")
	return strings.TrimRight(s, "\x00 \t\r\n")
}
