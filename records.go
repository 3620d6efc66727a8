package ilda

import (
	"encoding/binary"
	"errors"
	"io"
)

const blankingBit = 0x40

type recordDecoder func(rec []byte) Point

var recordDecoders = map[FormatCode]recordDecoder{
	Format3DIndexed:   decode3DIndexed,
	Format2DIndexed:   decode2DIndexed,
	Format3DTrueColor: decode3DTrueColor,
	Format2DTrueColor: decode2DTrueColor,
}

// readRecords reads count records of size bytes and decodes each complete one
//
// a short read is not an error: the trailing partial record is discarded and truncated is true.
// n is the number of bytes consumed from r
func readRecords(r io.Reader, count, size int, decode recordDecoder) (points []Point, n int, truncated bool, err error) {
	buf := make([]byte, count*size)
	n, err = io.ReadFull(r, buf)
	if err != nil {
		if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, n, false, err
		}
		truncated, err = true, nil
	}
	complete := n / size
	points = make([]Point, 0, complete)
	for i := 0; i < complete; i++ {
		points = append(points, decode(buf[i*size:(i+1)*size]))
	}
	return points, n, truncated, nil
}

// skipRecords discards count records of size bytes
func skipRecords(r io.Reader, count, size int) (n int, truncated bool, err error) {
	want := int64(count * size)
	copied, err := io.CopyN(io.Discard, r, want)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return int(copied), true, nil
		}
		return int(copied), false, err
	}
	return int(copied), false, nil
}

func coord(raw []byte) uint16 {
	return uint16(int32(int16(binary.BigEndian.Uint16(raw))) + 32768)
}

func blanked(status byte) bool {
	return status&blankingBit != 0
}

// X, Y, Z, status, colour index
func decode3DIndexed(rec []byte) Point {
	c := IndexColor(rec[7])
	return Point{
		X:        coord(rec[0:2]),
		Y:        coord(rec[2:4]),
		R:        c.R,
		G:        c.G,
		B:        c.B,
		Blanking: blanked(rec[6]),
	}
}

// X, Y, status, colour index
func decode2DIndexed(rec []byte) Point {
	c := IndexColor(rec[5])
	return Point{
		X:        coord(rec[0:2]),
		Y:        coord(rec[2:4]),
		R:        c.R,
		G:        c.G,
		B:        c.B,
		Blanking: blanked(rec[4]),
	}
}

// X, Y, Z, status, blue, green, red
func decode3DTrueColor(rec []byte) Point {
	return Point{
		X:        coord(rec[0:2]),
		Y:        coord(rec[2:4]),
		B:        rec[7],
		G:        rec[8],
		R:        rec[9],
		Blanking: blanked(rec[6]),
	}
}

// X, Y, status, blue, green, red
func decode2DTrueColor(rec []byte) Point {
	return Point{
		X:        coord(rec[0:2]),
		Y:        coord(rec[2:4]),
		B:        rec[5],
		G:        rec[6],
		R:        rec[7],
		Blanking: blanked(rec[4]),
	}
}
