package ilda

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Point is a normalized point
//
// X and Y are the signed source coordinates shifted by 32768 (the stored value is X-32768).
// Z coordinates of 3D formats are not retained
type Point struct {
	X, Y     uint16
	R, G, B  uint8
	Blanking bool
}

// Color returns the point's colour
func (p Point) Color() Color {
	return Color{R: p.R, G: p.G, B: p.B}
}

// Frame represents a decoded, non-empty point section
type Frame struct {
	Name    string
	Company string
	Points  []Point
	// Format is the format code the points were decoded from
	Format FormatCode
	// Number and Total are the informational frame number / total frames from the header
	Number uint16
	Total  uint16
}

// Fingerprint returns a hash of the frame's points (names and header numbers are not included)
//
// identical drawings repeated in a looping animation share the same fingerprint
func (f Frame) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, p := range f.Points {
		binary.BigEndian.PutUint16(buf[0:2], p.X)
		binary.BigEndian.PutUint16(buf[2:4], p.Y)
		buf[4], buf[5], buf[6] = p.R, p.G, p.B
		buf[7] = 0
		if p.Blanking {
			buf[7] = 1
		}
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// BlankedPoints returns the number of points with the blanking bit set
func (f Frame) BlankedPoints() int {
	n := 0
	for _, p := range f.Points {
		if p.Blanking {
			n++
		}
	}
	return n
}

// Summary describes a decoded frame sequence
type Summary struct {
	Frames         int
	UniqueFrames   int
	Points         int
	BlankedPoints  int
	MaxPoints      int
	FramesByFormat map[FormatCode]int
}

// Summarize computes a Summary over frames
func Summarize(frames []Frame) Summary {
	result := Summary{
		Frames:         len(frames),
		FramesByFormat: make(map[FormatCode]int),
	}
	seen := make(map[uint64]struct{}, len(frames))
	for _, f := range frames {
		result.Points += len(f.Points)
		result.BlankedPoints += f.BlankedPoints()
		result.MaxPoints = max(result.MaxPoints, len(f.Points))
		result.FramesByFormat[f.Format]++
		seen[f.Fingerprint()] = struct{}{}
	}
	result.UniqueFrames = len(seen)
	return result
}
