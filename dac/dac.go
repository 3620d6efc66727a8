// Package dac converts decoded ILDA frames into the point layout expected by laser DACs
//
// coordinates are rescaled to the DAC bit depth, frames are clamped to the device's maximum
// point count and blanked points are forced dark. No device I/O is done here
package dac

import (
	"errors"
	"fmt"

	"github.com/mishiro-goudou-company/ilda"
)

// Point is a single DAC point (the Helios point layout)
type Point struct {
	X, Y       uint16
	R, G, B, I uint8
}

// Options describes the target device
type Options struct {
	// Bits is the coordinate resolution of the device (1..16)
	Bits uint
	// MaxPoints is the maximum number of points per frame; excess points are dropped from the tail
	//
	// 0 means no limit
	MaxPoints int
	// Intensity is the I channel value for visible points
	Intensity uint8
}

// DefaultOptions returns options for a 12-bit, 4095 point per frame device
func DefaultOptions() Options {
	return Options{
		Bits:      12,
		MaxPoints: 4095,
		Intensity: 255,
	}
}

// Validate checks the options
func (o Options) Validate() error {
	if o.Bits < 1 || o.Bits > 16 {
		return fmt.Errorf("invalid coordinate bits %d (must be 1..16)", o.Bits)
	}
	if o.MaxPoints < 0 {
		return errors.New("max points must not be negative")
	}
	return nil
}

func (o Options) scale(v uint16) uint16 {
	full := uint32(1)<<o.Bits - 1
	return uint16(uint32(v) * full / 0xFFFF)
}

// ConvertFrame converts a single frame
func ConvertFrame(f ilda.Frame, options Options) ([]Point, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return convertFrame(f, options), nil
}

func convertFrame(f ilda.Frame, options Options) []Point {
	src := f.Points
	if options.MaxPoints > 0 && len(src) > options.MaxPoints {
		src = src[:options.MaxPoints]
	}
	result := make([]Point, len(src))
	for i, p := range src {
		result[i].X = options.scale(p.X)
		result[i].Y = options.scale(p.Y)
		if !p.Blanking {
			result[i].R, result[i].G, result[i].B = p.R, p.G, p.B
			result[i].I = options.Intensity
		}
	}
	return result
}

// Convert converts frames in order, frames without points are skipped
func Convert(frames []ilda.Frame, options Options) ([][]Point, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	result := make([][]Point, 0, len(frames))
	for _, f := range frames {
		if pts := convertFrame(f, options); len(pts) > 0 {
			result = append(result, pts)
		}
	}
	return result, nil
}
