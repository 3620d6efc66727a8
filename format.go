package ilda

import "fmt"

// FormatCode selects the record layout following a header
type FormatCode uint8

const (
	Format3DIndexed   FormatCode = 0
	Format2DIndexed   FormatCode = 1
	FormatPalette     FormatCode = 2
	Format3DTrueColor FormatCode = 4
	Format2DTrueColor FormatCode = 5
)

func (f FormatCode) String() string {
	switch f {
	case Format3DIndexed:
		return "3D indexed"
	case Format2DIndexed:
		return "2D indexed"
	case FormatPalette:
		return "palette"
	case Format3DTrueColor:
		return "3D true color"
	case Format2DTrueColor:
		return "2D true color"
	}
	return fmt.Sprintf("unknown(%d)", uint8(f))
}

// Supported reports whether the decoder understands the format code
func (f FormatCode) Supported() bool {
	return f.recordSize() > 0
}

// recordSize is the size in bytes of a single record (or palette entry)
func (f FormatCode) recordSize() int {
	switch f {
	case Format3DIndexed:
		return 8
	case Format2DIndexed:
		return 6
	case FormatPalette:
		return 3
	case Format3DTrueColor:
		return 10
	case Format2DTrueColor:
		return 8
	}
	return 0
}
