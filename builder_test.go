package ilda

import (
	"bytes"
	"encoding/binary"
)

// ildBuilder assembles synthetic ILDA streams for tests
type ildBuilder struct {
	buf bytes.Buffer
}

func (b *ildBuilder) header(format FormatCode, name, company string, count, number, total uint16) *ildBuilder {
	b.buf.WriteString("ILDA")
	b.buf.Write([]byte{0, 0, 0, byte(format)})
	b.buf.Write(padded(name))
	b.buf.Write(padded(company))
	_ = binary.Write(&b.buf, binary.BigEndian, []uint16{count, number, total})
	b.buf.Write([]byte{0, 0})
	return b
}

func (b *ildBuilder) raw(data ...byte) *ildBuilder {
	b.buf.Write(data)
	return b
}

func (b *ildBuilder) coords(vs ...int16) {
	for _, v := range vs {
		_ = binary.Write(&b.buf, binary.BigEndian, v)
	}
}

func (b *ildBuilder) point3DIndexed(x, y, z int16, status, index byte) *ildBuilder {
	b.coords(x, y, z)
	b.buf.Write([]byte{status, index})
	return b
}

func (b *ildBuilder) point2DIndexed(x, y int16, status, index byte) *ildBuilder {
	b.coords(x, y)
	b.buf.Write([]byte{status, index})
	return b
}

func (b *ildBuilder) point3DTrueColor(x, y, z int16, status, blue, green, red byte) *ildBuilder {
	b.coords(x, y, z)
	b.buf.Write([]byte{status, blue, green, red})
	return b
}

func (b *ildBuilder) point2DTrueColor(x, y int16, status, blue, green, red byte) *ildBuilder {
	b.coords(x, y)
	b.buf.Write([]byte{status, blue, green, red})
	return b
}

func (b *ildBuilder) bytes() []byte {
	return b.buf.Bytes()
}

func (b *ildBuilder) reader() *bytes.Reader {
	return bytes.NewReader(b.buf.Bytes())
}

func padded(s string) []byte {
	out := make([]byte, 8)
	copy(out, s)
	return out
}
