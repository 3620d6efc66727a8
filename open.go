package ilda

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// NewReader returns a reader over the ILDA bytes in r
//
// gzip and zstd compressed streams are detected by their magic bytes and decompressed,
// anything else is passed through unchanged. Closing the result does not close r
func NewReader(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, err
	}
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		return zr, nil
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1), zstd.WithDecoderLowmem(true))
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		return zr.IOReadCloser(), nil
	}
	return io.NopCloser(br), nil
}

type fileReader struct {
	io.ReadCloser
	f *os.File
}

func (fr *fileReader) Close() error {
	err := fr.ReadCloser.Close()
	if ferr := fr.f.Close(); err == nil {
		err = ferr
	}
	return err
}

// OpenFile opens an .ild file (optionally gzip or zstd compressed) for reading
func OpenFile(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	return &fileReader{ReadCloser: r, f: f}, nil
}

// ParseFile opens and parses an .ild file - see Parse
func ParseFile(name string, options *ParseOptions) (*Result, error) {
	r, err := OpenFile(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = r.Close()
	}()
	return Parse(r, options)
}
