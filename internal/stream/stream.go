// Package stream opens command-line inputs and outputs, decompressing
// gzip, zlib and zstd input and compressing output on request.
//
// Only gzip and zstd carry a magic number long enough to sniff safely, so
// Auto recognizes those two and treats everything else as plain. Zlib input
// must be requested explicitly.
package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// ErrTooLarge is returned by ReadAll when the decoded input exceeds the
// limit.
var ErrTooLarge = errors.New("stream: input exceeds size limit")

// Format identifies a container format.
type Format int

const (
	Plain Format = iota
	Gzip
	Zlib
	Zstd

	// Auto asks NewReader to detect gzip or zstd from the magic number.
	Auto Format = -1
)

var formatNames = [...]string{"plain", "gzip", "zlib", "zstd"}

func (f Format) String() string {
	if f == Auto {
		return "auto"
	}
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat accepts the names returned by Format.String, plus "none" and
// "zst".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "auto":
		return Auto, nil
	case "none":
		return Plain, nil
	case "zst":
		return Zstd, nil
	}
	for i, name := range formatNames {
		if s == name {
			return Format(i), nil
		}
	}
	return Plain, fmt.Errorf("stream: unknown format %q", s)
}

// Detect identifies gzip or zstd from the first bytes of an input and
// reports Plain for anything else. A two-byte zlib header is too easily
// matched by text to be detected.
func Detect(head []byte) Format {
	switch {
	case len(head) >= 2 && head[0] == 0x1f && head[1] == 0x8b:
		return Gzip
	case len(head) >= 4 && head[0] == 0x28 && head[1] == 0xb5 && head[2] == 0x2f && head[3] == 0xfd:
		return Zstd
	}
	return Plain
}

// readCloser closes a decoder and then the underlying source.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc *readCloser) Close() error {
	var first error
	for _, c := range rc.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// NewReader returns a reader of the content of r decoded as f, along with
// the format used. With Auto the format is detected from the first bytes.
// Closing the result releases the decoder but does not close r.
func NewReader(r io.Reader, f Format) (io.ReadCloser, Format, error) {
	br := bufio.NewReader(r)
	if f == Auto {
		head, err := br.Peek(4)
		if err != nil && err != io.EOF {
			return nil, Plain, err
		}
		f = Detect(head)
	}
	switch f {
	case Gzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, f, fmt.Errorf("stream: %w", err)
		}
		return zr, f, nil
	case Zlib:
		zr, err := zlib.NewReader(br)
		if err != nil {
			return nil, f, fmt.Errorf("stream: %w", err)
		}
		return zr, f, nil
	case Zstd:
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, f, fmt.Errorf("stream: %w", err)
		}
		return dec.IOReadCloser(), f, nil
	case Plain:
		return io.NopCloser(br), Plain, nil
	}
	return nil, f, fmt.Errorf("stream: cannot read %v", f)
}

// Open opens the named file, or standard input for "-", and decodes it as
// f. Errors are not prefixed with the name.
func Open(name string, f Format) (io.ReadCloser, Format, error) {
	if name == "-" {
		return NewReader(os.Stdin, f)
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, Plain, err
	}
	r, f, err := NewReader(file, f)
	if err != nil {
		file.Close()
		return nil, f, err
	}
	return &readCloser{Reader: r, closers: []io.Closer{r, file}}, f, nil
}

// ReadAll reads the decoded content of r, failing with ErrTooLarge once
// more than limit bytes have been produced. A limit of zero or less means
// no limit.
func ReadAll(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, ErrTooLarge
	}
	return data, nil
}

// nopWriteCloser leaves the destination open on Close.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// NewWriter returns a writer that encodes to w in format f. Close flushes
// the encoder but does not close w.
func NewWriter(w io.Writer, f Format) (io.WriteCloser, error) {
	switch f {
	case Plain:
		return nopWriteCloser{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zlib:
		return zlib.NewWriter(w), nil
	case Zstd:
		return zstd.NewWriter(w)
	}
	return nil, fmt.Errorf("stream: cannot write %v", f)
}
