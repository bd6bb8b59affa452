// Package xdr reads and writes fixed-width binary records of the numeric
// types in this module: the native integers, Int128, UInt128, Half and the
// IEEE 754 floats, in either byte order.
//
// Reader works over a byte slice with bounds checking on every read.
// Writer encodes to an io.Writer and keeps the first error it sees, so a
// run of writes can be checked once at the end.
package xdr

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/mrjoshuak/go-numeric/half"
	"github.com/mrjoshuak/go-numeric/integer"
)

var (
	// ErrShortBuffer is returned when a read runs past the end of the data.
	ErrShortBuffer = errors.New("xdr: buffer too short")

	// ErrNegativeSize is returned when a size parameter is negative.
	ErrNegativeSize = errors.New("xdr: negative size")
)

// Order is the byte order of a record.
type Order bool

const (
	LittleEndian Order = false
	BigEndian    Order = true
)

func (o Order) String() string {
	if o == BigEndian {
		return "be"
	}
	return "le"
}

// ParseOrder accepts "le", "little", "be" or "big".
func ParseOrder(s string) (Order, error) {
	switch s {
	case "le", "little":
		return LittleEndian, nil
	case "be", "big":
		return BigEndian, nil
	}
	return LittleEndian, fmt.Errorf("xdr: unknown byte order %q", s)
}

// isUnsigned reports whether T has no sign bit.
func isUnsigned[T integer.Integer]() bool {
	return ^T(0) > 0
}

// Reader decodes records from a byte slice.
type Reader struct {
	data  []byte
	pos   int
	order Order
}

// NewReader returns a Reader over data.
func NewReader(data []byte, order Order) *Reader {
	return &Reader{data: data, order: order}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int { return len(r.data) - r.pos }

// Pos returns the current read position.
func (r *Reader) Pos() int { return r.pos }

// Order returns the byte order of r.
func (r *Reader) Order() Order { return r.order }

// Skip advances the read position by n bytes.
func (r *Reader) Skip(n int) error {
	if n < 0 {
		return ErrNegativeSize
	}
	if n > r.Len() {
		return ErrShortBuffer
	}
	r.pos += n
	return nil
}

// next returns the following n bytes and consumes them.
func (r *Reader) next(n int) ([]byte, error) {
	if n > r.Len() {
		return nil, ErrShortBuffer
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Read decodes one T of integer.ByteCount[T] bytes.
func Read[T integer.Integer](r *Reader) (T, error) {
	b, err := r.next(integer.ByteCount[T]())
	if err != nil {
		return 0, err
	}
	var v T
	if r.order == BigEndian {
		v, _ = integer.TryReadBigEndian[T](b, isUnsigned[T]())
	} else {
		v, _ = integer.TryReadLittleEndian[T](b, isUnsigned[T]())
	}
	return v, nil
}

// ReadVarWidth decodes an integer stored in n bytes, which may be narrower
// or wider than T. The stored value is two's complement unless unsigned is
// set. It fails with integer.ErrOverflow when the value does not fit in T.
func ReadVarWidth[T integer.Integer](r *Reader, n int, unsigned bool) (T, error) {
	if n < 0 {
		return 0, ErrNegativeSize
	}
	b, err := r.next(n)
	if err != nil {
		return 0, err
	}
	var (
		v  T
		ok bool
	)
	if r.order == BigEndian {
		v, ok = integer.TryReadBigEndian[T](b, unsigned)
	} else {
		v, ok = integer.TryReadLittleEndian[T](b, unsigned)
	}
	if !ok {
		return 0, fmt.Errorf("xdr: %d-byte value at offset %d: %w", n, r.pos-n, integer.ErrOverflow)
	}
	return v, nil
}

// ReadInt128 decodes a 16-byte Int128.
func (r *Reader) ReadInt128() (integer.Int128, error) {
	b, err := r.next(16)
	if err != nil {
		return integer.Int128{}, err
	}
	if r.order == BigEndian {
		v, _ := integer.TryReadInt128BigEndian(b, false)
		return v, nil
	}
	v, _ := integer.TryReadInt128LittleEndian(b, false)
	return v, nil
}

// ReadUInt128 decodes a 16-byte UInt128.
func (r *Reader) ReadUInt128() (integer.UInt128, error) {
	b, err := r.next(16)
	if err != nil {
		return integer.UInt128{}, err
	}
	if r.order == BigEndian {
		v, _ := integer.TryReadUInt128BigEndian(b, true)
		return v, nil
	}
	v, _ := integer.TryReadUInt128LittleEndian(b, true)
	return v, nil
}

// ReadHalf decodes a 2-byte binary16 value.
func (r *Reader) ReadHalf() (half.Half, error) {
	bits, err := Read[uint16](r)
	return half.FromBits(bits), err
}

// ReadFloat32 decodes a 4-byte IEEE 754 value.
func (r *Reader) ReadFloat32() (float32, error) {
	bits, err := Read[uint32](r)
	return math.Float32frombits(bits), err
}

// ReadFloat64 decodes an 8-byte IEEE 754 value.
func (r *Reader) ReadFloat64() (float64, error) {
	bits, err := Read[uint64](r)
	return math.Float64frombits(bits), err
}

// Writer encodes records to an io.Writer. After the first failed write
// every later write is a no-op returning the same error.
type Writer struct {
	w     io.Writer
	order Order
	buf   [16]byte
	n     int64
	err   error
}

// NewWriter returns a Writer encoding to w.
func NewWriter(w io.Writer, order Order) *Writer {
	return &Writer{w: w, order: order}
}

// Err returns the first write error, if any.
func (w *Writer) Err() error { return w.err }

// Count returns the number of bytes written so far.
func (w *Writer) Count() int64 { return w.n }

func (w *Writer) flush(n int) error {
	if w.err != nil {
		return w.err
	}
	m, err := w.w.Write(w.buf[:n])
	w.n += int64(m)
	w.err = err
	return err
}

// Write encodes v in integer.ByteCount[T] bytes.
func Write[T integer.Integer](w *Writer, v T) error {
	var n int
	if w.order == BigEndian {
		n, _ = integer.TryWriteBigEndian(w.buf[:], v)
	} else {
		n, _ = integer.TryWriteLittleEndian(w.buf[:], v)
	}
	return w.flush(n)
}

// WriteInt128 encodes v in 16 bytes.
func (w *Writer) WriteInt128(v integer.Int128) error {
	if w.order == BigEndian {
		v.TryWriteBigEndian(w.buf[:])
	} else {
		v.TryWriteLittleEndian(w.buf[:])
	}
	return w.flush(16)
}

// WriteUInt128 encodes v in 16 bytes.
func (w *Writer) WriteUInt128(v integer.UInt128) error {
	if w.order == BigEndian {
		v.TryWriteBigEndian(w.buf[:])
	} else {
		v.TryWriteLittleEndian(w.buf[:])
	}
	return w.flush(16)
}

// WriteHalf encodes h in 2 bytes.
func (w *Writer) WriteHalf(h half.Half) error {
	return Write(w, h.Bits())
}

// WriteFloat32 encodes f in 4 bytes.
func (w *Writer) WriteFloat32(f float32) error {
	return Write(w, math.Float32bits(f))
}

// WriteFloat64 encodes f in 8 bytes.
func (w *Writer) WriteFloat64(f float64) error {
	return Write(w, math.Float64bits(f))
}
