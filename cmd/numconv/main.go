// numconv converts lists of numbers between text styles, text formats and
// fixed-width binary records.
//
// Usage:
//
//	numconv [options] [<filename> ...]
//
// Options:
//
//	-t, --type T      Value type: int8, int16, int32, int64, uint8, uint16,
//	                  uint32, uint64, int128, uint128 or half (default int64).
//	-s, --styles S    Number styles accepted on text input (default Integer).
//	-f, --format F    Output format specifier, such as X8 or D5, or e3 for half.
//	-i, --input M     Input mode: text, le or be (default text).
//	-o, --output M    Output mode: text, le or be (default text).
//	-z, --compress C  Compress output with gzip, zlib or zstd.
//	-Z, --decompress C  Input compression: auto, none, gzip, zlib or zstd.
//	                  The default is auto for text input and none for binary.
//	-p, --planar      Binary data is stored as delta-coded byte planes.
//	-q, --quiet       Do not report individual bad values.
//	-h, --help        Show this help message.
//	--version         Show version information.
//
// The planar layout groups the first byte of every record, then the second,
// and so on, which helps compression of slowly varying values.
//
// Text input holds one value per line; blank lines and lines starting with
// '#' are skipped. Gzip and zstd text input is detected and decoded.
// Binary input is read as is unless -Z names a format. With no file
// arguments, or the argument "-", standard input is read.
//
// Exit codes:
//
//	0: All values converted
//	1: One or more values could not be converted
//	2: Error (bad arguments, unreadable file, etc.)
package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mrjoshuak/go-numeric/half"
	"github.com/mrjoshuak/go-numeric/integer"
	"github.com/mrjoshuak/go-numeric/internal/planar"
	"github.com/mrjoshuak/go-numeric/internal/stream"
	"github.com/mrjoshuak/go-numeric/internal/xdr"
)

const version = "1.0.0"

// maxBinaryInput bounds how much decoded binary input is held in memory.
const maxBinaryInput = 1 << 30

// codec converts one value type between text and binary.
type codec struct {
	width  int
	parse  func(s string, styles integer.NumberStyles) (any, error)
	read   func(r *xdr.Reader) (any, error)
	write  func(w *xdr.Writer, v any) error
	format func(dst []byte, v any, spec string) ([]byte, error)
}

func nativeCodec[T integer.Integer]() codec {
	return codec{
		width: integer.ByteCount[T](),
		parse: func(s string, styles integer.NumberStyles) (any, error) {
			v, err := integer.Parse[T](s, styles)
			return v, err
		},
		read: func(r *xdr.Reader) (any, error) {
			v, err := xdr.Read[T](r)
			return v, err
		},
		write: func(w *xdr.Writer, v any) error { return xdr.Write(w, v.(T)) },
		format: func(dst []byte, v any, spec string) ([]byte, error) {
			return integer.AppendFormat(dst, v.(T), spec)
		},
	}
}

var codecs = map[string]codec{
	"int8":   nativeCodec[int8](),
	"int16":  nativeCodec[int16](),
	"int32":  nativeCodec[int32](),
	"int64":  nativeCodec[int64](),
	"uint8":  nativeCodec[uint8](),
	"uint16": nativeCodec[uint16](),
	"uint32": nativeCodec[uint32](),
	"uint64": nativeCodec[uint64](),
	"int128": {
		width: 16,
		parse: func(s string, styles integer.NumberStyles) (any, error) {
			v, err := integer.ParseInt128(s, styles)
			return v, err
		},
		read: func(r *xdr.Reader) (any, error) {
			v, err := r.ReadInt128()
			return v, err
		},
		write: func(w *xdr.Writer, v any) error { return w.WriteInt128(v.(integer.Int128)) },
		format: func(dst []byte, v any, spec string) ([]byte, error) {
			s, err := integer.FormatInt128(v.(integer.Int128), spec)
			return append(dst, s...), err
		},
	},
	"uint128": {
		width: 16,
		parse: func(s string, styles integer.NumberStyles) (any, error) {
			v, err := integer.ParseUInt128(s, styles)
			return v, err
		},
		read: func(r *xdr.Reader) (any, error) {
			v, err := r.ReadUInt128()
			return v, err
		},
		write: func(w *xdr.Writer, v any) error { return w.WriteUInt128(v.(integer.UInt128)) },
		format: func(dst []byte, v any, spec string) ([]byte, error) {
			s, err := integer.FormatUInt128(v.(integer.UInt128), spec)
			return append(dst, s...), err
		},
	},
	"half": {
		width: 2,
		parse: func(s string, _ integer.NumberStyles) (any, error) {
			v, err := half.Parse(s)
			return v, err
		},
		read: func(r *xdr.Reader) (any, error) {
			v, err := r.ReadHalf()
			return v, err
		},
		write: func(w *xdr.Writer, v any) error { return w.WriteHalf(v.(half.Half)) },
		format: appendHalf,
	},
}

// appendHalf formats h with a spec of a strconv format letter and an
// optional precision, such as "e3" or "f". An empty spec gives the
// shortest round-trip text.
func appendHalf(dst []byte, v any, spec string) ([]byte, error) {
	h := v.(half.Half)
	if spec == "" {
		return append(dst, h.String()...), nil
	}
	switch spec[0] {
	case 'e', 'E', 'f', 'g', 'G':
	default:
		return dst, fmt.Errorf("invalid half format %q", spec)
	}
	prec := -1
	if len(spec) > 1 {
		p, err := integer.Parse[int](spec[1:], integer.StyleNone)
		if err != nil || p > 99 {
			return dst, fmt.Errorf("invalid half format %q", spec)
		}
		prec = p
	}
	return h.AppendText(dst, spec[0], prec), nil
}

type options struct {
	typeName string
	codec    codec
	styles   integer.NumberStyles
	spec     string
	binaryIn bool
	inOrder  xdr.Order
	binOut   bool
	outOrder xdr.Order
	compress stream.Format
	inFormat stream.Format
	planar   bool
	quiet    bool
	files    []string
}

// parseMode parses an input or output mode.
func parseMode(s string) (binary bool, order xdr.Order, err error) {
	if s == "text" {
		return false, xdr.LittleEndian, nil
	}
	order, err = xdr.ParseOrder(s)
	return err == nil, order, err
}

func parseArgs(args []string, stdout io.Writer) (*options, error) {
	opts := &options{typeName: "int64", styles: integer.StyleInteger}
	inFormatSet := false
	value := func(i *int) (string, error) {
		if *i+1 >= len(args) {
			return "", fmt.Errorf("option %s needs a value", args[*i])
		}
		*i++
		return args[*i], nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		var (
			v   string
			err error
		)
		switch arg {
		case "-t", "--type":
			if opts.typeName, err = value(&i); err != nil {
				return nil, err
			}
		case "-s", "--styles":
			if v, err = value(&i); err != nil {
				return nil, err
			}
			if opts.styles, err = integer.ParseStyles(v); err != nil {
				return nil, err
			}
		case "-f", "--format":
			if opts.spec, err = value(&i); err != nil {
				return nil, err
			}
		case "-i", "--input":
			if v, err = value(&i); err != nil {
				return nil, err
			}
			if opts.binaryIn, opts.inOrder, err = parseMode(v); err != nil {
				return nil, err
			}
		case "-o", "--output":
			if v, err = value(&i); err != nil {
				return nil, err
			}
			if opts.binOut, opts.outOrder, err = parseMode(v); err != nil {
				return nil, err
			}
		case "-z", "--compress":
			if v, err = value(&i); err != nil {
				return nil, err
			}
			if opts.compress, err = stream.ParseFormat(v); err != nil {
				return nil, err
			}
			if opts.compress == stream.Auto {
				return nil, fmt.Errorf("output compression cannot be auto")
			}
		case "-Z", "--decompress":
			if v, err = value(&i); err != nil {
				return nil, err
			}
			if opts.inFormat, err = stream.ParseFormat(v); err != nil {
				return nil, err
			}
			inFormatSet = true
		case "-p", "--planar":
			opts.planar = true
		case "-q", "--quiet":
			opts.quiet = true
		case "-h", "--help":
			printUsage(stdout)
			return nil, nil
		case "--version":
			fmt.Fprintf(stdout, "numconv version %s\n", version)
			return nil, nil
		default:
			if strings.HasPrefix(arg, "-") && arg != "-" {
				return nil, fmt.Errorf("unknown option: %s", arg)
			}
			opts.files = append(opts.files, arg)
		}
	}

	c, ok := codecs[opts.typeName]
	if !ok {
		return nil, fmt.Errorf("unknown type %q", opts.typeName)
	}
	opts.codec = c
	zero, err := c.parse("0", integer.StyleInteger)
	if err != nil {
		return nil, err
	}
	if _, err := c.format(nil, zero, opts.spec); err != nil {
		return nil, fmt.Errorf("format %q for %s: %w", opts.spec, opts.typeName, err)
	}
	if !inFormatSet {
		opts.inFormat = stream.Auto
		if opts.binaryIn {
			opts.inFormat = stream.Plain
		}
	}
	if len(opts.files) == 0 {
		opts.files = []string{"-"}
	}
	return opts, nil
}

// converter writes converted values and counts failures.
type converter struct {
	opts   *options
	out    *bufio.Writer
	bin    *xdr.Writer
	stderr io.Writer
	buf    []byte
	bad    int
}

func (c *converter) emit(v any) error {
	if c.opts.binOut {
		return c.opts.codec.write(c.bin, v)
	}
	var err error
	c.buf, err = c.opts.codec.format(c.buf[:0], v, c.opts.spec)
	if err != nil {
		return err
	}
	c.buf = append(c.buf, '\n')
	_, err = c.out.Write(c.buf)
	return err
}

func (c *converter) reject(where string, err error) {
	c.bad++
	if !c.opts.quiet {
		fmt.Fprintf(c.stderr, "%s: %v\n", where, err)
	}
}

func (c *converter) convertText(name string, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		v, err := c.opts.codec.parse(text, c.opts.styles)
		if err != nil {
			c.reject(fmt.Sprintf("%s:%d", name, line), err)
			continue
		}
		if err := c.emit(v); err != nil {
			return err
		}
	}
	return sc.Err()
}

func (c *converter) convertBinary(name string, r io.Reader) error {
	data, err := stream.ReadAll(r, maxBinaryInput)
	if err != nil {
		return err
	}
	if c.opts.planar {
		data = planar.Decode(data, c.opts.codec.width)
	}
	xr := xdr.NewReader(data, c.opts.inOrder)
	for xr.Len() > 0 {
		pos := xr.Pos()
		v, err := c.opts.codec.read(xr)
		if err != nil {
			c.reject(fmt.Sprintf("%s@%d", name, pos), fmt.Errorf("%d trailing bytes", xr.Len()))
			break
		}
		if err := c.emit(v); err != nil {
			return err
		}
	}
	return nil
}

func (c *converter) convertFile(name string) error {
	r, _, err := stream.Open(name, c.opts.inFormat)
	if err != nil {
		return err
	}
	defer r.Close()
	if c.opts.binaryIn {
		return c.convertBinary(name, r)
	}
	return c.convertText(name, r)
}

// run executes numconv and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printUsage(stderr)
		return 2
	}
	if opts == nil {
		return 0
	}

	out := bufio.NewWriter(stdout)
	zw, err := stream.NewWriter(out, opts.compress)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	body := bufio.NewWriter(zw)
	c := &converter{
		opts:   opts,
		out:    body,
		bin:    xdr.NewWriter(body, opts.outOrder),
		stderr: stderr,
	}
	// Planar output needs every record before the planes can be written.
	var records bytes.Buffer
	if opts.planar && opts.binOut {
		c.bin = xdr.NewWriter(&records, opts.outOrder)
	}

	failed := false
	for _, name := range opts.files {
		if err := c.convertFile(name); err != nil {
			fmt.Fprintf(stderr, "%s: error: %v\n", name, err)
			failed = true
		}
	}

	if records.Len() > 0 {
		if _, err := body.Write(planar.Encode(records.Bytes(), opts.codec.width)); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
	}
	if err := errors.Join(body.Flush(), zw.Close(), out.Flush()); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if failed {
		return 2
	}
	if c.bad > 0 {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: numconv [options] [<filename> ...]

Convert lists of numbers between text and fixed-width binary.

Options:
  -t, --type T      int8, int16, int32, int64, uint8, uint16, uint32, uint64,
                    int128, uint128 or half (default int64)
  -s, --styles S    Number styles for text input (default Integer)
  -f, --format F    Output format specifier (X8, B0, D5; e3 or f2 for half)
  -i, --input M     Input mode: text, le or be (default text)
  -o, --output M    Output mode: text, le or be (default text)
  -z, --compress C  Compress output: gzip, zlib or zstd
  -Z, --decompress C  Input compression: auto, none, gzip, zlib or zstd
                    (default auto for text input, none for binary)
  -p, --planar      Binary data is stored as delta-coded byte planes
  -q, --quiet       Do not report individual bad values
  -h, --help        Show this help message
  --version         Show version information

Exit codes:
  0  All values converted
  1  One or more values could not be converted
  2  Error`)
}
