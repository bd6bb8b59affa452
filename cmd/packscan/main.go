// packscan reports the first UTF-16 code unit in each input that matches a
// set of values, using the packed search kernels.
//
// Usage:
//
//	packscan <search> [options] [<filename> ...]
//
// Searches (exactly one):
//
//	-any CHARS         First unit equal to one of up to three characters.
//	-except CHARS      First unit equal to none of up to three characters.
//	-range LO-HI       First unit in [LO, HI].
//	-except-range LO-HI  First unit outside [LO, HI].
//
// LO and HI are single characters, decimal code units or 0x-prefixed hex.
//
// Options:
//
//	-e, --encoding E  Input encoding (default utf-16le). Any WHATWG encoding
//	                  label is accepted, such as utf-8 or windows-1252.
//	-Z, --decompress C  Input compression: auto (gzip or zstd), none, gzip,
//	                  zlib or zstd (default auto).
//	-q, --quiet       Only set the exit code.
//	--tier            Print the active vector tier and exit.
//	-h, --help        Show this help message.
//	--version         Show version information.
//
// Exit codes:
//
//	0: Every input has a match
//	1: One or more inputs have no match
//	2: Error (bad arguments, unreadable file, etc.)
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/mrjoshuak/go-numeric/integer"
	"github.com/mrjoshuak/go-numeric/internal/stream"
	"github.com/mrjoshuak/go-numeric/internal/xdr"
	"github.com/mrjoshuak/go-numeric/packed"
)

const version = "1.0.0"

// maxInput bounds the decoded size of one input.
const maxInput = 1 << 30

// search returns the index of the first matching unit, or -1.
type search func(s []uint16) int

// units converts a command-line string to UTF-16 code units.
func units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// parseUnit parses one end of a range.
func parseUnit(s string) (uint16, error) {
	if u := units(s); len(u) == 1 {
		return u[0], nil
	}
	if hex, ok := strings.CutPrefix(s, "0x"); ok {
		return integer.Parse[uint16](hex, integer.StyleHexNumber)
	}
	return integer.Parse[uint16](s, integer.StyleInteger)
}

func parseRange(s string) (lo, hi uint16, err error) {
	// Split at the first '-' after the first character so "--/" means
	// '-' through '/'.
	k := strings.Index(s[min(1, len(s)):], "-")
	if k < 0 {
		return 0, 0, fmt.Errorf("range %q is not LO-HI", s)
	}
	k += min(1, len(s))
	if lo, err = parseUnit(s[:k]); err != nil {
		return 0, 0, fmt.Errorf("range %q: %w", s, err)
	}
	if hi, err = parseUnit(s[k+1:]); err != nil {
		return 0, 0, fmt.Errorf("range %q: %w", s, err)
	}
	return lo, hi, nil
}

func anyOf(chars string, except bool) (search, error) {
	u := units(chars)
	switch {
	case len(u) == 1 && except:
		return func(s []uint16) int { return packed.IndexOfAnyExcept(s, u[0]) }, nil
	case len(u) == 1:
		return func(s []uint16) int { return packed.IndexOf(s, u[0]) }, nil
	case len(u) == 2 && except:
		return func(s []uint16) int { return packed.IndexOfAnyExcept2(s, u[0], u[1]) }, nil
	case len(u) == 2:
		return func(s []uint16) int { return packed.IndexOfAny(s, u[0], u[1]) }, nil
	case len(u) == 3 && except:
		return func(s []uint16) int { return packed.IndexOfAnyExcept3(s, u[0], u[1], u[2]) }, nil
	case len(u) == 3:
		return func(s []uint16) int { return packed.IndexOfAny3(s, u[0], u[1], u[2]) }, nil
	}
	return nil, fmt.Errorf("need one to three code units, got %d", len(u))
}

// decoder turns raw input into code units.
type decoder func(data []byte) ([]uint16, error)

func newDecoder(label string) (decoder, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q", label)
	}
	name, _ := htmlindex.Name(enc)
	switch name {
	case "utf-16le":
		return rawUnits(xdr.LittleEndian), nil
	case "utf-16be":
		return rawUnits(xdr.BigEndian), nil
	}
	return transcode(enc), nil
}

// rawUnits reads UTF-16 code units directly so unpaired surrogates are
// preserved.
func rawUnits(order xdr.Order) decoder {
	return func(data []byte) ([]uint16, error) {
		if len(data)%2 != 0 {
			return nil, fmt.Errorf("odd length %d for UTF-16 input", len(data))
		}
		r := xdr.NewReader(data, order)
		s := make([]uint16, 0, len(data)/2)
		for r.Len() > 0 {
			u, err := xdr.Read[uint16](r)
			if err != nil {
				return nil, err
			}
			s = append(s, u)
		}
		return s, nil
	}
}

func transcode(enc encoding.Encoding) decoder {
	return func(data []byte) ([]uint16, error) {
		text, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return nil, err
		}
		return units(string(text)), nil
	}
}

type options struct {
	find     search
	decode   decoder
	inFormat stream.Format
	quiet    bool
	showTier bool
	files    []string
}

func parseArgs(args []string, stdout io.Writer) (*options, error) {
	opts := &options{inFormat: stream.Auto}
	label := "utf-16le"
	searches := 0
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
		case "-any", "--any", "-except", "--except":
			if v, err = value(&i); err != nil {
				return nil, err
			}
			if opts.find, err = anyOf(v, strings.HasSuffix(arg, "except")); err != nil {
				return nil, fmt.Errorf("%s: %w", arg, err)
			}
			searches++
		case "-range", "--range", "-except-range", "--except-range":
			if v, err = value(&i); err != nil {
				return nil, err
			}
			lo, hi, err := parseRange(v)
			if err != nil {
				return nil, err
			}
			if strings.HasSuffix(arg, "except-range") {
				opts.find = func(s []uint16) int { return packed.IndexOfAnyExceptInRange(s, lo, hi) }
			} else {
				opts.find = func(s []uint16) int { return packed.IndexOfAnyInRange(s, lo, hi) }
			}
			searches++
		case "-e", "--encoding":
			if label, err = value(&i); err != nil {
				return nil, err
			}
		case "-Z", "--decompress":
			if v, err = value(&i); err != nil {
				return nil, err
			}
			if opts.inFormat, err = stream.ParseFormat(v); err != nil {
				return nil, err
			}
		case "-q", "--quiet":
			opts.quiet = true
		case "--tier":
			opts.showTier = true
		case "-h", "--help":
			printUsage(stdout)
			return nil, nil
		case "--version":
			fmt.Fprintf(stdout, "packscan version %s\n", version)
			return nil, nil
		default:
			if strings.HasPrefix(arg, "-") && arg != "-" {
				return nil, fmt.Errorf("unknown option: %s", arg)
			}
			opts.files = append(opts.files, arg)
		}
	}

	if opts.showTier {
		return opts, nil
	}
	if searches != 1 {
		return nil, fmt.Errorf("exactly one of -any, -except, -range or -except-range is required")
	}
	var err error
	if opts.decode, err = newDecoder(label); err != nil {
		return nil, err
	}
	if len(opts.files) == 0 {
		opts.files = []string{"-"}
	}
	return opts, nil
}

func scanFile(name string, opts *options) (int, error) {
	r, _, err := stream.Open(name, opts.inFormat)
	if err != nil {
		return -1, err
	}
	defer r.Close()
	data, err := stream.ReadAll(r, maxInput)
	if err != nil {
		return -1, err
	}
	s, err := opts.decode(data)
	if err != nil {
		return -1, err
	}
	return opts.find(s), nil
}

// run executes packscan and returns the exit code.
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
	if opts.showTier {
		fmt.Fprintf(stdout, "%v (%d units per vector)\n", packed.ActiveTier(), packed.ActiveTier().Lanes())
		return 0
	}

	missed, failed := false, false
	for _, name := range opts.files {
		idx, err := scanFile(name, opts)
		if err != nil {
			fmt.Fprintf(stderr, "%s: error: %v\n", name, err)
			failed = true
			continue
		}
		if idx < 0 {
			missed = true
		}
		if !opts.quiet {
			fmt.Fprintf(stdout, "%s: %d\n", name, idx)
		}
	}

	switch {
	case failed:
		return 2
	case missed:
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: packscan <search> [options] [<filename> ...]

Report the first matching UTF-16 code unit index of each input.

Searches:
  -any CHARS           First unit equal to one of up to three characters
  -except CHARS        First unit equal to none of up to three characters
  -range LO-HI         First unit in [LO, HI]
  -except-range LO-HI  First unit outside [LO, HI]

Options:
  -e, --encoding E     Input encoding (default utf-16le)
  -Z, --decompress C   Input compression: auto, none, gzip, zlib or zstd
  -q, --quiet          Only set the exit code
  --tier               Print the active vector tier and exit
  -h, --help           Show this help message
  --version            Show version information

Exit codes:
  0  Every input has a match
  1  One or more inputs have no match
  2  Error`)
}
