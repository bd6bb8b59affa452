package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/mrjoshuak/go-numeric/internal/stream"
)

func utf16LE(s string) []byte {
	u := utf16.Encode([]rune(s))
	b := make([]byte, 0, 2*len(u))
	for _, v := range u {
		b = append(b, byte(v), byte(v>>8))
	}
	return b
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runArgs(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestSearches(t *testing.T) {
	text := strings.Repeat("abcdefgh", 10) + "Z9;" + strings.Repeat(" ", 40)
	path := writeFile(t, "text.utf16", utf16LE(text))
	tests := []struct {
		args []string
		want int
	}{
		{[]string{"-any", "Z"}, 80},
		{[]string{"-any", "9;"}, 81},
		{[]string{"-any", ";9Z"}, 80},
		{[]string{"-except", "abc"}, 3},
		{[]string{"-except", "ab"}, 2},
		{[]string{"-range", "0-9"}, 81},
		{[]string{"-range", "0x41-0x5A"}, 80},
		{[]string{"-range", "32-32"}, 83},
		{[]string{"-except-range", "a-h"}, 80},
		{[]string{"-any", "q"}, -1},
	}
	for _, tt := range tests {
		code, out, errOut := runArgs(append(tt.args, path)...)
		wantCode := 0
		if tt.want < 0 {
			wantCode = 1
		}
		wantOut := path + ": " + strconv.Itoa(tt.want) + "\n"
		if code != wantCode || out != wantOut {
			t.Errorf("%q: exit %d, output %q, want %q (stderr %q)", tt.args, code, out, wantOut, errOut)
		}
	}
}

func TestEncodings(t *testing.T) {
	// 'é' is one UTF-16 unit, so the index counts it once.
	utf8Path := writeFile(t, "text.txt", []byte("héllo wörld"))
	if code, out, _ := runArgs("-any", "w", "-e", "utf-8", utf8Path); code != 0 || !strings.HasSuffix(out, ": 6\n") {
		t.Errorf("utf-8: exit %d, output %q", code, out)
	}

	latin1Path := writeFile(t, "text.latin1", []byte("caf\xe9!"))
	if code, out, _ := runArgs("-any", "é", "-e", "windows-1252", latin1Path); code != 0 || !strings.HasSuffix(out, ": 3\n") {
		t.Errorf("windows-1252: exit %d, output %q", code, out)
	}

	bePath := writeFile(t, "text.be", []byte{0, 'x', 0, 'y', 0xD8, 0x3D})
	if code, out, _ := runArgs("-range", "0xD800-0xDBFF", "-e", "utf-16be", bePath); code != 0 || !strings.HasSuffix(out, ": 2\n") {
		t.Errorf("utf-16be: exit %d, output %q", code, out)
	}

	odd := writeFile(t, "odd", []byte{1, 0, 2})
	if code, _, errOut := runArgs("-any", "x", odd); code != 2 || !strings.Contains(errOut, "odd length") {
		t.Errorf("odd input: exit %d, stderr %q", code, errOut)
	}
}

func TestCompressedInput(t *testing.T) {
	var buf bytes.Buffer
	zw, _ := stream.NewWriter(&buf, stream.Zlib)
	zw.Write(utf16LE(strings.Repeat("-", 300) + "+"))
	zw.Close()
	path := writeFile(t, "dump.zz", buf.Bytes())
	if code, out, _ := runArgs("-except", "-", "-Z", "zlib", path); code != 0 || !strings.HasSuffix(out, ": 300\n") {
		t.Errorf("exit %d, output %q", code, out)
	}

	buf.Reset()
	zw, _ = stream.NewWriter(&buf, stream.Gzip)
	zw.Write(utf16LE("ab7"))
	zw.Close()
	path = writeFile(t, "dump.gz", buf.Bytes())
	if code, out, _ := runArgs("-range", "0-9", path); code != 0 || !strings.HasSuffix(out, ": 2\n") {
		t.Errorf("gzip: exit %d, output %q", code, out)
	}
}

// Text that starts with a valid zlib header is still plain text.
func TestZlibLookingText(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"HKEY_LOCAL_MACHINE 7", ": 19\n"},
		{"x^2 + 1", ": 2\n"},
		{"plain 7", ": 6\n"},
	}
	for _, tt := range tests {
		path := writeFile(t, "text.txt", []byte(tt.text))
		code, out, errOut := runArgs("-e", "utf-8", "-range", "0-9", path)
		if code != 0 || !strings.HasSuffix(out, tt.want) {
			t.Errorf("%q: exit %d, output %q (stderr %q)", tt.text, code, out, errOut)
		}
	}
}

func TestMultipleFilesAndQuiet(t *testing.T) {
	hit := writeFile(t, "hit", utf16LE("xx!"))
	miss := writeFile(t, "miss", utf16LE("xxx"))
	code, out, _ := runArgs("-any", "!", hit, miss)
	if code != 1 || out != hit+": 2\n"+miss+": -1\n" {
		t.Errorf("exit %d, output %q", code, out)
	}
	if code, out, _ := runArgs("-q", "-any", "!", hit); code != 0 || out != "" {
		t.Errorf("quiet: exit %d, output %q", code, out)
	}
}

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"-any", "a", "-range", "a-z"},
		{"-any", "abcd"},
		{"-any", ""},
		{"-range", "az"},
		{"-range", "a-0x1FFFF"},
		{"-any", "a", "-e", "klingon"},
		{"-any", "a", "-Z", "brotli"},
		{"-bogus"},
		{"-any", "a", filepath.Join(t.TempDir(), "missing")},
	} {
		if code, _, _ := runArgs(args...); code != 2 {
			t.Errorf("%q: exit code = %d, want 2", args, code)
		}
	}
	if code, out, _ := runArgs("--tier"); code != 0 || !strings.Contains(out, "units per vector") {
		t.Errorf("--tier: exit %d, output %q", code, out)
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		in     string
		lo, hi uint16
	}{
		{"a-z", 'a', 'z'},
		{"--/", '-', '/'},
		{"48-57", 48, 57},
		{"0x30-0x39", 0x30, 0x39},
		{"é-ü", 'é', 'ü'},
	}
	for _, tt := range tests {
		lo, hi, err := parseRange(tt.in)
		if err != nil || lo != tt.lo || hi != tt.hi {
			t.Errorf("parseRange(%q) = %d, %d, %v", tt.in, lo, hi, err)
		}
	}
}
