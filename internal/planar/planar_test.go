package planar

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		src   []byte
		width int
		want  []byte
	}{
		{"empty", nil, 2, nil},
		{"width one", []byte{1, 2, 3}, 1, []byte{1, 2, 3}},
		{"width two", []byte{0x10, 0x11, 0x20, 0x21, 0x30, 0x31}, 2, []byte{0x10, 0x20, 0x30, 0x11, 0x21, 0x31}},
		{"width four", []byte{0x10, 0x11, 0x12, 0x13, 0x20, 0x21, 0x22, 0x23}, 4, []byte{0x10, 0x20, 0x11, 0x21, 0x12, 0x22, 0x13, 0x23}},
		{"partial record", []byte{1, 2, 3, 4, 5}, 2, []byte{1, 3, 2, 4, 5}},
		{"shorter than a record", []byte{7, 8, 9}, 16, []byte{7, 8, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]byte, len(tt.src))
			Split(got, tt.src, tt.width)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Split = %v, want %v", got, tt.want)
			}
			back := make([]byte, len(got))
			Join(back, got, tt.width)
			if !bytes.Equal(back, tt.src) {
				t.Errorf("Join = %v, want %v", back, tt.src)
			}
		})
	}
}

func TestDelta(t *testing.T) {
	b := []byte{10, 12, 11, 11, 0, 255, 1, 2, 3, 4, 5, 6}
	orig := append([]byte(nil), b...)
	Delta(b)
	want := []byte{10, 2, 255, 0, 245, 255, 2, 1, 1, 1, 1, 1}
	if !bytes.Equal(b, want) {
		t.Errorf("Delta = %v, want %v", b, want)
	}
	Undelta(b)
	if !bytes.Equal(b, orig) {
		t.Errorf("Undelta = %v, want %v", b, orig)
	}
	Delta(nil)
	Undelta([]byte{9})
}

func TestEncodeDecode(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, width := range []int{1, 2, 4, 8, 16} {
		for _, n := range []int{0, 1, 7, 8, 9, 63, 64, 65, 1000} {
			src := make([]byte, n)
			rng.Read(src)
			enc := Encode(src, width)
			if got := Decode(enc, width); !bytes.Equal(got, src) {
				t.Fatalf("width %d, length %d: round trip mismatch", width, n)
			}
		}
	}
}

func TestSplitPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Split with a short destination did not panic")
		}
	}()
	Split(make([]byte, 1), make([]byte, 2), 2)
}

// Slowly increasing 32-bit counters compress better as delta-coded planes.
func TestEncodeImprovesCompression(t *testing.T) {
	src := make([]byte, 0, 4*4096)
	for i := uint32(0); i < 4096; i++ {
		v := 1_000_000 + i*37
		src = append(src, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer enc.Close()
	plain := len(enc.EncodeAll(src, nil))
	planar := len(enc.EncodeAll(Encode(src, 4), nil))
	if planar >= plain {
		t.Errorf("planar %d bytes, plain %d bytes", planar, plain)
	}
}

func BenchmarkEncode(b *testing.B) {
	src := make([]byte, 64*1024)
	rand.New(rand.NewSource(1)).Read(src)
	b.SetBytes(int64(len(src)))
	for i := 0; i < b.N; i++ {
		Encode(src, 8)
	}
}
