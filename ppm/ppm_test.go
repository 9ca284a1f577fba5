package ppm

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/gogpu/px"
)

func TestEncodeSmall(t *testing.T) {
	c, err := px.NewCanvasSize(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	c.SetPixel(0, 0, px.Red)
	c.SetPixel(1, 0, px.RGB(0x12, 0x34, 0x56))

	var out bytes.Buffer
	if err := Encode(&out, c); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := append([]byte("P6\n2 1\n255\n"), 0xff, 0, 0, 0x12, 0x34, 0x56)
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("Encode = %q, want %q", out.Bytes(), want)
	}
}

func TestEncodeEndToEnd(t *testing.T) {
	c, _ := px.NewCanvasSize(256, 256)
	c.FillRect(80, 40, 128, 192, px.Green)

	var out bytes.Buffer
	if err := Encode(&out, c); err != nil {
		t.Fatal(err)
	}

	header := "P6\n256 256\n255\n"
	if !strings.HasPrefix(out.String(), header) {
		t.Fatalf("header = %q", out.String()[:len(header)])
	}
	body := out.Bytes()[len(header):]
	if len(body) != 256*256*3 {
		t.Fatalf("body has %d bytes, want %d", len(body), 256*256*3)
	}

	for y := range 256 {
		for x := range 256 {
			i := (y*256 + x) * 3
			green := x >= 80 && x < 208 && y >= 40 && y < 232
			want := [3]byte{0, 0, 0}
			if green {
				want = [3]byte{0, 0xff, 0}
			}
			if got := [3]byte(body[i : i+3]); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestEncodeBufferIgnoresTopByte(t *testing.T) {
	var out bytes.Buffer
	if err := EncodeBuffer(&out, []uint32{0xab010203}, 1, 1); err != nil {
		t.Fatal(err)
	}
	if got := out.Bytes()[len(out.Bytes())-3:]; !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("pixel bytes = %v, want [1 2 3]", got)
	}
}

func TestEncodeBufferSizeMismatch(t *testing.T) {
	tests := []struct {
		name string
		n    int
		w, h int
	}{
		{"short", 5, 2, 3},
		{"long", 7, 2, 3},
		{"negative", 0, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := EncodeBuffer(&out, make([]uint32, tt.n), tt.w, tt.h)
			if !errors.Is(err, ErrSizeMismatch) {
				t.Errorf("error = %v, want ErrSizeMismatch", err)
			}
			if out.Len() != 0 {
				t.Error("nothing should be written on error")
			}
		})
	}
}

func TestEncodeEmpty(t *testing.T) {
	var out bytes.Buffer
	if err := EncodeBuffer(&out, nil, 0, 0); err != nil {
		t.Fatal(err)
	}
	if out.String() != "P6\n0 0\n255\n" {
		t.Errorf("Encode = %q", out.String())
	}
}

type failWriter struct {
	after int
	n     int
}

var errBroken = errors.New("broken pipe")

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n >= w.after {
		return 0, errBroken
	}
	w.n++
	return len(p), nil
}

func TestEncodeWriterErrors(t *testing.T) {
	buf := make([]uint32, chunkPixels*3)
	for _, after := range []int{0, 1, 2} {
		err := EncodeBuffer(&failWriter{after: after}, buf, chunkPixels, 3)
		if !errors.Is(err, errBroken) {
			t.Errorf("fail after %d writes: error = %v, want wrapped writer error", after, err)
		}
	}
}

type countingWriter struct {
	calls int
	bytes.Buffer
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.calls++
	return w.Buffer.Write(p)
}

func TestEncodeChunks(t *testing.T) {
	n := chunkPixels*2 + 10
	var w countingWriter
	if err := EncodeBuffer(&w, make([]uint32, n), n, 1); err != nil {
		t.Fatal(err)
	}
	// Header plus three pixel chunks.
	if w.calls != 4 {
		t.Errorf("writes = %d, want 4", w.calls)
	}
}

func TestSaveAndDecode(t *testing.T) {
	c, _ := px.NewCanvasSize(7, 5)
	c.Clear(px.SkyBlue)
	c.OutlineRect(1, 1, 5, 3, px.Brown)

	path := filepath.Join(t.TempDir(), "out.ppm")
	if err := Save(path, c); err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	buf, w, h, err := Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if w != 7 || h != 5 {
		t.Fatalf("size = %dx%d, want 7x5", w, h)
	}
	for i, v := range c.Buffer() {
		if buf[i] != v {
			t.Fatalf("pixel %d = %#x, want %#x", i, buf[i], v)
		}
	}
}

func TestSaveBadPath(t *testing.T) {
	c, _ := px.NewCanvasSize(1, 1)
	path := filepath.Join(t.TempDir(), "missing", "out.ppm")
	if err := Save(path, c); err == nil {
		t.Error("Save into a missing directory should fail")
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []uint32
		wantErr error
	}{
		{"comment", "P6\n# made by hand\n1 1\n255\n\x01\x02\x03", []uint32{0x010203}, nil},
		{"single line header", "P6 2 1 255\n\xff\x00\x00\x00\x00\xff", []uint32{0xff0000, 0x0000ff}, nil},
		{"ascii pixmap", "P3\n1 1\n255\n1 2 3\n", nil, ErrFormat},
		{"16 bit", "P6\n1 1\n65535\n", nil, ErrFormat},
		{"bad width", "P6\nx 1\n255\n", nil, ErrFormat},
		{"truncated", "P6\n2 2\n255\n\x00\x00", nil, nil},
		{"truncated row", "P6\n2 2\n255\n\x00\x00\x00\x00\x00\x00\x01", nil, nil},
		{"too many pixels", "P6\n46340 46340\n255\n", nil, ErrFormat},
		{"too wide", "P6\n70000 1\n255\n", nil, ErrFormat},
		{"empty", "", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, _, _, err := Decode(strings.NewReader(tt.in))
			if tt.want == nil {
				if err == nil {
					t.Fatal("Decode succeeded, want error")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if len(buf) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(buf), len(tt.want))
			}
			for i := range buf {
				if buf[i] != tt.want[i] {
					t.Errorf("pixel %d = %#x, want %#x", i, buf[i], tt.want[i])
				}
			}
		})
	}
}

func TestDecodeShortBodyAllocation(t *testing.T) {
	// The header announces 1 GiB of pixels; the body holds one of them.
	in := fmt.Sprintf("P6\n%d %d\n255\n\x01\x02\x03", MaxSide/4, MaxSide/4)

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	_, _, _, err := Decode(strings.NewReader(in))
	runtime.ReadMemStats(&after)

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("error = %v, want io.ErrUnexpectedEOF", err)
	}
	if n := after.TotalAlloc - before.TotalAlloc; n > 1<<20 {
		t.Errorf("allocated %d bytes for a truncated image", n)
	}
}
