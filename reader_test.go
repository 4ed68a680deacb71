package rivecore

import "testing"

func TestReaderVarUint(t *testing.T) {
	// 300 encodes as 0xAC 0x02 in LEB128.
	r := newReader([]byte{0xAC, 0x02})
	if got := r.ReadVarUint(); got != 300 {
		t.Fatalf("ReadVarUint() = %d, want 300", got)
	}
	if r.Failed() {
		t.Fatal("unexpected failure")
	}
}

func TestReaderVarUintShortRead(t *testing.T) {
	r := newReader([]byte{0x80}) // continuation bit set, no following byte
	r.ReadVarUint()
	if !r.Failed() {
		t.Fatal("expected failure on truncated varuint")
	}
	// Subsequent reads are no-ops returning zero.
	if v := r.ReadVarUint(); v != 0 {
		t.Fatalf("ReadVarUint() after failure = %d, want 0", v)
	}
}

func TestReaderVarIntZigZag(t *testing.T) {
	cases := []struct {
		bytes []byte
		want  int64
	}{
		{[]byte{0}, 0},
		{[]byte{1}, -1},
		{[]byte{2}, 1},
		{[]byte{3}, -2},
	}
	for _, c := range cases {
		r := newReader(c.bytes)
		if got := r.ReadVarInt(); got != c.want {
			t.Errorf("ReadVarInt(%v) = %d, want %d", c.bytes, got, c.want)
		}
	}
}

func TestReaderFloat32(t *testing.T) {
	// 1.5f32 little-endian bytes.
	r := newReader([]byte{0x00, 0x00, 0xC0, 0x3F})
	if got := r.ReadFloat32(); got != 1.5 {
		t.Fatalf("ReadFloat32() = %v, want 1.5", got)
	}
}

func TestReaderColor(t *testing.T) {
	r := newReader([]byte{0x33, 0x22, 0x11, 0x80})
	got := r.ReadColor()
	want := Color{A: 0x80, R: 0x11, G: 0x22, B: 0x33}
	if got != want {
		t.Fatalf("ReadColor() = %v, want %v", got, want)
	}
}

func TestReaderString(t *testing.T) {
	// length=5, "hello"
	r := newReader(append([]byte{5}, []byte("hello")...))
	if got := r.ReadString(); got != "hello" {
		t.Fatalf("ReadString() = %q, want %q", got, "hello")
	}
}

func TestReaderStringInvalidUTF8(t *testing.T) {
	r := newReader(append([]byte{2}, 0xff, 0xfe))
	r.ReadString()
	if !r.Failed() {
		t.Fatal("expected failure on invalid utf8")
	}
}

func TestReaderStickyErrorShortCircuitsChain(t *testing.T) {
	r := newReader([]byte{1}) // only one byte, but we ask for a 4-byte float
	_ = r.ReadFloat32()
	if !r.Failed() {
		t.Fatal("expected failure")
	}
	// Chain further reads; none should panic or advance pos.
	_ = r.ReadVarUint()
	_ = r.ReadBool()
	_ = r.ReadBytes(10)
	if !r.Failed() {
		t.Fatal("still expected failure after chained reads")
	}
}

func BenchmarkReaderVarUint(b *testing.B) {
	data := []byte{0xAC, 0x02}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := newReader(data)
		_ = r.ReadVarUint()
	}
}
