package slp

import (
	"bytes"
	"testing"
)

// Known encodings from the protocol documentation.
var varIntVectors = []struct {
	value int32
	bytes []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{255, []byte{0xff, 0x01}},
	{25565, []byte{0xdd, 0xc7, 0x01}},
	{2097151, []byte{0xff, 0xff, 0x7f}},
	{2147483647, []byte{0xff, 0xff, 0xff, 0xff, 0x07}},
	{-1, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
}

func TestAppendVarInt(t *testing.T) {
	for _, tc := range varIntVectors {
		if got := appendVarInt(nil, tc.value); !bytes.Equal(got, tc.bytes) {
			t.Errorf("appendVarInt(%d) = %v, want %v", tc.value, got, tc.bytes)
		}
	}
}

func TestReadVarInt(t *testing.T) {
	for _, tc := range varIntVectors {
		got, err := readVarInt(bytes.NewReader(tc.bytes))
		if err != nil {
			t.Errorf("readVarInt(%v): %v", tc.bytes, err)
			continue
		}
		if got != tc.value {
			t.Errorf("readVarInt(%v) = %d, want %d", tc.bytes, got, tc.value)
		}
	}
}

func TestReadVarIntTruncated(t *testing.T) {
	if _, err := readVarInt(bytes.NewReader([]byte{0x80})); err == nil {
		t.Fatal("expected error for truncated VarInt")
	}
}

func TestReadVarIntTooLong(t *testing.T) {
	data := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	if _, err := readVarInt(bytes.NewReader(data)); err != errVarIntTooLong {
		t.Fatalf("expected errVarIntTooLong, got %v", err)
	}
}
