package slp

import (
	"errors"
	"io"
)

// The protocol's VarInt: little-endian groups of 7 bits, high bit set on
// every byte but the last. An int32 never needs more than 5 bytes.
const maxVarIntBytes = 5

var errVarIntTooLong = errors.New("VarInt longer than 5 bytes")

func appendVarInt(buf []byte, v int32) []byte {
	u := uint32(v)
	for {
		b := byte(u & 0x7f)
		u >>= 7
		if u != 0 {
			b |= 0x80
		}
		buf = append(buf, b)
		if u == 0 {
			return buf
		}
	}
}

func readVarInt(r io.ByteReader) (int32, error) {
	var result uint32
	for i := 0; i < maxVarIntBytes; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		result |= uint32(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			return int32(result), nil
		}
	}
	return 0, errVarIntTooLong
}
