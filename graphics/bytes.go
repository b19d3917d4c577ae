package graphics

import (
	"encoding/binary"
	"math"
)

// Byte-packing helpers for the vertex and index data buffers consume.
// Values are laid out little-endian, matching the platforms the device
// drivers support.

// Float32Bytes packs float32 values into the byte layout a vertex
// buffer expects.
func Float32Bytes(v []float32) []byte {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// Uint32Bytes packs uint32 indices for an index buffer.
func Uint32Bytes(v []uint32) []byte {
	buf := make([]byte, len(v)*4)
	for i, n := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], n)
	}
	return buf
}

// Uint16Bytes packs uint16 indices for an index buffer.
func Uint16Bytes(v []uint16) []byte {
	buf := make([]byte, len(v)*2)
	for i, n := range v {
		binary.LittleEndian.PutUint16(buf[i*2:], n)
	}
	return buf
}
