// Package endian provides byte order utilities for the InterOp wire format.
//
// InterOp files are always little-endian. The package combines the ByteOrder and
// AppendByteOrder interfaces of encoding/binary into a single EndianEngine and adds
// the IEEE-754 float helpers that the record codecs need.
//
// # Basic Usage
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint16(buf, lane)
//	buf = endian.AppendFloat32(engine, buf, errorRate)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"math"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// binary.LittleEndian satisfies it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used by every InterOp file.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// Float32 decodes an IEEE-754 binary32 value from the first four bytes of b.
//
// The bit pattern is preserved exactly, including NaN payloads.
func Float32(engine EndianEngine, b []byte) float32 {
	return math.Float32frombits(engine.Uint32(b))
}

// AppendFloat32 appends the binary32 encoding of v to b.
func AppendFloat32(engine EndianEngine, b []byte, v float32) []byte {
	return engine.AppendUint32(b, math.Float32bits(v))
}

// Float64 decodes an IEEE-754 binary64 value from the first eight bytes of b.
func Float64(engine EndianEngine, b []byte) float64 {
	return math.Float64frombits(engine.Uint64(b))
}

// AppendFloat64 appends the binary64 encoding of v to b.
func AppendFloat64(engine EndianEngine, b []byte, v float64) []byte {
	return engine.AppendUint64(b, math.Float64bits(v))
}
