// Package endian selects the byte order used for run counts in the record
// stream.
//
// The record format stores each count in the host's native byte order, the
// same bytes a C program would produce by writing a uint32 straight from
// memory. Native detection resolves to binary.LittleEndian or
// binary.BigEndian so records written on one machine can be read on another
// by naming the order explicitly:
//
//	engine, _ := endian.ForOrder(format.ByteOrderNative)
//	buf = engine.AppendUint32(buf, run.Count)
//
// # Thread Safety
//
// All functions are safe for concurrent use. The returned engines are
// stateless.
package endian

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/suvikristiin/CT30A3370-projects/errs"
	"github.com/suvikristiin/CT30A3370-projects/format"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var nativeEngine = detectNative()

// detectNative inspects the in-memory layout of a known uint16.
func detectNative() EndianEngine {
	var probe uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&probe))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// GetNativeEngine returns the engine matching the host's byte order.
func GetNativeEngine() EndianEngine {
	return nativeEngine
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// ForOrder returns the engine for a configured byte order.
//
// Parameters:
//   - order: ByteOrderNative, ByteOrderLittle or ByteOrderBig
//
// Returns:
//   - EndianEngine: the matching engine
//   - error: errs.ErrInvalidByteOrder for any other value
func ForOrder(order format.ByteOrder) (EndianEngine, error) {
	switch order {
	case format.ByteOrderNative:
		return GetNativeEngine(), nil
	case format.ByteOrderLittle:
		return GetLittleEndianEngine(), nil
	case format.ByteOrderBig:
		return GetBigEndianEngine(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidByteOrder, order)
	}
}
