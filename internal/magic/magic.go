// Package magic reinterprets memory between slice shapes without copying.
// Callers own the aliasing consequences.
package magic

import "unsafe"

// Slice views the bytes of s without copying. The result must not be written.
func Slice(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// String views b as a string without copying. b must not change afterwards.
func String(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// ReinterpretSlice views the memory of b as a slice of Out. The element sizes
// must divide evenly for the view to cover the same bytes.
func ReinterpretSlice[Out, T any](b []T) []Out {
	if cap(b) == 0 {
		return nil
	}
	out := (*Out)(unsafe.Pointer(&b[:1][0]))

	lenBytes := len(b) * int(unsafe.Sizeof(b[0]))
	capBytes := cap(b) * int(unsafe.Sizeof(b[0]))

	lenOut := lenBytes / int(unsafe.Sizeof(*out))
	capOut := capBytes / int(unsafe.Sizeof(*out))

	return unsafe.Slice(out, capOut)[:lenOut]
}
