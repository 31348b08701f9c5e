package unsafer

import "unsafe"

// AsBytes interprets an arbitrary input slice as a byte slice.
//
// The returned slice aliases the input rather than copying it. Buffer uploads
// want exactly this view: a byte length and a base pointer for data that
// lives in Go as float32 or uint32 values.
func AsBytes[T any](input []T) []byte {
	if len(input) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(input[0])) * len(input)
	return unsafe.Slice((*byte)(unsafe.Pointer(&input[0])), size)
}
