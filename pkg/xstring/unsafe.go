package xstring

import "unsafe"

// FromBytes aliases the slice's backing array, so the caller must not
// modify s afterwards.
func FromBytes(s []byte) string {
	return unsafe.String(unsafe.SliceData(s), len(s))
}
