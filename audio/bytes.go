package audio

import "unsafe"

// SamplesAsBytes reinterprets the samples as raw bytes without copying.
func SamplesAsBytes[S Sample](samples []S) []byte {
	if len(samples) == 0 {
		return nil
	}

	ptr := (*byte)(unsafe.Pointer(unsafe.SliceData(samples)))
	return unsafe.Slice(ptr, unsafe.Sizeof(S(0))*uintptr(len(samples)))
}
