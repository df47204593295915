// Package zeroize scrubs secret-carrying buffers before they go out of scope.
package zeroize

// Bytes overwrites b with zeros twice, mirroring the teacher's two-pass
// zeroize loop: a single pass is occasionally elided by aggressive dead
// store optimization, a second pass over the same memory is not.
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	for i := range b {
		b[i] = 0
	}
}

// Words overwrites w with zeros twice; see Bytes.
func Words(w []uint64) {
	for i := range w {
		w[i] = 0
	}
	for i := range w {
		w[i] = 0
	}
}
