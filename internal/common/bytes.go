package common

// WipeByteArray zeroes b in place. Use it on passwords once they are no
// longer needed. A nil slice is ignored.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
