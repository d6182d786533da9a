package crypto

import "fmt"

// Transpose treats the first stride*stride bytes of buf as a square matrix
// stored row by row and returns it column by column. Afterwards each run of
// stride bytes holds every stride-th byte of buf, the bytes enciphered with
// the same byte of a repeating key. Bytes past the square are ignored.
func Transpose(buf []byte, stride int) []byte {
	if stride < 1 {
		panic(fmt.Sprintf("stride must be positive: stride = %d", stride))
	}
	n := stride * stride
	if len(buf) < n {
		panic(fmt.Sprintf("buffer too short to transpose: len(buf) = %d, need %d", len(buf), n))
	}
	t := make([]byte, n)
	for y := 0; y < stride; y++ {
		for x := 0; x < stride; x++ {
			t[y*stride+x] = buf[x*stride+y]
		}
	}
	return t
}
