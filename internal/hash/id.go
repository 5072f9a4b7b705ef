// Package hash fingerprints sample sequences.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Samples computes the xxHash64 of the IEEE-754 bit patterns of values, in
// order. Two sequences hash equal only if they are bit-identical.
func Samples(values []float64) uint64 {
	d := xxhash.New()

	var buf [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
