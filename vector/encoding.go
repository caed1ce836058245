package vector

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EmbeddingElementSize is the encoded size in bytes of one vector element.
const EmbeddingElementSize = 4

// EncodeEmbedding encodes v into the BLOB representation read by the SQL
// distance functions: a little-endian sequence of IEEE 754 float32 values
// without a length prefix. The length is derived from the BLOB size on decode.
func EncodeEmbedding(v Vector) ([]byte, error) {
	if len(v) == 0 {
		return nil, nil
	}
	b := make([]byte, len(v)*EmbeddingElementSize)
	for i, f := range v {
		binary.LittleEndian.PutUint32(b[i*EmbeddingElementSize:], math.Float32bits(f))
	}
	return b, nil
}

// DecodeEmbedding decodes a BLOB produced by EncodeEmbedding.
func DecodeEmbedding(b []byte) (Vector, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%EmbeddingElementSize != 0 {
		return nil, fmt.Errorf("vector: invalid embedding blob length %d (not multiple of %d)", len(b), EmbeddingElementSize)
	}
	v := make(Vector, len(b)/EmbeddingElementSize)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*EmbeddingElementSize:]))
	}
	return v, nil
}
