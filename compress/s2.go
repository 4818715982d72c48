package compress

import "github.com/klauspost/compress/s2"

type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as a single S2 block. Record streams are repetitive
// enough that the better mode pays for itself.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(nil, data), nil
}

func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
