package plotfile

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/klauspost/compress/zstd"
)

func encodeBlock(enc *zstd.Encoder, data []float64) []byte {
	raw := make([]byte, 8*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint64(raw[8*i:], math.Float64bits(v))
	}
	return enc.EncodeAll(raw, nil)
}

// decodeBlock fills data from a compressed block, which must hold exactly len(data) values.
func decodeBlock(dec *zstd.Decoder, b []byte, data []float64) error {
	raw, err := dec.DecodeAll(b, nil)
	if err != nil {
		return err
	}
	if len(raw) != 8*len(data) {
		return fmt.Errorf("block holds %d bytes, want %d", len(raw), 8*len(data))
	}
	for i := range data {
		data[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[8*i:]))
	}
	return nil
}
