package compress

import (
	"fmt"
	"testing"
)

func BenchmarkCodecs(b *testing.B) {
	for _, records := range []int{1_000, 100_000} {
		data := recordStream(records)
		for name, codec := range getAllCodecs() {
			b.Run(fmt.Sprintf("%s/compress/%d", name, records), func(b *testing.B) {
				b.SetBytes(int64(len(data)))
				for b.Loop() {
					_, _ = codec.Compress(data)
				}
			})

			compressed, err := codec.Compress(data)
			if err != nil {
				b.Fatal(err)
			}
			b.Run(fmt.Sprintf("%s/decompress/%d", name, records), func(b *testing.B) {
				b.SetBytes(int64(len(data)))
				for b.Loop() {
					_, _ = codec.Decompress(compressed)
				}
			})
		}
	}
}
