package types

// CompressionAlgorithm selects the stream compressor applied to a byte buffer.
type CompressionAlgorithm int

const (
	CompressNone    CompressionAlgorithm = 0
	CompressDeflate CompressionAlgorithm = 1
	CompressSnappy  CompressionAlgorithm = 2
	CompressZstd    CompressionAlgorithm = 3
	CompressBrotli  CompressionAlgorithm = 4
	CompressLZ4     CompressionAlgorithm = 5
)

func (a CompressionAlgorithm) String() string {
	switch a {
	case CompressNone:
		return "none"
	case CompressDeflate:
		return "deflate"
	case CompressSnappy:
		return "snappy"
	case CompressZstd:
		return "zstd"
	case CompressBrotli:
		return "brotli"
	case CompressLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}
