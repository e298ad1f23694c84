// Package compression adapts the payload body transforms to a pluggable
// compression algorithm. The QR payload pipeline pins DEFLATE in a zlib
// container at maximum level; the other algorithms share the same
// Compress/Decompress contract for callers that transport record text
// outside QR symbols.
package compression

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/joeydtaylor/radqr/pkg/internal/types"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

var (
	ErrCorruptStream        = errors.New("compression: corrupt stream")
	ErrUnsupportedAlgorithm = errors.New("compression: unsupported algorithm")
)

// Compress applies the requested algorithm to data. CompressNone returns
// data unchanged.
func Compress(data []byte, algorithm types.CompressionAlgorithm) ([]byte, error) {
	var b bytes.Buffer
	var w io.WriteCloser

	switch algorithm {
	case types.CompressNone:
		return data, nil
	case types.CompressDeflate:
		zw, err := zlib.NewWriterLevel(&b, zlib.BestCompression)
		if err != nil {
			return nil, err
		}
		w = zw
	case types.CompressSnappy:
		w = snappy.NewBufferedWriter(&b)
	case types.CompressZstd:
		zw, err := zstd.NewWriter(&b)
		if err != nil {
			return nil, err
		}
		w = zw
	case types.CompressBrotli:
		w = brotli.NewWriterLevel(&b, brotli.BestCompression)
	case types.CompressLZ4:
		w = lz4.NewWriter(&b)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, algorithm)
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Decompress reverses Compress. A stream that does not open or terminate
// cleanly reports ErrCorruptStream.
func Decompress(data []byte, algorithm types.CompressionAlgorithm) ([]byte, error) {
	var b bytes.Buffer
	var r io.Reader

	switch algorithm {
	case types.CompressNone:
		return data, nil
	case types.CompressDeflate:
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptStream, err)
		}
		defer zr.Close()
		r = zr
	case types.CompressSnappy:
		r = snappy.NewReader(bytes.NewReader(data))
	case types.CompressZstd:
		zr, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptStream, err)
		}
		defer zr.Close()
		r = zr
	case types.CompressBrotli:
		r = brotli.NewReader(bytes.NewReader(data))
	case types.CompressLZ4:
		r = lz4.NewReader(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, algorithm)
	}

	if _, err := io.Copy(&b, r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}
	return b.Bytes(), nil
}
