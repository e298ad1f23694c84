package protocol

import (
	"fmt"

	"github.com/joeydtaylor/radqr/pkg/internal/base45"
	"github.com/joeydtaylor/radqr/pkg/internal/compression"
	"github.com/joeydtaylor/radqr/pkg/internal/types"
	"github.com/joeydtaylor/radqr/pkg/internal/urlenc"
)

// encodeBody applies the outbound body pipeline: optional deflate, optional
// base-45, then percent encoding. When both deflate and base-45 are skipped
// the body is still record text, so the narrower escape variant keeps it
// inside the QR alphanumeric character set.
func encodeBody(body []byte, opts types.EncodeOptions) (string, error) {
	if !opts.Has(types.OptionNoDeflate) {
		compressed, err := compression.Compress(body, types.CompressDeflate)
		if err != nil {
			return "", fmt.Errorf("deflate body: %w", err)
		}
		body = compressed
	}
	if !opts.Has(types.OptionNoBase45) {
		return urlenc.Encode([]byte(base45.Encode(body))), nil
	}
	if opts.Has(types.OptionNoDeflate) {
		return urlenc.EncodeNonBase45(string(body)), nil
	}
	return urlenc.Encode(body), nil
}

// decodeBody inverts encodeBody for the transforms named in opts.
func decodeBody(text string, opts types.EncodeOptions) ([]byte, error) {
	data, err := urlenc.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("percent decode body: %w", err)
	}
	if !opts.Has(types.OptionNoBase45) {
		data, err = base45.Decode(string(data))
		if err != nil {
			return nil, fmt.Errorf("base45 decode body: %w", err)
		}
	}
	if !opts.Has(types.OptionNoDeflate) {
		data, err = compression.Decompress(data, types.CompressDeflate)
		if err != nil {
			return nil, fmt.Errorf("inflate body: %w", err)
		}
	}
	return data, nil
}
