// Package parser provides types and readers for cookie activity logs.
// This file contains the streaming decompressors for compressed logs.
package parser

import (
	"bytes"
	"errors"
	"io"
	"runtime"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
)

// ErrCompressionFailed indicates a failure opening a compressed stream.
var ErrCompressionFailed = errors.New("failed to read compressed input")

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// compressionCodec defines how to create a streaming reader for a compressed format.
type compressionCodec struct {
	name   string
	opener func(io.Reader) (io.ReadCloser, error)
}

var (
	gzipCodec = compressionCodec{
		name: "gzip",
		opener: func(r io.Reader) (io.ReadCloser, error) {
			return newParallelGzipReader(r)
		},
	}
	zstdCodec = compressionCodec{
		name: "zstd",
		opener: func(r io.Reader) (io.ReadCloser, error) {
			return newZstdDecoder(r)
		},
	}
)

// codecForName picks a codec from the file name suffix.
// It returns nil for uncompressed names.
func codecForName(name string) *compressionCodec {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".gz"), strings.HasSuffix(lower, ".tgz"):
		return &gzipCodec
	case strings.HasSuffix(lower, ".zst"), strings.HasSuffix(lower, ".zstd"), strings.HasSuffix(lower, ".tzst"):
		return &zstdCodec
	}
	return nil
}

// codecForMagic picks a codec from the leading bytes of a stream.
// It returns nil when no known magic number matches.
func codecForMagic(head []byte) *compressionCodec {
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return &gzipCodec
	case bytes.HasPrefix(head, zstdMagic):
		return &zstdCodec
	}
	return nil
}

// newParallelGzipReader returns a pgzip reader configured for parallel decompression.
func newParallelGzipReader(r io.Reader) (*pgzip.Reader, error) {
	threads := runtime.GOMAXPROCS(0)
	if threads < 1 {
		threads = 1
	}
	if threads > 4 {
		threads = 4
	}

	const blockSize = 1 << 20
	return pgzip.NewReaderN(r, blockSize, threads)
}

type zstdReadCloser struct {
	*zstd.Decoder
}

func (z *zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// newZstdDecoder returns a single-threaded zstd decoder for streaming decompression.
func newZstdDecoder(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return &zstdReadCloser{Decoder: dec}, nil
}
