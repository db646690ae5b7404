package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinName is the file name that selects standard input.
const StdinName = "-"

const sniffBufferSize = 64 * 1024

// Source is an opened log input, decompressed and unpacked as needed.
// Close releases every layer, outermost first.
type Source struct {
	// Name is the path the source was opened from, or "stdin".
	Name string

	r       io.Reader
	closers []io.Closer
}

func (s *Source) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

// Close closes the decoders and the underlying file. It is safe to call
// more than once.
func (s *Source) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

// Open opens the log at path. Compression is detected from the file name
// first, then from the leading bytes. Tar and 7z archives yield their first
// CSV member. Open(StdinName) reads standard input.
func Open(path string) (*Source, error) {
	if path == StdinName {
		return OpenReader("stdin", os.Stdin)
	}

	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".7z") {
		return openSevenZip(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}

	src := &Source{Name: path, closers: []io.Closer{f}}
	if err := src.layer(f, codecForName(lower), isTarName(lower)); err != nil {
		src.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

// OpenReader wraps an already open stream such as stdin. Compression is
// detected from the leading bytes only. The caller keeps ownership of r.
func OpenReader(name string, r io.Reader) (*Source, error) {
	src := &Source{Name: name}
	if err := src.layer(r, nil, false); err != nil {
		src.Close()
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return src, nil
}

// layer stacks the decompressor and tar reader on top of r.
func (s *Source) layer(r io.Reader, codec *compressionCodec, tarball bool) error {
	br := bufio.NewReaderSize(r, sniffBufferSize)
	var cur io.Reader = br

	if codec == nil {
		// A short read here just means a tiny input.
		head, _ := br.Peek(len(zstdMagic))
		codec = codecForMagic(head)
	}

	if codec != nil {
		dec, err := codec.opener(cur)
		if err != nil {
			return fmt.Errorf("%w (%s): %v", ErrCompressionFailed, codec.name, err)
		}
		s.closers = append(s.closers, dec)
		cur = dec
	}

	if tarball {
		member, err := firstTarCSV(cur)
		if err != nil {
			return err
		}
		cur = member
	}

	s.r = cur
	return nil
}
