package parser

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bodgit/sevenzip"
)

// ErrNoCSVMember is returned when an archive holds no .csv file.
var ErrNoCSVMember = errors.New("archive contains no .csv member")

// isTarName reports whether the lowercased file name denotes a tar archive.
func isTarName(lower string) bool {
	for _, ext := range []string{".tar", ".tar.gz", ".tgz", ".tar.zst", ".tar.zstd", ".tzst"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func isCSVMember(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".csv")
}

// firstTarCSV advances r to the first regular .csv member and returns a
// reader over its contents.
func firstTarCSV(r io.Reader) (io.Reader, error) {
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil, ErrNoCSVMember
		}
		if err != nil {
			return nil, fmt.Errorf("reading tar archive: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg || !isCSVMember(hdr.Name) {
			continue
		}
		return tr, nil
	}
}

// openSevenZip opens the first .csv member of a 7z archive.
func openSevenZip(path string) (*Source, error) {
	rc, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open 7z archive %s: %w", path, err)
	}

	for _, f := range rc.File {
		if !isCSVMember(f.Name) {
			continue
		}
		member, err := f.Open()
		if err != nil {
			rc.Close()
			return nil, fmt.Errorf("failed to open %s in %s: %w", f.Name, path, err)
		}
		return &Source{
			Name:    path,
			r:       member,
			closers: []io.Closer{rc, member},
		}, nil
	}

	rc.Close()
	return nil, fmt.Errorf("%s: %w", path, ErrNoCSVMember)
}
