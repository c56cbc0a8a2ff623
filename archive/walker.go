// Package archive builds Walk abstraction on top of "archive/zip".
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// ErrNoMatch is returned by ReadFirst when archive has no matching file.
var ErrNoMatch = errors.New("no matching file in archive")

// MatchFunc selects archive entries by name.
type MatchFunc func(name string) bool

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. The archive argument contains path to archive passed to Walk.
// The file argument is the zip.File structure for file in archive which satisfies
// match condition. If an error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk walks files in the archive which satisfy match condition in archive
// order, calling walkFn for each. Archives with path traversal components
// ("..") or absolute paths are rejected to prevent Zip Slip attacks.
func Walk(archive string, match MatchFunc, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || (match != nil && !match(name)) {
			continue
		}
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

// ReadFirst returns name and content of the first matching file.
func ReadFirst(archive string, match MatchFunc) (string, []byte, error) {
	var (
		name string
		data []byte
	)
	errStop := errors.New("stop")
	err := Walk(archive, match, func(_ string, f *zip.File) error {
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("unable to open %q: %w", f.Name, err)
		}
		defer rc.Close()

		if data, err = io.ReadAll(rc); err != nil {
			return fmt.Errorf("unable to read %q: %w", f.Name, err)
		}
		name = f.Name
		return errStop
	})
	switch {
	case errors.Is(err, errStop):
		return name, data, nil
	case err != nil:
		return "", nil, err
	}
	return "", nil, ErrNoMatch
}

// WithExt matches entries by file extension, case insensitive.
func WithExt(ext string) MatchFunc {
	return func(name string) bool {
		return strings.EqualFold(path.Ext(name), ext)
	}
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
