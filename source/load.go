// Package source loads walkthrough text: plain file or first text file of a
// zip archive, in any charset x/net/html/charset recognizes.
package source

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/h2non/filetype"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"guidec/archive"
)

// Source is decoded walkthrough text.
type Source struct {
	// Name identifies source for messages, "<archive>/<entry>" when source was
	// read from archive.
	Name string
	// Path is the file system path source was read from.
	Path     string
	Text     string
	Encoding string
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load reads walkthrough from path. Recognized binary formats other than zip
// are rejected.
func Load(ctx context.Context, path string, log *zap.Logger) (*Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read source: %w", err)
	}

	src := &Source{Name: filepath.Base(path), Path: path}
	if filetype.Is(data, "zip") {
		entry, content, err := archive.ReadFirst(path, archive.WithExt(".txt"))
		if err != nil {
			return nil, fmt.Errorf("unable to read walkthrough from archive %q: %w", path, err)
		}
		log.Debug("Using walkthrough from archive", zap.String("archive", path), zap.String("entry", entry))
		src.Name, data = src.Name+"/"+entry, content
	}

	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		return nil, fmt.Errorf("source %q is %s, not plain text", src.Name, kind.MIME.Value)
	}

	if src.Text, src.Encoding, err = decode(data); err != nil {
		return nil, fmt.Errorf("unable to decode source %q: %w", src.Name, err)
	}

	log.Debug("Source loaded",
		zap.String("source", src.Name),
		zap.String("encoding", src.Encoding),
		zap.Int("bytes", len(data)))
	return src, nil
}

// decode converts data to UTF-8. Valid UTF-8 is taken as is, otherwise
// encoding is detected from BOM falling back to windows-1252.
func decode(data []byte) (string, string, error) {
	if utf8.Valid(data) {
		return string(bytes.TrimPrefix(data, utf8BOM)), "utf-8", nil
	}

	enc, name, _ := charset.DetermineEncoding(data, "text/plain")
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", name, fmt.Errorf("unable to decode as %s: %w", name, err)
	}
	return strings.TrimPrefix(string(out), "\uFEFF"), name, nil
}
