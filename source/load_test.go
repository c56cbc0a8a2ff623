package source

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"guidec/archive"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, data, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return p
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		text     string
		encoding string
	}{
		{"utf-8", []byte("Table of Contents\r\n| wt01a |"), "Table of Contents\r\n| wt01a |", "utf-8"},
		{"utf-8 bom", []byte("\xEF\xBB\xBFポーション"), "ポーション", "utf-8"},
		{"utf-16le bom", []byte("\xFF\xFEH\x00i\x00"), "Hi", "utf-16le"},
		{"windows-1252", []byte("caf\xE9"), "café", "windows-1252"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeFile(t, "Walkthrough.txt", tt.data)
			src, err := Load(context.Background(), p, zaptest.NewLogger(t))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if src.Text != tt.text || src.Encoding != tt.encoding {
				t.Errorf("Load() = %q (%s), want %q (%s)", src.Text, src.Encoding, tt.text, tt.encoding)
			}
			if src.Name != "Walkthrough.txt" || src.Path != p {
				t.Errorf("Load() name = %q path = %q", src.Name, src.Path)
			}
		})
	}
}

func makeZip(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "guide.zip")
	f, err := os.Create(p)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	fw, err := w.Create(name)
	if err != nil {
		t.Fatalf("Failed to create file in zip: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write zip content: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to finish zip: %v", err)
	}
	return p
}

func TestLoad_Archive(t *testing.T) {
	p := makeZip(t, "docs/Walkthrough.txt", "Table of Contents")

	src, err := Load(context.Background(), p, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if src.Text != "Table of Contents" || src.Name != "guide.zip/docs/Walkthrough.txt" {
		t.Errorf("Load() = %q from %q", src.Text, src.Name)
	}

	p = makeZip(t, "docs/readme.md", "nothing")
	if _, err := Load(context.Background(), p, zaptest.NewLogger(t)); !errors.Is(err, archive.ErrNoMatch) {
		t.Errorf("Load() error = %v, want %v", err, archive.ErrNoMatch)
	}
}

func TestLoad_Errors(t *testing.T) {
	png := writeFile(t, "Walkthrough.txt", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	if _, err := Load(context.Background(), png, zaptest.NewLogger(t)); err == nil || !strings.Contains(err.Error(), "not plain text") {
		t.Errorf("Load(png) error = %v, want not plain text", err)
	}

	if _, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), zaptest.NewLogger(t)); err == nil {
		t.Errorf("Load(missing) succeeded")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, png, zaptest.NewLogger(t)); !errors.Is(err, context.Canceled) {
		t.Errorf("Load(canceled) error = %v, want %v", err, context.Canceled)
	}
}
