package urlpdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/porticus-lab/go-url-pdf/internal/pdfinfo"
)

// Result holds a generated PDF and provides helpers for common output
// formats such as raw bytes, base64 encoding, and streaming readers.
//
// It is returned by [Printer.RenderURL] and [Printer.RenderHTML]. The
// underlying data is never modified.
type Result struct {
	data []byte
}

// Bytes returns the raw PDF content.
func (r *Result) Bytes() []byte {
	return r.data
}

// Base64 returns the PDF encoded as a standard base64 string (RFC 4648).
func (r *Result) Base64() string {
	return base64.StdEncoding.EncodeToString(r.data)
}

// Reader returns an [*bytes.Reader] over the PDF content.
func (r *Result) Reader() *bytes.Reader {
	return bytes.NewReader(r.data)
}

// WriteTo writes the full PDF content to w. It implements [io.WriterTo].
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.data)
	return int64(n), err
}

// Len returns the size of the PDF in bytes.
func (r *Result) Len() int {
	return len(r.data)
}

// Pages returns the number of pages in the PDF. When the page tree cannot
// be read it falls back to counting page dictionaries. It never returns
// less than 1.
func (r *Result) Pages() int {
	if n, err := pdfinfo.PageCount(r.data); err == nil {
		return n
	}
	pages := bytes.Count(r.data, []byte("/Type /Page")) - bytes.Count(r.data, []byte("/Type /Pages"))
	return max(pages, 1)
}

// Save writes the PDF to path on fs, creating missing parent directories.
// Failures wrap [ErrFilesystem].
func (r *Result) Save(fs afero.Fs, path string) error {
	if err := ensureParentDir(fs, path); err != nil {
		return err
	}
	if err := afero.WriteFile(fs, path, r.data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrFilesystem, path, err)
	}
	return nil
}

// ensureParentDir creates the directory that will hold path.
func ensureParentDir(fs afero.Fs, path string) error {
	dir := filepath.Dir(path)
	exists, err := afero.DirExists(fs, dir)
	if err != nil {
		return fmt.Errorf("%w: checking %s: %w", ErrFilesystem, dir, err)
	}
	if exists {
		return nil
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %w", ErrFilesystem, dir, err)
	}
	return nil
}
