// Package pdfinfo reports the version and page geometry of a PDF file. It
// does not decode page content.
package pdfinfo

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var (
	// ErrNotPDF is returned when the data has no %PDF- header.
	ErrNotPDF = errors.New("pdfinfo: not a PDF file")

	// ErrMalformed is returned when the document structure cannot be read.
	ErrMalformed = errors.New("pdfinfo: malformed PDF")

	// ErrNoPages is returned when the document has no pages.
	ErrNoPages = errors.New("pdfinfo: no pages")
)

func init() {
	// Keep pdfcpu from creating a configuration directory in $HOME.
	model.ConfigPath = "disable"
}

// Points per inch in PDF user space.
const pointsPerInch = 72.0

// Page describes one page of a document in points.
type Page struct {
	Width  float64
	Height float64
}

// Landscape reports whether the page is wider than tall.
func (p Page) Landscape() bool {
	return p.Width > p.Height
}

// Inches returns the page size in inches.
func (p Page) Inches() (width, height float64) {
	return p.Width / pointsPerInch, p.Height / pointsPerInch
}

// Info is the structure of a parsed document.
type Info struct {
	Version string
	Pages   []Page
}

func config() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// Inspect parses data and returns its version and pages. Malformed input
// yields an error wrapping ErrMalformed, never a panic.
func Inspect(data []byte) (info *Info, err error) {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, ErrNotPDF
	}
	defer recoverMalformed(&err)

	dims, err := api.PageDims(bytes.NewReader(data), config())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(dims) == 0 {
		return nil, ErrNoPages
	}

	info = &Info{Version: version(data)}
	for _, d := range dims {
		info.Pages = append(info.Pages, Page{Width: d.Width, Height: d.Height})
	}
	return info, nil
}

// PageCount returns the number of pages in data.
func PageCount(data []byte) (n int, err error) {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return 0, ErrNotPDF
	}
	defer recoverMalformed(&err)

	n, err = api.PageCount(bytes.NewReader(data), config())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if n == 0 {
		return 0, ErrNoPages
	}
	return n, nil
}

// recoverMalformed turns a panic inside the PDF reader into ErrMalformed.
func recoverMalformed(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrMalformed, r)
	}
}

func version(data []byte) string {
	line := data[len("%PDF-"):]
	if i := bytes.IndexAny(line, "\r\n %"); i >= 0 {
		line = line[:i]
	}
	return string(line)
}
