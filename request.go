package urlpdf

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// URLRequest describes one print of a live web page.
type URLRequest struct {
	// URL is the page to print. It must be an absolute http(s) URL.
	URL string `validate:"required,http_url"`

	// Output is the path of the PDF file to write. Missing parent
	// directories are created.
	Output string `validate:"required"`

	// Header and Footer are literal HTML templates or http(s) URLs whose
	// body is used as the template. Empty means no content.
	Header string
	Footer string

	// Auth optionally authenticates the navigation. See [ParseAuth].
	Auth Auth

	// Selector, when set, is a CSS selector that must match an element
	// before the page is printed.
	Selector string
}

// HTMLRequest describes one print of literal HTML content.
type HTMLRequest struct {
	HTML   string `validate:"required"`
	Output string `validate:"required"`
	Header string
	Footer string
}

// pageRequest is the part of a request the shared print routine needs
// once the page has loaded.
type pageRequest struct {
	output string
	header string
	footer string
}

func (r URLRequest) page() pageRequest {
	return pageRequest{output: r.Output, header: r.Header, footer: r.Footer}
}

func (r HTMLRequest) page() pageRequest {
	return pageRequest{output: r.Output, header: r.Header, footer: r.Footer}
}

func validateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}
