package urlpdf

import "errors"

// Sentinel errors returned by the library. Every failure wraps exactly one
// of them; match with [errors.Is].
var (
	// ErrInvalidRequest is returned when a request is missing required
	// fields or carries a malformed target.
	ErrInvalidRequest = errors.New("urlpdf: invalid request")

	// ErrAuthParse is returned when an auth payload is not valid JSON or
	// does not describe one of the supported [AuthKind] values.
	ErrAuthParse = errors.New("urlpdf: invalid auth payload")

	// ErrBrowserLaunch is returned when no browser page could be acquired.
	ErrBrowserLaunch = errors.New("urlpdf: browser launch failed")

	// ErrNavigation is returned when the target could not be loaded.
	ErrNavigation = errors.New("urlpdf: navigation failed")

	// ErrSelectorTimeout is returned when the readiness selector never
	// matched before the selector timeout elapsed.
	ErrSelectorTimeout = errors.New("urlpdf: readiness selector timed out")

	// ErrContentFetch is returned when a header or footer URL could not be
	// fetched.
	ErrContentFetch = errors.New("urlpdf: header/footer fetch failed")

	// ErrFilesystem is returned when the output directory or file could
	// not be written.
	ErrFilesystem = errors.New("urlpdf: filesystem error")

	// ErrPDFExport is returned when the browser's print-to-PDF call fails.
	ErrPDFExport = errors.New("urlpdf: pdf export failed")
)
