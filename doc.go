// Package urlpdf prints web pages and HTML documents to PDF files with
// headless Chrome (Chrome DevTools Protocol).
//
// # Printing a page
//
// For one-off prints use the package-level helpers:
//
//	err := urlpdf.PrintURL(ctx, urlpdf.URLRequest{
//	    URL:    "https://example.com",
//	    Output: "/tmp/out/example.pdf",
//	})
//
// A [Printer] holds configuration and may be shared between goroutines.
// Each request launches its own browser, or opens its own tab in the
// browser given by [WithRemoteURL], and releases it before returning:
//
//	p, err := urlpdf.NewPrinter(urlpdf.WithNoSandbox())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = p.PrintURL(ctx, req)
//	err = p.PrintHTML(ctx, urlpdf.HTMLRequest{HTML: "<h1>Hi</h1>", Output: "hi.pdf"})
//
// # Headers, footers and readiness
//
// Header and Footer are either literal HTML or an http(s) URL whose body
// becomes the template. The browser fills elements with the classes date,
// title, url, pageNumber and totalPages. An empty value prints nothing in
// that band.
//
// Selector names a CSS selector that must match before printing starts,
// which lets client-rendered pages finish loading:
//
//	req := urlpdf.URLRequest{
//	    URL:      "https://app.example.com/report",
//	    Output:   "report.pdf",
//	    Footer:   "https://app.example.com/footer.html",
//	    Selector: "#report.ready",
//	}
//
// # Authentication
//
// [ParseAuth] reads the JSON auth payload used by the command line tool.
// {"type":0,...} describes a [CookieAuth] and {"type":1,"value":"..."} a
// [HeaderAuth]:
//
//	auth, err := urlpdf.ParseAuth(`{"type":1,"value":"Bearer abc"}`)
//	req.Auth = auth
//
// # Paper
//
// Pages that declare a CSS @page size are printed at that size. Otherwise
// the [PageConfig] given with [WithPageConfig] applies; it defaults to
// Letter with no margins.
//
// # Errors
//
// Every failure wraps one of the sentinel errors such as [ErrNavigation]
// or [ErrSelectorTimeout]. No output file is written when a request fails.
package urlpdf
