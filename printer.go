package urlpdf

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/porticus-lab/go-url-pdf/internal/logger"
)

// Printer prints web pages and HTML documents to PDF files.
//
// A Printer holds configuration only. Every request launches its own
// browser (or opens its own tab when [WithRemoteURL] is set) and releases
// it before returning, so a Printer is safe for concurrent use and needs no
// Close.
type Printer struct {
	cfg      printerConfig
	resolver *ContentResolver
}

// NewPrinter creates a Printer with the given options.
//
// With [WithAutoDownload] and no explicit browser, the Chromium binary is
// downloaded here so that the first print does not pay for it.
func NewPrinter(opts ...Option) (*Printer, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.autoDownload && cfg.chromePath == "" && cfg.remoteURL == "" {
		path, err := resolveBrowser()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBrowserLaunch, err)
		}
		cfg.chromePath = path
	}

	return &Printer{
		cfg:      cfg,
		resolver: NewContentResolver(cfg.resolver),
	}, nil
}

// PrintURL loads req.URL, applies its auth, waits for its selector and
// writes the printed page to req.Output.
func (p *Printer) PrintURL(ctx context.Context, req URLRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	return p.withPage(ctx, func(tab context.Context) error {
		if err := p.loadURL(tab, req); err != nil {
			return err
		}
		return p.print(tab, req.page())
	})
}

// PrintHTML loads req.HTML directly, without any network fetch of the
// document itself, and writes the printed page to req.Output.
func (p *Printer) PrintHTML(ctx context.Context, req HTMLRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	return p.withPage(ctx, func(tab context.Context) error {
		if err := p.loadHTML(tab, req.HTML); err != nil {
			return err
		}
		return p.print(tab, req.page())
	})
}

// RenderURL is PrintURL without the file write. req.Output is ignored.
func (p *Printer) RenderURL(ctx context.Context, req URLRequest) (*Result, error) {
	if err := validate.StructExcept(req, "Output"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	var res *Result
	err := p.withPage(ctx, func(tab context.Context) error {
		if err := p.loadURL(tab, req); err != nil {
			return err
		}
		var err error
		res, err = p.export(tab, req.Header, req.Footer)
		return err
	})
	return res, err
}

// RenderHTML is PrintHTML without the file write. req.Output is ignored.
func (p *Printer) RenderHTML(ctx context.Context, req HTMLRequest) (*Result, error) {
	if err := validate.StructExcept(req, "Output"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	var res *Result
	err := p.withPage(ctx, func(tab context.Context) error {
		if err := p.loadHTML(tab, req.HTML); err != nil {
			return err
		}
		var err error
		res, err = p.export(tab, req.Header, req.Footer)
		return err
	})
	return res, err
}

// withPage runs fn against a freshly acquired page and releases the page
// afterwards, whatever fn returns.
func (p *Printer) withPage(ctx context.Context, fn func(tab context.Context) error) error {
	if p.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.timeout)
		defer cancel()
	}

	tab, release, err := p.acquirePage(ctx)
	if err != nil {
		return err
	}
	defer release()
	return fn(tab)
}

func (p *Printer) loadURL(tab context.Context, req URLRequest) error {
	if req.Auth != nil {
		if err := chromedp.Run(tab, req.Auth.action(req.URL)); err != nil {
			return fmt.Errorf("%w: applying %s auth: %w", ErrNavigation, req.Auth.Kind(), err)
		}
		logger.Debug("auth applied", "kind", req.Auth.Kind().String())
	}

	navCtx, cancel := context.WithTimeout(tab, p.cfg.navigationTimeout)
	defer cancel()
	resp, err := chromedp.RunResponse(navCtx, chromedp.Navigate(req.URL))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNavigation, req.URL, err)
	}
	if resp != nil {
		logger.Debug("navigation complete", "url", req.URL, "status", resp.Status)
	}

	if req.Selector != "" {
		return p.waitSelector(tab, req.Selector)
	}
	return nil
}

func (p *Printer) loadHTML(tab context.Context, html string) error {
	dataURL := "data:text/html;charset=utf-8;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	navCtx, cancel := context.WithTimeout(tab, p.cfg.navigationTimeout)
	defer cancel()
	if err := chromedp.Run(navCtx, chromedp.Navigate(dataURL)); err != nil {
		return fmt.Errorf("%w: html document: %w", ErrNavigation, err)
	}
	logger.Debug("html document loaded", "html_size", len(html))
	return nil
}

func (p *Printer) waitSelector(tab context.Context, selector string) error {
	waitCtx, cancel := context.WithTimeout(tab, p.cfg.selectorTimeout)
	defer cancel()

	err := chromedp.Run(waitCtx, chromedp.WaitReady(selector, chromedp.ByQuery))
	switch {
	case err == nil:
		logger.Debug("readiness selector matched", "selector", selector)
		return nil
	case tab.Err() != nil:
		// The request itself was canceled or ran out of time.
		return fmt.Errorf("waiting for %q: %w", selector, tab.Err())
	case errors.Is(waitCtx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %q not found within %s", ErrSelectorTimeout, selector, p.cfg.selectorTimeout)
	default:
		return fmt.Errorf("%w: waiting for %q: %w", ErrNavigation, selector, err)
	}
}

// print is the routine shared by both entry points once the page has
// loaded: prepare the output directory, export, write.
func (p *Printer) print(tab context.Context, req pageRequest) error {
	if err := ensureParentDir(p.cfg.fs, req.output); err != nil {
		return err
	}

	res, err := p.export(tab, req.header, req.footer)
	if err != nil {
		return err
	}

	if err := res.Save(p.cfg.fs, req.output); err != nil {
		return err
	}
	logger.Debug("pdf written", "path", req.output, "bytes", res.Len(), "pages", res.Pages())
	return nil
}

// templates resolves the header and footer values into the header and
// footer templates, in that order unless legacy order is configured.
func (p *Printer) templates(ctx context.Context, header, footer string) (string, string, error) {
	headerHTML, err := p.resolver.Resolve(ctx, header)
	if err != nil {
		return "", "", err
	}
	footerHTML, err := p.resolver.Resolve(ctx, footer)
	if err != nil {
		return "", "", err
	}
	if p.cfg.legacyTemplates {
		return footerHTML, headerHTML, nil
	}
	return headerHTML, footerHTML, nil
}

// export resolves the header and footer and prints the loaded page.
func (p *Printer) export(tab context.Context, header, footer string) (*Result, error) {
	headerHTML, footerHTML, err := p.templates(tab, header, footer)
	if err != nil {
		return nil, err
	}

	params := p.printParams(headerHTML, footerHTML)

	var buf []byte
	if err := chromedp.Run(tab, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		buf, _, err = params.Do(ctx)
		return err
	})); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPDFExport, err)
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("%w: empty output", ErrPDFExport)
	}
	return &Result{data: buf}, nil
}

// printParams builds the print call. CSS page size wins over the paper
// fallbacks, and backgrounds and the header/footer band are always on.
func (p *Printer) printParams(header, footer string) *page.PrintToPDFParams {
	pg := p.cfg.page.resolved()
	width, height := pg.paperDimensions()
	marginTop, marginRight, marginBottom, marginLeft := pg.marginInches()

	return page.PrintToPDF().
		WithPreferCSSPageSize(true).
		WithPrintBackground(true).
		WithDisplayHeaderFooter(true).
		WithHeaderTemplate(header).
		WithFooterTemplate(footer).
		WithPaperWidth(width).
		WithPaperHeight(height).
		WithMarginTop(marginTop).
		WithMarginRight(marginRight).
		WithMarginBottom(marginBottom).
		WithMarginLeft(marginLeft).
		WithScale(pg.Scale)
}

// --- Package-level convenience functions ---

// PrintURL prints a web page using a temporary [Printer].
func PrintURL(ctx context.Context, req URLRequest, opts ...Option) error {
	p, err := NewPrinter(opts...)
	if err != nil {
		return err
	}
	return p.PrintURL(ctx, req)
}

// PrintHTML prints an HTML document using a temporary [Printer].
func PrintHTML(ctx context.Context, req HTMLRequest, opts ...Option) error {
	p, err := NewPrinter(opts...)
	if err != nil {
		return err
	}
	return p.PrintHTML(ctx, req)
}
