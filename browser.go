package urlpdf

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chromedp/chromedp"
	"github.com/go-rod/rod/lib/launcher"

	"github.com/porticus-lab/go-url-pdf/internal/logger"
)

// resolveBrowser downloads a compatible Chromium binary if one is not
// already cached and returns the path to the executable. The binary is
// stored in ~/.cache/rod/browser (Unix) or %APPDATA%\rod\browser (Windows).
func resolveBrowser() (string, error) {
	path, err := launcher.NewBrowser().Get()
	if err != nil {
		return "", fmt.Errorf("downloading browser: %w", err)
	}
	return path, nil
}

// allocatorOptions returns the exec allocator flags for a local launch.
func (c *printerConfig) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-translate", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("headless", c.headless),
	)
	if c.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(c.chromePath))
	}
	if c.noSandbox {
		opts = append(opts, chromedp.NoSandbox)
	}
	if c.ignoreCertErrors {
		opts = append(opts, chromedp.IgnoreCertErrors)
	}
	return opts
}

// acquirePage launches a browser, or connects to the remote one, and opens
// a fresh page. The returned release func closes the page and the browser
// it launched; callers must invoke it on every path.
func (p *Printer) acquirePage(ctx context.Context) (context.Context, context.CancelFunc, error) {
	var (
		allocCtx    context.Context
		allocCancel context.CancelFunc
	)
	if p.cfg.remoteURL != "" {
		allocCtx, allocCancel = chromedp.NewRemoteAllocator(ctx, p.cfg.remoteURL)
	} else {
		allocCtx, allocCancel = chromedp.NewExecAllocator(ctx, p.cfg.allocatorOptions()...)
	}

	tabCtx, tabCancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(logger.Printf(slog.LevelDebug)),
		chromedp.WithErrorf(logger.Printf(slog.LevelWarn)),
	)
	release := func() {
		tabCancel()
		allocCancel()
		logger.Debug("page released", "remote", p.cfg.remoteURL != "")
	}

	// Start the browser eagerly so launch errors are not reported as
	// navigation failures.
	if err := chromedp.Run(tabCtx); err != nil {
		release()
		return nil, nil, fmt.Errorf("%w: %w", ErrBrowserLaunch, err)
	}
	logger.Debug("page acquired", "remote", p.cfg.remoteURL != "", "chrome_path", p.cfg.chromePath)
	return tabCtx, release, nil
}
