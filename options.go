package urlpdf

import (
	"time"

	"github.com/spf13/afero"
)

// printerConfig holds internal configuration for a Printer.
type printerConfig struct {
	chromePath        string
	remoteURL         string
	autoDownload      bool
	noSandbox         bool
	headless          string
	ignoreCertErrors  bool
	timeout           time.Duration
	navigationTimeout time.Duration
	selectorTimeout   time.Duration
	resolver          ResolverConfig
	legacyTemplates   bool
	page              PageConfig
	fs                afero.Fs
}

func defaultConfig() printerConfig {
	return printerConfig{
		headless:          "new",
		timeout:           2 * time.Minute,
		navigationTimeout: 30 * time.Second,
		selectorTimeout:   30 * time.Second,
		resolver:          DefaultResolverConfig(),
		page:              DefaultPageConfig(),
		fs:                afero.NewOsFs(),
	}
}

// Option configures a [Printer].
type Option func(*printerConfig)

// WithChromePath sets the path to the Chrome or Chromium executable.
// By default chromedp searches standard locations automatically.
func WithChromePath(path string) Option {
	return func(c *printerConfig) {
		c.chromePath = path
	}
}

// WithAutoDownload downloads a compatible Chromium build on first use when
// no executable path is set. The binary is cached by the rod launcher.
func WithAutoDownload() Option {
	return func(c *printerConfig) {
		c.autoDownload = true
	}
}

// WithRemoteURL connects to an already running browser through its
// DevTools websocket URL instead of launching one. Each request then opens
// and closes its own tab.
func WithRemoteURL(url string) Option {
	return func(c *printerConfig) {
		c.remoteURL = url
	}
}

// WithNoSandbox disables the Chrome sandbox. This is required when
// running as root, for example inside Docker containers.
func WithNoSandbox() Option {
	return func(c *printerConfig) {
		c.noSandbox = true
	}
}

// WithIgnoreHTTPSErrors makes the browser accept invalid certificates on
// the printed page.
func WithIgnoreHTTPSErrors() Option {
	return func(c *printerConfig) {
		c.ignoreCertErrors = true
	}
}

// WithInsecureFetch disables TLS certificate verification when header or
// footer templates are fetched from https URLs. Verification is on by
// default.
func WithInsecureFetch(insecure bool) Option {
	return func(c *printerConfig) {
		c.resolver.Insecure = insecure
	}
}

// WithFetchTimeout bounds each header or footer fetch.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *printerConfig) {
		if d > 0 {
			c.resolver.Timeout = d
		}
	}
}

// WithTimeout sets the maximum duration for a single print request.
// Defaults to 2 minutes. A zero or negative value disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *printerConfig) {
		c.timeout = d
	}
}

// WithNavigationTimeout bounds page navigation. Defaults to 30 seconds.
func WithNavigationTimeout(d time.Duration) Option {
	return func(c *printerConfig) {
		if d > 0 {
			c.navigationTimeout = d
		}
	}
}

// WithSelectorTimeout bounds the wait for a readiness selector. Defaults
// to 30 seconds.
func WithSelectorTimeout(d time.Duration) Option {
	return func(c *printerConfig) {
		if d > 0 {
			c.selectorTimeout = d
		}
	}
}

// WithLegacyTemplateOrder sends the resolved footer as the header template
// and the resolved header as the footer template. Only scripts written
// against that older behavior need it.
func WithLegacyTemplateOrder() Option {
	return func(c *printerConfig) {
		c.legacyTemplates = true
	}
}

// WithPageConfig sets the paper fallbacks used when the document declares
// no CSS page size.
func WithPageConfig(pg PageConfig) Option {
	return func(c *printerConfig) {
		c.page = pg
	}
}

// WithFs sets the filesystem PDFs are written to. Defaults to the OS
// filesystem.
func WithFs(fs afero.Fs) Option {
	return func(c *printerConfig) {
		if fs != nil {
			c.fs = fs
		}
	}
}
