package urlpdf

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/porticus-lab/go-url-pdf/internal/logger"
)

// EmptyTemplate is the header or footer template used when no content is
// given. Chrome prints its own date and title header for an empty
// template, so an inert element is sent instead.
const EmptyTemplate = "<void/>"

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 urlpdf"

// ResolverConfig configures a [ContentResolver].
type ResolverConfig struct {
	// Insecure disables TLS certificate verification for template
	// fetches. It affects header and footer retrieval only, never the
	// page being printed.
	Insecure bool

	// Timeout bounds a single template fetch. Defaults to 30 seconds.
	Timeout time.Duration

	UserAgent string
}

// DefaultResolverConfig returns a verifying resolver configuration.
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		Timeout:   30 * time.Second,
		UserAgent: defaultUserAgent,
	}
}

// ContentResolver turns a header or footer value into template HTML.
//
// An empty value resolves to [EmptyTemplate]. A value starting with
// http:// or https:// is fetched and its body returned. Anything else is
// returned unchanged as literal HTML.
type ContentResolver struct {
	config ResolverConfig
}

// NewContentResolver creates a resolver. Zero fields in cfg take their
// defaults.
func NewContentResolver(cfg ResolverConfig) *ContentResolver {
	d := DefaultResolverConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = d.Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = d.UserAgent
	}
	return &ContentResolver{config: cfg}
}

// Resolve returns the template HTML for value.
func (r *ContentResolver) Resolve(ctx context.Context, value string) (string, error) {
	switch {
	case value == "":
		return EmptyTemplate, nil
	case !isRemote(value):
		return value, nil
	}
	return r.fetch(ctx, value)
}

func isRemote(value string) bool {
	v := strings.ToLower(value)
	return strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://")
}

func (r *ContentResolver) fetch(ctx context.Context, target string) (string, error) {
	logger.Debug("template fetch starting", "url", target, "insecure", r.config.Insecure)

	c := colly.NewCollector(
		colly.UserAgent(r.config.UserAgent),
		colly.StdlibContext(ctx),
	)
	c.SetRequestTimeout(r.config.Timeout)
	c.WithTransport(r.transport())
	// Templates are returned whole; colly truncates at 10 MiB by default.
	c.MaxBodySize = 0

	var (
		body     string
		fetchErr error
	)
	c.OnResponse(func(resp *colly.Response) {
		body = string(resp.Body)
		logger.Debug("template fetch response received",
			"url", target,
			"status", resp.StatusCode,
			"body_size", len(resp.Body))
	})
	c.OnError(func(resp *colly.Response, err error) {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		fetchErr = fmt.Errorf("status %d: %w", status, err)
	})

	if err := c.Visit(target); err != nil {
		if fetchErr != nil {
			err = fetchErr
		}
		return "", fmt.Errorf("%w: %s: %w", ErrContentFetch, target, err)
	}
	if fetchErr != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrContentFetch, target, fetchErr)
	}
	return body, nil
}

func (r *ContentResolver) transport() http.RoundTripper {
	t := http.DefaultTransport.(*http.Transport).Clone()
	if r.config.Insecure {
		t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // opt-in via ResolverConfig.Insecure
	}
	return t
}
