package urlpdf

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// AuthKind identifies how a request authenticates its navigation. The
// numeric values are part of the auth payload wire format.
type AuthKind int

const (
	// AuthCookie sets a cookie before navigation.
	AuthCookie AuthKind = 0
	// AuthHeader sends an Authorization header on every page request.
	AuthHeader AuthKind = 1
)

func (k AuthKind) String() string {
	switch k {
	case AuthCookie:
		return "cookie"
	case AuthHeader:
		return "header"
	default:
		return fmt.Sprintf("AuthKind(%d)", int(k))
	}
}

// Auth describes how to authenticate the browser's navigation request.
// The only implementations are [CookieAuth] and [HeaderAuth]; use
// [ParseAuth] to build one from its serialized form.
type Auth interface {
	Kind() AuthKind

	// action returns the browser steps that install the credentials.
	// target is the URL about to be loaded.
	action(target string) chromedp.Action
}

// CookieAuth installs a single cookie on the page before navigation.
// Field names follow the browser's cookie descriptor.
type CookieAuth struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value"`

	// URL scopes the cookie. When both URL and Domain are empty the
	// cookie is scoped to the print target.
	URL    string `json:"url,omitempty" validate:"omitempty,http_url"`
	Domain string `json:"domain,omitempty"`
	Path   string `json:"path,omitempty"`

	// Expires is in seconds since the Unix epoch. Zero means a session
	// cookie.
	Expires  float64 `json:"expires,omitempty" validate:"gte=0"`
	HTTPOnly bool    `json:"httpOnly,omitempty"`
	Secure   bool    `json:"secure,omitempty"`
	SameSite string  `json:"sameSite,omitempty" validate:"omitempty,oneof=Strict Lax None"`
}

// Kind implements [Auth].
func (CookieAuth) Kind() AuthKind { return AuthCookie }

func (c CookieAuth) action(target string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		p := network.SetCookie(c.Name, c.Value)
		switch {
		case c.URL != "":
			p = p.WithURL(c.URL)
		case c.Domain == "":
			p = p.WithURL(target)
		}
		if c.Domain != "" {
			p = p.WithDomain(c.Domain)
		}
		if c.Path != "" {
			p = p.WithPath(c.Path)
		}
		if c.Expires > 0 {
			sec, frac := math.Modf(c.Expires)
			exp := cdp.TimeSinceEpoch(time.Unix(int64(sec), int64(frac*1e9)))
			p = p.WithExpires(&exp)
		}
		if c.SameSite != "" {
			p = p.WithSameSite(network.CookieSameSite(c.SameSite))
		}
		return p.WithHTTPOnly(c.HTTPOnly).WithSecure(c.Secure).Do(ctx)
	})
}

// HeaderAuth sends Value as the Authorization header of every request
// the page makes.
type HeaderAuth struct {
	Value string `json:"value" validate:"required"`
}

// Kind implements [Auth].
func (HeaderAuth) Kind() AuthKind { return AuthHeader }

func (h HeaderAuth) action(string) chromedp.Action {
	return chromedp.Tasks{
		network.Enable(),
		network.SetExtraHTTPHeaders(network.Headers{"Authorization": h.Value}),
	}
}

// ParseAuth decodes a serialized auth payload. The payload is a JSON
// object whose "type" field selects the kind (0 = cookie, 1 = header);
// the remaining fields are those of [CookieAuth] or [HeaderAuth].
//
// Any payload that is not valid JSON, has no type, names an unknown type,
// or fails field validation returns an error wrapping [ErrAuthParse].
func ParseAuth(payload string) (Auth, error) {
	var envelope struct {
		Type *AuthKind `json:"type"`
	}
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthParse, err)
	}
	if envelope.Type == nil {
		return nil, fmt.Errorf("%w: missing \"type\" field", ErrAuthParse)
	}

	var auth Auth
	switch *envelope.Type {
	case AuthCookie:
		var c CookieAuth
		if err := json.Unmarshal([]byte(payload), &c); err != nil {
			return nil, fmt.Errorf("%w: cookie: %w", ErrAuthParse, err)
		}
		auth = c
	case AuthHeader:
		var h HeaderAuth
		if err := json.Unmarshal([]byte(payload), &h); err != nil {
			return nil, fmt.Errorf("%w: header: %w", ErrAuthParse, err)
		}
		auth = h
	default:
		return nil, fmt.Errorf("%w: unknown type %d", ErrAuthParse, int(*envelope.Type))
	}

	if err := validate.Struct(auth); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAuthParse, auth.Kind(), err)
	}
	return auth, nil
}
