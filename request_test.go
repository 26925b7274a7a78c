package urlpdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequest_URL(t *testing.T) {
	tests := []struct {
		name    string
		req     URLRequest
		wantErr bool
	}{
		{"valid", URLRequest{URL: "https://example.com/report", Output: "/tmp/r.pdf"}, false},
		{"valid with extras", URLRequest{
			URL:      "http://localhost:8080/",
			Output:   "out.pdf",
			Header:   "<b>h</b>",
			Footer:   "https://example.com/footer.html",
			Selector: "#ready",
			Auth:     HeaderAuth{Value: "Bearer x"},
		}, false},
		{"missing url", URLRequest{Output: "/tmp/r.pdf"}, true},
		{"relative url", URLRequest{URL: "/report", Output: "/tmp/r.pdf"}, true},
		{"non-http scheme", URLRequest{URL: "file:///etc/passwd", Output: "/tmp/r.pdf"}, true},
		{"missing output", URLRequest{URL: "https://example.com"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(tt.req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRequest)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRequest_HTML(t *testing.T) {
	assert.NoError(t, validateRequest(HTMLRequest{HTML: "<p>x</p>", Output: "x.pdf"}))
	assert.ErrorIs(t, validateRequest(HTMLRequest{Output: "x.pdf"}), ErrInvalidRequest)
	assert.ErrorIs(t, validateRequest(HTMLRequest{HTML: "<p>x</p>"}), ErrInvalidRequest)
}

func TestRequestPage(t *testing.T) {
	u := URLRequest{URL: "https://example.com", Output: "a.pdf", Header: "h", Footer: "f"}
	assert.Equal(t, pageRequest{output: "a.pdf", header: "h", footer: "f"}, u.page())

	h := HTMLRequest{HTML: "<p/>", Output: "b.pdf", Footer: "f"}
	assert.Equal(t, pageRequest{output: "b.pdf", footer: "f"}, h.page())
}
