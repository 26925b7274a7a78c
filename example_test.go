package urlpdf_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	urlpdf "github.com/porticus-lab/go-url-pdf"
)

func Example() {
	p, err := urlpdf.NewPrinter(urlpdf.WithNoSandbox())
	if err != nil {
		log.Fatal(err)
	}

	err = p.PrintURL(context.Background(), urlpdf.URLRequest{
		URL:    "https://example.com",
		Output: "/tmp/urlpdf/example.pdf",
		Footer: `<div style="font-size:8px;margin:auto">Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`,
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("PDF saved to /tmp/urlpdf/example.pdf")
}

func Example_authenticated() {
	auth, err := urlpdf.ParseAuth(`{"type":0,"name":"session","value":"abc123","httpOnly":true}`)
	if err != nil {
		log.Fatal(err)
	}

	p, err := urlpdf.NewPrinter(
		urlpdf.WithNoSandbox(),
		urlpdf.WithSelectorTimeout(10*time.Second),
	)
	if err != nil {
		log.Fatal(err)
	}

	err = p.PrintURL(context.Background(), urlpdf.URLRequest{
		URL:      "https://app.example.com/reports/42",
		Output:   "/tmp/urlpdf/report-42.pdf",
		Header:   "https://app.example.com/templates/header.html",
		Auth:     auth,
		Selector: "#report.ready",
	})
	if err != nil {
		log.Fatal(err)
	}
}

func Example_render() {
	p, err := urlpdf.NewPrinter(
		urlpdf.WithNoSandbox(),
		urlpdf.WithPageConfig(urlpdf.PageConfig{
			Size:        urlpdf.A4,
			Orientation: urlpdf.Landscape,
			Margin:      urlpdf.Margin{Top: 2, Right: 2.5, Bottom: 2, Left: 2.5},
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	res, err := p.RenderHTML(context.Background(), urlpdf.HTMLRequest{
		HTML: `<!DOCTYPE html>
<html><body>
  <h1 style="color: navy;">Landscape Report</h1>
  <p>Printed on A4 in landscape when the page sets no @page size.</p>
</body></html>`,
	})
	if err != nil {
		log.Fatal(err)
	}

	if _, err := res.WriteTo(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
