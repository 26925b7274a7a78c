package urlpdf

import (
	"fmt"
	"math"
	"strings"
)

// PageSize represents paper dimensions in centimeters.
type PageSize struct {
	Width  float64 // Width in centimeters.
	Height float64 // Height in centimeters.
}

// Standard paper sizes.
var (
	A3      = PageSize{Width: 29.7, Height: 42.0}
	A4      = PageSize{Width: 21.0, Height: 29.7}
	A5      = PageSize{Width: 14.8, Height: 21.0}
	Letter  = PageSize{Width: 21.59, Height: 27.94}
	Legal   = PageSize{Width: 21.59, Height: 35.56}
	Tabloid = PageSize{Width: 27.94, Height: 43.18}
)

var pageSizes = map[string]PageSize{
	"a3":      A3,
	"a4":      A4,
	"a5":      A5,
	"letter":  Letter,
	"legal":   Legal,
	"tabloid": Tabloid,
}

// ParsePageSize returns the standard paper size with the given name,
// ignoring case.
func ParsePageSize(name string) (PageSize, error) {
	s, ok := pageSizes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return PageSize{}, fmt.Errorf("urlpdf: unknown paper size %q", name)
	}
	return s, nil
}

// PageSizeName returns the name of the standard paper size whose
// dimensions match width and height, given in centimeters, within a
// millimeter. Orientation is ignored.
func PageSizeName(width, height float64) (string, bool) {
	const tolerance = 0.1
	if width > height {
		width, height = height, width
	}
	for name, s := range pageSizes {
		if math.Abs(s.Width-width) <= tolerance && math.Abs(s.Height-height) <= tolerance {
			return name, true
		}
	}
	return "", false
}

// Orientation represents the page orientation.
type Orientation int

const (
	// Portrait is the default vertical orientation.
	Portrait Orientation = iota
	// Landscape rotates the page to horizontal orientation.
	Landscape
)

// Margin represents page margins in centimeters.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformMargin returns a Margin with the same value on all sides.
func UniformMargin(cm float64) Margin {
	return Margin{Top: cm, Right: cm, Bottom: cm, Left: cm}
}

// PageConfig holds the paper settings used when the printed document does
// not declare its own CSS @page size. CSS page size, background graphics
// and the header/footer band are always enabled.
type PageConfig struct {
	// Size specifies the paper size. Defaults to Letter.
	Size PageSize

	// Orientation specifies portrait or landscape. Defaults to Portrait.
	Orientation Orientation

	// Margin specifies page margins in centimeters. Defaults to none; a
	// visible header or footer needs room, either here or from CSS.
	Margin Margin

	// Scale of the webpage rendering. Must be between 0.1 and 2.0. Defaults to 1.0.
	Scale float64
}

// DefaultPageConfig returns the browser's own print defaults.
func DefaultPageConfig() PageConfig {
	return PageConfig{
		Size:        Letter,
		Orientation: Portrait,
		Scale:       1.0,
	}
}

// resolved returns a PageConfig with zero values replaced by defaults and
// the scale clamped to the range Chrome accepts.
func (p PageConfig) resolved() PageConfig {
	d := DefaultPageConfig()
	r := p
	if r.Size == (PageSize{}) {
		r.Size = d.Size
	}
	switch {
	case r.Scale <= 0:
		r.Scale = d.Scale
	case r.Scale < 0.1:
		r.Scale = 0.1
	case r.Scale > 2:
		r.Scale = 2
	}
	return r
}

// cmToInches converts centimeters to inches.
func cmToInches(cm float64) float64 {
	return cm / 2.54
}

// paperDimensions returns the paper width and height in inches,
// accounting for orientation.
func (p PageConfig) paperDimensions() (width, height float64) {
	r := p.resolved()
	w := cmToInches(r.Size.Width)
	h := cmToInches(r.Size.Height)
	if r.Orientation == Landscape {
		return h, w
	}
	return w, h
}

// marginInches returns margins converted to inches.
func (p PageConfig) marginInches() (top, right, bottom, left float64) {
	r := p.resolved()
	return cmToInches(r.Margin.Top),
		cmToInches(r.Margin.Right),
		cmToInches(r.Margin.Bottom),
		cmToInches(r.Margin.Left)
}
