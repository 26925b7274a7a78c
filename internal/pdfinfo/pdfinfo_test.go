package pdfinfo

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porticus-lab/go-url-pdf/internal/pdftest"
)

func TestInspect_Pages(t *testing.T) {
	info, err := Inspect(pdftest.Build(pdftest.Letter, pdftest.A4Landscape))
	require.NoError(t, err)

	assert.Equal(t, "1.7", info.Version)
	require.Len(t, info.Pages, 2)

	assert.Equal(t, Page{Width: 612, Height: 792}, info.Pages[0])
	assert.False(t, info.Pages[0].Landscape())
	w, h := info.Pages[0].Inches()
	assert.InDelta(t, 8.5, w, 1e-9)
	assert.InDelta(t, 11, h, 1e-9)

	assert.Equal(t, Page{Width: 842, Height: 595}, info.Pages[1])
	assert.True(t, info.Pages[1].Landscape())
}

func TestPageCount(t *testing.T) {
	n, err := PageCount(pdftest.Build(pdftest.Letter, pdftest.Letter, pdftest.Letter))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestInspect_NotPDF(t *testing.T) {
	_, err := Inspect([]byte("<html></html>"))
	assert.ErrorIs(t, err, ErrNotPDF)

	_, err = PageCount(nil)
	assert.ErrorIs(t, err, ErrNotPDF)
}

func TestInspect_MalformedInput(t *testing.T) {
	objStm := "%PDF-1.5\n" +
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n" +
		"6 0 obj\n<< /Type /ObjStm /N 1 /First 6 /Length 30 >>\nstream\n" +
		"2 -50 << /Type /Pages /Count 0 >>\nendstream\nendobj\n" +
		"trailer\n<< /Root 1 0 R >>\n"

	tests := []struct {
		name string
		data string
	}{
		{"truncated hex string", "%PDF-1.4\n1 0 obj <"},
		{"object stream with negative offset", objStm},
		{"stream length overflow", fmt.Sprintf("%%PDF-1.4\n1 0 obj\n<< /Length %d >>\nstream\nabc\nendstream\nendobj\n", int64(math.MaxInt64))},
		{"header only", "%PDF-1.7\n"},
		{"truncated document", string(pdftest.Build(pdftest.Letter)[:60])},
		{"broken xref", string(bytes.Replace(pdftest.Build(pdftest.Letter), []byte("xref"), []byte("xxxx"), 1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				info, err := Inspect([]byte(tt.data))
				if err != nil {
					assert.Nil(t, info)
				}
				_, _ = PageCount([]byte(tt.data))
			})
		})
	}
}

func TestInspect_MalformedReturnsError(t *testing.T) {
	for _, data := range []string{
		"%PDF-1.4\n1 0 obj <",
		"%PDF-1.7\n",
	} {
		info, err := Inspect([]byte(data))
		require.Error(t, err)
		assert.Nil(t, info)
		assert.True(t, errors.Is(err, ErrMalformed) || errors.Is(err, ErrNoPages), "unexpected error: %v", err)
	}
}

func TestRecoverMalformed(t *testing.T) {
	f := func() (err error) {
		defer recoverMalformed(&err)
		var s []int
		_ = s[3]
		return nil
	}
	err := f()
	assert.ErrorIs(t, err, ErrMalformed)
}
