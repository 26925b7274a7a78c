package urlpdf

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porticus-lab/go-url-pdf/internal/pdftest"
)

var samplePDF = []byte("%PDF-1.4 fake content for testing")

func newResult() *Result {
	return &Result{data: samplePDF}
}

func TestResult_Bytes(t *testing.T) {
	assert.Equal(t, samplePDF, newResult().Bytes())
}

func TestResult_Base64(t *testing.T) {
	assert.Equal(t, base64.StdEncoding.EncodeToString(samplePDF), newResult().Base64())
}

func TestResult_Reader(t *testing.T) {
	r := newResult()
	reader := r.Reader()
	require.Equal(t, len(samplePDF), reader.Len())

	var buf bytes.Buffer
	_, err := buf.ReadFrom(reader)
	require.NoError(t, err)
	assert.Equal(t, samplePDF, buf.Bytes())

	// Each call returns an independent reader.
	assert.Equal(t, len(samplePDF), r.Reader().Len())
}

func TestResult_WriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := newResult().WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(samplePDF)), n)
	assert.Equal(t, samplePDF, buf.Bytes())
}

func TestResult_Len(t *testing.T) {
	assert.Equal(t, len(samplePDF), newResult().Len())
}

func TestResult_Pages(t *testing.T) {
	tests := []struct {
		name string
		data string
		want int
	}{
		{"no page objects", "%PDF-1.4", 1},
		{"one page", "<< /Type /Pages /Count 1 >> << /Type /Page >>", 1},
		{"three pages", "<< /Type /Pages >> << /Type /Page >> << /Type /Page >> << /Type /Page >>", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Result{data: []byte(tt.data)}
			assert.Equal(t, tt.want, r.Pages())
		})
	}
}

func TestResult_SaveCreatesParentDirs(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, newResult().Save(fs, "/out/nested/dir/doc.pdf"))

	got, err := afero.ReadFile(fs, "/out/nested/dir/doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, samplePDF, got)
}

func TestResult_SaveOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/doc.pdf", []byte("old and longer content"), 0o644))

	require.NoError(t, newResult().Save(fs, "/doc.pdf"))

	got, err := afero.ReadFile(fs, "/doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, samplePDF, got)
}

func TestResult_SaveReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := newResult().Save(fs, "/out/doc.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFilesystem)
}

func TestEnsureParentDir_Existing(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/a/b", 0o755))

	require.NoError(t, ensureParentDir(fs, "/a/b/c.pdf"))
	ok, err := afero.DirExists(fs, "/a/b")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestResult_PagesFromPageTree(t *testing.T) {
	r := &Result{data: pdftest.Build(pdftest.Letter, pdftest.Letter, pdftest.A4Landscape)}
	assert.Equal(t, 3, r.Pages())
}

func TestResult_PagesMalformedFallsBack(t *testing.T) {
	r := &Result{data: []byte("%PDF-1.4\n<< /Type /Page >> << /Type /Page >> 1 0 obj <")}
	require.NotPanics(t, func() {
		assert.Equal(t, 2, r.Pages())
	})
}
