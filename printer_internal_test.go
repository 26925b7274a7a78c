package urlpdf

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	headerLiteral = `<div style="font-size:8px">Quarterly report</div>`
	footerLiteral = `<div style="font-size:8px">Page <span class="pageNumber"></span></div>`
)

func TestPrintParams_Templates(t *testing.T) {
	p, err := NewPrinter()
	require.NoError(t, err)

	params := p.printParams(headerLiteral, footerLiteral)
	assert.Equal(t, headerLiteral, params.HeaderTemplate)
	assert.Equal(t, footerLiteral, params.FooterTemplate)
	assert.True(t, params.PreferCSSPageSize)
	assert.True(t, params.DisplayHeaderFooter)
	assert.True(t, params.PrintBackground)
}

func TestTemplates_Order(t *testing.T) {
	tests := []struct {
		name       string
		opts       []Option
		header     string
		footer     string
		wantHeader string
		wantFooter string
	}{
		{
			name:       "header stays in the header band",
			header:     headerLiteral,
			footer:     footerLiteral,
			wantHeader: headerLiteral,
			wantFooter: footerLiteral,
		},
		{
			name:       "legacy order swaps the bands",
			opts:       []Option{WithLegacyTemplateOrder()},
			header:     headerLiteral,
			footer:     footerLiteral,
			wantHeader: footerLiteral,
			wantFooter: headerLiteral,
		},
		{
			name:       "empty values print nothing",
			wantHeader: EmptyTemplate,
			wantFooter: EmptyTemplate,
		},
		{
			name:       "legacy order with footer only",
			opts:       []Option{WithLegacyTemplateOrder()},
			footer:     footerLiteral,
			wantHeader: footerLiteral,
			wantFooter: EmptyTemplate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPrinter(tt.opts...)
			require.NoError(t, err)

			header, footer, err := p.templates(context.Background(), tt.header, tt.footer)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeader, header)
			assert.Equal(t, tt.wantFooter, footer)
		})
	}
}

func TestWaitSelector_RequestContextDone(t *testing.T) {
	p, err := NewPrinter(WithSelectorTimeout(time.Minute))
	require.NoError(t, err)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	expired, cancelExpired := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancelExpired()

	tests := []struct {
		name string
		ctx  context.Context
		want error
	}{
		{"canceled", canceled, context.Canceled},
		{"deadline exceeded", expired, context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.waitSelector(tt.ctx, "#ready")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.NotErrorIs(t, err, ErrSelectorTimeout)
			assert.NotErrorIs(t, err, ErrNavigation)
		})
	}
}
