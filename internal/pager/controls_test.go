package pager

import (
	"testing"

	"github.com/DjordjeVuckovic/site-pager/internal/locale"
	"github.com/DjordjeVuckovic/site-pager/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messages(t *testing.T, lang string) locale.Messages {
	t.Helper()
	c, err := locale.DefaultCatalog()
	require.NoError(t, err)
	return c.Lookup(lang)
}

func TestNewControls_Middle(t *testing.T) {
	res := pagination.ComputeRange(pagination.RangeRequest{TotalPages: 10, CurrentPage: 5, SiblingCount: 1})

	c := NewControls(res, messages(t, locale.EN))

	assert.True(t, c.Applicable)
	assert.Equal(t, Control{Page: 1, Label: "First"}, c.First)
	assert.Equal(t, Control{Page: 4, Label: "Previous"}, c.Previous)
	assert.Equal(t, Control{Page: 6, Label: "Next"}, c.Next)
	assert.Equal(t, Control{Page: 10, Label: "Last"}, c.Last)

	require.Len(t, c.Items, 7)
	assert.Equal(t, Item{Kind: KindPage, Page: 1, Label: "Page 1"}, c.Items[0])
	assert.Equal(t, Item{Kind: KindEllipsis, Label: "More pages"}, c.Items[1])
	assert.Equal(t, Item{Kind: KindPage, Page: 5, Label: "Page 5", Current: true}, c.Items[3])
	assert.Equal(t, KindEllipsis, c.Items[5].Kind)
	assert.Equal(t, 10, c.Items[6].Page)
}

func TestNewControls_Boundaries(t *testing.T) {
	tests := []struct {
		name         string
		req          pagination.RangeRequest
		wantStartOff bool
		wantEndOff   bool
	}{
		{name: "first page", req: pagination.RangeRequest{TotalPages: 3, CurrentPage: 1}, wantStartOff: true},
		{name: "last page", req: pagination.RangeRequest{TotalPages: 3, CurrentPage: 3}, wantEndOff: true},
		{name: "single page", req: pagination.RangeRequest{TotalPages: 1, CurrentPage: 1}, wantStartOff: true, wantEndOff: true},
		{name: "no pages", req: pagination.RangeRequest{}, wantStartOff: true, wantEndOff: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewControls(pagination.ComputeRange(tt.req), messages(t, locale.EN))

			assert.Equal(t, tt.wantStartOff, c.First.Disabled)
			assert.Equal(t, tt.wantStartOff, c.Previous.Disabled)
			assert.Equal(t, tt.wantEndOff, c.Next.Disabled)
			assert.Equal(t, tt.wantEndOff, c.Last.Disabled)

			if c.Previous.Disabled {
				assert.Zero(t, c.Previous.Page)
			}
			if c.Next.Disabled {
				assert.Zero(t, c.Next.Page)
			}
		})
	}
}

func TestNewControls_Localized(t *testing.T) {
	res := pagination.ComputeRange(pagination.RangeRequest{TotalPages: 2, CurrentPage: 2, SiblingCount: 1})

	c := NewControls(res, messages(t, locale.DE))

	assert.Equal(t, "Zurück", c.Previous.Label)
	assert.Equal(t, "Seite 2", c.Items[1].Label)
	assert.True(t, c.Items[1].Current)
}
