// Package pager turns a computed page range into the controls a pagination widget renders.
package pager

import (
	"github.com/DjordjeVuckovic/site-pager/internal/locale"
	"github.com/DjordjeVuckovic/site-pager/pkg/pagination"
)

type ItemKind string

const (
	KindPage     ItemKind = "page"
	KindEllipsis ItemKind = "ellipsis"
)

// Control is a navigation button. Page is the target page, 0 when there is none.
type Control struct {
	Page     int    `json:"page"`
	Label    string `json:"label"`
	Disabled bool   `json:"disabled"`
}

// Item is one entry of the page selector. Ellipsis items are not clickable.
type Item struct {
	Kind    ItemKind `json:"kind"`
	Page    int      `json:"page,omitempty"`
	Label   string   `json:"label"`
	Current bool     `json:"current,omitempty"`
}

type Controls struct {
	CurrentPage  int     `json:"current_page"`
	TotalPages   int     `json:"total_pages"`
	SiblingCount int     `json:"sibling_count"`
	Applicable   bool    `json:"applicable"`
	First        Control `json:"first"`
	Previous     Control `json:"previous"`
	Next         Control `json:"next"`
	Last         Control `json:"last"`
	Items        []Item  `json:"items"`
}

// NewControls fills every control slot from res using the labels in msgs.
func NewControls(res pagination.RangeResult, msgs locale.Messages) Controls {
	atStart := !res.HasPrevious()
	atEnd := !res.HasNext()

	c := Controls{
		CurrentPage:  res.CurrentPage,
		TotalPages:   res.TotalPages,
		SiblingCount: res.SiblingCount,
		Applicable:   res.Applicable,
		First:        newControl(1, msgs.First, atStart),
		Previous:     newControl(res.CurrentPage-1, msgs.Previous, atStart),
		Next:         newControl(res.CurrentPage+1, msgs.Next, atEnd),
		Last:         newControl(res.TotalPages, msgs.Last, atEnd),
		Items:        make([]Item, 0, len(res.Range)),
	}

	for _, m := range res.Range {
		if m.IsEllipsis() {
			c.Items = append(c.Items, Item{Kind: KindEllipsis, Label: msgs.Ellipsis})
			continue
		}
		c.Items = append(c.Items, Item{
			Kind:    KindPage,
			Page:    m.Page(),
			Label:   msgs.PageLabel(m.Page()),
			Current: m.Page() == res.CurrentPage,
		})
	}

	return c
}

func newControl(page int, label string, disabled bool) Control {
	if disabled {
		page = 0
	}
	return Control{Page: page, Label: label, Disabled: disabled}
}
