package pagination

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Marker is one entry of a page range: either a page number or Ellipsis.
// Page numbers are always >= 1, which leaves the zero value free for Ellipsis.
type Marker int

// Ellipsis stands in for one or more hidden page numbers.
const Ellipsis Marker = 0

const ellipsisText = "ellipsis"

// PageMarker returns the marker for page n.
func PageMarker(n int) Marker {
	return Marker(n)
}

// IsEllipsis reports whether the marker replaces hidden pages.
func (m Marker) IsEllipsis() bool {
	return m == Ellipsis
}

// Page returns the page number, or 0 for Ellipsis.
func (m Marker) Page() int {
	if m.IsEllipsis() {
		return 0
	}
	return int(m)
}

func (m Marker) String() string {
	if m.IsEllipsis() {
		return "..."
	}
	return strconv.Itoa(int(m))
}

// MarshalJSON encodes pages as numbers and Ellipsis as the string "ellipsis".
func (m Marker) MarshalJSON() ([]byte, error) {
	if m.IsEllipsis() {
		return json.Marshal(ellipsisText)
	}
	return json.Marshal(int(m))
}

func (m *Marker) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s != ellipsisText {
			return fmt.Errorf("invalid page marker %q", s)
		}
		*m = Ellipsis
		return nil
	}

	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid page marker: %w", err)
	}
	if n < 1 {
		return fmt.Errorf("invalid page marker %d: page numbers start at 1", n)
	}
	*m = Marker(n)
	return nil
}
