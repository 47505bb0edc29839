package models

import "fmt"

// ListFilter selects artifacts by visibility.
type ListFilter string

const (
	// ListAll selects every artifact.
	ListAll ListFilter = "all"
	// ListVisible selects visible artifacts.
	ListVisible ListFilter = "visible"
	// ListHidden selects hidden artifacts.
	ListHidden ListFilter = "hidden"
)

// ParseListFilter parses all, visible or hidden.
func ParseListFilter(s string) (ListFilter, error) {
	switch ListFilter(s) {
	case ListAll, ListVisible, ListHidden:
		return ListFilter(s), nil
	case "":
		return ListAll, nil
	default:
		return "", fmt.Errorf("invalid filter: %s (must be all, visible, or hidden)", s)
	}
}

// Accepts reports whether an artifact with the given visibility passes.
func (f ListFilter) Accepts(visible bool) bool {
	switch f {
	case ListVisible:
		return visible
	case ListHidden:
		return !visible
	default:
		return true
	}
}

// ListEntry is one row of a diagram listing.
type ListEntry struct {
	Name    string `json:"name"`
	Kind    Kind   `json:"kind"`
	Visible bool   `json:"visible"`
	Samples int    `json:"samples"`
}

// DiagramListing holds the filtered artifacts of one diagram in registry
// order.
type DiagramListing struct {
	Diagram string      `json:"diagram"`
	Entries []ListEntry `json:"entries"`
}
