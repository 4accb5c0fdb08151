// Package view selects the slice of a feed that a page displays.
package view

import (
	"fmt"
	"strconv"
	"strings"

	"Pindexa/internal/domain"
)

// DefaultCount is applied when the requested count cannot be parsed.
const DefaultCount = 10

// Count is either a fixed number of predictions or "all".
type Count struct {
	all bool
	n   int
}

// All selects the whole feed.
func All() Count { return Count{all: true} }

// N selects the first n predictions.
func N(n int) Count { return Count{n: n} }

// IsAll reports whether the count selects the whole feed.
func (c Count) IsAll() bool { return c.all }

// String renders the count the way the show query parameter spells it.
func (c Count) String() string {
	if c.all {
		return "all"
	}
	return strconv.Itoa(c.n)
}

// ParseCount reads a show parameter: "all", a decimal integer, or the default.
func ParseCount(raw string) Count {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "all") {
		return All()
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return N(DefaultCount)
	}
	return N(n)
}

// Preset is a filter button offered on prediction lists.
type Preset struct {
	Label string
	Count Count
}

// Presets lists the filter buttons in display order.
var Presets = []Preset{
	{Label: "Top 5", Count: N(5)},
	{Label: "Top 10", Count: N(10)},
	{Label: "Top 20", Count: N(20)},
	{Label: "All", Count: All()},
}

// Selection is the render-ready projection of a feed.
type Selection struct {
	Shown      []domain.Prediction `json:"shown"`
	ShownCount int                 `json:"shown_count"`
	TotalCount int                 `json:"total_count"`
}

// Summary renders the "Showing X of Y" caption.
func (s Selection) Summary() string {
	return fmt.Sprintf("Showing %d of %d", s.ShownCount, s.TotalCount)
}

// Select returns the leading predictions of the feed in rank order. It never
// re-sorts and never mutates the feed.
func Select(feed domain.Feed, count Count) Selection {
	total := len(feed.Predictions)

	take := total
	if !count.all {
		take = min(max(count.n, 0), total)
	}

	shown := feed.Predictions[:take:take]
	if shown == nil {
		shown = []domain.Prediction{}
	}

	return Selection{
		Shown:      shown,
		ShownCount: len(shown),
		TotalCount: total,
	}
}
