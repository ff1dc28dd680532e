package listbox

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FindByLabel returns the index of the option that best matches query:
// exact label or id, then label prefix, then substring, then the closest
// fuzzy match. It returns -1 when nothing matches at all.
func (l *Listbox) FindByLabel(query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(l.items) == 0 {
		return -1
	}
	for i, item := range l.items {
		if strings.EqualFold(item.Label, trimmed) || strings.EqualFold(item.ID, trimmed) {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	for i, item := range l.items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	for i, item := range l.items {
		if strings.Contains(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(l.items))
	for i, item := range l.items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	return best.OriginalIndex
}

// FocusByLabel focuses the best match for query.
func (l *Listbox) FocusByLabel(query string) bool {
	return l.focusIndex(l.FindByLabel(query))
}
