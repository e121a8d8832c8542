package food

import (
	"strings"
)

// MaxRecents bounds each per-user recently-used list.
const MaxRecents = 10

const (
	RecentFieldName     = "name"
	RecentFieldCategory = "category"
)

// NextRecents returns the list after recording value: most-recent first,
// case-insensitive de-duplication (the new spelling wins), capped at
// MaxRecents. Blank values leave the list unchanged.
func NextRecents(list []string, value string) []string {
	v := strings.TrimSpace(value)
	if v == "" {
		return list
	}

	next := make([]string, 0, len(list)+1)
	next = append(next, v)
	for _, x := range list {
		if strings.EqualFold(x, v) {
			continue
		}
		next = append(next, x)
	}
	if len(next) > MaxRecents {
		next = next[:MaxRecents]
	}
	return next
}
