package feed

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/dmitrymomot/notifykit/pkg/notifications"
)

// Filter returns the notifications whose title or description contains query,
// ignoring case. A blank query returns snap unchanged.
func Filter(snap notifications.Snapshot, query string) notifications.Snapshot {
	if strings.TrimSpace(query) == "" {
		return snap
	}

	fold := cases.Fold()
	q := fold.String(query)

	out := make(notifications.Snapshot, 0, len(snap))
	for _, n := range snap {
		if strings.Contains(fold.String(n.Title), q) || strings.Contains(fold.String(n.Description), q) {
			out = append(out, n)
		}
	}
	return out
}

// Partition splits snap into unread and read notifications, preserving order.
func Partition(snap notifications.Snapshot) (unread, read notifications.Snapshot) {
	unread = make(notifications.Snapshot, 0, len(snap))
	read = make(notifications.Snapshot, 0, len(snap))
	for _, n := range snap {
		if n.IsRead {
			read = append(read, n)
		} else {
			unread = append(unread, n)
		}
	}
	return unread, read
}

// Summary is a count-only view of a snapshot.
type Summary struct {
	Total      int                            `json:"total"`
	Unread     int                            `json:"unread"`
	ByCategory map[notifications.Category]int `json:"by_category"`
}

// Summarize computes a Summary from snap. Counts always derive from the
// snapshot itself, never from a separately maintained counter.
func Summarize(snap notifications.Snapshot) Summary {
	s := Summary{
		Total:      len(snap),
		ByCategory: make(map[notifications.Category]int, len(notifications.Categories())),
	}
	for _, c := range notifications.Categories() {
		s.ByCategory[c] = 0
	}
	for _, n := range snap {
		if !n.IsRead {
			s.Unread++
		}
		s.ByCategory[n.Category]++
	}
	return s
}
