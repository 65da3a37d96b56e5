package notifications

import (
	"fmt"
	"strings"
	"time"
)

// Category classifies a notification. The set is closed.
type Category string

const (
	CategoryInfo    Category = "info"
	CategorySuccess Category = "success"
	CategoryWarning Category = "warning"
	CategoryError   Category = "error"
)

// Categories returns every category in declared order.
// The order is significant for weighted selection.
func Categories() []Category {
	return []Category{CategoryInfo, CategorySuccess, CategoryWarning, CategoryError}
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryInfo, CategorySuccess, CategoryWarning, CategoryError:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory converts s (case-insensitive, surrounding spaces ignored) to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// Notification is a single simulated alert.
// Everything except IsRead is fixed at creation; IsRead is only changed by the Store.
type Notification struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	IsRead      bool      `json:"is_read"`
}
