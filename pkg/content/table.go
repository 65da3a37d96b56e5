package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/notifykit/pkg/notifications"
)

//go:embed content.yaml
var defaultTableYAML []byte

// Entry lists the candidate titles and descriptions of one category.
// Titles and descriptions are picked independently.
type Entry struct {
	Titles       []string `yaml:"titles"`
	Descriptions []string `yaml:"descriptions"`
}

// Table maps every category to its candidate content.
type Table map[notifications.Category]Entry

// DefaultTable returns the built-in content table.
func DefaultTable() Table {
	t, err := ParseTable(defaultTableYAML)
	if err != nil {
		panic(fmt.Sprintf("content: embedded table is invalid: %v", err))
	}
	return t
}

// ParseTable decodes and validates a YAML content table.
func ParseTable(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, errors.Join(ErrInvalidTable, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadTable reads and parses a YAML content table from path.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read table %s: %w", path, err)
	}
	return ParseTable(data)
}

// Validate checks that every category is present with non-blank candidates
// and that no unknown categories are declared.
func (t Table) Validate() error {
	for c := range t {
		if !c.Valid() {
			return fmt.Errorf("%w: %w %q", ErrInvalidTable, ErrUnknownCategory, c)
		}
	}
	for _, c := range notifications.Categories() {
		e, ok := t[c]
		if !ok {
			return fmt.Errorf("%w: missing category %q", ErrInvalidTable, c)
		}
		if err := validateList(c, "titles", e.Titles); err != nil {
			return err
		}
		if err := validateList(c, "descriptions", e.Descriptions); err != nil {
			return err
		}
	}
	return nil
}

func validateList(c notifications.Category, field string, list []string) error {
	if len(list) == 0 {
		return fmt.Errorf("%w: %s has no %s", ErrInvalidTable, c, field)
	}
	for i, s := range list {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: %s %s[%d] is blank", ErrInvalidTable, c, field, i)
		}
	}
	return nil
}
