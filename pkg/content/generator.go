package content

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/dmitrymomot/notifykit/pkg/notifications"
)

// Content is a generated title and description pair.
type Content struct {
	Title       string
	Description string
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithTable replaces the built-in content table. The table must be valid.
func WithTable(t Table) GeneratorOption {
	return func(g *Generator) {
		if t != nil {
			g.table = t
		}
	}
}

// WithRand sets the random source. Pass a seeded source for reproducible output.
// The source must not be shared with other components.
func WithRand(rnd *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		if rnd != nil {
			g.rnd = rnd
		}
	}
}

// Generator produces random notification content from a Table.
// It is safe for concurrent use.
type Generator struct {
	table Table
	rnd   *rand.Rand
	mu    sync.Mutex
}

// NewGenerator creates a generator over the built-in table unless WithTable is given.
func NewGenerator(opts ...GeneratorOption) (*Generator, error) {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.table == nil {
		g.table = DefaultTable()
	}
	if err := g.table.Validate(); err != nil {
		return nil, err
	}
	if g.rnd == nil {
		g.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g, nil
}

// Generate picks a title and a description for category, each uniformly and
// independently of the other.
func (g *Generator) Generate(category notifications.Category) (Content, error) {
	e, ok := g.table[category]
	if !ok {
		return Content{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	g.mu.Lock()
	ti := g.rnd.Intn(len(e.Titles))
	di := g.rnd.Intn(len(e.Descriptions))
	g.mu.Unlock()

	return Content{Title: e.Titles[ti], Description: e.Descriptions[di]}, nil
}
