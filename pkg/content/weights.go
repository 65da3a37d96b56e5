package content

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/dmitrymomot/notifykit/pkg/notifications"
)

// Weight is the relative frequency of one category.
type Weight struct {
	Category notifications.Category
	Value    float64
}

// Weights is an ordered list of category weights. Order matters: the draw walks
// the list front to back.
type Weights []Weight

// DefaultWeights returns info 0.4, success 0.3, warning 0.2, error 0.1 in declared order.
func DefaultWeights() Weights {
	return Weights{
		{Category: notifications.CategoryInfo, Value: 0.4},
		{Category: notifications.CategorySuccess, Value: 0.3},
		{Category: notifications.CategoryWarning, Value: 0.2},
		{Category: notifications.CategoryError, Value: 0.1},
	}
}

// Validate checks categories are known and unique, values are finite and
// non-negative, and at least one value is positive.
func (w Weights) Validate() error {
	if len(w) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidWeights)
	}
	seen := make(map[notifications.Category]struct{}, len(w))
	for _, x := range w {
		if !x.Category.Valid() {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidWeights, x.Category)
		}
		if _, dup := seen[x.Category]; dup {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidWeights, x.Category)
		}
		seen[x.Category] = struct{}{}
		if x.Value < 0 || math.IsNaN(x.Value) || math.IsInf(x.Value, 0) {
			return fmt.Errorf("%w: %s has weight %v", ErrInvalidWeights, x.Category, x.Value)
		}
	}
	if w.Total() <= 0 {
		return fmt.Errorf("%w: weights sum to zero", ErrInvalidWeights)
	}
	return nil
}

// Total returns the sum of all weights.
func (w Weights) Total() float64 {
	var sum float64
	for _, x := range w {
		sum += x.Value
	}
	return sum
}

// normalizedTolerance is how far Total may drift from 1 before Pick rescales r.
const normalizedTolerance = 1e-9

// Pick maps r in [0,1) to a category. Each weight is subtracted from r in
// order; the first category whose weight exceeds what is left wins. If
// rounding leaves nothing selected, the last category is returned.
// Weights summing to 1 are walked with r as given; any other total scales r
// by Total first.
func (w Weights) Pick(r float64) notifications.Category {
	if len(w) == 0 {
		return ""
	}
	if total := w.Total(); math.Abs(total-1) > normalizedTolerance {
		r *= total
	}
	for _, x := range w {
		if r < x.Value {
			return x.Category
		}
		r -= x.Value
	}
	return w[len(w)-1].Category
}

// PickerOption configures a Picker.
type PickerOption func(*Picker)

// WithPickerRand sets the random source used for draws.
// The source must not be shared with other components.
func WithPickerRand(rnd *rand.Rand) PickerOption {
	return func(p *Picker) {
		if rnd != nil {
			p.rnd = rnd
		}
	}
}

// Picker draws categories according to Weights. It is safe for concurrent use.
type Picker struct {
	weights Weights
	rnd     *rand.Rand
	mu      sync.Mutex
}

// NewPicker validates w and returns a Picker over a copy of it.
func NewPicker(w Weights, opts ...PickerOption) (*Picker, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	p := &Picker{weights: append(Weights(nil), w...)}
	for _, opt := range opts {
		opt(p)
	}
	if p.rnd == nil {
		p.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return p, nil
}

// Pick draws one category.
func (p *Picker) Pick() notifications.Category {
	p.mu.Lock()
	r := p.rnd.Float64()
	p.mu.Unlock()
	return p.weights.Pick(r)
}

// Weights returns a copy of the configured weights.
func (p *Picker) Weights() Weights {
	return append(Weights(nil), p.weights...)
}
