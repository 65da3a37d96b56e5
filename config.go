package notifykit

import (
	"time"

	"github.com/dmitrymomot/notifykit/pkg/content"
	"github.com/dmitrymomot/notifykit/pkg/feed"
	"github.com/dmitrymomot/notifykit/pkg/notifications"
	"github.com/dmitrymomot/notifykit/pkg/simulator"
)

// Config holds the tunables of a Center.
type Config struct {
	MaxRetained        int           `env:"NOTIFY_MAX_RETAINED" envDefault:"50"`         // MaxRetained is the store capacity.
	SimulationEnabled  bool          `env:"NOTIFY_SIMULATION_ENABLED" envDefault:"true"` // SimulationEnabled starts the simulator on Center.Start.
	SimulationInterval time.Duration `env:"NOTIFY_SIMULATION_INTERVAL" envDefault:"20s"` // SimulationInterval is the period between simulated notifications.
	WeightInfo         float64       `env:"NOTIFY_WEIGHT_INFO" envDefault:"0.4"`         // WeightInfo is the draw weight of info notifications.
	WeightSuccess      float64       `env:"NOTIFY_WEIGHT_SUCCESS" envDefault:"0.3"`      // WeightSuccess is the draw weight of success notifications.
	WeightWarning      float64       `env:"NOTIFY_WEIGHT_WARNING" envDefault:"0.2"`      // WeightWarning is the draw weight of warning notifications.
	WeightError        float64       `env:"NOTIFY_WEIGHT_ERROR" envDefault:"0.1"`        // WeightError is the draw weight of error notifications.
	RefreshCooldown    time.Duration `env:"NOTIFY_REFRESH_COOLDOWN" envDefault:"5s"`     // RefreshCooldown is the minimum time between refreshes.
	RefreshLatency     time.Duration `env:"NOTIFY_REFRESH_LATENCY" envDefault:"800ms"`   // RefreshLatency is the simulated refresh delay.
	SearchDebounce     time.Duration `env:"NOTIFY_SEARCH_DEBOUNCE" envDefault:"150ms"`   // SearchDebounce is the quiet period before a search is evaluated.
	ContentFile        string        `env:"NOTIFY_CONTENT_FILE"`                         // ContentFile optionally replaces the built-in content table.
	LogLevel           string        `env:"NOTIFY_LOG_LEVEL" envDefault:"info"`          // LogLevel is used when no logger is passed with WithLogger.
}

// DefaultConfig returns the configuration used when no environment overrides are set.
func DefaultConfig() Config {
	w := content.DefaultWeights()
	return Config{
		MaxRetained:        notifications.DefaultMaxRetained,
		SimulationEnabled:  true,
		SimulationInterval: simulator.DefaultInterval,
		WeightInfo:         w[0].Value,
		WeightSuccess:      w[1].Value,
		WeightWarning:      w[2].Value,
		WeightError:        w[3].Value,
		RefreshCooldown:    feed.DefaultCooldown,
		RefreshLatency:     feed.DefaultLatency,
		SearchDebounce:     feed.DefaultSearchDelay,
		LogLevel:           "info",
	}
}

// Weights returns the category weights in declared order.
func (c Config) Weights() content.Weights {
	return content.Weights{
		{Category: notifications.CategoryInfo, Value: c.WeightInfo},
		{Category: notifications.CategorySuccess, Value: c.WeightSuccess},
		{Category: notifications.CategoryWarning, Value: c.WeightWarning},
		{Category: notifications.CategoryError, Value: c.WeightError},
	}
}
