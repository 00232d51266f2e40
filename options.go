package lessonclean

import (
	"log/slog"

	"github.com/jamesainslie/go-lessonclean/enforce"
)

// Option configures a Cleaner.
type Option func(*config)

type config struct {
	drawer       enforce.Drawer
	subunitsKey  string
	containerKey string
	logger       *slog.Logger
}

func defaultConfig() config {
	return config{
		drawer:       enforce.CryptoDrawer{},
		subunitsKey:  "subunits",
		containerKey: "main",
		logger:       slog.Default(),
	}
}

// WithDrawer sets the source of replacement characters
// (default: enforce.CryptoDrawer).
func WithDrawer(d enforce.Drawer) Option {
	return func(c *config) {
		if d != nil {
			c.drawer = d
		}
	}
}

// WithSubunitsKey sets the unit member whose strings are cleaned
// (default: "subunits").
func WithSubunitsKey(key string) Option {
	return func(c *config) {
		if key != "" {
			c.subunitsKey = key
		}
	}
}

// WithContainerKey sets the root member that holds the unit list
// (default: "main").
func WithContainerKey(key string) Option {
	return func(c *config) {
		if key != "" {
			c.containerKey = key
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
