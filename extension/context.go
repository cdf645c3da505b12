// context.go defines the Context interface for extension access to ftag internals.
//
// Extensions receive Context during Init(), not at construction, because
// they register in init() before configuration has been loaded.

package extension

import (
	"github.com/jpl-au/ftag/internal/config"
	"github.com/jpl-au/ftag/internal/service"
)

// Context provides extensions controlled access to ftag internals.
type Context interface {
	// Service returns the tag service.
	Service() service.Service

	// Config returns the loaded user configuration.
	Config() *config.Config
}

// extContext implements Context.
type extContext struct {
	svc service.Service
	cfg *config.Config
}

// NewContext creates a new extension context.
func NewContext(svc service.Service, cfg *config.Config) Context {
	return &extContext{
		svc: svc,
		cfg: cfg,
	}
}

// Service returns the tag service.
func (c *extContext) Service() service.Service {
	return c.svc
}

// Config returns the loaded user configuration.
func (c *extContext) Config() *config.Config {
	return c.cfg
}
