package hub

import (
	"time"

	"github.com/rs/zerolog"

	"notifyd/pkg/types"
)

// HubConfig encapsulates tunables for Hub construction.
type HubConfig struct {
	// Logger receives hub lifecycle and dispatch logs. Nil disables logging.
	Logger *zerolog.Logger
}

// NewWithConfig constructs a Hub from HubConfig.
func NewWithConfig(cfg HubConfig) *Hub {
	h := &Hub{
		observers: make(map[string][]*Observer),
		async:     make(map[string][]*AsyncObserver),
		mediators: make(map[string]types.Mediator),
		startTime: time.Now(),
	}
	if cfg.Logger != nil {
		h.log = *cfg.Logger
	} else {
		h.log = zerolog.Nop()
	}
	return h
}
