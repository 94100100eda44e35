package config

import "time"

// RouterConfig contains navigation runtime configuration.
type RouterConfig struct {
	// HistoryCapacity bounds the per-client navigation history stack.
	HistoryCapacity int `env:"ROUTER_HISTORY_CAPACITY" envDefault:"50"`

	// TransitionWindow is how long the transient navigating flag stays set
	// after a navigation.
	TransitionWindow time.Duration `env:"ROUTER_TRANSITION_WINDOW" envDefault:"100ms"`
}

// Sanitize applies guardrails to router configuration values.
func (r *RouterConfig) Sanitize() {
	if r.HistoryCapacity < 1 {
		r.HistoryCapacity = 50
	}
	if r.TransitionWindow <= 0 {
		r.TransitionWindow = 100 * time.Millisecond
	}
}
