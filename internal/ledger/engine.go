// Package ledger implements a multi-asset fungible-token ledger over a
// key-value store: per-account balances, aggregate supply, and owner-granted
// spending allowances, with the transitions that mutate them.
//
// Each transition runs as a single all-or-nothing unit of work: every check
// is performed before any write reaches the store, and either every write of
// a transition commits or none does. The host is expected to serialize
// transitions that touch the same keys.
package ledger

import (
	"github.com/xbtasvs/polkaswap-pallet-erc20/internal/events"
	"github.com/xbtasvs/polkaswap-pallet-erc20/internal/logging"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/database/keyvalue"
)

// Engine executes ledger transitions against a key-value store.
type Engine struct {
	store  keyvalue.Beginner
	events *events.Bus
	logger logging.OptionalLogger
}

type Option func(*Engine)

// WithEvents sets the bus transition events are published to.
func WithEvents(bus *events.Bus) Option {
	return func(e *Engine) { e.events = bus }
}

// WithLogger sets the engine's logger.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.logger.Set(l, "module", "ledger") }
}

func New(store keyvalue.Beginner, opts ...Option) *Engine {
	e := &Engine{store: store}
	for _, o := range opts {
		o(e)
	}
	return e
}

// publish sends the event to the bus, if one is configured. Called only
// after a successful commit.
func (e *Engine) publish(ev events.Event) {
	if e.events != nil {
		e.events.Publish(ev)
	}
}
