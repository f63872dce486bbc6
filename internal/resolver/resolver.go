// Package resolver turns host state snapshots into card view-models.
//
// Every resolve call is total: missing entities, missing attributes and
// malformed values degrade to defaults or preview data and are reported
// through the logger, never to the caller. A Resolver holds no mutable
// state and may be shared freely.
package resolver

import (
	"github.com/prism-dashboard/cards/internal/logging"
	"github.com/prism-dashboard/cards/internal/models"
)

// Resolver builds view-models for all card types.
type Resolver struct {
	log logging.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger routes diagnostics to l.
func WithLogger(l logging.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// New creates a Resolver. Without options diagnostics are discarded.
func New(opts ...Option) *Resolver {
	r := &Resolver{log: logging.Nop()}
	for _, o := range opts {
		o(r)
	}
	return r
}

var defaultResolver = New()

// ResolvePrinter resolves a Bambu printer card without diagnostics.
func ResolvePrinter(cfg models.CardConfig, snap models.Snapshot) models.PrinterView {
	return defaultResolver.Printer(cfg, snap)
}

// ResolveFDM resolves a generic 3D printer card without diagnostics.
func ResolveFDM(cfg models.CardConfig, snap models.Snapshot) models.FDMView {
	return defaultResolver.FDM(cfg, snap)
}

// ResolveLight resolves a button-light card without diagnostics.
func ResolveLight(cfg models.CardConfig, snap models.Snapshot) models.LightView {
	return defaultResolver.Light(cfg, snap)
}
