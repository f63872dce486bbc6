package resolver

import (
	"fmt"

	"github.com/prism-dashboard/cards/internal/models"
)

// CardResolver resolves one card type.
type CardResolver interface {
	// Type returns the card type this resolver handles.
	Type() models.CardType
	// Resolve builds the card's view-model.
	Resolve(cfg models.CardConfig, snap models.Snapshot) any
}

type cardFunc struct {
	typ models.CardType
	fn  func(models.CardConfig, models.Snapshot) any
}

func (c cardFunc) Type() models.CardType { return c.typ }

func (c cardFunc) Resolve(cfg models.CardConfig, snap models.Snapshot) any {
	return c.fn(cfg, snap)
}

// Registry holds the resolvers for every known card type. It is built once
// and only read afterwards.
type Registry struct {
	resolvers []CardResolver
}

// NewRegistry registers the built-in cards, all sharing r.
func NewRegistry(r *Resolver) *Registry {
	if r == nil {
		r = defaultResolver
	}
	return &Registry{
		resolvers: []CardResolver{
			cardFunc{models.CardTypeBambu, func(c models.CardConfig, s models.Snapshot) any { return r.Printer(c, s) }},
			cardFunc{models.CardTypeFDM, func(c models.CardConfig, s models.Snapshot) any { return r.FDM(c, s) }},
			cardFunc{models.CardTypeButtonLight, func(c models.CardConfig, s models.Snapshot) any { return r.Light(c, s) }},
		},
	}
}

// Register adds a resolver. A later registration for the same type wins.
func (reg *Registry) Register(cr CardResolver) {
	reg.resolvers = append([]CardResolver{cr}, reg.resolvers...)
}

// Get returns the resolver for a card type. The "custom:" prefix is
// optional.
func (reg *Registry) Get(t models.CardType) (CardResolver, error) {
	want := t.Canonical()
	for _, cr := range reg.resolvers {
		if cr.Type().Canonical() == want {
			return cr, nil
		}
	}
	return nil, fmt.Errorf("no resolver for card type: %s", t)
}

// Resolve dispatches on cfg.Type. An empty type means the Bambu card.
func (reg *Registry) Resolve(cfg models.CardConfig, snap models.Snapshot) (any, error) {
	t := cfg.Type
	if t == "" {
		t = models.CardTypeBambu
	}
	cr, err := reg.Get(t)
	if err != nil {
		return nil, err
	}
	return cr.Resolve(cfg, snap), nil
}

// Types lists the registered card types.
func (reg *Registry) Types() []models.CardType {
	out := make([]models.CardType, 0, len(reg.resolvers))
	for _, cr := range reg.resolvers {
		out = append(out, cr.Type())
	}
	return out
}
