package config

import (
	"errors"
	"fmt"

	"github.com/prism-dashboard/cards/internal/models"
)

var (
	ErrMissingEntity   = errors.New("please define an entity")
	ErrUnknownCardType = errors.New("unknown card type")
	ErrInvalidLayout   = errors.New("invalid layout")
	ErrInvalidColor    = errors.New("invalid color")
)

// ConfigError is a fatal configuration problem, reported to whoever authored
// the card.
type ConfigError struct {
	Card  int // position in the dashboard, -1 for a lone card
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Card >= 0 {
		return fmt.Sprintf("card %d: %s: %v", e.Card, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// KnownCardTypes lists every card type the resolvers handle.
var KnownCardTypes = []models.CardType{
	models.CardTypeBambu,
	models.CardTypeFDM,
	models.CardTypeButtonLight,
}

func isKnownType(t models.CardType) bool {
	t = t.Canonical()
	for _, k := range KnownCardTypes {
		if k == t {
			return true
		}
	}
	return false
}

// Validate checks a single card configuration.
// It MUST NOT mutate the configuration.
func Validate(cfg models.CardConfig) error {
	return validateAt(cfg, -1)
}

func validateAt(cfg models.CardConfig, idx int) error {
	if cfg.Entity == "" {
		return &ConfigError{Card: idx, Field: "entity", Err: ErrMissingEntity}
	}
	if cfg.Type != "" && !isKnownType(cfg.Type) {
		return &ConfigError{Card: idx, Field: "type", Err: fmt.Errorf("%w: %s", ErrUnknownCardType, cfg.Type)}
	}
	switch cfg.Layout {
	case "", models.LayoutHorizontal, models.LayoutVertical:
	default:
		return &ConfigError{Card: idx, Field: "layout", Err: fmt.Errorf("%w: %s", ErrInvalidLayout, cfg.Layout)}
	}
	if !cfg.ActiveColor.Valid() {
		return &ConfigError{Card: idx, Field: "active_color", Err: fmt.Errorf("%w: %s", ErrInvalidColor, cfg.ActiveColor)}
	}
	return nil
}

// Accept validates a card received from the host and returns a normalized
// copy that is safe to keep.
func Accept(cfg models.CardConfig) (models.CardConfig, error) {
	return acceptAt(cfg, -1)
}

func acceptAt(cfg models.CardConfig, idx int) (models.CardConfig, error) {
	if err := validateAt(cfg, idx); err != nil {
		return models.CardConfig{}, err
	}
	out := cfg.Clone()
	Normalize(&out)
	return out, nil
}

// AcceptDashboard runs Accept over every card and stops at the first
// failure. The dashboard itself is left untouched.
func AcceptDashboard(d *models.Dashboard) ([]models.CardConfig, error) {
	if d == nil || len(d.Cards) == 0 {
		return nil, &ConfigError{Card: -1, Field: "cards", Err: errors.New("dashboard has no cards")}
	}
	out := make([]models.CardConfig, 0, len(d.Cards))
	for i, c := range d.Cards {
		card, err := acceptAt(c, i)
		if err != nil {
			return nil, err
		}
		out = append(out, card)
	}
	return out, nil
}
