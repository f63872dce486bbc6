package config

import "github.com/prism-dashboard/cards/internal/models"

const (
	DefaultIcon = "mdi:lightbulb"
)

// Normalize fills in defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *models.CardConfig) {
	if cfg == nil {
		return
	}

	cfg.Type = cfg.Type.Canonical()
	if cfg.Type == "" {
		cfg.Type = models.CardTypeBambu
	}

	if cfg.Type != models.CardTypeButtonLight {
		return
	}

	if cfg.Icon == "" {
		cfg.Icon = DefaultIcon
	}
	if cfg.Layout == "" {
		cfg.Layout = models.LayoutHorizontal
	}
}
