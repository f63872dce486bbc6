package resolver

import (
	"fmt"
	"strings"

	"github.com/prism-dashboard/cards/internal/models"
)

const (
	DefaultLightIcon  = "mdi:lightbulb"
	DefaultLightState = "off"
)

// Default tints per domain, as "r, g, b".
const (
	tintLocked   = "76, 175, 80"
	tintUnlocked = "244, 67, 54"
	tintHeating  = "255, 152, 0"
	tintOn       = "255, 200, 100"
)

// Light resolves the button-light card.
func (r *Resolver) Light(cfg models.CardConfig, snap models.Snapshot) models.LightView {
	view := models.LightView{
		Entity: cfg.Entity,
		State:  DefaultLightState,
		Icon:   cfg.Icon,
		Layout: cfg.Layout,
	}
	if view.Icon == "" {
		view.Icon = DefaultLightIcon
	}
	if view.Layout == "" {
		view.Layout = models.LayoutHorizontal
	}

	st, ok := snap.Lookup(cfg.Entity)
	if !ok {
		r.log.Warnf("entity %q not found, showing %s", cfg.Entity, DefaultLightState)
		view.Name = cfg.Name
		if view.Name == "" {
			view.Name = cfg.Entity
		}
		return view
	}

	view.State = st.State
	view.Name = displayName(cfg, st, cfg.Entity)
	view.Active = IsActive(cfg.Entity, st.State)
	view.IconColor = iconColor(cfg, st.State, view.Active)
	return view
}

// IsActive applies the per-domain notion of "on": locks are active when
// locked, climate entities when heating, everything else when on or open.
func IsActive(entityID, state string) bool {
	switch models.Domain(entityID) {
	case "lock":
		return state == "locked"
	case "climate":
		return state == "heat" || state == "auto"
	default:
		return state == "on" || state == "open"
	}
}

func iconColor(cfg models.CardConfig, state string, active bool) *models.IconColor {
	if active && cfg.ActiveColor != "" {
		if r, g, b, ok := cfg.ActiveColor.RGB(); ok {
			return tint(fmt.Sprintf("%d, %d, %d", r, g, b))
		}
	}

	switch models.Domain(cfg.Entity) {
	case "lock":
		switch state {
		case "locked":
			return tint(tintLocked)
		case "unlocked":
			return tint(tintUnlocked)
		}
	case "climate":
		if state == "heat" || state == "auto" {
			return tint(tintHeating)
		}
	default:
		if state == "on" || state == "open" {
			return tint(tintOn)
		}
	}
	return nil
}

func tint(rgb string) *models.IconColor {
	rgb = strings.TrimSpace(rgb)
	return &models.IconColor{
		Color:  "rgb(" + rgb + ")",
		Shadow: "rgba(" + rgb + ", 0.6)",
	}
}
