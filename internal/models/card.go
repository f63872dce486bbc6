// Package models contains domain types for the Prism dashboard cards.
package models

import "strings"

// CardType identifies which card a configuration belongs to.
type CardType string

const (
	CardTypeBambu       CardType = "custom:prism-bambu"
	CardTypeFDM         CardType = "custom:prism-3dprinter"
	CardTypeButtonLight CardType = "custom:prism-button-light"
)

const customPrefix = "custom:"

// Canonical returns the lower-case "custom:"-prefixed form of t, so
// "prism-button-light" and "Custom:Prism-Button-Light" compare equal to
// CardTypeButtonLight. An empty type stays empty.
func (t CardType) Canonical() CardType {
	s := strings.ToLower(strings.TrimSpace(string(t)))
	if s == "" {
		return ""
	}
	return CardType(customPrefix + strings.TrimPrefix(s, customPrefix))
}

// Layout values accepted by the button-light card.
const (
	LayoutHorizontal = "horizontal"
	LayoutVertical   = "vertical"
)

// CardConfig is the user-authored configuration of a single card.
// Only Entity is required; every other field is optional.
type CardConfig struct {
	Type              CardType `json:"type" yaml:"type"`
	Entity            string   `json:"entity" yaml:"entity"`
	Name              string   `json:"name,omitempty" yaml:"name,omitempty"`
	CameraEntity      string   `json:"camera_entity,omitempty" yaml:"camera_entity,omitempty"`
	AmsEntity         string   `json:"ams_entity,omitempty" yaml:"ams_entity,omitempty"`
	TemperatureSensor string   `json:"temperature_sensor,omitempty" yaml:"temperature_sensor,omitempty"`
	HumiditySensor    string   `json:"humidity_sensor,omitempty" yaml:"humidity_sensor,omitempty"`
	Image             string   `json:"image,omitempty" yaml:"image,omitempty"`

	// Button-light options
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Layout      string   `json:"layout,omitempty" yaml:"layout,omitempty"`
	ActiveColor HexColor `json:"active_color,omitempty" yaml:"active_color,omitempty"`
}

// Clone returns a copy the caller may modify freely.
func (c CardConfig) Clone() CardConfig {
	return c
}

// Dashboard is a list of cards as authored in a dashboard YAML file.
type Dashboard struct {
	Title string       `json:"title,omitempty" yaml:"title,omitempty"`
	Cards []CardConfig `json:"cards" yaml:"cards"`
}
