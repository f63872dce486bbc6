package config

import (
	"fmt"

	"github.com/prism-dashboard/cards/internal/models"
	"gopkg.in/yaml.v3"
)

// StubConfig returns the configuration a card starts from when added in the
// dashboard editor.
func StubConfig(t models.CardType) (models.CardConfig, bool) {
	t = t.Canonical()
	switch t {
	case models.CardTypeBambu:
		return models.CardConfig{
			Type:         t,
			Entity:       "sensor.x1c_1",
			Name:         "Bambu Lab Printer",
			CameraEntity: "camera.x1c_1",
			Image:        "/local/custom-components/images/prism-bambu-pic.png",
		}, true
	case models.CardTypeFDM:
		return models.CardConfig{
			Type:         t,
			Entity:       "sensor.3d_printer",
			Name:         "3D Printer",
			CameraEntity: "camera.3d_printer",
			Image:        "/hacsfiles/Prism-Dashboard/images/printer-blank.jpg",
		}, true
	case models.CardTypeButtonLight:
		return models.CardConfig{
			Type:        t,
			Entity:      "light.example_light",
			Name:        "Example",
			Icon:        DefaultIcon,
			Layout:      models.LayoutHorizontal,
			ActiveColor: "#ffc864",
		}, true
	}
	return models.CardConfig{}, false
}

// StubDashboardYAML renders a one-card dashboard for t, ready to edit.
func StubDashboardYAML(t models.CardType) ([]byte, error) {
	stub, ok := StubConfig(t)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCardType, t)
	}
	return yaml.Marshal(models.Dashboard{Cards: []models.CardConfig{stub}})
}

// FormSchemaYAML renders the editor form fields for t.
func FormSchemaYAML(t models.CardType) ([]byte, error) {
	fields := FormSchema(t)
	if fields == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCardType, t)
	}
	return yaml.Marshal(fields)
}

// FormField describes one entry of a card's editor form.
type FormField struct {
	Name     string         `json:"name" yaml:"name"`
	Label    string         `json:"label,omitempty" yaml:"label,omitempty"`
	Required bool           `json:"required,omitempty" yaml:"required,omitempty"`
	Selector map[string]any `json:"selector" yaml:"selector"`
}

func entitySelector(domains ...string) map[string]any {
	sel := map[string]any{}
	switch len(domains) {
	case 0:
	case 1:
		sel["domain"] = domains[0]
	default:
		sel["domain"] = domains
	}
	return map[string]any{"entity": sel}
}

func textSelector() map[string]any {
	return map[string]any{"text": map[string]any{}}
}

// FormSchema returns the editor form for a card type.
func FormSchema(t models.CardType) []FormField {
	switch t.Canonical() {
	case models.CardTypeBambu:
		return []FormField{
			{Name: "entity", Label: "Printer entity", Required: true, Selector: entitySelector("sensor", "binary_sensor")},
			{Name: "name", Label: "Printer name", Selector: textSelector()},
			{Name: "camera_entity", Label: "Camera entity (optional)", Selector: entitySelector("camera")},
			{Name: "ams_entity", Label: "AMS entity (optional - if AMS data not in main entity)", Selector: entitySelector()},
			{Name: "temperature_sensor", Label: "Custom temperature sensor (optional)", Selector: entitySelector("sensor")},
			{Name: "humidity_sensor", Label: "Custom humidity sensor (optional)", Selector: entitySelector("sensor")},
			{Name: "image", Label: "Printer image path (optional, supports .png and .jpg)", Selector: textSelector()},
		}
	case models.CardTypeFDM:
		return []FormField{
			{Name: "entity", Required: true, Selector: entitySelector()},
			{Name: "name", Selector: textSelector()},
			{Name: "camera_entity", Selector: entitySelector("camera")},
			{Name: "image", Selector: textSelector()},
		}
	case models.CardTypeButtonLight:
		return []FormField{
			{Name: "entity", Required: true, Selector: entitySelector()},
			{Name: "name", Selector: textSelector()},
			{Name: "icon", Selector: map[string]any{"icon": map[string]any{}}},
			{Name: "layout", Selector: map[string]any{"select": map[string]any{
				"options": []string{models.LayoutHorizontal, models.LayoutVertical},
			}}},
			{Name: "active_color", Selector: map[string]any{"color_rgb": map[string]any{}}},
		}
	}
	return nil
}
