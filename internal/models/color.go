package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// HexColor is a "#rrggbb" color. It also accepts an [r, g, b] list, which is
// what the host's color_rgb selector stores.
type HexColor string

// RGB splits the color into its components. ok is false for anything that
// is not a well-formed "#rrggbb" string.
func (h HexColor) RGB() (r, g, b uint8, ok bool) {
	s := string(h)
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// Valid reports whether the color is empty or a well-formed hex triplet.
func (h HexColor) Valid() bool {
	if h == "" {
		return true
	}
	_, _, _, ok := h.RGB()
	return ok
}

func hexFromComponents(parts []int) (HexColor, error) {
	if len(parts) < 3 {
		return "", fmt.Errorf("color list needs 3 components, got %d", len(parts))
	}
	for _, p := range parts[:3] {
		if p < 0 || p > 255 {
			return "", fmt.Errorf("color component %d out of range", p)
		}
	}
	return HexColor(fmt.Sprintf("#%02x%02x%02x", parts[0], parts[1], parts[2])), nil
}

// UnmarshalYAML accepts a scalar hex string or a sequence of components.
func (h *HexColor) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*h = HexColor(strings.TrimSpace(node.Value))
		return nil
	case yaml.SequenceNode:
		var parts []int
		if err := node.Decode(&parts); err != nil {
			return fmt.Errorf("decoding color list: %w", err)
		}
		c, err := hexFromComponents(parts)
		if err != nil {
			return err
		}
		*h = c
		return nil
	default:
		return fmt.Errorf("unsupported color value at line %d", node.Line)
	}
}

// UnmarshalJSON accepts a hex string or an array of components.
func (h *HexColor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*h = HexColor(strings.TrimSpace(s))
		return nil
	}
	var parts []int
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("decoding color: %w", err)
	}
	c, err := hexFromComponents(parts)
	if err != nil {
		return err
	}
	*h = c
	return nil
}
