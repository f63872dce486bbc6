// fixtures.go - Snapshot builders for resolver and command tests
package testutil

import (
	"github.com/prism-dashboard/cards/internal/models"
)

// Attrs is shorthand for an attribute map.
type Attrs = map[string]any

// Entity builds an entity state.
func Entity(id, state string, attrs Attrs) models.EntityState {
	if attrs == nil {
		attrs = Attrs{}
	}
	return models.EntityState{EntityID: id, State: state, Attributes: attrs}
}

// Snapshot indexes states by entity id.
func Snapshot(states ...models.EntityState) models.Snapshot {
	snap := make(models.Snapshot, len(states))
	for _, st := range states {
		snap[st.EntityID] = st
	}
	return snap
}

// Slot builds a raw AMS slot record the way the printer integration
// reports it.
func Slot(filament, color string, remaining float64, active bool) Attrs {
	return Attrs{
		"type":      filament,
		"color":     color,
		"remaining": remaining,
		"active":    active,
	}
}

// Slots wraps raw slot records in the list type JSON decoding produces.
func Slots(records ...Attrs) []any {
	out := make([]any, len(records))
	for i, r := range records {
		out[i] = r
	}
	return out
}

// X1C returns a printing Bambu X1C entity with a two-spool AMS.
func X1C() models.EntityState {
	return Entity("sensor.x1c_1", "printing", Attrs{
		"friendly_name":      "X1C Workshop",
		"print_progress":     62,
		"remaining_time":     "1h 05m",
		"end_time":           "16:45",
		"nozzle_temp":        219.5,
		"target_nozzle_temp": 220,
		"bed_temp":           "55.1",
		"target_bed_temp":    55,
		"chamber_temp":       31,
		"cooling_fan_speed":  80,
		"aux_fan_speed":      40,
		"current_layer":      "118",
		"total_layer_count":  240,
		"ams": Slots(
			Slot("PLA", "#00AE42", 73, true),
			Slot("PETG", "#000000FF", 20, false),
		),
	})
}
