package resolver

// Candidate attribute names per field, in priority order. Integrations
// expose the same reading under different keys depending on version and
// vendor.
var (
	keysProgress         = []string{"print_progress", "progress"}
	keysTimeLeft         = []string{"remaining_time", "print_time_left"}
	keysEndTime          = []string{"end_time", "print_end_time"}
	keysNozzleTemp       = []string{"nozzle_temp", "nozzle"}
	keysTargetNozzleTemp = []string{"target_nozzle_temp", "target_nozzle"}
	keysBedTemp          = []string{"bed_temp", "bed"}
	keysTargetBedTemp    = []string{"target_bed_temp", "target_bed"}
	keysChamberTemp      = []string{"chamber_temp", "chamber"}
	keysHumidity         = []string{"humidity", "ams_humidity"}
	keysPartFan          = []string{"cooling_fan_speed", "cooling", "fan_speed"}
	keysAuxFan           = []string{"aux_fan_speed", "aux"}
	keysCurrentLayer     = []string{"current_layer"}
	keysTotalLayers      = []string{"total_layer_count", "total_layers"}
	keysSensorTarget     = []string{"target", "target_temp"}

	keysAmsSource = []string{"ams", "ams_data", "ams_slots"}

	keysSlotType      = []string{"type", "filament_type", "name"}
	keysSlotColor     = []string{"color", "filament_color"}
	keysSlotRemaining = []string{"remaining", "remaining_filament", "remain"}
	keysSlotActive    = []string{"active", "is_active", "tray_active"}
	keysSlotEmpty     = []string{"empty"}
)

const (
	attrFriendlyName  = "friendly_name"
	attrEntityPicture = "entity_picture"
)

// firstDefined returns the first candidate key whose value is present and
// coerces; def otherwise.
func firstDefined[T any](source map[string]any, keys []string, coerce func(any) (T, bool), def T) T {
	if v, ok := lookupFirst(source, keys, coerce); ok {
		return v
	}
	return def
}

func lookupFirst[T any](source map[string]any, keys []string, coerce func(any) (T, bool)) (T, bool) {
	var zero T
	if source == nil {
		return zero, false
	}
	for _, k := range keys {
		raw, ok := source[k]
		if !ok || raw == nil {
			continue
		}
		if v, ok := coerce(raw); ok {
			return v, true
		}
	}
	return zero, false
}
