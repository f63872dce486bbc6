package resolver

import (
	"strings"

	"github.com/prism-dashboard/cards/internal/models"
)

const defaultSlotColor = "#666666"

// amsSlots locates the slot list on the printer entity, then on the
// configured AMS entity, and normalizes it to exactly AmsSlotCount slots.
// An empty or all-empty result is replaced by the demo set.
func (r *Resolver) amsSlots(cfg models.CardConfig, printer models.EntityState, snap models.Snapshot) []models.AmsSlot {
	raw, found := r.amsSource(printer)
	if !found && cfg.AmsEntity != "" {
		if ams, ok := snap.Lookup(cfg.AmsEntity); ok {
			raw, found = r.amsSource(ams)
		} else {
			r.log.Warnf("AMS entity %q not found", cfg.AmsEntity)
		}
	}

	slots := make([]models.AmsSlot, 0, models.AmsSlotCount)
	for i, item := range raw {
		slots = append(slots, normalizeSlot(i+1, item))
	}

	if allEmpty(slots) {
		r.log.Debugf("no AMS data for %q, showing demo slots", cfg.Entity)
		return DemoAmsSlots()
	}

	return padSlots(slots)
}

// amsSource returns the first non-empty slot list among the candidate
// attributes.
func (r *Resolver) amsSource(st models.EntityState) ([]any, bool) {
	for _, key := range keysAmsSource {
		v, ok := st.Attr(key)
		if !ok || v == nil {
			continue
		}
		list, ok := asList(v)
		if !ok {
			r.log.Warnf("attribute %q on %q is not a slot list (%T), ignoring", key, st.EntityID, v)
			continue
		}
		if len(list) > 0 {
			return list, true
		}
	}
	return nil, false
}

func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []map[string]any:
		out := make([]any, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out, true
	}
	return nil, false
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	}
	return nil, false
}

// normalizeSlot maps one raw slot record onto the canonical slot. Records
// that are not objects become empty placeholders.
func normalizeSlot(id int, item any) models.AmsSlot {
	raw, ok := asMap(item)
	if !ok {
		return emptySlot(id)
	}

	slot := models.AmsSlot{
		ID:        id,
		Type:      strings.TrimSpace(firstDefined(raw, keysSlotType, toString, "")),
		Color:     firstDefined(raw, keysSlotColor, toHexColor, defaultSlotColor),
		Remaining: clamp(firstDefined(raw, keysSlotRemaining, toFloat, 0), 0, 100),
		Active:    firstDefined(raw, keysSlotActive, toBool, false),
	}
	slot.Empty = firstDefined(raw, keysSlotEmpty, toBool, false) || slot.Type == ""
	return slot
}

// toHexColor accepts "#RRGGBB", "RRGGBB" and the 8-digit forms with an
// alpha channel, which is dropped.
func toHexColor(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return "", false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return "", false
		}
	}
	return "#" + strings.ToUpper(s[:6]), true
}

func emptySlot(id int) models.AmsSlot {
	return models.AmsSlot{ID: id, Color: defaultSlotColor, Empty: true}
}

func allEmpty(slots []models.AmsSlot) bool {
	for _, s := range slots {
		if !s.Empty {
			return false
		}
	}
	return true
}

// padSlots pads with empty placeholders or truncates to AmsSlotCount.
func padSlots(slots []models.AmsSlot) []models.AmsSlot {
	for len(slots) < models.AmsSlotCount {
		slots = append(slots, emptySlot(len(slots)+1))
	}
	return slots[:models.AmsSlotCount]
}
