package models

import "strings"

// EntityState is one entry of the host's state registry.
type EntityState struct {
	EntityID   string         `json:"entity_id" msgpack:"entity_id"`
	State      string         `json:"state" msgpack:"state"`
	Attributes map[string]any `json:"attributes" msgpack:"attributes"`
}

// Attr returns the raw attribute value and whether it is present.
func (e EntityState) Attr(key string) (any, bool) {
	if e.Attributes == nil {
		return nil, false
	}
	v, ok := e.Attributes[key]
	return v, ok
}

// Snapshot is a point-in-time, read-only view of all entity states keyed by
// entity id.
type Snapshot map[string]EntityState

// Lookup returns the state for an entity id. An empty id never matches.
func (s Snapshot) Lookup(entityID string) (EntityState, bool) {
	if entityID == "" || s == nil {
		return EntityState{}, false
	}
	st, ok := s[entityID]
	return st, ok
}

// Domain returns the part of an entity id before the first dot
// ("light.kitchen" -> "light").
func Domain(entityID string) string {
	if i := strings.IndexByte(entityID, '.'); i >= 0 {
		return entityID[:i]
	}
	return entityID
}
