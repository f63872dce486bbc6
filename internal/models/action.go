package models

// ActionKind says how the host should carry out an Action.
type ActionKind string

const (
	ActionCallService ActionKind = "call-service"
	ActionMoreInfo    ActionKind = "more-info"
)

// MoreInfoEvent is the host event that opens an entity's detail dialog.
const MoreInfoEvent = "hass-more-info"

// Action is a host request produced from a user gesture. The dispatch layer
// turns it into a service call or a more-info event.
type Action struct {
	Kind    ActionKind     `json:"kind" msgpack:"kind"`
	Domain  string         `json:"domain,omitempty" msgpack:"domain,omitempty"`
	Service string         `json:"service,omitempty" msgpack:"service,omitempty"`
	Event   string         `json:"event,omitempty" msgpack:"event,omitempty"`
	Data    map[string]any `json:"data" msgpack:"data"`
}
