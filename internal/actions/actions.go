// Package actions maps card gestures to host actions. It decides what
// should happen; carrying it out is the dispatch layer's job.
package actions

import (
	"time"

	"github.com/prism-dashboard/cards/internal/models"
)

// Gesture is a user interaction on a card or one of its controls.
type Gesture string

const (
	GestureTap   Gesture = "tap"
	GestureHold  Gesture = "hold"
	GesturePause Gesture = "pause"
	GestureStop  Gesture = "stop"
	GestureSpeed Gesture = "speed"
	GestureLight Gesture = "light"
)

// HoldThreshold is how long a touch must last to count as a hold.
const HoldThreshold = 500 * time.Millisecond

// Classify turns a press duration into a tap or a hold.
func Classify(pressed time.Duration) Gesture {
	if pressed > HoldThreshold {
		return GestureHold
	}
	return GestureTap
}

// Toggle builds the "<domain>.toggle" service call for an entity.
func Toggle(entityID string) models.Action {
	return models.Action{
		Kind:    models.ActionCallService,
		Domain:  models.Domain(entityID),
		Service: "toggle",
		Data:    map[string]any{"entity_id": entityID},
	}
}

// MoreInfo builds the event that opens an entity's detail dialog.
func MoreInfo(entityID string) models.Action {
	return models.Action{
		Kind:  models.ActionMoreInfo,
		Event: models.MoreInfoEvent,
		Data:  map[string]any{"entityId": entityID},
	}
}

// ForGesture returns the action a gesture triggers on a card. ok is false
// when the gesture does nothing for that card type.
func ForGesture(cfg models.CardConfig, g Gesture) (models.Action, bool) {
	if cfg.Entity == "" {
		return models.Action{}, false
	}

	switch cfg.Type.Canonical() {
	case models.CardTypeButtonLight:
		switch g {
		case GestureTap:
			return Toggle(cfg.Entity), true
		case GestureHold:
			return MoreInfo(cfg.Entity), true
		}
	case models.CardTypeBambu, "":
		switch g {
		case GesturePause, GestureStop, GestureSpeed:
			return MoreInfo(cfg.Entity), true
		}
	case models.CardTypeFDM:
		// Control buttons on the generic card are placeholders.
	}
	return models.Action{}, false
}

var allGestures = []Gesture{GestureTap, GestureHold, GesturePause, GestureStop, GestureSpeed, GestureLight}

// Available lists every gesture that triggers an action on the card.
func Available(cfg models.CardConfig) map[Gesture]models.Action {
	out := make(map[Gesture]models.Action)
	for _, g := range allGestures {
		if act, ok := ForGesture(cfg, g); ok {
			out[g] = act
		}
	}
	return out
}
