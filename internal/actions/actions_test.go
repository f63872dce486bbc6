package actions

import (
	"testing"
	"time"

	"github.com/prism-dashboard/cards/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, GestureTap, Classify(0))
	assert.Equal(t, GestureTap, Classify(HoldThreshold))
	assert.Equal(t, GestureHold, Classify(HoldThreshold+time.Millisecond))
}

func TestButtonLightGestures(t *testing.T) {
	cfg := models.CardConfig{Type: models.CardTypeButtonLight, Entity: "lock.front_door"}

	act, ok := ForGesture(cfg, GestureTap)
	require.True(t, ok)
	assert.Equal(t, models.ActionCallService, act.Kind)
	assert.Equal(t, "lock", act.Domain)
	assert.Equal(t, "toggle", act.Service)
	assert.Equal(t, "lock.front_door", act.Data["entity_id"])

	act, ok = ForGesture(cfg, GestureHold)
	require.True(t, ok)
	assert.Equal(t, models.ActionMoreInfo, act.Kind)
	assert.Equal(t, "hass-more-info", act.Event)
	assert.Equal(t, "lock.front_door", act.Data["entityId"])

	_, ok = ForGesture(cfg, GesturePause)
	assert.False(t, ok)
}

func TestPrinterGestures(t *testing.T) {
	cfg := models.CardConfig{Entity: "sensor.x1c_1"}
	for _, g := range []Gesture{GesturePause, GestureStop, GestureSpeed} {
		act, ok := ForGesture(cfg, g)
		require.True(t, ok, g)
		assert.Equal(t, MoreInfo("sensor.x1c_1"), act)
	}

	_, ok := ForGesture(cfg, GestureTap)
	assert.False(t, ok)

	_, ok = ForGesture(models.CardConfig{Type: models.CardTypeFDM, Entity: "sensor.3d"}, GestureStop)
	assert.False(t, ok)
}

func TestNoEntityNoAction(t *testing.T) {
	_, ok := ForGesture(models.CardConfig{Type: models.CardTypeButtonLight}, GestureTap)
	assert.False(t, ok)
}

func TestGesturesIgnoreTypePrefix(t *testing.T) {
	cfg := models.CardConfig{Type: "prism-button-light", Entity: "light.desk"}

	act, ok := ForGesture(cfg, GestureTap)
	require.True(t, ok)
	assert.Equal(t, "toggle", act.Service)
	assert.Len(t, Available(cfg), 2)

	assert.Len(t, Available(models.CardConfig{Type: "PRISM-BAMBU", Entity: "sensor.x1c_1"}), 3)
}

func TestAvailable(t *testing.T) {
	light := Available(models.CardConfig{Type: models.CardTypeButtonLight, Entity: "light.desk"})
	assert.Len(t, light, 2)
	assert.Contains(t, light, GestureTap)
	assert.Contains(t, light, GestureHold)

	printer := Available(models.CardConfig{Type: models.CardTypeBambu, Entity: "sensor.x1c_1"})
	assert.Len(t, printer, 3)

	assert.Empty(t, Available(models.CardConfig{Type: models.CardTypeFDM, Entity: "sensor.3d"}))
}
