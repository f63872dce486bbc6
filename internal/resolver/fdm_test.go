package resolver

import (
	"testing"

	"github.com/prism-dashboard/cards/internal/models"
	tu "github.com/prism-dashboard/cards/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func fdmCfg() models.CardConfig {
	return models.CardConfig{Type: models.CardTypeFDM, Entity: "sensor.3d_printer"}
}

func TestFDMReadsAttributes(t *testing.T) {
	snap := tu.Snapshot(tu.Entity("sensor.3d_printer", "printing", tu.Attrs{
		"friendly_name":      "Voron",
		"progress":           37.5,
		"print_time_left":    "3h 10m",
		"nozzle_temp":        240,
		"target_nozzle_temp": 245,
		"bed_temp":           100,
		"target_bed_temp":    105,
		"fan_speed":          60,
		"current_layer":      42,
		"total_layers":       300,
	}))

	view := ResolveFDM(fdmCfg(), snap)

	assert.Equal(t, "printing", view.State)
	assert.Equal(t, models.TonePrinting, view.Tone)
	assert.Equal(t, 37.5, view.Progress)
	assert.Equal(t, "3h 10m", view.PrintTimeLeft)
	assert.Equal(t, float64(245), view.TargetNozzleTemp)
	assert.Equal(t, float64(60), view.FanSpeed)
	assert.Equal(t, "Layer 42/300", view.LayerInfo)
	assert.Equal(t, "Voron", view.Name)
	assert.Equal(t, DefaultFDMImage, view.CameraImage)
	assert.True(t, view.LightOn)
}

func TestFDMMissingEntity(t *testing.T) {
	view := ResolveFDM(fdmCfg(), nil)

	assert.Equal(t, "unavailable", view.State)
	assert.Equal(t, models.ToneIdle, view.Tone)
	assert.Equal(t, "0h 0m", view.PrintTimeLeft)
	assert.Empty(t, view.LayerInfo)
	assert.Equal(t, DefaultFDMName, view.Name)
}

func TestFDMPausedTone(t *testing.T) {
	view := ResolveFDM(fdmCfg(), tu.Snapshot(tu.Entity("sensor.3d_printer", "paused", nil)))
	assert.Equal(t, models.TonePaused, view.Tone)
}

func TestFDMCameraImageOrder(t *testing.T) {
	cfg := fdmCfg()
	cfg.Image = "/local/voron.jpg"
	printer := tu.Entity("sensor.3d_printer", "idle", nil)

	assert.Equal(t, "/local/voron.jpg", ResolveFDM(cfg, tu.Snapshot(printer)).CameraImage)

	cfg.CameraEntity = "camera.voron"
	snap := tu.Snapshot(printer, tu.Entity("camera.voron", "idle", tu.Attrs{"entity_picture": "/api/camera_proxy/camera.voron"}))
	view := ResolveFDM(cfg, snap)
	assert.Equal(t, "/api/camera_proxy/camera.voron", view.CameraImage)
	assert.Equal(t, "camera.voron", view.CameraEntity)
}

func TestFDMLightAttribute(t *testing.T) {
	view := ResolveFDM(fdmCfg(), tu.Snapshot(tu.Entity("sensor.3d_printer", "idle", tu.Attrs{"light": "off"})))
	assert.False(t, view.LightOn)
}

func TestFDMLayerInfoNeedsBothCounts(t *testing.T) {
	view := ResolveFDM(fdmCfg(), tu.Snapshot(tu.Entity("sensor.3d_printer", "printing", tu.Attrs{"total_layers": 10})))
	assert.Empty(t, view.LayerInfo)
}
