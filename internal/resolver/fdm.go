package resolver

import (
	"fmt"

	"github.com/prism-dashboard/cards/internal/models"
)

const (
	DefaultFDMName  = "3D Printer"
	DefaultFDMImage = "/hacsfiles/Prism-Dashboard/images/printer-blank.jpg"
)

// FDM resolves the generic 3D printer card. Unlike the Bambu card it has
// no preview mode: a missing entity shows as "unavailable" with zeroed
// readings.
func (r *Resolver) FDM(cfg models.CardConfig, snap models.Snapshot) models.FDMView {
	st, ok := snap.Lookup(cfg.Entity)
	if !ok {
		r.log.Warnf("entity %q not found, showing defaults", cfg.Entity)
		st = models.EntityState{EntityID: cfg.Entity, State: "unavailable"}
	}
	attrs := st.Attributes

	view := models.FDMView{
		State:            st.State,
		Progress:         clamp(firstDefined(attrs, []string{"progress"}, toFloat, 0), 0, 100),
		PrintTimeLeft:    firstDefined(attrs, []string{"print_time_left"}, toDuration, "0h 0m"),
		NozzleTemp:       firstDefined(attrs, []string{"nozzle_temp"}, toFloat, 0),
		TargetNozzleTemp: firstDefined(attrs, []string{"target_nozzle_temp"}, toFloat, 0),
		BedTemp:          firstDefined(attrs, []string{"bed_temp"}, toFloat, 0),
		TargetBedTemp:    firstDefined(attrs, []string{"target_bed_temp"}, toFloat, 0),
		FanSpeed:         firstDefined(attrs, []string{"fan_speed"}, toFloat, 0),
		CurrentLayer:     firstDefined(attrs, keysCurrentLayer, toInt, 0),
		TotalLayers:      firstDefined(attrs, []string{"total_layers"}, toInt, 0),
		Name:             displayName(cfg, st, DefaultFDMName),
		CameraEntity:     cfg.CameraEntity,
		LightOn:          firstDefined(attrs, []string{"light"}, toBool, true),
	}
	if view.State == "" {
		view.State = "unavailable"
	}

	view.Tone = toneFor(view.State)

	if view.CurrentLayer != 0 && view.TotalLayers != 0 {
		view.LayerInfo = fmt.Sprintf("Layer %d/%d", view.CurrentLayer, view.TotalLayers)
	}

	_, picture := cameraPicture(cfg, snap)
	switch {
	case picture != "":
		view.CameraImage = picture
	case cfg.Image != "":
		view.CameraImage = cfg.Image
	default:
		view.CameraImage = DefaultFDMImage
	}

	return view
}

func toneFor(state string) models.StatusTone {
	switch state {
	case "printing":
		return models.TonePrinting
	case "paused":
		return models.TonePaused
	default:
		return models.ToneIdle
	}
}
