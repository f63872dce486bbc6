package resolver

import (
	"github.com/prism-dashboard/cards/internal/models"
)

const (
	DefaultPrinterName  = "Bambu Lab Printer"
	DefaultPrinterImage = "/local/custom-components/images/prism-bambu-pic.png"
)

// Printer resolves the Bambu printer card. When the configured entity is
// missing from the snapshot the fixed preview view is returned.
func (r *Resolver) Printer(cfg models.CardConfig, snap models.Snapshot) models.PrinterView {
	st, ok := snap.Lookup(cfg.Entity)
	if !ok {
		r.log.Warnf("entity %q not found, showing preview data", cfg.Entity)
		return PreviewPrinter(cfg)
	}

	attrs := st.Attributes

	view := models.PrinterView{
		State:            st.State,
		Progress:         clamp(firstDefined(attrs, keysProgress, toFloat, 0), 0, 100),
		PrintTimeLeft:    firstDefined(attrs, keysTimeLeft, toDuration, "0m"),
		PrintEndTime:     firstDefined(attrs, keysEndTime, toClock, "--:--"),
		NozzleTemp:       firstDefined(attrs, keysNozzleTemp, toFloat, 0),
		TargetNozzleTemp: firstDefined(attrs, keysTargetNozzleTemp, toFloat, 0),
		BedTemp:          firstDefined(attrs, keysBedTemp, toFloat, 0),
		TargetBedTemp:    firstDefined(attrs, keysTargetBedTemp, toFloat, 0),
		ChamberTemp:      firstDefined(attrs, keysChamberTemp, toFloat, 0),
		Humidity:         firstDefined(attrs, keysHumidity, toFloat, 0),
		PartFanSpeed:     firstDefined(attrs, keysPartFan, toFloat, 0),
		AuxFanSpeed:      firstDefined(attrs, keysAuxFan, toFloat, 0),
		CurrentLayer:     firstDefined(attrs, keysCurrentLayer, toInt, 0),
		TotalLayers:      firstDefined(attrs, keysTotalLayers, toInt, 0),
		Name:             printerName(cfg, st),
		PrinterImage:     printerImage(cfg),
	}

	r.applySensorOverrides(&view, cfg, snap)

	view.CameraEntity, view.CameraImage = cameraPicture(cfg, snap)
	view.AmsSlots = r.amsSlots(cfg, st, snap)

	return view
}

// applySensorOverrides lets dedicated sensors replace single fields read
// from the printer entity.
func (r *Resolver) applySensorOverrides(view *models.PrinterView, cfg models.CardConfig, snap models.Snapshot) {
	if cfg.TemperatureSensor != "" {
		if sensor, ok := snap.Lookup(cfg.TemperatureSensor); ok {
			if temp, ok := toFloat(sensor.State); ok {
				view.NozzleTemp = temp
			} else {
				r.log.Debugf("temperature sensor %q state %q is not numeric", cfg.TemperatureSensor, sensor.State)
			}
			if target, ok := lookupFirst(sensor.Attributes, keysSensorTarget, toFloat); ok {
				view.TargetNozzleTemp = target
			}
		} else {
			r.log.Warnf("temperature sensor %q not found, using printer attributes", cfg.TemperatureSensor)
		}
	}

	if cfg.HumiditySensor != "" {
		sensor, ok := snap.Lookup(cfg.HumiditySensor)
		if !ok {
			r.log.Warnf("humidity sensor %q not found, using printer attributes", cfg.HumiditySensor)
			return
		}
		if h, ok := toFloat(sensor.State); ok {
			view.Humidity = h
		}
	}
}

func printerName(cfg models.CardConfig, st models.EntityState) string {
	return displayName(cfg, st, DefaultPrinterName)
}

// displayName is the configured name, else the entity's friendly name,
// else fallback.
func displayName(cfg models.CardConfig, st models.EntityState, fallback string) string {
	if cfg.Name != "" {
		return cfg.Name
	}
	return firstDefined(st.Attributes, []string{attrFriendlyName}, toString, fallback)
}

func printerImage(cfg models.CardConfig) string {
	if cfg.Image != "" {
		return cfg.Image
	}
	return DefaultPrinterImage
}

func cameraPicture(cfg models.CardConfig, snap models.Snapshot) (entity, picture string) {
	if cfg.CameraEntity == "" {
		return "", ""
	}
	cam, ok := snap.Lookup(cfg.CameraEntity)
	if !ok {
		return cfg.CameraEntity, ""
	}
	return cfg.CameraEntity, firstDefined(cam.Attributes, []string{attrEntityPicture}, toString, "")
}
