package resolver

import "github.com/prism-dashboard/cards/internal/models"

// DemoAmsSlots is shown when a live printer reports no usable AMS data, so
// the slot grid never renders blank.
func DemoAmsSlots() []models.AmsSlot {
	return []models.AmsSlot{
		{ID: 1, Type: "PLA", Color: "#FF4444", Remaining: 85},
		{ID: 2, Type: "PETG", Color: "#4488FF", Remaining: 42, Active: true},
		{ID: 3, Type: "ABS", Color: "#111111", Remaining: 12},
		{ID: 4, Type: "TPU", Color: "#FFFFFF", Remaining: 0, Empty: true},
	}
}

// PreviewAmsSlots belongs to the preview view. It currently holds the same
// spools as DemoAmsSlots but is kept separate so either can change alone.
func PreviewAmsSlots() []models.AmsSlot {
	return []models.AmsSlot{
		{ID: 1, Type: "PLA", Color: "#FF4444", Remaining: 85},
		{ID: 2, Type: "PETG", Color: "#4488FF", Remaining: 42, Active: true},
		{ID: 3, Type: "ABS", Color: "#111111", Remaining: 12},
		{ID: 4, Type: "TPU", Color: "#FFFFFF", Remaining: 0, Empty: true},
	}
}

// PreviewPrinter is the fixed view used in the card picker and whenever
// the configured entity is missing. The configured name and image are
// kept.
func PreviewPrinter(cfg models.CardConfig) models.PrinterView {
	name := cfg.Name
	if name == "" {
		name = DefaultPrinterName
	}
	return models.PrinterView{
		State:            "printing",
		Progress:         45,
		PrintTimeLeft:    "2h 15m",
		PrintEndTime:     "14:30",
		NozzleTemp:       220,
		TargetNozzleTemp: 220,
		BedTemp:          60,
		TargetBedTemp:    60,
		ChamberTemp:      35,
		PartFanSpeed:     50,
		AuxFanSpeed:      30,
		CurrentLayer:     12,
		TotalLayers:      28,
		Name:             name,
		PrinterImage:     printerImage(cfg),
		AmsSlots:         PreviewAmsSlots(),
		Preview:          true,
	}
}
