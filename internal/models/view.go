package models

// AmsSlotCount is the number of spool bays an AMS unit exposes.
const AmsSlotCount = 4

// AmsSlot is one filament bay of an automatic material system.
type AmsSlot struct {
	ID        int     `json:"id" msgpack:"id"`
	Type      string  `json:"type" msgpack:"type"`
	Color     string  `json:"color" msgpack:"color"`
	Remaining float64 `json:"remaining" msgpack:"remaining"` // 0-100
	Active    bool    `json:"active" msgpack:"active"`
	Empty     bool    `json:"empty" msgpack:"empty"`
}

// PrinterView is the display-ready record of a Bambu printer card.
type PrinterView struct {
	State            string    `json:"stateStr" msgpack:"stateStr"`
	Progress         float64   `json:"progress" msgpack:"progress"`
	PrintTimeLeft    string    `json:"printTimeLeft" msgpack:"printTimeLeft"`
	PrintEndTime     string    `json:"printEndTime" msgpack:"printEndTime"`
	NozzleTemp       float64   `json:"nozzleTemp" msgpack:"nozzleTemp"`
	TargetNozzleTemp float64   `json:"targetNozzleTemp" msgpack:"targetNozzleTemp"`
	BedTemp          float64   `json:"bedTemp" msgpack:"bedTemp"`
	TargetBedTemp    float64   `json:"targetBedTemp" msgpack:"targetBedTemp"`
	ChamberTemp      float64   `json:"chamberTemp" msgpack:"chamberTemp"`
	Humidity         float64   `json:"humidity" msgpack:"humidity"`
	PartFanSpeed     float64   `json:"partFanSpeed" msgpack:"partFanSpeed"`
	AuxFanSpeed      float64   `json:"auxFanSpeed" msgpack:"auxFanSpeed"`
	CurrentLayer     int       `json:"currentLayer" msgpack:"currentLayer"`
	TotalLayers      int       `json:"totalLayers" msgpack:"totalLayers"`
	Name             string    `json:"name" msgpack:"name"`
	CameraEntity     string    `json:"cameraEntity,omitempty" msgpack:"cameraEntity,omitempty"`
	CameraImage      string    `json:"cameraImage,omitempty" msgpack:"cameraImage,omitempty"`
	PrinterImage     string    `json:"printerImg" msgpack:"printerImg"`
	AmsSlots         []AmsSlot `json:"amsData" msgpack:"amsData"`
	Preview          bool      `json:"preview,omitempty" msgpack:"preview,omitempty"`
}

// StatusTone groups printer states into the three styles the 3D printer
// card knows about.
type StatusTone string

const (
	ToneIdle     StatusTone = "idle"
	TonePrinting StatusTone = "printing"
	TonePaused   StatusTone = "paused"
)

// FDMView is the display-ready record of the generic 3D printer card.
type FDMView struct {
	State            string     `json:"stateStr" msgpack:"stateStr"`
	Tone             StatusTone `json:"tone" msgpack:"tone"`
	Progress         float64    `json:"progress" msgpack:"progress"`
	PrintTimeLeft    string     `json:"printTimeLeft" msgpack:"printTimeLeft"`
	NozzleTemp       float64    `json:"nozzleTemp" msgpack:"nozzleTemp"`
	TargetNozzleTemp float64    `json:"targetNozzleTemp" msgpack:"targetNozzleTemp"`
	BedTemp          float64    `json:"bedTemp" msgpack:"bedTemp"`
	TargetBedTemp    float64    `json:"targetBedTemp" msgpack:"targetBedTemp"`
	FanSpeed         float64    `json:"fanSpeed" msgpack:"fanSpeed"`
	CurrentLayer     int        `json:"currentLayer" msgpack:"currentLayer"`
	TotalLayers      int        `json:"totalLayers" msgpack:"totalLayers"`
	LayerInfo        string     `json:"layerInfo,omitempty" msgpack:"layerInfo,omitempty"`
	Name             string     `json:"name" msgpack:"name"`
	CameraEntity     string     `json:"cameraEntity,omitempty" msgpack:"cameraEntity,omitempty"`
	CameraImage      string     `json:"cameraImage" msgpack:"cameraImage"`
	LightOn          bool       `json:"isLightOn" msgpack:"isLightOn"`
}

// IconColor is the tint applied to an active button icon.
type IconColor struct {
	Color  string `json:"color" msgpack:"color"`
	Shadow string `json:"shadow" msgpack:"shadow"`
}

// LightView is the display-ready record of the button-light card.
type LightView struct {
	Entity    string     `json:"entity" msgpack:"entity"`
	Name      string     `json:"name" msgpack:"name"`
	State     string     `json:"state" msgpack:"state"`
	Active    bool       `json:"active" msgpack:"active"`
	Icon      string     `json:"icon" msgpack:"icon"`
	Layout    string     `json:"layout" msgpack:"layout"`
	IconColor *IconColor `json:"iconColor,omitempty" msgpack:"iconColor,omitempty"`
}
