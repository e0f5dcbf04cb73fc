package entity

// WheelState is the animation state of the weapon wheel
type WheelState int

const (
	WheelIdle WheelState = iota
	WheelOpening
	WheelOpen
	WheelClosing
)

// WheelSlot is one of the four wheel directions. The slot index doubles as
// the weapon slot it selects.
type WheelSlot int

const (
	SlotNone  WheelSlot = -1
	SlotRight WheelSlot = 0
	SlotUp    WheelSlot = 1
	SlotLeft  WheelSlot = 2
	SlotDown  WheelSlot = 3
)

// WheelConfig holds layout and timing of the weapon wheel
type WheelConfig struct {
	Radius     int // icon distance from the wheel center
	DeadZone   int // cursor distance below which nothing is highlighted
	OpenFrames int
}

// DefaultWheelConfig returns the default configuration
func DefaultWheelConfig() WheelConfig {
	return WheelConfig{
		Radius:     96,
		DeadZone:   32,
		OpenFrames: 10,
	}
}

// WeaponWheel is the radial weapon picker opened with the right mouse button
type WeaponWheel struct {
	Config      WheelConfig
	State       WheelState
	Frame       int
	CenterX     int
	CenterY     int
	Highlighted WheelSlot
}

// NewWeaponWheel creates a weapon wheel, filling zero config values with defaults
func NewWeaponWheel(cfg WheelConfig) *WeaponWheel {
	def := DefaultWheelConfig()
	if cfg.Radius == 0 {
		cfg.Radius = def.Radius
	}
	if cfg.DeadZone == 0 {
		cfg.DeadZone = def.DeadZone
	}
	if cfg.OpenFrames == 0 {
		cfg.OpenFrames = def.OpenFrames
	}

	return &WeaponWheel{
		Config:      cfg,
		State:       WheelIdle,
		Highlighted: SlotNone,
	}
}

// IsActive returns true while the wheel is visible
func (w *WeaponWheel) IsActive() bool {
	return w.State != WheelIdle
}

// Progress returns the open animation progress (0.0 ~ 1.0)
func (w *WeaponWheel) Progress() float64 {
	return float64(w.Frame) / float64(w.Config.OpenFrames)
}

// Update advances the wheel animation from this tick's right button edges
func (w *WeaponWheel) Update(pressed, released bool, mouseX, mouseY, screenW, screenH int) {
	r := w.Config.Radius

	switch w.State {
	case WheelIdle:
		if pressed {
			w.State = WheelOpening
			w.Frame = 0
			w.CenterX = clampInt(mouseX, r, screenW-r)
			w.CenterY = clampInt(mouseY, r, screenH-r)
		}

	case WheelOpening:
		if released {
			w.State = WheelClosing
			return
		}
		w.Frame++
		if w.Frame >= w.Config.OpenFrames {
			w.State = WheelOpen
			w.Frame = w.Config.OpenFrames
		}

	case WheelOpen:
		if released {
			w.State = WheelClosing
		}

	case WheelClosing:
		if pressed {
			w.State = WheelOpening
			w.CenterX = clampInt(mouseX, r, screenW-r)
			w.CenterY = clampInt(mouseY, r, screenH-r)
			return
		}
		w.Frame--
		if w.Frame <= 0 {
			w.State = WheelIdle
			w.Frame = 0
		}
	}
}

// Highlight picks the slot under the cursor. Outside the dead zone the
// dominant axis wins.
func (w *WeaponWheel) Highlight(mouseX, mouseY int) WheelSlot {
	dx := mouseX - w.CenterX
	dy := mouseY - w.CenterY

	if absInt(dx)+absInt(dy) < w.Config.DeadZone {
		w.Highlighted = SlotNone
		return SlotNone
	}

	switch {
	case absInt(dx) >= absInt(dy) && dx > 0:
		w.Highlighted = SlotRight
	case absInt(dx) >= absInt(dy):
		w.Highlighted = SlotLeft
	case dy < 0:
		w.Highlighted = SlotUp
	default:
		w.Highlighted = SlotDown
	}
	return w.Highlighted
}

// IconPosition returns where the icon of slot is drawn at the given eased progress
func (w *WeaponWheel) IconPosition(slot WheelSlot, eased float64) (x, y float64) {
	radius := float64(w.Config.Radius)
	var ox, oy float64

	switch slot {
	case SlotRight:
		ox = radius
	case SlotUp:
		oy = -radius
	case SlotLeft:
		ox = -radius
	case SlotDown:
		oy = radius
	}

	return float64(w.CenterX) + ox*eased, float64(w.CenterY) + oy*eased
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
