package psx2usb

import "math"

// Frame is one raw controller state, captured per successful poll.
type Frame struct {
	// Pressed holds all digital inputs, indexed by Button.
	Pressed [NumButtons]bool

	// Stick1X, Stick1Y is the left analog stick (passed through to Rx/Ry).
	Stick1X, Stick1Y uint8
	// Stick2X, Stick2Y is the right analog stick (drives the hat).
	Stick2X, Stick2Y uint8
}

// Report is one HID joystick report, derived 1:1 from a Frame.
type Report struct {
	Buttons [NumReportButtons]bool
	X, Y    int
	RX, RY  int
	// Hat is the hat angle in degrees [0,360), or HatReleased.
	Hat int
}

// MapFrame translates a raw controller frame into a HID report.
func MapFrame(cfg *Config, f *Frame) Report {
	var r Report

	for i := 0; i < NumReportButtons; i++ {
		r.Buttons[i] = f.Pressed[i]
	}

	// D-Pad drives X/Y as digital three-valued axes. Opposite directions
	// pressed together resolve last-wins: down beats up, right beats left.
	r.X, r.Y = cfg.AxisIdle, cfg.AxisIdle
	if f.Pressed[ButtonUp] {
		r.Y = cfg.AxisMin
	}
	if f.Pressed[ButtonDown] {
		r.Y = cfg.AxisMax
	}
	if f.Pressed[ButtonLeft] {
		r.X = cfg.AxisMin
	}
	if f.Pressed[ButtonRight] {
		r.X = cfg.AxisMax
	}

	r.RX = int(f.Stick1X)
	r.RY = int(f.Stick1Y)

	r.Hat = hatAngle(cfg, f.Stick2X, f.Stick2Y)

	return r
}

// hatAngle converts a stick position into a hat angle in degrees, 0 = up,
// increasing clockwise, or HatReleased when the stick is centered.
//
// Deviations are computed as idle - raw - 1, flipping the sign so the
// atan2 rebase below needs no negation. The dead zone applies to each
// axis independently: a diagonal whose axes are both at or below the
// threshold is released even if its combined magnitude is not.
func hatAngle(cfg *Config, rawX, rawY uint8) int {
	dx := cfg.AxisIdle - int(rawX) - 1
	dy := cfg.AxisIdle - int(rawY) - 1
	if dx >= -cfg.HatDeadZone && dx <= cfg.HatDeadZone {
		dx = 0
	}
	if dy >= -cfg.HatDeadZone && dy <= cfg.HatDeadZone {
		dy = 0
	}
	if dx == 0 && dy == 0 {
		return HatReleased
	}

	// Rebase by 3π/2 so up reads 0 and angles grow clockwise.
	rad := math.Atan2(float64(dy), float64(dx)) + 2*math.Pi - math.Pi/2
	return int(math.Round(rad*180/math.Pi)) % 360
}

// HatSector quantizes a hat angle onto the eight 45-degree sectors of a
// discrete HID hat switch: 0 = up, 1 = up-right, ... 7 = up-left.
// HatReleased maps to -1.
func HatSector(angle int) int {
	if angle == HatReleased {
		return -1
	}
	return ((angle + 22) / 45) % 8
}
