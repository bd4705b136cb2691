// Package usbjoystick adapts TinyGo's USB HID joystick endpoint to the
// report-writer interface the bridge emits through. The descriptor is
// fixed at construction: 12 buttons, four axes and one 8-way hat switch.
package usbjoystick

import (
	"machine/usb/hid/joystick"

	psx2usb "github.com/021bld/PlaystationController2USB"
)

// hatDirs maps psx2usb.HatSector output onto the endpoint's clockwise
// hat directions.
var hatDirs = [8]joystick.HatDirection{
	joystick.HatUp,
	joystick.HatRightUp,
	joystick.HatRight,
	joystick.HatRightDown,
	joystick.HatDown,
	joystick.HatLeftDown,
	joystick.HatLeft,
	joystick.HatLeftUp,
}

// Writer drives the USB joystick endpoint. It stages state with the Set
// calls and transmits one report per SendReport.
type Writer struct {
	js *joystick.Joystick
}

// New configures the joystick endpoint for the bridge's report shape.
// Axis input ranges come from cfg so controller values pass through
// unscaled; the report carries them as signed 8-bit values.
func New(cfg psx2usb.Config) *Writer {
	axis := joystick.Constraint{
		MinIn:  cfg.AxisMin,
		MaxIn:  cfg.AxisMax,
		MinOut: -127,
		MaxOut: 127,
	}
	return &Writer{
		js: joystick.New(joystick.Definitions{
			ButtonCnt:    psx2usb.NumReportButtons,
			HatSwitchCnt: 1,
			AxisDefs:     []joystick.Constraint{axis, axis, axis, axis},
		}),
	}
}

// SetButton stages one button state.
func (w *Writer) SetButton(index int, pressed bool) {
	w.js.SetButton(index, pressed)
}

// SetAxis stages one axis value in the configured input range.
func (w *Writer) SetAxis(axis int, value int) {
	w.js.SetAxis(axis, value)
}

// SetHat stages the hat switch from an angle in degrees [0,360), or
// psx2usb.HatReleased. The continuous angle is quantized onto the
// endpoint's eight 45-degree directions.
func (w *Writer) SetHat(index int, angle int) {
	sector := psx2usb.HatSector(angle)
	if sector < 0 {
		w.js.SetHat(index, joystick.HatCenter)
		return
	}
	w.js.SetHat(index, hatDirs[sector])
}

// SendReport transmits the staged state as one HID report.
func (w *Writer) SendReport() {
	w.js.SendState()
}
