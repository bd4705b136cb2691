package psx

import (
	psx2usb "github.com/021bld/PlaystationController2USB"
)

// buttonBit locates one button's bit in the response frame.
type buttonBit struct {
	byteIndex uint8
	mask      uint8
}

// buttonBits is indexed by psx2usb.Button. Byte 3 carries the D-Pad and
// the Select/Start/stick-click buttons, byte 4 the action and shoulder
// buttons. Bits are active low.
var buttonBits = [psx2usb.NumButtons]buttonBit{
	psx2usb.ButtonSquare:   {4, 1 << 7},
	psx2usb.ButtonCross:    {4, 1 << 6},
	psx2usb.ButtonCircle:   {4, 1 << 5},
	psx2usb.ButtonTriangle: {4, 1 << 4},
	psx2usb.ButtonL1:       {4, 1 << 2},
	psx2usb.ButtonR1:       {4, 1 << 3},
	psx2usb.ButtonL2:       {4, 1 << 0},
	psx2usb.ButtonR2:       {4, 1 << 1},
	psx2usb.ButtonSelect:   {3, 1 << 0},
	psx2usb.ButtonStart:    {3, 1 << 3},
	psx2usb.ButtonL3:       {3, 1 << 1},
	psx2usb.ButtonR3:       {3, 1 << 2},
	psx2usb.ButtonUp:       {3, 1 << 4},
	psx2usb.ButtonDown:     {3, 1 << 6},
	psx2usb.ButtonLeft:     {3, 1 << 7},
	psx2usb.ButtonRight:    {3, 1 << 5},
}

// Pressed reports whether the button is held down in the last read state.
func (d *Device) Pressed(b psx2usb.Button) bool {
	bit := buttonBits[b]
	return d.state[bit.byteIndex]&bit.mask == 0
}

// PrimaryStick returns the left analog stick position (x, y), 0-255.
// Only meaningful in analog mode; a digital-mode controller does not
// send these bytes.
func (d *Device) PrimaryStick() (uint8, uint8) {
	return d.state[7], d.state[8]
}

// SecondaryStick returns the right analog stick position (x, y), 0-255.
func (d *Device) SecondaryStick() (uint8, uint8) {
	return d.state[5], d.state[6]
}
