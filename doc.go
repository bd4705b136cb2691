// Package psx2usb bridges a PlayStation 2 controller to a USB HID joystick.
//
// The package is the adaptation layer between two collaborators: a PS2
// controller protocol driver (see the psx subpackage) and a USB HID joystick
// endpoint (see the usbjoystick subpackage). It polls the controller at a
// fixed rate, tracks whether one is plugged in, and translates each raw
// frame into a 12-button, 4-axis, 1-hat HID report.
//
// # Features
//
//   - Fixed-rate poll gate (20 ms default), no blocking, no goroutines
//   - Presence state machine with automatic reconnect and one-shot
//     analog-stick configuration on connect
//   - D-Pad mapped to the X/Y axes (digital, three-valued)
//   - Left analog stick passed through to Rx/Ry
//   - Right analog stick mapped to a 360-degree hat switch with a
//     per-axis dead zone
//
// # Report Layout
//
//	HID control  | Source
//	-------------|------------------------------------------
//	Buttons 0-11 | Square, Cross, Circle, Triangle, L1, R1,
//	             | L2, R2, Select, Start, L3, R3
//	X, Y         | D-Pad (min/idle/max)
//	Rx, Ry       | Left analog stick (raw 0-255)
//	Hat 0        | Right analog stick angle, 0 degrees = up
//
// # Example Usage
//
//	package main
//
//	import (
//	    "machine"
//	    "time"
//
//	    psx2usb "github.com/021bld/PlaystationController2USB"
//	    "github.com/021bld/PlaystationController2USB/psx"
//	    "github.com/021bld/PlaystationController2USB/usbjoystick"
//	)
//
//	func main() {
//	    cfg := psx2usb.DefaultConfig()
//	    pad := psx.New(psx.PinConfig{
//	        DAT: machine.GP2,
//	        CMD: machine.GP3,
//	        CLK: machine.GP4,
//	        ATT: machine.GP5,
//	    })
//	    bridge := psx2usb.New(pad, usbjoystick.New(cfg), cfg)
//
//	    for {
//	        bridge.Poll(time.Now())
//	        time.Sleep(time.Millisecond)
//	    }
//	}
//
// The controller wiring is documented in the psx subpackage.
package psx2usb
