package psx

import (
	"machine"
	"time"
)

// FrameSize is the length of one command/response transaction.
const FrameSize = 9

// Controller modes, upper nibble of the response mode byte.
const (
	modeDigital uint8 = 0x40
	modeAnalog  uint8 = 0x70
	modeConfig  uint8 = 0xF0
)

// ackByte is the constant header byte a present controller returns.
const ackByte = 0x5A

// Command sequences. The analog command enables analog-stick reporting
// and locks the mode so the controller's Analog button cannot revert it.
var (
	cmdPoll        = []byte{0x01, 0x42, 0x00}
	cmdEnterConfig = []byte{0x01, 0x43, 0x00, 0x01}
	cmdExitConfig  = []byte{0x01, 0x43, 0x00, 0x00, 0x5A, 0x5A, 0x5A, 0x5A, 0x5A}
	cmdSetAnalog   = []byte{0x01, 0x44, 0x00, 0x01, 0x03, 0x00, 0x00, 0x00, 0x00}
)

// PinConfig holds the pin assignment for the controller interface.
type PinConfig struct {
	DAT machine.Pin // Data input (requires pull-up)
	CMD machine.Pin // Command output
	CLK machine.Pin // Clock output
	ATT machine.Pin // Attention output, active low
	ACK machine.Pin // ACK input (optional, not sampled)
}

// Device is a single PS2 controller on the bus.
type Device struct {
	pins PinConfig

	// Timing. PS2 controllers tolerate a 1 MHz half-cycle clock; the
	// inter-command pause keeps the controller's protocol engine happy.
	attSettle    time.Duration
	clkHalfCycle time.Duration
	byteGap      time.Duration
	commandGap   time.Duration

	state [FrameSize]byte
}

// New configures the pins and returns a controller device.
func New(pins PinConfig) *Device {
	d := &Device{
		pins:         pins,
		attSettle:    15 * time.Microsecond,
		clkHalfCycle: 1 * time.Microsecond,
		byteGap:      15 * time.Microsecond,
		commandGap:   10 * time.Millisecond,
	}

	d.pins.CLK.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.pins.CMD.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.pins.ATT.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.pins.DAT.Configure(machine.PinConfig{Mode: machine.PinInput})
	if d.pins.ACK != 0 {
		d.pins.ACK.Configure(machine.PinConfig{Mode: machine.PinInput})
	}

	// Bus idle: clock high, attention released.
	d.pins.CLK.High()
	d.pins.CMD.Low()
	d.pins.ATT.High()

	return d
}

// ProbeConnect checks whether a controller answers a poll on the bus.
func (d *Device) ProbeConnect() bool {
	d.exchange(cmdPoll)
	return d.acked()
}

// EnterConfigMode switches the controller into configuration mode.
func (d *Device) EnterConfigMode() bool {
	d.exchange(cmdEnterConfig)
	return d.acked()
}

// EnableAnalogSticks turns on analog-stick reporting and locks the mode.
// The controller must be in configuration mode.
func (d *Device) EnableAnalogSticks() bool {
	d.exchange(cmdSetAnalog)
	return d.acked()
}

// ExitConfigMode returns the controller to normal polling mode.
func (d *Device) ExitConfigMode() bool {
	d.exchange(cmdExitConfig)
	return d.acked()
}

// ReadState polls the controller. It returns false when the response is
// not a valid controller frame, which signals disconnection.
func (d *Device) ReadState() bool {
	d.exchange(cmdPoll)
	return d.acked()
}

// acked reports whether the last response came from a present controller:
// the 0x5A header byte plus a recognized mode nibble. An empty bus floats
// high and reads as all 0xFF.
func (d *Device) acked() bool {
	if d.state[2] != ackByte {
		return false
	}
	switch d.state[1] & 0xF0 {
	case modeDigital, modeAnalog, modeConfig:
		return true
	}
	return false
}

// Analog reports whether the controller is reporting analog sticks.
func (d *Device) Analog() bool {
	return d.state[1]&0xF0 == modeAnalog
}
