package psx2usb

import "time"

// Default configuration values.
const (
	DefaultPollInterval = 20 * time.Millisecond
	DefaultAxisMin      = 0
	DefaultAxisIdle     = 127
	DefaultAxisMax      = 255
	DefaultHatDeadZone  = 50
)

// Config holds the bridge configuration, fixed at startup.
type Config struct {
	// PollInterval is the minimum time between controller polls.
	PollInterval time.Duration

	// AxisMin, AxisIdle and AxisMax define the numeric range shared by
	// all four axes. They match the controller's 8-bit analog range so
	// stick values pass through unmodified.
	AxisMin  int
	AxisIdle int
	AxisMax  int

	// HatDeadZone is the per-axis deviation magnitude at or below which
	// a hat-stick axis is treated as centered.
	HatDeadZone int
}

// DefaultConfig returns the configuration matching the stock hardware:
// 50 Hz polling, 0-255 axes idling at 127, dead zone of 50.
func DefaultConfig() Config {
	return Config{
		PollInterval: DefaultPollInterval,
		AxisMin:      DefaultAxisMin,
		AxisIdle:     DefaultAxisIdle,
		AxisMax:      DefaultAxisMax,
		HatDeadZone:  DefaultHatDeadZone,
	}
}
