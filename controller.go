package psx2usb

// Button identifies a controller button. The first twelve values double as
// HID report button indices; the D-Pad buttons feed the X/Y axes instead
// and never appear in the report's button bits.
type Button uint8

const (
	ButtonSquare Button = iota
	ButtonCross
	ButtonCircle
	ButtonTriangle
	ButtonL1
	ButtonR1
	ButtonL2
	ButtonR2
	ButtonSelect
	ButtonStart
	ButtonL3
	ButtonR3
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight

	// NumReportButtons is the number of buttons carried in the HID report.
	NumReportButtons = int(ButtonUp)
	// NumButtons is the total number of digital inputs on the controller.
	NumButtons = int(ButtonRight) + 1
)

// Axis indices within the HID report.
const (
	AxisX = iota
	AxisY
	AxisRX
	AxisRY
	NumAxes
)

// HatReleased is the hat value reported when the hat stick is centered.
const HatReleased = -1

// Controller is the protocol-driver collaborator. All operations are
// synchronous and signal failure by returning false; a false ReadState
// means the controller is gone.
type Controller interface {
	// ProbeConnect checks whether a controller is responding on the bus.
	ProbeConnect() bool

	// EnterConfigMode switches the controller into configuration mode.
	EnterConfigMode() bool
	// EnableAnalogSticks turns on analog-stick reporting and locks the
	// mode. Only valid in configuration mode.
	EnableAnalogSticks() bool
	// ExitConfigMode returns the controller to normal polling mode.
	ExitConfigMode() bool

	// ReadState polls the controller, refreshing the state returned by
	// the accessors below.
	ReadState() bool

	// Pressed reports whether the given button is held down in the last
	// successfully read state.
	Pressed(Button) bool
	// PrimaryStick returns the left analog stick position (x, y), 0-255.
	PrimaryStick() (uint8, uint8)
	// SecondaryStick returns the right analog stick position (x, y), 0-255.
	SecondaryStick() (uint8, uint8)
}

// ReportWriter is the USB HID collaborator. Axis ranges and the report
// shape (12 buttons, 4 axes, 1 hat) are fixed when the writer is built.
// Set calls stage state; SendReport transmits it as one report.
type ReportWriter interface {
	SetButton(index int, pressed bool)
	SetAxis(axis int, value int)
	// SetHat sets the hat angle in degrees [0,360), or HatReleased.
	SetHat(index int, angle int)
	SendReport()
}
