package psx2usb

import "time"

// Bridge owns the poll gate and the controller-presence state machine.
// It is single-threaded: Poll must only be called from one goroutine.
type Bridge struct {
	cfg  Config
	ctrl Controller
	out  ReportWriter

	connected bool
	lastPoll  time.Time
}

// New builds a bridge over the given collaborators.
func New(ctrl Controller, out ReportWriter, cfg Config) *Bridge {
	return &Bridge{
		cfg:  cfg,
		ctrl: ctrl,
		out:  out,
	}
}

// Connected reports whether a controller is currently present.
func (b *Bridge) Connected() bool {
	return b.connected
}

// Poll runs one tick of the pipeline if the poll interval has elapsed
// since the last tick, and reports whether it ran. Calls before the
// interval elapses are no-ops. The first call always runs.
func (b *Bridge) Poll(now time.Time) bool {
	if !b.lastPoll.IsZero() && now.Sub(b.lastPoll) < b.cfg.PollInterval {
		return false
	}
	b.lastPoll = now

	if !b.connected {
		if !b.ctrl.ProbeConnect() {
			return true
		}
		b.configure()
		b.connected = true
		return true
	}

	if !b.ctrl.ReadState() {
		b.connected = false
		return true
	}

	frame := b.snapshot()
	b.emit(MapFrame(&b.cfg, &frame))
	return true
}

// configure runs the one-shot connect-time sequence enabling analog-stick
// reporting. A failed step is logged and skipped over; the controller is
// still treated as connected, at worst without analog sticks.
func (b *Bridge) configure() {
	if !b.ctrl.EnterConfigMode() {
		println("psx2usb: enter config mode failed")
	}
	if !b.ctrl.EnableAnalogSticks() {
		println("psx2usb: enable analog sticks failed")
	}
	if !b.ctrl.ExitConfigMode() {
		println("psx2usb: exit config mode failed")
	}
}

// snapshot captures the controller's last read state as a Frame.
func (b *Bridge) snapshot() Frame {
	var f Frame
	for i := 0; i < NumButtons; i++ {
		f.Pressed[i] = b.ctrl.Pressed(Button(i))
	}
	f.Stick1X, f.Stick1Y = b.ctrl.PrimaryStick()
	f.Stick2X, f.Stick2Y = b.ctrl.SecondaryStick()
	return f
}

// emit stages a report on the writer and sends it.
func (b *Bridge) emit(r Report) {
	for i := 0; i < NumReportButtons; i++ {
		b.out.SetButton(i, r.Buttons[i])
	}
	b.out.SetAxis(AxisX, r.X)
	b.out.SetAxis(AxisY, r.Y)
	b.out.SetAxis(AxisRX, r.RX)
	b.out.SetAxis(AxisRY, r.RY)
	b.out.SetHat(0, r.Hat)
	b.out.SendReport()
}
