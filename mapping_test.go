package psx2usb

import (
	"testing"
)

// =============================================================================
// Hat Angle Tests
// =============================================================================

func TestHatAngle_Cardinals(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name       string
		rawX, rawY uint8
		expect     int
	}{
		// Deviations flip against the raw values: a raw above idle is a
		// negative deviation. 0 degrees = up, clockwise.
		{"up", 127, 20, 0},
		{"right", 200, 127, 90},
		{"down", 127, 230, 180},
		{"left", 20, 127, 270},
		{"up-right", 230, 22, 45},
		{"down-right", 230, 230, 135},
		{"down-left", 22, 230, 225},
		{"up-left", 22, 22, 315},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hatAngle(&cfg, tt.rawX, tt.rawY); got != tt.expect {
				t.Errorf("hatAngle(%d, %d) = %d, want %d", tt.rawX, tt.rawY, got, tt.expect)
			}
		})
	}
}

func TestHatAngle_DeadZone(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name       string
		rawX, rawY uint8
		expect     int
	}{
		{"centered", 127, 127, HatReleased},
		{"idle plus one", 126, 126, HatReleased},
		// Spec walk-through: x-dev = -1 filtered, y-dev = 49 filtered.
		{"inside threshold", 127, 77, HatReleased},
		// dev exactly +/-50 is still filtered.
		{"on threshold x", 76, 127, HatReleased},
		{"on threshold y", 127, 176, HatReleased},
		// dev 51 is kept: raw 75 -> dev +51 -> left.
		{"just past threshold", 75, 127, 270},
		// The filter is per axis: a diagonal with both deviations at 45
		// has magnitude ~64 but is still released.
		{"diagonal inside per-axis zone", 81, 81, HatReleased},
		// One axis past the threshold, the other filtered to zero.
		{"diagonal one axis kept", 66, 100, 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hatAngle(&cfg, tt.rawX, tt.rawY); got != tt.expect {
				t.Errorf("hatAngle(%d, %d) = %d, want %d", tt.rawX, tt.rawY, got, tt.expect)
			}
		})
	}
}

func TestHatAngle_RangeInvariant(t *testing.T) {
	cfg := DefaultConfig()

	for x := 0; x < 256; x += 5 {
		for y := 0; y < 256; y += 5 {
			got := hatAngle(&cfg, uint8(x), uint8(y))
			if got == HatReleased {
				continue
			}
			if got < 0 || got >= 360 {
				t.Fatalf("hatAngle(%d, %d) = %d, out of [0,360)", x, y, got)
			}
		}
	}
}

// =============================================================================
// Hat Sector Tests
// =============================================================================

func TestHatSector(t *testing.T) {
	tests := []struct {
		angle  int
		expect int
	}{
		{HatReleased, -1},
		{0, 0},
		{22, 0},
		{23, 1},
		{45, 1},
		{90, 2},
		{135, 3},
		{180, 4},
		{225, 5},
		{270, 6},
		{315, 7},
		{337, 7},
		{338, 0},
		{359, 0},
	}

	for _, tt := range tests {
		if got := HatSector(tt.angle); got != tt.expect {
			t.Errorf("HatSector(%d) = %d, want %d", tt.angle, got, tt.expect)
		}
	}
}

// =============================================================================
// Frame Mapping Tests
// =============================================================================

func idleFrame() Frame {
	return Frame{
		Stick1X: 127, Stick1Y: 127,
		Stick2X: 127, Stick2Y: 127,
	}
}

func TestMapFrame_Buttons(t *testing.T) {
	cfg := DefaultConfig()

	f := idleFrame()
	f.Pressed[ButtonSquare] = true
	f.Pressed[ButtonR2] = true
	f.Pressed[ButtonR3] = true

	r := MapFrame(&cfg, &f)

	for i := 0; i < NumReportButtons; i++ {
		want := i == int(ButtonSquare) || i == int(ButtonR2) || i == int(ButtonR3)
		if r.Buttons[i] != want {
			t.Errorf("Buttons[%d] = %v, want %v", i, r.Buttons[i], want)
		}
	}
}

func TestMapFrame_DPadAxes(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name                  string
		up, down, left, right bool
		wantX, wantY          int
	}{
		{"released", false, false, false, false, 127, 127},
		{"up", true, false, false, false, 127, 0},
		{"down", false, true, false, false, 127, 255},
		{"left", false, false, true, false, 0, 127},
		{"right", false, false, false, true, 255, 127},
		{"up-left", true, false, true, false, 0, 0},
		// Opposite directions resolve last-wins.
		{"up and down", true, true, false, false, 127, 255},
		{"left and right", false, false, true, true, 255, 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := idleFrame()
			f.Pressed[ButtonUp] = tt.up
			f.Pressed[ButtonDown] = tt.down
			f.Pressed[ButtonLeft] = tt.left
			f.Pressed[ButtonRight] = tt.right

			r := MapFrame(&cfg, &f)
			if r.X != tt.wantX || r.Y != tt.wantY {
				t.Errorf("X,Y = %d,%d, want %d,%d", r.X, r.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMapFrame_StickPassthrough(t *testing.T) {
	cfg := DefaultConfig()

	f := idleFrame()
	f.Stick1X, f.Stick1Y = 200, 31

	r := MapFrame(&cfg, &f)
	if r.RX != 200 || r.RY != 31 {
		t.Errorf("RX,RY = %d,%d, want 200,31", r.RX, r.RY)
	}
}

func TestMapFrame_Hat(t *testing.T) {
	cfg := DefaultConfig()

	f := idleFrame()
	r := MapFrame(&cfg, &f)
	if r.Hat != HatReleased {
		t.Errorf("idle Hat = %d, want HatReleased", r.Hat)
	}

	f.Stick2X, f.Stick2Y = 200, 127
	r = MapFrame(&cfg, &f)
	if r.Hat != 90 {
		t.Errorf("Hat = %d, want 90", r.Hat)
	}
}
