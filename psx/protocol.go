package psx

import "time"

// exchangeByte clocks one byte out on CMD while sampling the response on
// DAT. Both directions are LSB first on the wire; the response is shifted
// in from the top so it lands MSB-aligned after eight clocks.
func (d *Device) exchangeByte(out byte) byte {
	var in byte

	for i := 0; i < 8; i++ {
		if out&0x01 != 0 {
			d.pins.CMD.High()
		} else {
			d.pins.CMD.Low()
		}
		out >>= 1

		d.pins.CLK.Low()
		time.Sleep(d.clkHalfCycle)
		d.pins.CLK.High()
		time.Sleep(d.clkHalfCycle)

		in >>= 1
		if d.pins.DAT.Get() {
			in |= 0x80
		}
	}

	return in
}

// exchange runs one full transaction: attention low, FrameSize byte
// exchanges (the command padded with zeros), attention high. The response
// is left in d.state.
func (d *Device) exchange(cmd []byte) {
	d.pins.ATT.Low()
	time.Sleep(d.attSettle)

	for i := 0; i < FrameSize; i++ {
		out := byte(0x00)
		if i < len(cmd) {
			out = cmd[i]
		}
		d.state[i] = d.exchangeByte(out)
		time.Sleep(d.byteGap)
	}

	d.pins.ATT.High()
	time.Sleep(d.commandGap)
}
