// Package psx drives a PlayStation 2 controller over its bit-banged
// serial protocol and exposes the boolean-signaled operations the bridge
// polls: connect probing, configuration-mode commands and state reads.
//
// # Hardware Connection
//
// The controller speaks an SPI-like protocol, LSB first, with an active-low
// attention line framing each 9-byte transaction. Wire it as follows
// (1kΩ pull-up required on DAT):
//
//	Controller Pin | Function   | Notes
//	---------------|------------|---------------------------
//	1              | DAT        | Input, requires pull-up
//	2              | CMD        | Output, command to controller
//	4              | GND        | Ground
//	5              | VCC        | 3.3V power
//	6              | ATT        | Attention, active low
//	7              | CLK        | Clock, output
//	9              | ACK        | Acknowledge (optional)
//
// Every exchange sends a command header and reads the 9-byte response in
// the same clocked transfer. A response is considered acknowledged when
// its header carries 0x5A and a recognized mode byte; anything else
// (bus floating high reads as 0xFF) means no controller is present.
package psx
