// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import "fmt"

const (
	i2cCmd  = 0x00 // I²C transaction has stream of command bytes
	i2cData = 0x40 // I²C transaction has stream of data bytes
)

// Frame is the byte stream of one I²C write transaction between the start
// and stop conditions:
//
//	addr<<1 | W, control, payload...
//
// The control byte is 0x00 when the payload is a stream of commands and 0x40
// when it is a stream of display data.
//
// A well formed Frame is at least 2 bytes long. The accessors return zero
// values for the bytes a shorter Frame lacks.
type Frame []byte

// NewFrame assembles a write frame for the 7 bit address addr.
func NewFrame(addr uint16, isCommand bool, payload []byte) Frame {
	f := make(Frame, 2, 2+len(payload))
	// The R/W bit is 0 for a write.
	f[0] = byte(addr << 1)
	f[1] = i2cData
	if isCommand {
		f[1] = i2cCmd
	}
	return append(f, payload...)
}

// Addr returns the 7 bit device address.
func (f Frame) Addr() uint16 {
	if len(f) < 1 {
		return 0
	}
	return uint16(f[0] >> 1)
}

// Control returns the control byte.
func (f Frame) Control() byte {
	if len(f) < 2 {
		return 0
	}
	return f[1]
}

// IsCommand reports if the payload is a stream of commands.
func (f Frame) IsCommand() bool {
	return len(f) >= 2 && f[1] == i2cCmd
}

// Payload returns the bytes following the control byte.
func (f Frame) Payload() []byte {
	if len(f) < 2 {
		return nil
	}
	return f[2:]
}

func (f Frame) String() string {
	kind := "data"
	if f.IsCommand() {
		kind = "cmd"
	}
	return fmt.Sprintf("Frame{0x%02X, %s, %d bytes}", f.Addr(), kind, len(f.Payload()))
}
