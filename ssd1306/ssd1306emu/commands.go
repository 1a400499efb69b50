// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306emu

import "fmt"

// argCount returns the number of argument bytes following opcode op. See
// the command table on page 28.
func argCount(op byte) int {
	switch op {
	case 0x20, 0x81, 0x8D, 0xA8, 0xD3, 0xD5, 0xD9, 0xDA, 0xDB:
		return 1
	case 0x21, 0x22, 0xA3:
		return 2
	case 0x29, 0x2A:
		return 5
	case 0x26, 0x27:
		return 6
	default:
		return 0
	}
}

// commands executes a command stream. Commands before a faulty one are
// applied.
func (c *Controller) commands(p []byte) error {
	for i := 0; i < len(p); {
		op := p[i]
		n := argCount(op)
		if i+1+n > len(p) {
			return fmt.Errorf("command 0x%02X truncated", op)
		}
		if err := c.exec(op, p[i+1:i+1+n]); err != nil {
			return err
		}
		i += 1 + n
	}
	return nil
}

func (c *Controller) exec(op byte, args []byte) error {
	st := &c.st
	switch {
	case op <= 0x0F:
		// Lower column start address, page mode.
		st.Column = st.Column&0xF0 | int(op&0x0F)
	case op <= 0x1F:
		// Higher column start address, page mode.
		st.Column = int(op&0x07)<<4 | st.Column&0x0F
	case op == 0x20:
		if args[0]&3 == 3 {
			return fmt.Errorf("invalid addressing mode 0x%02X", args[0])
		}
		st.Addressing = args[0] & 3
	case op == 0x21:
		st.ColumnStart = int(args[0] & 0x7F)
		st.ColumnEnd = int(args[1] & 0x7F)
		st.Column = st.ColumnStart
	case op == 0x22:
		st.PageStart = int(args[0] & 7)
		st.PageEnd = int(args[1] & 7)
		st.Page = st.PageStart
	case op == 0x26, op == 0x27, op == 0x29, op == 0x2A, op == 0xA3:
		// Scrolling setup; the emulator doesn't scroll.
	case op == 0x2E:
		st.Scrolling = false
	case op == 0x2F:
		st.Scrolling = true
	case op >= 0x40 && op <= 0x7F:
		st.StartLine = op & 0x3F
	case op == 0x81:
		st.Contrast = args[0]
	case op == 0x8D:
		st.ChargePump = args[0]&0x04 != 0
	case op == 0xA0, op == 0xA1:
		st.SegmentRemap = op == 0xA1
	case op == 0xA4, op == 0xA5:
		st.EntireOn = op == 0xA5
	case op == 0xA6, op == 0xA7:
		st.Inverted = op == 0xA7
	case op == 0xA8:
		if args[0]&0x3F < 15 {
			return fmt.Errorf("invalid multiplex ratio %d", args[0])
		}
		st.Multiplex = args[0] & 0x3F
	case op == 0xAE, op == 0xAF:
		st.On = op == 0xAF
	case op >= 0xB0 && op <= 0xB7:
		// Page start address, page mode.
		st.Page = int(op & 7)
	case op == 0xC0, op == 0xC8:
		st.COMRemap = op == 0xC8
	case op == 0xD3:
		st.Offset = args[0] & 0x3F
	case op == 0xDA:
		st.COMPins = args[0]
	case op == 0xD5, op == 0xD9, op == 0xDB, op == 0xE3:
		// Timing and voltage settings, NOP.
	default:
		return fmt.Errorf("unknown command 0x%02X", op)
	}
	return nil
}

// data writes p at the address pointers, advancing them according to the
// addressing mode. See page 34 and 35.
func (c *Controller) data(p []byte) {
	st := &c.st
	for _, b := range p {
		c.ram[st.Page*ramW+st.Column] = b
		switch st.Addressing {
		case ModeHorizontal:
			if st.Column++; st.Column > st.ColumnEnd {
				st.Column = st.ColumnStart
				if st.Page++; st.Page > st.PageEnd {
					st.Page = st.PageStart
				}
			}
		case ModeVertical:
			if st.Page++; st.Page > st.PageEnd {
				st.Page = st.PageStart
				if st.Column++; st.Column > st.ColumnEnd {
					st.Column = st.ColumnStart
				}
			}
		default:
			// Page mode wraps on the current page.
			if st.Column++; st.Column >= ramW {
				st.Column = 0
			}
		}
	}
}
