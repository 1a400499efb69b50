// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import "fmt"

// Command opcodes. Page numbers refer to the SSD1306 datasheet.
const (
	_CHARGEPUMP      = 0x8D
	_COLUMNADDR      = 0x21
	_COMSCANDEC      = 0xC8
	_COMSCANINC      = 0xC0
	_DISPLAYOFF      = 0xAE
	_DISPLAYON       = 0xAF
	_INVERTDISPLAY   = 0xA7
	_MEMORYMODE      = 0x20
	_NORMALDISPLAY   = 0xA6
	_PAGEADDR        = 0x22
	_SEGREMAP        = 0xA0
	_SETCOMPINS      = 0xDA
	_SETCONTRAST     = 0x81
	_SETMULTIPLEX    = 0xA8
	_SETSEGMENTREMAP = 0xA1
	_SETSTARTLINE    = 0x40
)

// Addressing is the memory addressing mode; it decides how successive data
// bytes advance through the display memory. See page 34.
//
// The buffer is always sent as is. Under Vertical the controller fills each
// column top to bottom before moving to the next column, under Horizontal it
// fills each page left to right, which matches the layout of
// image1bit.VerticalLSB.
type Addressing int

const (
	// Vertical advances the page pointer first, then the column.
	Vertical Addressing = iota
	// Horizontal advances the column pointer first, then the page.
	Horizontal
)

func (a Addressing) String() string {
	switch a {
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	default:
		return fmt.Sprintf("Addressing(%d)", int(a))
	}
}

// mode returns the argument of _MEMORYMODE.
func (a Addressing) mode() byte {
	if a == Horizontal {
		return 0x00
	}
	return 0x01
}

// getInitCmd returns the power-on sequence. Order matters: the charge pump
// must be enabled before the display is turned on.
//
// With DefaultOpts it returns:
//
//	AE; A8 1F; 40; A1; C8; DA 02; 20 01; 81 7F; 8D 14; AF
func getInitCmd(opts *Opts) []byte {
	// Set COM output scan direction; C0 means normal; C8 means reversed
	comScan := byte(_COMSCANDEC)
	if opts.MirrorVertical {
		comScan = _COMSCANINC
	}
	// See page 40.
	columnAddr := byte(_SETSEGMENTREMAP)
	if opts.MirrorHorizontal {
		columnAddr = _SEGREMAP
	}
	// See page 40.
	hwLayout := byte(0x02)
	if opts.Alternative {
		hwLayout |= 0x10
	}
	return []byte{
		_DISPLAYOFF,                         // Display off
		_SETMULTIPLEX, byte(opts.H - 1),     // Set multiplex ratio (number of lines to display)
		_SETSTARTLINE,                       // Start display start line; 0
		columnAddr,                          // Set segment remap; column 127 is SEG0
		comScan,                             // Set COM output scan direction
		_SETCOMPINS, hwLayout,               // Set COM pins hardware configuration
		_MEMORYMODE, opts.Addressing.mode(), // Set memory addressing mode
		_SETCONTRAST, opts.Contrast,         // Set contrast
		_CHARGEPUMP, 0x14,                   // Enable charge pump regulator; page 62
		_DISPLAYON,                          // Display on
	}
}

// getWindowCmd returns the command setting the column and page ranges
// covered by the next data frame. See page 35.
func getWindowCmd(w, h int) []byte {
	return []byte{
		_COLUMNADDR, 0, byte(w - 1), // Set column address
		_PAGEADDR, 0, byte(h/8 - 1), // Set page address
	}
}
