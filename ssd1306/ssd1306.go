// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"periph.io/x/devices/v3/ssd1306/image1bit"
	"golang.org/x/image/draw"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

type variant string

const _SSD1306 variant = "ssd1306"

// DefaultOpts is the recommended default options for a 0.91" 128x32 panel.
var DefaultOpts = Opts{
	W:          128,
	H:          32,
	Addr:       0x3c,
	Speed:      100 * physic.KiloHertz,
	Timeout:    time.Second,
	Contrast:   0x7F,
	Addressing: Vertical,
}

// Opts defines the options for the device.
type Opts struct {
	W int
	H int
	// The I2C address of the display.
	Addr uint16
	// Speed is the bus clock set by Init. Use 0 to keep the bus as configured
	// by the host.
	Speed physic.Frequency
	// Timeout bounds every bus transaction.
	Timeout time.Duration
	// Contrast is the initial contrast level.
	Contrast byte
	// Alternative corresponds to the Sequential/Alternative COM pin
	// configuration in the OLED panel hardware. 32 pixel high panels are
	// usually sequential, 64 pixel high ones alternative. Try toggling this if
	// every other row appears to be missing.
	Alternative bool
	// MirrorVertical corresponds to the COM remap configuration in the OLED
	// panel hardware. Try toggling this if the display is flipped vertically.
	MirrorVertical bool
	// MirrorHorizontal corresponds to the SEG remap configuration in the OLED
	// panel hardware. Try toggling this if the display is flipped
	// horizontally.
	MirrorHorizontal bool
	// Addressing is the memory addressing mode set by Init.
	Addressing Addressing
}

// NewI2C returns a Dev object that communicates over I²C to a SSD1306 display
// controller.
//
// The controller is not touched until Init() is called.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	return New(NewI2CTransport(b), opts)
}

// New returns a Dev object that sends its frames through t.
//
// Use nil opts for DefaultOpts.
func New(t Transport, opts *Opts) (*Dev, error) {
	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	if o.Addr == 0x00 {
		o.Addr = DefaultOpts.Addr
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultOpts.Timeout
	}
	if o.Addr > 0x7F {
		return nil, fmt.Errorf("%s: invalid address 0x%X", _SSD1306, o.Addr)
	}
	if o.W < 8 || o.W > 128 || o.W&7 != 0 {
		return nil, fmt.Errorf("%s: invalid width %d", _SSD1306, o.W)
	}
	if o.H < 8 || o.H > 64 || o.H&7 != 0 {
		return nil, fmt.Errorf("%s: invalid height %d", _SSD1306, o.H)
	}
	if o.Addressing != Vertical && o.Addressing != Horizontal {
		return nil, fmt.Errorf("%s: invalid addressing %s", _SSD1306, o.Addressing)
	}
	rect := image.Rect(0, 0, o.W, o.H)
	return &Dev{
		t:      t,
		opts:   o,
		rect:   rect,
		buffer: image1bit.NewVerticalLSB(rect),
	}, nil
}

// Dev is an open handle to the display controller.
//
// Dev is not safe for concurrent use.
type Dev struct {
	// Communication
	t    Transport
	opts Opts

	// Display size controlled by the SSD1306.
	rect image.Rectangle

	// Mutable
	// See page 25 for the GDDRAM pages structure. There are H/8 pages, each
	// covering an horizontal band of 8 pixels high (1 byte) for W bytes.
	// 4*128 = 512 bytes total for 128x32 display.
	buffer      *image1bit.VerticalLSB
	initialized bool
	halted      bool
}

func (d *Dev) String() string {
	return fmt.Sprintf("%s.Dev{%s, 0x%02X, %s}", _SSD1306, d.t, d.opts.Addr, d.rect.Max)
}

// ColorModel implements display.Drawer.
//
// It is a one bit color model, as implemented by image1bit.Bit.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Init configures the bus and sends the power-on command sequence.
//
// The display is ready to show the content of its memory once Init returns
// without error. On error the device is left uninitialized and Init can be
// called again.
func (d *Dev) Init() error {
	d.initialized = false
	if d.opts.Speed != 0 {
		if err := d.t.Configure(d.opts.Speed); err != nil {
			return err
		}
	}
	if err := d.Send(getInitCmd(&d.opts), true); err != nil {
		return err
	}
	d.initialized = true
	d.halted = false
	return nil
}

// Update sends the whole buffer to the display memory.
//
// The addressing window is set first, then the buffer follows as a single
// data frame. If the data frame fails, the window is left set.
func (d *Dev) Update() error {
	if !d.initialized {
		return &NotInitializedError{Op: "Update"}
	}
	if err := d.sendCommand(getWindowCmd(d.rect.Dx(), d.rect.Dy())); err != nil {
		return err
	}
	return d.Send(d.buffer.Pix, false)
}

// TestPattern writes a built-in glyph at the start of the buffer, leaving the
// rest untouched. It doesn't touch the bus; call Update() to show it.
func (d *Dev) TestPattern() {
	copy(d.buffer.Pix, testGlyph[:])
}

// Clear turns off all the pixels of the buffer. It doesn't touch the bus.
func (d *Dev) Clear() {
	for i := range d.buffer.Pix {
		d.buffer.Pix[i] = 0
	}
}

// Frame returns a copy of the buffer.
func (d *Dev) Frame() []byte {
	return append([]byte(nil), d.buffer.Pix...)
}

// Draw implements display.Drawer.
//
// It draws synchronously, once this function returns, the display is updated.
// It means that on slow bus (I²C), it may be preferable to defer Draw() calls
// to a background goroutine.
//
// The buffer is page-major, so it only lands on the panel as drawn with
// Horizontal addressing. Draw returns an error under Vertical addressing; use
// Write to send raw bytes in that mode.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if !d.initialized {
		return &NotInitializedError{Op: "Draw"}
	}
	if d.opts.Addressing != Horizontal {
		return fmt.Errorf("%s: Draw requires %s addressing, got %s", _SSD1306, Horizontal, d.opts.Addressing)
	}
	if img, ok := src.(*image1bit.VerticalLSB); ok && r == d.rect && img.Rect == d.rect && sp.X == 0 && sp.Y == 0 {
		// Exact size, full frame, image1bit encoding: fast path!
		copy(d.buffer.Pix, img.Pix)
	} else {
		draw.Draw(d.buffer, r, src, sp, draw.Src)
	}
	return d.Update()
}

// Write writes a buffer of pixels to the display.
//
// The format is unusual as each byte represents 8 vertical pixels at a time.
// The format is horizontal bands of 8 pixels high.
//
// This function accepts the content of image1bit.VerticalLSB.Pix.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels) != len(d.buffer.Pix) {
		return 0, fmt.Errorf("%s: invalid pixel stream length; expected %d bytes, got %d bytes", _SSD1306, len(d.buffer.Pix), len(pixels))
	}
	if !d.initialized {
		return 0, &NotInitializedError{Op: "Write"}
	}
	copy(d.buffer.Pix, pixels)
	if err := d.Update(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// SetContrast changes the screen contrast.
func (d *Dev) SetContrast(level byte) error {
	if !d.initialized {
		return &NotInitializedError{Op: "SetContrast"}
	}
	return d.sendCommand([]byte{_SETCONTRAST, level})
}

// Invert the display (black on white vs white on black).
func (d *Dev) Invert(blackOnWhite bool) error {
	if !d.initialized {
		return &NotInitializedError{Op: "Invert"}
	}
	b := []byte{_NORMALDISPLAY}
	if blackOnWhite {
		b[0] = _INVERTDISPLAY
	}
	return d.sendCommand(b)
}

// Halt turns off the display.
//
// Sending any other command afterward reenables the display. It is a no-op
// before Init.
func (d *Dev) Halt() error {
	if !d.initialized {
		return nil
	}
	err := d.Send([]byte{_DISPLAYOFF}, true)
	if err == nil {
		d.halted = true
	}
	return err
}

// Send writes p as one bus transaction, as commands or as display data.
//
// It is the framing primitive used by every other method. It does not retry;
// the Transport error is returned as is.
func (d *Dev) Send(p []byte, isCommand bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.opts.Timeout)
	defer cancel()
	return d.t.Tx(ctx, NewFrame(d.opts.Addr, isCommand, p))
}

func (d *Dev) sendCommand(c []byte) error {
	if d.halted {
		// Transparently enable the display.
		c = append([]byte{_DISPLAYON}, c...)
	}
	if err := d.Send(c, true); err != nil {
		return err
	}
	d.halted = false
	return nil
}

var _ display.Drawer = &Dev{}
