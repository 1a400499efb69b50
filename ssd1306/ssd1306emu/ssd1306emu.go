// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306emu emulates a SSD1306 controller behind a ssd1306.Transport.
//
// The Controller executes the command frames it receives the way the chip
// does: addressing mode, column and page windows, page mode pointers,
// contrast, display on/off, inversion and charge pump. Data frames are
// written to an emulated display memory (GDDRAM) following the configured
// addressing mode, so what Image() returns is what the panel would show.
//
// Useful while you are waiting for your display to come by mail, and to
// check the memory layout produced by a sequence of frames.
package ssd1306emu

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"sync"
	"time"

	"github.com/GermanBionicSystems/oled/ssd1306"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

const (
	ramW     = 128
	ramPages = 8

	// maxSpeed is the fast mode I²C limit of the SSD1306.
	maxSpeed = 400 * physic.KiloHertz
)

// Memory addressing modes, as set by command 0x20. See page 34.
const (
	ModeHorizontal = 0x00
	ModeVertical   = 0x01
	ModePage       = 0x02
)

// ErrNACK is wrapped in the TransportError returned for a frame that the
// controller doesn't acknowledge.
var ErrNACK = errors.New("not acknowledged")

// DefaultOpts emulates a 128x32 panel at address 0x3C.
var DefaultOpts = Opts{
	W:    128,
	H:    32,
	Addr: 0x3C,
}

// Opts defines the options for the emulated controller.
type Opts struct {
	// Visible area of the panel.
	W int
	H int
	// The I2C address of the controller.
	Addr uint16
	// Latency is the time each transaction takes on the wire.
	Latency time.Duration
}

// State is a snapshot of the controller registers.
type State struct {
	Speed physic.Frequency

	On         bool
	ChargePump bool
	Inverted   bool
	EntireOn   bool
	Scrolling  bool

	Contrast     byte
	Multiplex    byte
	StartLine    byte
	Offset       byte
	COMPins      byte
	SegmentRemap bool
	COMRemap     bool

	// Addressing is one of ModeHorizontal, ModeVertical or ModePage.
	Addressing  byte
	ColumnStart int
	ColumnEnd   int
	PageStart   int
	PageEnd     int
	// Column and Page are the address pointers of the next data byte.
	Column int
	Page   int
}

// Controller is an emulated SSD1306. It implements ssd1306.Transport.
type Controller struct {
	opts Opts

	mu    sync.Mutex
	st    State
	ram   [ramPages * ramW]byte
	count int
}

// New returns a Controller in its power-on reset state.
//
// Use nil opts for DefaultOpts.
func New(opts *Opts) *Controller {
	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	if o.W <= 0 || o.W > ramW {
		o.W = DefaultOpts.W
	}
	if o.H <= 0 || o.H > ramPages*8 {
		o.H = DefaultOpts.H
	}
	if o.Addr == 0 {
		o.Addr = DefaultOpts.Addr
	}
	c := &Controller{opts: o}
	c.reset()
	return c
}

// reset loads the register values of page 64.
func (c *Controller) reset() {
	c.st = State{
		Contrast:   0x7F,
		Multiplex:  63,
		COMPins:    0x12,
		Addressing: ModePage,
		ColumnEnd:  ramW - 1,
		PageEnd:    ramPages - 1,
	}
}

func (c *Controller) String() string {
	return "ssd1306emu"
}

// Configure implements ssd1306.Transport.
func (c *Controller) Configure(speed physic.Frequency) error {
	if speed <= 0 || speed > maxSpeed {
		return &ssd1306.TransportError{Op: "configure", Addr: c.opts.Addr, Err: fmt.Errorf("unsupported bus speed %s", speed)}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.Speed = speed
	return nil
}

// Tx implements ssd1306.Transport.
//
// A frame for another address is not acknowledged. A malformed command
// stream is executed up to the faulty command and then rejected.
func (c *Controller) Tx(ctx context.Context, f ssd1306.Frame) error {
	if len(f) < 2 {
		return &ssd1306.TransportError{Op: "tx", Err: fmt.Errorf("frame too short (%d bytes)", len(f))}
	}
	addr := f.Addr()
	if f[0]&1 != 0 || addr != c.opts.Addr {
		return &ssd1306.TransportError{Op: "tx", Addr: addr, Err: ErrNACK}
	}
	if c.opts.Latency > 0 {
		t := time.NewTimer(c.opts.Latency)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return &ssd1306.TransportError{Op: "tx", Addr: addr, Err: ssd1306.ErrTimeout}
		}
	} else if ctx.Err() != nil {
		return &ssd1306.TransportError{Op: "tx", Addr: addr, Err: ssd1306.ErrTimeout}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	var err error
	switch f.Control() {
	case 0x00:
		err = c.commands(f.Payload())
	case 0x40:
		c.data(f.Payload())
	default:
		err = fmt.Errorf("unsupported control byte 0x%02X", f.Control())
	}
	if err != nil {
		return &ssd1306.TransportError{Op: "tx", Addr: addr, Err: err}
	}
	return nil
}

// Count returns the number of frames acknowledged so far.
func (c *Controller) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// State returns a snapshot of the registers.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st
}

// On reports if the display was turned on.
func (c *Controller) On() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.On
}

// Bounds returns the visible area of the panel.
func (c *Controller) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.opts.W, c.opts.H)
}

// Memory returns a copy of the display memory covering the visible area, in
// the page layout of image1bit.VerticalLSB.
func (c *Controller) Memory() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.memoryLocked()
}

func (c *Controller) memoryLocked() []byte {
	w := c.opts.W
	pages := (c.opts.H + 7) / 8
	out := make([]byte, 0, w*pages)
	for p := 0; p < pages; p++ {
		out = append(out, c.ram[p*ramW:p*ramW+w]...)
	}
	return out
}

// Image returns what the panel shows.
//
// The panel is dark unless the display and the charge pump are both on.
// Segment and COM remapping are assumed to match the panel orientation.
func (c *Controller) Image() *image1bit.VerticalLSB {
	c.mu.Lock()
	defer c.mu.Unlock()
	img := image1bit.NewVerticalLSB(c.Bounds())
	if !c.st.On || !c.st.ChargePump {
		return img
	}
	if c.st.EntireOn {
		draw.Draw(img, img.Rect, &image.Uniform{image1bit.On}, image.Point{}, draw.Src)
	} else {
		copy(img.Pix, c.memoryLocked())
	}
	if c.st.Inverted {
		for i := range img.Pix {
			img.Pix[i] = ^img.Pix[i]
		}
	}
	return img
}

var _ ssd1306.Transport = &Controller{}
