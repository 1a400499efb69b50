// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306emu

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// TerminalOpts represents the options available for the terminal output.
type TerminalOpts struct {
	// Lit and Dark are the colors of the pixels that are on and off. Most
	// 0.91" panels are white on black.
	Lit  color.Color
	Dark color.Color
	// Redraw moves the cursor back up before each frame after the first one,
	// so successive frames overwrite each other.
	Redraw  bool
	Palette *ansi256.Palette

	_ struct{}
}

// Terminal outputs a 1 bit image to a terminal using ANSI color codes, one
// block per pixel.
type Terminal struct {
	w       io.Writer
	palette ansi256.Palette
	lit     string
	dark    string
	redraw  bool

	lines int
	buf   bytes.Buffer
}

// NewTerminal returns a Terminal that displays at the console.
func NewTerminal(opts *TerminalOpts) *Terminal {
	return NewTerminalWriter(colorable.NewColorableStdout(), opts)
}

// NewTerminalWriter returns a Terminal writing to w.
func NewTerminalWriter(w io.Writer, opts *TerminalOpts) *Terminal {
	o := TerminalOpts{}
	if opts != nil {
		o = *opts
	}
	p := o.Palette
	if p == nil {
		p = ansi256.Default
	}
	if o.Lit == nil {
		o.Lit = color.White
	}
	if o.Dark == nil {
		o.Dark = color.Black
	}
	t := &Terminal{
		w:       w,
		palette: *p,
		redraw:  o.Redraw,
	}
	t.lit = t.palette.Block(color.NRGBAModel.Convert(o.Lit).(color.NRGBA))
	t.dark = t.palette.Block(color.NRGBAModel.Convert(o.Dark).(color.NRGBA))
	return t
}

func (t *Terminal) String() string {
	return "Terminal"
}

// Halt resets the terminal colors so it is not corrupted.
func (t *Terminal) Halt() error {
	_, err := t.w.Write([]byte("\n\033[0m"))
	return err
}

// Render writes img, one line of text per row of pixels.
func (t *Terminal) Render(img image.Image) error {
	// This code is designed to minimize the amount of memory allocated per call.
	t.buf.Reset()
	if t.redraw && t.lines != 0 {
		fmt.Fprintf(&t.buf, "\033[%dA", t.lines)
	}
	r := img.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		_, _ = t.buf.WriteString("\r\033[0m")
		for x := r.Min.X; x < r.Max.X; x++ {
			if isLit(img.At(x, y)) {
				_, _ = t.buf.WriteString(t.lit)
			} else {
				_, _ = t.buf.WriteString(t.dark)
			}
		}
		_, _ = t.buf.WriteString("\033[0m\n")
	}
	t.lines = r.Dy()
	_, err := t.buf.WriteTo(t.w)
	return err
}

func isLit(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return (r | g | b) >= 0x8000
}
