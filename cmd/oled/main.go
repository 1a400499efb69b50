// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// oled brings up a 0.91" SSD1306 panel over I²C and draws on it.
//
// With -emulate, frames are sent to an emulated controller and the panel is
// rendered in the terminal instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"time"

	"github.com/GermanBionicSystems/oled/ssd1306"
	"github.com/GermanBionicSystems/oled/ssd1306/ssd1306emu"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/makeworld-the-better-one/dither"
	"github.com/mattn/go-isatty"
	"golang.org/x/image/draw"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func main() {
	if err := mainImpl(); err != nil {
		log.Fatal(err)
	}
}

func mainImpl() error {
	busName := flag.String("bus", "", "I²C bus to use")
	addr := flag.Uint("addr", uint(ssd1306.DefaultOpts.Addr), "I²C address of the display")
	speed := ssd1306.DefaultOpts.Speed
	flag.Var(&speed, "hz", "I²C bus speed; 0 keeps the current bus speed")
	timeout := flag.Duration("timeout", ssd1306.DefaultOpts.Timeout, "timeout of each bus transaction")
	contrast := flag.Uint("contrast", uint(ssd1306.DefaultOpts.Contrast), "contrast, 0 to 255")
	h := flag.Int("h", ssd1306.DefaultOpts.H, "display height in pixels, 32 or 64")
	alt := flag.Bool("alt", false, "alternative COM pins configuration, for most 128x64 panels")
	horizontal := flag.Bool("horizontal", false, "use horizontal addressing so the framebuffer lands on the panel as drawn; implied by shapes, image and all")
	mode := flag.String("mode", "test", "one of test, shapes, image, clear or all; all skips image unless -image is set")
	path := flag.String("image", "", "image to display in image mode")
	hold := flag.Duration("hold", 2*time.Second, "how long each frame is shown")
	emulate := flag.Bool("emulate", false, "render to an emulated controller in the terminal")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}
	if *addr > 0x7F {
		return fmt.Errorf("invalid address 0x%X", *addr)
	}
	if *contrast > 0xFF {
		return fmt.Errorf("invalid contrast %d", *contrast)
	}

	opts := ssd1306.DefaultOpts
	opts.H = *h
	opts.Addr = uint16(*addr)
	opts.Speed = speed
	opts.Timeout = *timeout
	opts.Contrast = byte(*contrast)
	opts.Alternative = *alt
	run := sequence(*mode, *path)
	if *horizontal || draws(run) {
		// Dev.Draw refuses vertical addressing.
		opts.Addressing = ssd1306.Horizontal
	}

	var t ssd1306.Transport
	var emu *ssd1306emu.Controller
	if *emulate {
		emu = ssd1306emu.New(&ssd1306emu.Opts{W: opts.W, H: opts.H, Addr: opts.Addr})
		t = emu
	} else {
		if _, err := host.Init(); err != nil {
			return err
		}
		b, err := i2creg.Open(*busName)
		if err != nil {
			return err
		}
		defer b.Close()
		t = ssd1306.NewI2CTransport(b)
	}
	dev, err := ssd1306.New(t, &opts)
	if err != nil {
		return err
	}
	log.Printf("using %s", dev)

	if err := dev.Init(); err != nil {
		return err
	}
	defer dev.Halt()

	var term *ssd1306emu.Terminal
	if emu != nil {
		term = ssd1306emu.NewTerminal(&ssd1306emu.TerminalOpts{Redraw: isatty.IsTerminal(os.Stdout.Fd())})
		defer term.Halt()
	}

	for i, m := range run {
		if i != 0 {
			time.Sleep(*hold)
		}
		start := time.Now()
		if err := show(dev, m, *path); err != nil {
			return err
		}
		log.Printf("%s: updated in %s", m, time.Since(start))
		if term != nil {
			if err := term.Render(emu.Image()); err != nil {
				return err
			}
		}
	}
	time.Sleep(*hold)
	return nil
}

// sequence returns the modes to show in order.
func sequence(mode, path string) []string {
	if mode != "all" {
		return []string{mode}
	}
	if path == "" {
		return []string{"test", "shapes", "clear"}
	}
	return []string{"test", "shapes", "image", "clear"}
}

// draws reports if one of the modes goes through Dev.Draw.
func draws(modes []string) bool {
	for _, m := range modes {
		if m == "shapes" || m == "image" {
			return true
		}
	}
	return false
}

// show draws one frame according to mode.
func show(dev *ssd1306.Dev, mode, path string) error {
	switch mode {
	case "test":
		dev.TestPattern()
		return dev.Update()
	case "shapes":
		return dev.Draw(dev.Bounds(), shapes(dev.Bounds()), image.Point{})
	case "image":
		if path == "" {
			return errors.New("-image is required in image mode")
		}
		img, err := loadImage(path, dev.Bounds())
		if err != nil {
			return err
		}
		return dev.Draw(dev.Bounds(), img, image.Point{})
	case "clear":
		dev.Clear()
		return dev.Update()
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}

// shapes draws a border, a filled circle and a diagonal.
func shapes(r image.Rectangle) image.Image {
	w, h := float64(r.Dx()), float64(r.Dy())
	dc := gg.NewContext(r.Dx(), r.Dy())
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(1)
	dc.DrawRectangle(0.5, 0.5, w-1, h-1)
	dc.Stroke()
	dc.DrawCircle(h/2, h/2, h/2-4)
	dc.Fill()
	dc.DrawLine(h+8, 4, w-4, h-4)
	dc.Stroke()
	return dc.Image()
}

// loadImage scales the image at path to fit r, keeping its aspect ratio, and
// dithers it to black and white.
func loadImage(path string, r image.Rectangle) (image.Image, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%s: empty image", path)
	}
	var fit image.Image
	if b.Dx() > r.Dx() || b.Dy() > r.Dy() {
		fit = imaging.Fit(src, r.Dx(), r.Dy(), imaging.Lanczos)
	} else {
		// imaging.Fit never enlarges.
		w, h := fitSize(b.Size(), r.Size())
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
		fit = dst
	}
	img := imaging.PasteCenter(imaging.New(r.Dx(), r.Dy(), color.Black), fit)
	d := dither.NewDitherer([]color.Color{color.Black, color.White})
	d.Matrix = dither.FloydSteinberg
	if p := d.DitherPaletted(img); p != nil {
		return p, nil
	}
	return img, nil
}

// fitSize returns the largest size with the aspect ratio of src that fits in
// dst.
func fitSize(src, dst image.Point) (int, int) {
	if src.X*dst.Y <= src.Y*dst.X {
		return max1(src.X * dst.Y / src.Y), dst.Y
	}
	return dst.X, max1(src.Y * dst.X / src.X)
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
