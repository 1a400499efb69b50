// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306_test

import (
	"fmt"
	"image"
	"image/draw"
	"log"
	"time"

	"github.com/GermanBionicSystems/oled/ssd1306"
	"github.com/GermanBionicSystems/oled/ssd1306/ssd1306emu"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg I²C bus registry to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	// Horizontal addressing lets Draw() show images as drawn.
	opts := ssd1306.DefaultOpts
	opts.Addressing = ssd1306.Horizontal
	dev, err := ssd1306.NewI2C(b, &opts)
	if err != nil {
		log.Fatalf("failed to initialize display: %v", err)
	}
	if err := dev.Init(); err != nil {
		log.Fatal(err)
	}
	defer dev.Halt()

	dev.TestPattern()
	if err := dev.Update(); err != nil {
		log.Fatal(err)
	}
	time.Sleep(5 * time.Second)

	// Draw a frame around the screen.
	img := image1bit.NewVerticalLSB(dev.Bounds())
	on := &image.Uniform{image1bit.On}
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, 128, 1),
		image.Rect(0, 31, 128, 32),
		image.Rect(0, 0, 1, 32),
		image.Rect(127, 0, 128, 32),
	} {
		draw.Draw(img, r, on, image.Point{}, draw.Src)
	}
	if err := dev.Draw(dev.Bounds(), img, image.Point{}); err != nil {
		log.Fatal(err)
	}
}

func ExampleNew() {
	// Run the driver against the emulated controller.
	c := ssd1306emu.New(nil)
	dev, err := ssd1306.New(c, nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := dev.Init(); err != nil {
		log.Fatal(err)
	}
	dev.TestPattern()
	if err := dev.Update(); err != nil {
		log.Fatal(err)
	}
	fmt.Println(dev)
	fmt.Println(c.On())
	// Output:
	// ssd1306.Dev{ssd1306emu, 0x3C, (128,32)}
	// true
}
