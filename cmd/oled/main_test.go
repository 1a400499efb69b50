// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/GermanBionicSystems/oled/ssd1306"
	"github.com/GermanBionicSystems/oled/ssd1306/ssd1306emu"
	"github.com/google/go-cmp/cmp"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func lit(img image.Image, x, y int) bool {
	return image1bit.BitModel.Convert(img.At(x, y)).(image1bit.Bit) == image1bit.On
}

func TestShapes(t *testing.T) {
	img := shapes(image.Rect(0, 0, 128, 32))
	if img.Bounds() != image.Rect(0, 0, 128, 32) {
		t.Fatal(img.Bounds())
	}
	if !lit(img, 16, 16) {
		t.Fatal("the circle must be filled")
	}
	if !lit(img, 0, 16) || !lit(img, 64, 0) {
		t.Fatal("the border must be drawn")
	}
	if lit(img, 100, 4) {
		t.Fatal("expected a dark pixel")
	}
}

// writeHalf writes a w x h PNG whose left half is white.
func writeHalf(t *testing.T, w, h int) string {
	t.Helper()
	src := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w/2; x++ {
			src.SetGray(x, y, color.Gray{Y: 0xFF})
		}
	}
	path := filepath.Join(t.TempDir(), "half.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadImage(t *testing.T) {
	for _, tc := range []struct {
		name string
		w, h int
	}{
		{"enlarge", 64, 16},
		{"shrink", 256, 64},
		{"same", 128, 32},
	} {
		t.Run(tc.name, func(t *testing.T) {
			img, err := loadImage(writeHalf(t, tc.w, tc.h), image.Rect(0, 0, 128, 32))
			if err != nil {
				t.Fatal(err)
			}
			if img.Bounds() != image.Rect(0, 0, 128, 32) {
				t.Fatal(img.Bounds())
			}
			if !lit(img, 10, 16) || !lit(img, 50, 2) || lit(img, 120, 16) || lit(img, 80, 30) {
				t.Fatal("the image must cover the whole panel")
			}
		})
	}
}

func TestLoadImage_Missing(t *testing.T) {
	if _, err := loadImage(filepath.Join(t.TempDir(), "missing.png"), image.Rect(0, 0, 128, 32)); err == nil {
		t.Fatal("expected an error")
	}
}

func TestFitSize(t *testing.T) {
	for _, tc := range []struct {
		src, dst image.Point
		w, h     int
	}{
		{image.Pt(64, 16), image.Pt(128, 32), 128, 32},
		{image.Pt(10, 10), image.Pt(128, 32), 32, 32},
		{image.Pt(40, 5), image.Pt(128, 32), 128, 16},
		{image.Pt(1, 100), image.Pt(128, 32), 1, 32},
	} {
		if w, h := fitSize(tc.src, tc.dst); w != tc.w || h != tc.h {
			t.Fatalf("fitSize(%s, %s) = %d, %d; want %d, %d", tc.src, tc.dst, w, h, tc.w, tc.h)
		}
	}
}

func TestSequence(t *testing.T) {
	for _, tc := range []struct {
		mode, path string
		want       []string
		draws      bool
	}{
		{"test", "", []string{"test"}, false},
		{"clear", "", []string{"clear"}, false},
		{"shapes", "", []string{"shapes"}, true},
		{"image", "a.png", []string{"image"}, true},
		{"all", "", []string{"test", "shapes", "clear"}, true},
		{"all", "a.png", []string{"test", "shapes", "image", "clear"}, true},
	} {
		got := sequence(tc.mode, tc.path)
		if diff := cmp.Diff(got, tc.want); diff != "" {
			t.Fatalf("sequence(%q, %q) difference (-got +want):\n%s", tc.mode, tc.path, diff)
		}
		if draws(got) != tc.draws {
			t.Fatalf("draws(%v) = %t", got, !tc.draws)
		}
	}
}

func TestShow(t *testing.T) {
	c := ssd1306emu.New(nil)
	opts := ssd1306.DefaultOpts
	opts.Addressing = ssd1306.Horizontal
	dev, err := ssd1306.New(c, &opts)
	if err != nil {
		t.Fatal(err)
	}
	if err := dev.Init(); err != nil {
		t.Fatal(err)
	}
	for _, m := range sequence("all", "") {
		if err := show(dev, m, ""); err != nil {
			t.Fatalf("%s: %v", m, err)
		}
	}
	// clear is last.
	if lit(c.Image(), 16, 16) {
		t.Fatal("the panel must be cleared")
	}
	if err := show(dev, "shapes", ""); err != nil {
		t.Fatal(err)
	}
	if !lit(c.Image(), 16, 16) {
		t.Fatal("the circle must reach the panel")
	}
	if err := show(dev, "image", ""); err == nil {
		t.Fatal("image mode requires a path")
	}
	if err := show(dev, "bogus", ""); err == nil {
		t.Fatal("expected an error")
	}
}

func TestShow_Vertical(t *testing.T) {
	c := ssd1306emu.New(nil)
	dev, err := ssd1306.New(c, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := dev.Init(); err != nil {
		t.Fatal(err)
	}
	if err := show(dev, "test", ""); err != nil {
		t.Fatal(err)
	}
	if err := show(dev, "shapes", ""); err == nil {
		t.Fatal("shapes needs horizontal addressing")
	}
}
