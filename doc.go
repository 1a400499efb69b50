// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package oled is a container for a 128x32 SSD1306 OLED driver and the tools
// that go with it.
//
// The driver itself lives in ssd1306. ssd1306/ssd1306emu emulates the
// controller for development without hardware and cmd/oled exercises both.
package oled
