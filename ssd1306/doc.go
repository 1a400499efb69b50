// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306 controls a 128x32 monochrome OLED display driven by a
// SSD1306 controller over I²C.
//
// The driver keeps the whole picture in a W*H/8 bytes buffer, in the native
// page layout of the controller: each byte is 8 vertical pixels, LSB at the
// top, and the buffer is H/8 horizontal bands of W bytes. Update() sends the
// full buffer every time; there is no differential update.
//
// Every interaction with the controller is one I²C write transaction, a
// Frame: the device address, a control byte telling whether the payload is a
// stream of commands (0x00) or of display data (0x40), then the payload.
// Frames go through a Transport, so the driver can run against a real bus
// (NewI2C), the ssd1306emu emulator or the ssd1306test recorder.
//
// # Lifecycle
//
// New() only allocates. Init() sets the bus clock and sends the power-on
// sequence; Update() and the other methods talking to the controller return
// a *NotInitializedError until Init() succeeded. Bus failures are returned as
// *TransportError and are never retried.
//
// # Datasheets
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
//
// "DM-OLED096-624": https://drive.google.com/file/d/0B5lkVYnewKTGaEVENlYwbDkxSGM/view
package ssd1306
