// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"errors"
	"fmt"
)

// ErrTimeout is wrapped by a TransportError when the bus transaction did not
// complete before its deadline.
var ErrTimeout = errors.New("bus transaction timed out")

// TransportError is a bus level failure: timeout, NACK, arbitration loss or
// a bus configuration failure.
//
// It is created by a Transport and returned unchanged by Dev.
type TransportError struct {
	// Op is "configure" or "tx".
	Op   string
	Addr uint16
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s 0x%02X: %v", _SSD1306, e.Op, e.Addr, e.Err)
}

// Unwrap returns the underlying bus error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// NotInitializedError is returned when an operation requiring a configured
// controller is called before a successful Init().
type NotInitializedError struct {
	Op string
}

func (e *NotInitializedError) Error() string {
	return fmt.Sprintf("%s: %s called before Init", _SSD1306, e.Op)
}
