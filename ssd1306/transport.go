// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"context"
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Transport performs write transactions on the bus the controller is
// connected to.
//
// Implementations must not interleave two frames.
type Transport interface {
	fmt.Stringer
	// Configure sets the bus clock.
	Configure(speed physic.Frequency) error
	// Tx writes f as one transaction, from start to stop condition. It blocks
	// until the transaction completes or ctx is done.
	Tx(ctx context.Context, f Frame) error
}

// I2C is a Transport over a periph I²C bus.
type I2C struct {
	b i2c.Bus
	// sem is held from the start of a transaction until the bus returns, even
	// when the caller gave up waiting.
	sem chan struct{}
}

// NewI2CTransport returns a Transport writing frames on b.
func NewI2CTransport(b i2c.Bus) *I2C {
	return &I2C{b: b, sem: make(chan struct{}, 1)}
}

func (t *I2C) String() string {
	return t.b.String()
}

// Configure implements Transport.
//
// Maximum clock speed is 1/2.5µs = 400KHz.
func (t *I2C) Configure(speed physic.Frequency) error {
	if err := t.b.SetSpeed(speed); err != nil {
		return &TransportError{Op: "configure", Err: err}
	}
	return nil
}

// Tx implements Transport.
//
// The address byte of f is consumed by the bus driver, which generates the
// start condition, the address phase and the stop condition.
func (t *I2C) Tx(ctx context.Context, f Frame) error {
	addr := f.Addr()
	if len(f) < 2 {
		return &TransportError{Op: "tx", Addr: addr, Err: fmt.Errorf("frame too short (%d bytes)", len(f))}
	}
	if ctx.Err() != nil {
		return &TransportError{Op: "tx", Addr: addr, Err: ErrTimeout}
	}
	select {
	case t.sem <- struct{}{}:
	case <-ctx.Done():
		return &TransportError{Op: "tx", Addr: addr, Err: ErrTimeout}
	}
	done := make(chan error, 1)
	go func() {
		err := t.b.Tx(addr, f[1:], nil)
		<-t.sem
		done <- err
	}()
	select {
	case err := <-done:
		if err != nil {
			return &TransportError{Op: "tx", Addr: addr, Err: err}
		}
		return nil
	case <-ctx.Done():
		return &TransportError{Op: "tx", Addr: addr, Err: ErrTimeout}
	}
}

var _ Transport = &I2C{}
