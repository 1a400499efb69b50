// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306test is meant to be used to test code using a
// ssd1306.Transport without hardware.
package ssd1306test

import (
	"context"
	"sync"

	"github.com/GermanBionicSystems/oled/ssd1306"
	"periph.io/x/conn/v3/physic"
)

// Record implements ssd1306.Transport that records every frame.
//
// When Transport is set, frames are forwarded to it once recorded.
type Record struct {
	sync.Mutex
	Transport ssd1306.Transport
	// Frames lists every frame passed to Tx, including the failed ones.
	Frames []ssd1306.Frame
	// Speeds lists every Configure call.
	Speeds []physic.Frequency
	// FailTx maps the index of a Tx call to the bus error it returns.
	FailTx map[int]error
	// FailConfigure is the bus error returned by Configure.
	FailConfigure error
}

func (r *Record) String() string {
	return "record"
}

// Configure implements ssd1306.Transport.
func (r *Record) Configure(speed physic.Frequency) error {
	r.Lock()
	defer r.Unlock()
	r.Speeds = append(r.Speeds, speed)
	if r.FailConfigure != nil {
		return &ssd1306.TransportError{Op: "configure", Err: r.FailConfigure}
	}
	if r.Transport != nil {
		return r.Transport.Configure(speed)
	}
	return nil
}

// Tx implements ssd1306.Transport.
//
// The frame is copied.
func (r *Record) Tx(ctx context.Context, f ssd1306.Frame) error {
	r.Lock()
	defer r.Unlock()
	i := len(r.Frames)
	r.Frames = append(r.Frames, append(ssd1306.Frame(nil), f...))
	if err := r.FailTx[i]; err != nil {
		return &ssd1306.TransportError{Op: "tx", Addr: f.Addr(), Err: err}
	}
	if r.Transport != nil {
		return r.Transport.Tx(ctx, f)
	}
	return nil
}

// Commands returns the payloads of the recorded command frames.
func (r *Record) Commands() [][]byte {
	return r.payloads(true)
}

// Data returns the payloads of the recorded data frames.
func (r *Record) Data() [][]byte {
	return r.payloads(false)
}

func (r *Record) payloads(isCommand bool) [][]byte {
	r.Lock()
	defer r.Unlock()
	var out [][]byte
	for _, f := range r.Frames {
		if f.IsCommand() == isCommand {
			out = append(out, f.Payload())
		}
	}
	return out
}

// Reset forgets the recorded frames and speeds.
func (r *Record) Reset() {
	r.Lock()
	defer r.Unlock()
	r.Frames = nil
	r.Speeds = nil
}

var _ ssd1306.Transport = &Record{}
