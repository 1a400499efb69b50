// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetInitCmd(t *testing.T) {
	for _, tc := range []struct {
		name string
		opts func(o *Opts)
		want []byte
	}{
		{
			name: "default",
			opts: func(o *Opts) {},
			want: []byte{0xAE, 0xA8, 0x1F, 0x40, 0xA1, 0xC8, 0xDA, 0x02, 0x20, 0x01, 0x81, 0x7F, 0x8D, 0x14, 0xAF},
		},
		{
			name: "128x64 alternative",
			opts: func(o *Opts) {
				o.H = 64
				o.Alternative = true
			},
			want: []byte{0xAE, 0xA8, 0x3F, 0x40, 0xA1, 0xC8, 0xDA, 0x12, 0x20, 0x01, 0x81, 0x7F, 0x8D, 0x14, 0xAF},
		},
		{
			name: "horizontal addressing",
			opts: func(o *Opts) { o.Addressing = Horizontal },
			want: []byte{0xAE, 0xA8, 0x1F, 0x40, 0xA1, 0xC8, 0xDA, 0x02, 0x20, 0x00, 0x81, 0x7F, 0x8D, 0x14, 0xAF},
		},
		{
			name: "mirrored",
			opts: func(o *Opts) {
				o.MirrorHorizontal = true
				o.MirrorVertical = true
				o.Contrast = 0xFF
			},
			want: []byte{0xAE, 0xA8, 0x1F, 0x40, 0xA0, 0xC0, 0xDA, 0x02, 0x20, 0x01, 0x81, 0xFF, 0x8D, 0x14, 0xAF},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOpts
			tc.opts(&opts)
			if diff := cmp.Diff(getInitCmd(&opts), tc.want); diff != "" {
				t.Fatalf("getInitCmd() difference (-got +want):\n%s", diff)
			}
		})
	}
}

func TestGetInitCmd_Fresh(t *testing.T) {
	opts := DefaultOpts
	a := getInitCmd(&opts)
	a[0] = 0
	if b := getInitCmd(&opts); b[0] != _DISPLAYOFF {
		t.Fatal("the init sequence must not be shared")
	}
}

func TestGetWindowCmd(t *testing.T) {
	if diff := cmp.Diff(getWindowCmd(128, 32), []byte{0x21, 0x00, 0x7F, 0x22, 0x00, 0x03}); diff != "" {
		t.Fatalf("getWindowCmd() difference (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(getWindowCmd(64, 48), []byte{0x21, 0x00, 0x3F, 0x22, 0x00, 0x05}); diff != "" {
		t.Fatalf("getWindowCmd() difference (-got +want):\n%s", diff)
	}
}

func TestAddressing_String(t *testing.T) {
	for a, want := range map[Addressing]string{
		Vertical:       "Vertical",
		Horizontal:     "Horizontal",
		Addressing(42): "Addressing(42)",
	} {
		if s := a.String(); s != want {
			t.Fatalf("%d: %q != %q", int(a), s, want)
		}
	}
}
