//go:build headless

package main

import "sortviz/hal"

// Built with -tags headless: no ebiten, so the binary runs on machines
// without a display. Only --headless works.
var windowRunner hal.WindowRunner
