//go:build !headless

package main

import "sortviz/hal/window"

var windowRunner = window.Run
