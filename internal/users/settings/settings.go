// Copyright (c) 2026 Chitalka. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package settings manages per-user reader preferences: screen brightness
// and font size. Every account owns exactly one settings row, created at
// registration with the defaults below.
package settings

// Reader preference defaults applied at registration.
const (
	DefaultPercent = 50
	DefaultSize    = 16
)

// Settings holds one user's reader preferences. Percent is the screen
// brightness in [0, 100]; Size is the font size.
type Settings struct {
	UserID  string `json:"-"`
	Percent int    `json:"percent"`
	Size    int    `json:"size"`
}

// Global field names for validation
const (
	FieldPercent = "percent"
	FieldSize    = "size"
)
