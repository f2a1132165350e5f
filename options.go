// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

package schemats

// Options configures one conversion. The zero value renders `any` spellings and type aliases.
type Options struct {
	// PreferUnknownOverAny prints unconstrained values as `unknown` instead of `any`.
	PreferUnknownOverAny bool
	// PreferInterfaceOverType emits `export interface` for a single plain object declaration.
	PreferInterfaceOverType bool
	// CommentWrapWidth wraps property description lines at this rune width; 0 disables wrapping.
	CommentWrapWidth int
	// Diagnostics receives non-fatal notes about unmodeled schema shapes. Nil discards them.
	Diagnostics DiagnosticHandler
}

// anySpelling returns the display name for unconstrained values.
func (opt Options) anySpelling() string {
	if opt.PreferUnknownOverAny {
		return "unknown"
	}

	return "any"
}

// normalizeCommentWrapWidth drops negative widths.
func normalizeCommentWrapWidth(value int) int {
	if value < 0 {
		return 0
	}

	return value
}
