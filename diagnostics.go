// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

package schemats

import (
	"log/slog"
	"strings"
)

// Diagnostic describes a schema node that was converted with a fallback type.
type Diagnostic struct {
	// Declaration is the name of the declaration being built.
	Declaration string
	// Pointer is a JSON pointer to the node, relative to the converted schema root.
	Pointer string
	// Message is a short human readable note.
	Message string
	// Keywords lists the schema keywords that could not be modeled.
	Keywords []string
}

// DiagnosticHandler receives builder diagnostics.
//
// Handlers are called synchronously from the conversion goroutine.
type DiagnosticHandler func(Diagnostic)

// LogDiagnostics returns a handler that writes each diagnostic as a slog warning.
// If logger is nil, slog.Default() is used.
//
//	handler := slog.NewTextHandler(os.Stderr, nil)
//	opt := schemats.Options{Diagnostics: schemats.LogDiagnostics(slog.New(handler))}
func LogDiagnostics(logger *slog.Logger) DiagnosticHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return func(d Diagnostic) {
		attrs := []any{"declaration", d.Declaration, "pointer", pointerOrRoot(d.Pointer)}
		if len(d.Keywords) > 0 {
			attrs = append(attrs, "keywords", strings.Join(d.Keywords, ","))
		}

		logger.Warn(d.Message, attrs...)
	}
}

// WithPointerPrefix returns a handler that prepends prefix to every diagnostic pointer.
// It is used by callers that convert schemas nested in a larger document.
func WithPointerPrefix(handler DiagnosticHandler, prefix string) DiagnosticHandler {
	if handler == nil {
		return nil
	}

	prefix = strings.TrimRight(prefix, "/")
	return func(d Diagnostic) {
		d.Pointer = prefix + d.Pointer
		handler(d)
	}
}

// pointerOrRoot renders the empty pointer as "/" for log readability.
func pointerOrRoot(pointer string) string {
	if pointer == "" {
		return "/"
	}

	return pointer
}
