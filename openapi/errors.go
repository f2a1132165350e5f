// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

package openapi

import (
	"errors"
	"fmt"
)

var (
	// ErrReadDocumentFile is returned when document file loading fails.
	ErrReadDocumentFile = errors.New("read document file")
	// ErrDecodeDocument is returned when document JSON or YAML decoding fails.
	ErrDecodeDocument = errors.New("decode document")
	// ErrDocumentVersion is returned when neither `openapi` nor `swagger` is declared.
	ErrDocumentVersion = errors.New("document declares neither openapi nor swagger version")
	// ErrDocumentShape is returned when a document field has an unexpected node type.
	ErrDocumentShape = errors.New("unexpected document shape")
	// ErrUnsupportedReference is returned for a reference where an inline item is required.
	ErrUnsupportedReference = errors.New("reference not supported here")
	// ErrEncodeOutput is returned when output report encoding fails.
	ErrEncodeOutput = errors.New("encode output")
	// ErrUnknownBuiltinTemplate is returned for unknown built-in template names.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadBuiltinTemplate is returned when embedded template loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrReadTemplateFile is returned when custom template file loading fails.
	ErrReadTemplateFile = errors.New("read template file")
	// ErrParseTemplate is returned when template text parsing fails.
	ErrParseTemplate = errors.New("parse template")
	// ErrExecuteTemplate is returned when template execution fails.
	ErrExecuteTemplate = errors.New("execute template")
)

// PathError reports a path item that could not be converted.
// The rest of the document is still converted.
type PathError struct {
	// Path is the path template, for example `/pets/{petId}`.
	Path string
	// Method is the lower-case operation method; empty for path-level failures.
	Method string
	// Ref is the offending reference, if any.
	Ref string
	// Err is the underlying sentinel error.
	Err error
}

// Error implements error.
func (e *PathError) Error() string {
	location := e.Path
	if e.Method != "" {
		location = e.Method + " " + e.Path
	}

	if e.Ref != "" {
		return fmt.Sprintf("%s: %v: %s", location, e.Err, e.Ref)
	}

	return fmt.Sprintf("%s: %v", location, e.Err)
}

// Unwrap returns the underlying error.
func (e *PathError) Unwrap() error {
	return e.Err
}
