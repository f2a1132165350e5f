// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

package openapi

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Declaration name suffixes.
const (
	SuffixQuery    = "Query"
	SuffixPath     = "Path"
	SuffixBody     = "Body"
	SuffixResponse = "Response"
)

// OperationName returns the declaration name prefix for one operation:
// the capitalized method followed by every capitalized path segment piece.
//
//	OperationName("get", "/pets/{petId}/owner-info") // GetPetsPetIdOwnerInfo
func OperationName(method, path string) string {
	titleCaser := cases.Title(language.English, cases.NoLower)

	var out strings.Builder
	out.Grow(len(method) + len(path))
	out.WriteString(titleCaser.String(strings.ToLower(method)))

	for _, segment := range strings.Split(path, "/") {
		segment = strings.NewReplacer("{", "", "}", "").Replace(segment)
		for _, piece := range strings.FieldsFunc(segment, isNameSeparator) {
			out.WriteString(titleCaser.String(piece))
		}
	}

	return out.String()
}

// statusName converts a response status key into an identifier fragment.
func statusName(status string) string {
	titleCaser := cases.Title(language.English, cases.NoLower)

	var out strings.Builder
	for _, piece := range strings.FieldsFunc(status, isNameSeparator) {
		out.WriteString(titleCaser.String(piece))
	}

	return out.String()
}

// isNameSeparator reports whether r splits name pieces.
func isNameSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
