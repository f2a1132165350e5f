// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

package schemats

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// commentLines splits a description into comment body lines.
// Leading and trailing blank lines are dropped and `*/` is escaped.
func commentLines(description string, wrapWidth int) []string {
	description = strings.TrimSpace(normalizeLineEndings(description))
	if description == "" {
		return nil
	}

	raw := strings.Split(description, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.ReplaceAll(strings.TrimRight(line, " \t"), "*/", `*\/`)
		if wrapWidth <= 0 || strings.TrimSpace(line) == "" {
			out = append(out, line)
			continue
		}

		out = append(out, wrapParagraph(line, wrapWidth)...)
	}

	return out
}

// wrapParagraph wraps one plain paragraph to max rune width.
func wrapParagraph(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	out := make([]string, 0, 2)
	current := words[0]
	currentLen := utf8.RuneCountInString(current)

	for _, word := range words[1:] {
		wordLen := utf8.RuneCountInString(word)
		if currentLen+1+wordLen <= width {
			current += " " + word
			currentLen += 1 + wordLen
			continue
		}

		out = append(out, current)
		current = word
		currentLen = wordLen
	}

	out = append(out, current)
	return out
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// quoteString renders a double-quoted string literal.
func quoteString(value string) string {
	var out strings.Builder
	out.Grow(len(value) + 2)
	out.WriteByte('"')

	for _, r := range value {
		switch r {
		case '\\':
			out.WriteString(`\\`)
		case '"':
			out.WriteString(`\"`)
		case '\n':
			out.WriteString(`\n`)
		case '\r':
			out.WriteString(`\r`)
		case '\t':
			out.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x2028 || r == 0x2029 {
				fmt.Fprintf(&out, `\u%04x`, r)
				continue
			}

			out.WriteRune(r)
		}
	}

	out.WriteByte('"')
	return out.String()
}

// propertyKey returns name as is when it is a valid identifier, quoted otherwise.
func propertyKey(name string) string {
	if isIdentifier(name) {
		return name
	}

	return quoteString(name)
}

// isIdentifier reports whether name can be used as a bare property key.
func isIdentifier(name string) bool {
	if name == "" {
		return false
	}

	for index, r := range name {
		switch {
		case r == '_' || r == '$':
		case unicode.IsLetter(r):
		case index > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}

	return true
}
