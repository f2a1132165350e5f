// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

package openapi

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"
)

const (
	templateModuleName     = "module"
	templateComponentsName = "components"

	// defaultTemplateName is used when caller does not provide template name.
	defaultTemplateName = templateModuleName
)

// templateFS stores built-in module templates embedded into the package.
//
//go:embed templates/*.ts.gotmpl
var templateFS embed.FS

// builtInTemplateFiles maps template aliases to embedded file paths.
var builtInTemplateFiles = map[string]string{
	templateModuleName:     "templates/module.ts.gotmpl",
	templateComponentsName: "templates/components.ts.gotmpl",
}

// BundleOptions configures TypeScript module rendering.
type BundleOptions struct {
	// Title is printed in the module header; the document title is used when empty.
	Title string
	// Source is the document path printed in the module header.
	Source string
	// TemplateName selects a built-in template ("module" or "components").
	TemplateName string
	// TemplateText overrides the built-in template.
	TemplateText string
}

// BuiltinTemplateNames returns all available built-in template names.
func BuiltinTemplateNames() []string {
	return sortedKeys(builtInTemplateFiles)
}

// BuiltinTemplate returns one built-in template by name.
func BuiltinTemplate(name string) (string, error) {
	name = normalizeTemplateName(name)
	path, ok := builtInTemplateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadBuiltinTemplate, err)
	}

	return string(data), nil
}

// resolveTemplate resolves either custom or built-in template text into a parsed template.
func resolveTemplate(opt BundleOptions) (*template.Template, error) {
	templateText := strings.TrimSpace(opt.TemplateText)
	if templateText != "" {
		parsed, err := template.New("custom").Funcs(templateFuncs()).Parse(templateText)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseTemplate, err)
		}

		return parsed, nil
	}

	templateName := normalizeTemplateName(opt.TemplateName)
	if templateName == "" {
		templateName = defaultTemplateName
	}

	templateText, err := BuiltinTemplate(templateName)
	if err != nil {
		return nil, err
	}

	parsed, err := template.New(templateName).Funcs(templateFuncs()).Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParseTemplate, templateName, err)
	}

	return parsed, nil
}

// normalizeTemplateName normalizes built-in template identifiers.
func normalizeTemplateName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// templateFuncs provides utility functions available inside module templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"comment": lineComment,
		"upper":   strings.ToUpper,
	}
}

// lineComment flattens text into one line that is safe inside a `//` comment.
func lineComment(text string) string {
	return sanitizeText(text)
}

// sanitizeText trims and squashes repeated whitespace in plain text fields.
func sanitizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	return strings.Join(strings.Fields(text), " ")
}

// normalizeModuleOutput trims trailing spaces and collapses repeated blank lines.
func normalizeModuleOutput(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	blankCount := 0
	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, " \t")
		if line == "" {
			if blankCount == 0 && len(out) > 0 {
				out = append(out, "")
			}

			blankCount++
			continue
		}

		blankCount = 0
		out = append(out, line)
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRight(value, "\n")
	return value + "\n"
}

// sortedKeys returns map keys in ascending order.
func sortedKeys[V any](values map[string]V) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)
	return keys
}
