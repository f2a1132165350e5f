// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

package openapi

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
)

// Output is the conversion report for one document.
type Output struct {
	Title      string            `json:"-"`
	Paths      []PathOutput      `json:"paths"`
	Components []ComponentOutput `json:"components"`
}

// PathOutput holds the rendered declarations of one operation.
// Absent declarations are empty strings.
type PathOutput struct {
	Path        string                    `json:"path"`
	Method      string                    `json:"method"`
	TypeName    string                    `json:"typeName,omitempty"`
	OperationID string                    `json:"operationId,omitempty"`
	Summary     string                    `json:"summary,omitempty"`
	Description string                    `json:"description,omitempty"`
	QueryTsType string                    `json:"queryTsType,omitempty"`
	PathTsType  string                    `json:"pathTsType,omitempty"`
	RequestBody string                    `json:"requestBody,omitempty"`
	Responses   map[string]ResponseOutput `json:"responses"`

	// responseOrder keeps document order of Responses keys.
	responseOrder []string
}

// ResponseOutput is one rendered response declaration.
type ResponseOutput struct {
	Description string `json:"description"`
	TsType      string `json:"tsType"`
}

// ComponentOutput is one rendered named component.
type ComponentOutput struct {
	Name   string `json:"name"`
	TsType string `json:"tsType"`
}

// JSON encodes the report as indented JSON without HTML escaping.
func (o *Output) JSON() ([]byte, error) {
	var out bytes.Buffer

	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(o); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeOutput, err)
	}

	return out.Bytes(), nil
}

// TypeScriptFile renders a TypeScript module with a template text loaded from path.
func (o *Output) TypeScriptFile(path string, opt BundleOptions) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadTemplateFile, err)
	}

	opt.TemplateText = string(data)
	return o.TypeScript(opt)
}

// TypeScript renders every declaration of the report into one TypeScript module.
func (o *Output) TypeScript(opt BundleOptions) (string, error) {
	moduleTemplate, err := resolveTemplate(opt)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := moduleTemplate.Execute(&out, buildBundleView(o, opt)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteTemplate, err)
	}

	return ensureTrailingNewline(normalizeModuleOutput(out.String())), nil
}

// orderedStatuses returns response keys in document order, falling back to sorted keys.
func (p PathOutput) orderedStatuses() []string {
	if len(p.responseOrder) == len(p.Responses) {
		return p.responseOrder
	}

	return sortedKeys(p.Responses)
}
