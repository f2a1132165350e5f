// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

package openapi

import (
	"strings"
)

// declarationView is one rendered declaration placed into a module.
type declarationView struct {
	Name string
	Text string
}

// operationView groups declarations of one operation.
type operationView struct {
	Method       string
	Path         string
	OperationID  string
	Summary      string
	Declarations []declarationView
}

// bundleView is the data passed to module templates.
type bundleView struct {
	Title      string
	Source     string
	Components []declarationView
	Operations []operationView
	// Skipped lists declaration names dropped because an earlier declaration used them.
	Skipped []string
}

// bundleBuilder tracks declaration names already placed into a module.
type bundleBuilder struct {
	seen    map[string]struct{}
	skipped []string
}

// buildBundleView prepares data for module template rendering.
func buildBundleView(o *Output, opt BundleOptions) bundleView {
	title := strings.TrimSpace(opt.Title)
	if title == "" {
		title = o.Title
	}

	view := bundleView{
		Title:      sanitizeText(title),
		Source:     sanitizeText(opt.Source),
		Components: make([]declarationView, 0, len(o.Components)),
		Operations: make([]operationView, 0, len(o.Paths)),
	}

	builder := bundleBuilder{seen: make(map[string]struct{})}
	for _, component := range o.Components {
		if declaration, ok := builder.add(component.Name, component.TsType); ok {
			view.Components = append(view.Components, declaration)
		}
	}

	for _, path := range o.Paths {
		operation := operationView{
			Method:      strings.ToUpper(path.Method),
			Path:        path.Path,
			OperationID: sanitizeText(path.OperationID),
			Summary:     sanitizeText(path.Summary),
		}

		name := path.TypeName
		if name == "" {
			name = OperationName(path.Method, path.Path)
		}

		for _, part := range []struct {
			suffix string
			text   string
		}{
			{SuffixQuery, path.QueryTsType},
			{SuffixPath, path.PathTsType},
			{SuffixBody, path.RequestBody},
		} {
			if declaration, ok := builder.add(name+part.suffix, part.text); ok {
				operation.Declarations = append(operation.Declarations, declaration)
			}
		}

		operation.Declarations = append(operation.Declarations, builder.responses(name, path)...)
		if len(operation.Declarations) > 0 {
			view.Operations = append(view.Operations, operation)
		}
	}

	view.Skipped = builder.skipped
	return view
}

// add registers one declaration; empty text is ignored and repeated names are skipped.
func (b *bundleBuilder) add(name, text string) (declarationView, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return declarationView{}, false
	}

	if _, exists := b.seen[name]; exists {
		b.skipped = append(b.skipped, name)
		return declarationView{}, false
	}

	b.seen[name] = struct{}{}
	return declarationView{Name: name, Text: text}, true
}

// responses places response declarations of one operation.
//
// A single response keeps its `<Op>Response` name. Several responses are renamed
// to `<Op><Status>Response` and joined by an `<Op>Response` union alias.
func (b *bundleBuilder) responses(name string, path PathOutput) []declarationView {
	statuses := path.orderedStatuses()
	responseName := name + SuffixResponse
	if len(statuses) == 1 {
		declaration, ok := b.add(responseName, path.Responses[statuses[0]].TsType)
		if !ok {
			return nil
		}

		return []declarationView{declaration}
	}

	out := make([]declarationView, 0, len(statuses)+1)
	members := make([]string, 0, len(statuses))
	for _, status := range statuses {
		statusDeclaration := name + statusName(status) + SuffixResponse
		text := renameDeclaration(path.Responses[status].TsType, responseName, statusDeclaration)
		declaration, ok := b.add(statusDeclaration, text)
		if !ok {
			continue
		}

		out = append(out, declaration)
		members = append(members, statusDeclaration)
	}

	if len(members) == 0 {
		return out
	}

	alias := "export type " + responseName + " = " + strings.Join(members, " | ") + ";"
	if declaration, ok := b.add(responseName, alias); ok {
		out = append(out, declaration)
	}

	return out
}

// renameDeclaration replaces the declared name of one rendered declaration.
func renameDeclaration(text, from, to string) string {
	for _, keyword := range []string{"export type ", "export interface "} {
		prefix := keyword + from + " "
		if strings.HasPrefix(text, prefix) {
			return keyword + to + " " + text[len(prefix):]
		}
	}

	return text
}
