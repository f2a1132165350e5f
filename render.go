// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

package schemats

import (
	"fmt"
	"os"
	"strings"
)

const (
	// indentUnit is printed once per nesting level.
	indentUnit = "  "
	// arraySuffix marks an array type.
	arraySuffix = "[]"
	// emptyObject is printed for objects without properties.
	emptyObject = "{}"
)

// renderer prints expressions for one declaration.
type renderer struct {
	anySpelling string
	wrapWidth   int
}

// RenderFile reads a schema file and renders one declaration named name.
func RenderFile(name, path string, opt Options) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadSchemaFile, err)
	}

	return Render(name, data, opt)
}

// Render decodes schema bytes and renders one declaration named name.
func Render(name string, data []byte, opt Options) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyDeclarationName
	}

	schema, err := ParseSchema(data)
	if err != nil {
		return "", err
	}

	return SchemaToType(name, schema, opt), nil
}

// String renders the declaration as `export type` or `export interface` text.
// A declaration without expressions renders as an empty string.
func (d Declaration) String() string {
	if len(d.Expressions) == 0 {
		return ""
	}

	r := renderer{
		anySpelling: d.Options.anySpelling(),
		wrapWidth:   normalizeCommentWrapWidth(d.Options.CommentWrapWidth),
	}

	if d.Options.PreferInterfaceOverType {
		if object, ok := interfaceObject(d.Expressions); ok {
			return "export interface " + d.Name + " " + r.renderObject(object, 1, false) + ";"
		}
	}

	parts := make([]string, 0, len(d.Expressions))
	for _, expression := range d.Expressions {
		parts = append(parts, r.renderExpression(expression, 1))
	}

	return "export type " + d.Name + " = " + strings.Join(parts, unionSeparator) + ";"
}

// interfaceObject returns the sole plain object of a declaration that can be an interface.
func interfaceObject(expressions []Expression) (ObjectTerm, bool) {
	if len(expressions) != 1 || len(expressions[0].Terms) != 1 {
		return ObjectTerm{}, false
	}

	object, ok := expressions[0].Terms[0].(ObjectTerm)
	if !ok || object.Array {
		return ObjectTerm{}, false
	}

	return object, true
}

// renderExpression prints one expression. An expression array shares one `(...)[]`
// suffix and its terms drop their own.
func (r renderer) renderExpression(expression Expression, depth int) string {
	inArray := expression.IsArray()
	joined := r.renderTerms(expression, depth, inArray)
	if inArray {
		return "(" + joined + ")" + arraySuffix
	}

	return joined
}

// renderTerms prints expression terms joined by the expression operator.
func (r renderer) renderTerms(expression Expression, depth int, inArray bool) string {
	parts := make([]string, 0, len(expression.Terms))
	for _, term := range expression.Terms {
		parts = append(parts, r.renderTerm(term, depth, inArray))
	}

	return strings.Join(parts, expression.Operator.separator())
}

// renderTerm dispatches on the term variant.
func (r renderer) renderTerm(term Term, depth int, inArray bool) string {
	switch typed := term.(type) {
	case ObjectTerm:
		return r.renderObject(typed, depth, inArray)
	case PrimitiveTerm:
		return r.renderPrimitive(typed, inArray)
	case ReferenceTerm:
		return withArraySuffix(typed.Name, typed.Array && !inArray)
	case GroupTerm:
		return r.renderGroup(typed, depth, inArray)
	default:
		return r.anySpelling
	}
}

// renderGroup prints a nested composition, parenthesized when it holds several terms.
// Outside an expression array, a group whose terms are all arrays shares one `(...)[]` suffix.
func (r renderer) renderGroup(group GroupTerm, depth int, inArray bool) string {
	if !inArray && group.Expression.IsArray() {
		return r.renderExpression(group.Expression, depth)
	}

	joined := r.renderTerms(group.Expression, depth, inArray)
	if len(group.Expression.Terms) > 1 {
		return "(" + joined + ")"
	}

	return joined
}

// renderPrimitive prints a primitive spelling or its literal values.
func (r renderer) renderPrimitive(term PrimitiveTerm, inArray bool) string {
	if len(term.Enum) == 0 {
		return withArraySuffix(r.primitiveSpelling(term.Primitive), term.Array && !inArray)
	}

	values := make([]string, 0, len(term.Enum))
	for _, value := range term.Enum {
		if term.Primitive == PrimitiveString {
			value = quoteString(value)
		}

		values = append(values, value)
	}

	joined := strings.Join(values, unionSeparator)
	switch {
	case inArray || !term.Array:
		return joined
	case len(values) > 1:
		return "(" + joined + ")" + arraySuffix
	default:
		return joined + arraySuffix
	}
}

// primitiveSpelling returns the target-language name of a primitive.
func (r renderer) primitiveSpelling(kind PrimitiveKind) string {
	switch kind {
	case PrimitiveString:
		return "string"
	case PrimitiveNumber:
		return "number"
	case PrimitiveBoolean:
		return "boolean"
	case PrimitiveNull:
		return "null"
	default:
		return r.anySpelling
	}
}

// renderObject prints an object literal whose properties sit at depth.
func (r renderer) renderObject(object ObjectTerm, depth int, inArray bool) string {
	suffix := object.Array && !inArray
	if len(object.Properties) == 0 {
		return withArraySuffix(emptyObject, suffix)
	}

	var out strings.Builder
	out.WriteString("{\n")
	for index, property := range object.Properties {
		if index > 0 {
			out.WriteByte('\n')
		}

		r.writeProperty(&out, property, depth)
	}

	out.WriteByte('\n')
	out.WriteString(indent(depth - 1))
	out.WriteByte('}')

	return withArraySuffix(out.String(), suffix)
}

// writeProperty prints one property line with its optional comment block.
func (r renderer) writeProperty(out *strings.Builder, property ObjectProperty, depth int) {
	r.writeComment(out, property, depth)

	out.WriteString(indent(depth))
	out.WriteString(propertyKey(property.Name))
	if !property.Required {
		out.WriteByte('?')
	}

	out.WriteString(": ")
	if len(property.Expressions) == 0 {
		out.WriteString(r.anySpelling)
	}

	for index, expression := range property.Expressions {
		if index > 0 {
			out.WriteString(unionSeparator)
		}

		out.WriteString(r.renderExpression(expression, depth+1))
	}

	out.WriteByte(';')
}

// writeComment prints a block comment for a described or deprecated property.
func (r renderer) writeComment(out *strings.Builder, property ObjectProperty, depth int) {
	description := strings.TrimSpace(normalizeLineEndings(property.Description))
	if property.Deprecated {
		description = strings.TrimSpace("@deprecated " + description)
	}

	lines := commentLines(description, r.wrapWidth)
	if len(lines) == 0 {
		return
	}

	prefix := indent(depth)
	out.WriteString(prefix + "/**\n")
	for _, line := range lines {
		if line == "" {
			out.WriteString(prefix + " *\n")
			continue
		}

		out.WriteString(prefix + " * " + line + "\n")
	}

	out.WriteString(prefix + " */\n")
}

// indent returns the prefix for one nesting level.
func indent(depth int) string {
	if depth <= 0 {
		return ""
	}

	return strings.Repeat(indentUnit, depth)
}

// withArraySuffix appends the array suffix when array is set.
func withArraySuffix(text string, array bool) string {
	if array {
		return text + arraySuffix
	}

	return text
}
