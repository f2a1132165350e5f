// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemats

package schemats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/woozymasta/schemats/internal/yamlnode"
)

// builder translates schema nodes into expressions. It holds no state between calls
// besides the diagnostic sink and the declaration name used to label diagnostics.
type builder struct {
	declaration string
	diagnostics DiagnosticHandler
}

// Convert builds the declaration for schema under name.
func Convert(name string, schema *Schema, opt Options) Declaration {
	b := builder{
		declaration: name,
		diagnostics: opt.Diagnostics,
	}

	return Declaration{
		Name:        name,
		Options:     opt,
		Expressions: b.build(schema, false, OperatorNone, ""),
	}
}

// SchemaToType converts schema and renders the declaration text in one call.
func SchemaToType(name string, schema *Schema, opt Options) string {
	return Convert(name, schema, opt).String()
}

// build translates one schema node. isArray carries array context from an enclosing
// array schema; inherited is the composition operator of the caller.
func (b *builder) build(schema *Schema, isArray bool, inherited Operator, pointer string) []Expression {
	if schema == nil {
		return []Expression{anyExpression(isArray)}
	}

	var expressions []Expression
	switch schema.Kind {
	case KindString:
		expressions = []Expression{primitiveExpression(PrimitiveString, schema.Enum, isArray)}
	case KindNumber, KindInteger:
		expressions = []Expression{primitiveExpression(PrimitiveNumber, schema.Enum, isArray)}
	case KindBoolean:
		expressions = []Expression{primitiveExpression(PrimitiveBoolean, schema.Enum, isArray)}
	case KindNull:
		expressions = []Expression{primitiveExpression(PrimitiveNull, nil, isArray)}
	case KindObject:
		expressions = []Expression{b.buildObject(schema, isArray, pointer)}
	case KindArray:
		if schema.Items == nil {
			expressions = []Expression{anyExpression(true)}
			break
		}

		expressions = b.build(schema.Items, true, inherited, yamlnode.AppendPointer(pointer, "items"))
	case KindUnion, KindIntersection:
		expressions = []Expression{b.buildComposition(schema, isArray, pointer)}
	case KindReference:
		expressions = []Expression{{
			Terms:    []Term{ReferenceTerm{Name: referenceName(schema.Ref), Array: isArray}},
			Operator: inherited,
		}}
	case KindAny:
		expressions = []Expression{anyExpression(isArray)}
	default:
		b.report(pointer, fmt.Sprintf("schema kind %s not recognized, defaulting to any", schema.Kind), schema.Keywords)
		expressions = []Expression{anyExpression(isArray)}
	}

	if schema.Nullable {
		for i := range expressions {
			expressions[i].Terms = append(expressions[i].Terms, PrimitiveTerm{
				Primitive: PrimitiveNull,
				Array:     isArray,
			})
		}
	}

	return expressions
}

// buildObject builds one object term; its array flag comes from the caller.
func (b *builder) buildObject(schema *Schema, isArray bool, pointer string) Expression {
	properties := make([]ObjectProperty, 0, len(schema.Properties))
	for _, property := range schema.Properties {
		propertyPointer := yamlnode.AppendPointer(yamlnode.AppendPointer(pointer, "properties"), property.Name)

		built := ObjectProperty{
			Name:        property.Name,
			Required:    schema.isRequired(property.Name),
			Expressions: b.build(property.Schema, false, OperatorNone, propertyPointer),
		}

		if property.Schema != nil {
			built.Description = property.Schema.Description
			built.Deprecated = property.Schema.Deprecated
		}

		properties = append(properties, built)
	}

	return Expression{
		Terms: []Term{ObjectTerm{Properties: properties, Array: isArray}},
	}
}

// buildComposition flattens member expressions into one expression.
//
// A member expression is spliced into the parent when its operator is None or matches the
// parent operator; otherwise it is kept as a GroupTerm so precedence survives rendering.
func (b *builder) buildComposition(schema *Schema, isArray bool, pointer string) Expression {
	op := OperatorUnion
	if schema.Kind == KindIntersection {
		op = OperatorIntersection
	}

	keywordPointer := yamlnode.AppendPointer(pointer, compositionKeyword(schema))
	out := Expression{Operator: op}
	for index, member := range schema.Members {
		memberPointer := yamlnode.AppendPointer(keywordPointer, strconv.Itoa(index))
		for _, expression := range b.build(member, isArray, OperatorNone, memberPointer) {
			if expression.Operator == OperatorNone || expression.Operator == op {
				out.Terms = append(out.Terms, expression.Terms...)
				continue
			}

			out.Terms = append(out.Terms, GroupTerm{Expression: expression})
		}
	}

	if len(out.Terms) == 0 {
		b.report(pointer, "composition has no members, defaulting to any", []string{compositionKeyword(schema)})
		return anyExpression(isArray)
	}

	return out
}

// report forwards one diagnostic to the configured handler.
func (b *builder) report(pointer, message string, keywords []string) {
	if b.diagnostics == nil {
		return
	}

	b.diagnostics(Diagnostic{
		Declaration: b.declaration,
		Pointer:     pointer,
		Message:     message,
		Keywords:    keywords,
	})
}

// primitiveExpression builds one primitive term with its literal values.
func primitiveExpression(kind PrimitiveKind, values []any, isArray bool) Expression {
	return Expression{
		Terms: []Term{PrimitiveTerm{
			Primitive: kind,
			Enum:      enumDisplayValues(values),
			Array:     isArray,
		}},
	}
}

// anyExpression builds one unconstrained term.
func anyExpression(isArray bool) Expression {
	return Expression{
		Terms: []Term{PrimitiveTerm{Primitive: PrimitiveAny, Array: isArray}},
	}
}

// enumDisplayValues converts typed literal values to display strings, dropping absent ones.
func enumDisplayValues(values []any) []string {
	if len(values) == 0 {
		return nil
	}

	out := make([]string, 0, len(values))
	for _, value := range values {
		switch typed := value.(type) {
		case nil:
			continue
		case string:
			out = append(out, typed)
		case bool:
			out = append(out, strconv.FormatBool(typed))
		case float64:
			out = append(out, strconv.FormatFloat(typed, 'f', -1, 64))
		case float32:
			out = append(out, strconv.FormatFloat(float64(typed), 'f', -1, 32))
		case int:
			out = append(out, strconv.Itoa(typed))
		case int32:
			out = append(out, strconv.FormatInt(int64(typed), 10))
		case int64:
			out = append(out, strconv.FormatInt(typed, 10))
		case uint64:
			out = append(out, strconv.FormatUint(typed, 10))
		default:
			out = append(out, fmt.Sprint(typed))
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}

// referenceName returns the final path segment of a reference with JSON pointer escapes decoded.
func referenceName(ref string) string {
	name := ref
	if index := strings.LastIndex(ref, "/"); index >= 0 {
		name = ref[index+1:]
	}

	return decodeJSONPointerToken(name)
}

// decodeJSONPointerToken unescapes one JSON pointer token.
func decodeJSONPointerToken(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}

// compositionKeyword returns the keyword used in diagnostic pointers for a composition.
func compositionKeyword(schema *Schema) string {
	for _, keyword := range schema.Keywords {
		switch keyword {
		case keywordAnyOf, keywordOneOf, keywordAllOf:
			return keyword
		}
	}

	if schema.Kind == KindIntersection {
		return keywordAllOf
	}

	return keywordAnyOf
}
